package web

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/client"
	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/domain"
)

// plannerDay is one column of the week grid.
type plannerDay struct {
	Date  domain.Date
	Label string
	Slots map[string][]domain.MealPlan
}

// Planner renders the seven-day grid for the week containing the start
// query parameter (defaulting to today).
func (h *Handlers) Planner(c *gin.Context) {
	if currentUser(c) == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	ref := domain.DateOf(time.Now())
	if s := c.Query("start"); s != "" {
		if d, err := domain.ParseDate(s); err == nil {
			ref = d
		}
	}

	api, store := h.apiClient(c)
	view := client.NewWeekView(api, ref)
	if err := view.Load(c.Request.Context()); err != nil {
		if errors.Is(err, client.ErrSessionExpired) {
			clearCookies(c)
			c.Redirect(http.StatusFound, "/login")
			return
		}
		h.log.Errorf("week load failed: %v", err)
		c.HTML(http.StatusOK, "planner.html", gin.H{
			"error": "Could not load the meal plan. Please try again.",
			"user":  currentUser(c),
		})
		return
	}

	recipes, err := api.ListRecipes(c.Request.Context())
	if err != nil {
		h.log.Errorf("recipe list for planner failed: %v", err)
	}

	days := make([]plannerDay, 0, 7)
	for i := 0; i < 7; i++ {
		date := view.Start.AddDays(i)
		slots := map[string][]domain.MealPlan{}
		for _, mealType := range domain.MealTypes {
			slots[mealType] = view.Buckets[client.SlotKey(date, mealType)]
		}
		days = append(days, plannerDay{
			Date:  date,
			Label: date.Format("Mon 1/2"),
			Slots: slots,
		})
	}

	h.syncCookies(c, store)
	c.HTML(http.StatusOK, "planner.html", gin.H{
		"days":       days,
		"mealTypes":  domain.MealTypes,
		"rangeLabel": view.RangeLabel(),
		"start":      view.Start.String(),
		"prevStart":  view.Start.AddDays(-7).String(),
		"nextStart":  view.Start.AddDays(7).String(),
		"recipes":    recipes,
		"user":       currentUser(c),
	})
}

// PlannerAdd places a recipe into a slot.
func (h *Handlers) PlannerAdd(c *gin.Context) {
	recipeID, err := strconv.ParseUint(c.PostForm("recipe"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/planner")
		return
	}
	date, err := domain.ParseDate(c.PostForm("date"))
	if err != nil {
		c.Redirect(http.StatusFound, "/planner")
		return
	}
	mealType := c.PostForm("meal_type")

	api, store := h.apiClient(c)
	_, err = api.CreateMealPlan(c.Request.Context(), domain.MealPlan{
		RecipeID: uint(recipeID),
		Date:     date,
		MealType: mealType,
	})
	if err != nil {
		h.log.Errorf("planner add failed: %v", err)
	}
	h.syncCookies(c, store)
	c.Redirect(http.StatusFound, "/planner?start="+client.WeekStart(date).String())
}

// PlannerRemove deletes one entry.
func (h *Handlers) PlannerRemove(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/planner")
		return
	}
	api, store := h.apiClient(c)
	if err := api.DeleteMealPlan(c.Request.Context(), uint(id)); err != nil {
		h.log.Errorf("planner remove failed: %v", err)
	}
	h.syncCookies(c, store)
	c.Redirect(http.StatusFound, "/planner?start="+c.PostForm("start"))
}

// PlannerClear bulk-deletes the visible week. The template gates this
// behind a confirmation dialog.
func (h *Handlers) PlannerClear(c *gin.Context) {
	start, err := domain.ParseDate(c.PostForm("start"))
	if err != nil {
		c.Redirect(http.StatusFound, "/planner")
		return
	}
	api, store := h.apiClient(c)
	_, err = api.BulkMealPlanOperation(c.Request.Context(), domain.BulkOperationRequest{
		Action:    domain.BulkActionClear,
		StartDate: start,
		EndDate:   start.AddDays(6),
	})
	if err != nil {
		h.log.Errorf("planner clear failed: %v", err)
	}
	h.syncCookies(c, store)
	c.Redirect(http.StatusFound, "/planner?start="+start.String())
}

// PlannerGenerate builds a shopping list for the visible week and opens
// its detail view.
func (h *Handlers) PlannerGenerate(c *gin.Context) {
	start, err := domain.ParseDate(c.PostForm("start"))
	if err != nil {
		c.Redirect(http.StatusFound, "/planner")
		return
	}
	api, store := h.apiClient(c)
	list, err := api.GenerateShoppingList(c.Request.Context(), domain.GenerateListRequest{
		Name:      "Week of " + start.String(),
		StartDate: start,
		EndDate:   start.AddDays(6),
	})
	if err != nil {
		h.log.Errorf("shopping list generation failed: %v", err)
		c.Redirect(http.StatusFound, "/planner?start="+start.String())
		return
	}
	h.syncCookies(c, store)
	c.Redirect(http.StatusFound, "/shopping-lists/"+strconv.FormatUint(uint64(list.ID), 10))
}
