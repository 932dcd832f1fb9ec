package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/domain"
	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/service"
	"github.com/yc6chen/Claude-WebApp-Test-sub002/pkg/logger"
)

// MealPlanHandler exposes meal-plan CRUD, the week view, and bulk
// clear/copy operations.
type MealPlanHandler struct {
	plans *service.MealPlanService
	log   *logger.Logger
}

// NewMealPlanHandler creates a new MealPlanHandler.
func NewMealPlanHandler(plans *service.MealPlanService, log *logger.Logger) *MealPlanHandler {
	return &MealPlanHandler{plans: plans, log: log}
}

// List handles GET /api/meal-plans/ with optional start_date and end_date
// query filters.
func (h *MealPlanHandler) List(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var start, end *domain.Date
	if s := c.Query("start_date"); s != "" {
		d, err := domain.ParseDate(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"start_date": []string{"Enter a valid date."}})
			return
		}
		start = &d
	}
	if s := c.Query("end_date"); s != "" {
		d, err := domain.ParseDate(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"end_date": []string{"Enter a valid date."}})
			return
		}
		end = &d
	}
	plans, err := h.plans.List(userID, start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	if plans == nil {
		plans = []domain.MealPlan{}
	}
	c.JSON(http.StatusOK, plans)
}

// Get handles GET /api/meal-plans/:id/. The id segment also carries the
// week collection action.
func (h *MealPlanHandler) Get(c *gin.Context) {
	if c.Param("id") == "week" {
		h.week(c)
		return
	}
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}
	plan, err := h.plans.Get(id, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// week serves the seven-day window starting at start_date, which defaults
// to the most recent Sunday.
func (h *MealPlanHandler) week(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var start domain.Date
	if s := c.Query("start_date"); s != "" {
		d, err := domain.ParseDate(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"start_date": []string{"Enter a valid date."}})
			return
		}
		start = d
	} else {
		today := domain.DateOf(time.Now())
		start = today.AddDays(-int(today.Weekday()))
	}
	week, err := h.plans.Week(userID, start)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, week)
}

// Create handles POST /api/meal-plans/. The id-less collection POST also
// dispatches the bulk_operation action from the router.
func (h *MealPlanHandler) Create(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var plan domain.MealPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		respondBadBody(c, err)
		return
	}
	created, err := h.plans.Create(&plan, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Post handles POST /api/meal-plans/:id/, dispatching bulk_operation.
func (h *MealPlanHandler) Post(c *gin.Context) {
	if c.Param("id") != "bulk_operation" {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"detail": `Method "POST" not allowed.`})
		return
	}
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req domain.BulkOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c, err)
		return
	}
	result, err := h.plans.Bulk(userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Update handles PUT and PATCH /api/meal-plans/:id/.
func (h *MealPlanHandler) Update(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}
	var plan domain.MealPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		respondBadBody(c, err)
		return
	}
	updated, err := h.plans.Update(id, &plan, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/meal-plans/:id/.
func (h *MealPlanHandler) Delete(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}
	if err := h.plans.Delete(id, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
