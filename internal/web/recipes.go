package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/client"
	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/domain"
)

// recipePageData groups recipes by category for the list template.
type recipeGroup struct {
	Category string
	Label    string
	Recipes  []domain.Recipe
}

func groupByCategory(recipes []domain.Recipe) []recipeGroup {
	var groups []recipeGroup
	for _, category := range domain.RecipeCategories {
		var inCategory []domain.Recipe
		for _, r := range recipes {
			if r.Category == category {
				inCategory = append(inCategory, r)
			}
		}
		if len(inCategory) > 0 {
			groups = append(groups, recipeGroup{
				Category: category,
				Label:    domain.CategoryDisplayNames[category],
				Recipes:  inCategory,
			})
		}
	}
	return groups
}

// Recipes renders the list view with an optional selected recipe in the
// detail pane. With nothing selected the pane shows the empty state.
func (h *Handlers) Recipes(c *gin.Context) {
	api, store := h.apiClient(c)
	recipes, err := api.ListRecipes(c.Request.Context())
	if err != nil {
		h.renderRecipesError(c, err)
		return
	}

	data := gin.H{
		"groups":     groupByCategory(recipes),
		"user":       currentUser(c),
		"emptyState": "Select a recipe to view details",
	}
	if idStr := c.Query("selected"); idStr != "" {
		if id, err := strconv.ParseUint(idStr, 10, 64); err == nil {
			if selected, err := api.GetRecipe(c.Request.Context(), uint(id)); err == nil {
				data["selected"] = selected
			}
		}
	}
	h.syncCookies(c, store)
	c.HTML(http.StatusOK, "recipes.html", data)
}

func (h *Handlers) renderRecipesError(c *gin.Context, err error) {
	h.log.Errorf("recipe list failed: %v", err)
	if errors.Is(err, client.ErrSessionExpired) {
		clearCookies(c)
		c.Redirect(http.StatusFound, "/login")
		return
	}
	c.HTML(http.StatusOK, "recipes.html", gin.H{
		"error":      "Could not load recipes. Please try again.",
		"emptyState": "Select a recipe to view details",
		"user":       currentUser(c),
	})
}

// RecipeForm renders the create form.
func (h *Handlers) RecipeForm(c *gin.Context) {
	if currentUser(c) == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	c.HTML(http.StatusOK, "recipe_form.html", gin.H{
		"categories":   domain.RecipeCategories,
		"labels":       domain.CategoryDisplayNames,
		"difficulties": domain.RecipeDifficulties,
		"dietaryTags":  domain.DietaryTags,
		"user":         currentUser(c),
	})
}

// RecipeCreate submits the form to the API.
func (h *Handlers) RecipeCreate(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.Redirect(http.StatusFound, "/recipes/new")
		return
	}
	recipe := RecipeFromForm(c.Request.PostForm)

	api, store := h.apiClient(c)
	created, err := api.CreateRecipe(c.Request.Context(), recipe)
	if err != nil {
		data := gin.H{
			"categories":   domain.RecipeCategories,
			"labels":       domain.CategoryDisplayNames,
			"difficulties": domain.RecipeDifficulties,
			"dietaryTags":  domain.DietaryTags,
			"recipe":       recipe,
			"user":         currentUser(c),
		}
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.Fields != nil {
			data["fieldErrors"] = apiErr.Fields
		} else {
			data["error"] = "Could not save the recipe. Please try again."
		}
		c.HTML(http.StatusBadRequest, "recipe_form.html", data)
		return
	}
	h.syncCookies(c, store)
	c.Redirect(http.StatusFound, "/recipes?selected="+strconv.FormatUint(uint64(created.ID), 10))
}

// RecipeDelete removes a recipe and returns to the unselected list, which
// shows the empty detail state.
func (h *Handlers) RecipeDelete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/recipes")
		return
	}
	api, store := h.apiClient(c)
	if err := api.DeleteRecipe(c.Request.Context(), uint(id)); err != nil {
		h.log.Errorf("recipe delete failed: %v", err)
	}
	h.syncCookies(c, store)
	c.Redirect(http.StatusFound, "/recipes")
}

// RecipeFavorite toggles the favorite mark and returns to the detail view.
func (h *Handlers) RecipeFavorite(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/recipes")
		return
	}
	api, store := h.apiClient(c)
	if c.PostForm("favorited") == "true" {
		_, err = api.UnfavoriteRecipe(c.Request.Context(), uint(id))
	} else {
		_, err = api.FavoriteRecipe(c.Request.Context(), uint(id))
	}
	if err != nil {
		h.log.Errorf("favorite toggle failed: %v", err)
	}
	h.syncCookies(c, store)
	c.Redirect(http.StatusFound, "/recipes?selected="+c.Param("id"))
}
