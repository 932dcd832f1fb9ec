package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/domain"
	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/service"
	"github.com/yc6chen/Claude-WebApp-Test-sub002/pkg/logger"
	"github.com/yc6chen/Claude-WebApp-Test-sub002/pkg/util"
)

// RecipeHandler exposes recipe CRUD, the my_recipes and favorites views,
// and the favorite toggle actions. Reads allow anonymous access.
type RecipeHandler struct {
	recipes *service.RecipeService
	log     *logger.Logger
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(recipes *service.RecipeService, log *logger.Logger) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, log: log}
}

func viewerID(c *gin.Context) *uint {
	if id, ok := util.GetUserID(c); ok {
		return &id
	}
	return nil
}

func requireUser(c *gin.Context) (uint, bool) {
	id, ok := util.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Authentication credentials were not provided."})
		return 0, false
	}
	return id, true
}

// List handles GET /api/recipes/.
func (h *RecipeHandler) List(c *gin.Context) {
	recipes, err := h.recipes.List(viewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// Get handles GET /api/recipes/:id/. The id segment also carries the
// my_recipes and favorites collection actions.
func (h *RecipeHandler) Get(c *gin.Context) {
	switch c.Param("id") {
	case "my_recipes":
		h.myRecipes(c)
		return
	case "favorites":
		h.favorites(c)
		return
	}
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}
	recipe, err := h.recipes.Get(id, viewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) myRecipes(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	recipes, err := h.recipes.MyRecipes(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) favorites(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	recipes, err := h.recipes.Favorites(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// Create handles POST /api/recipes/.
func (h *RecipeHandler) Create(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var recipe domain.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		respondBadBody(c, err)
		return
	}
	created, err := h.recipes.Create(&recipe, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update handles PUT and PATCH /api/recipes/:id/.
func (h *RecipeHandler) Update(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}
	var recipe domain.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		respondBadBody(c, err)
		return
	}
	updated, err := h.recipes.Update(id, &recipe, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/recipes/:id/.
func (h *RecipeHandler) Delete(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}
	if err := h.recipes.Delete(id, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Action handles POST /api/recipes/:id/:action/ for favorite and unfavorite.
func (h *RecipeHandler) Action(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}
	var (
		recipe *domain.Recipe
		err    error
	)
	switch c.Param("action") {
	case "favorite":
		recipe, err = h.recipes.Favorite(id, userID)
	case "unfavorite":
		recipe, err = h.recipes.Unfavorite(id, userID)
	default:
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}
