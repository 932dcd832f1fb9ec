package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/domain"
	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/service"
	"github.com/yc6chen/Claude-WebApp-Test-sub002/pkg/logger"
)

// ShoppingHandler exposes shopping-list CRUD, list generation from meal
// plans, and item-level actions.
type ShoppingHandler struct {
	shopping *service.ShoppingService
	log      *logger.Logger
}

// NewShoppingHandler creates a new ShoppingHandler.
func NewShoppingHandler(shopping *service.ShoppingService, log *logger.Logger) *ShoppingHandler {
	return &ShoppingHandler{shopping: shopping, log: log}
}

// List handles GET /api/shopping-lists/.
func (h *ShoppingHandler) List(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	lists, err := h.shopping.List(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lists)
}

// Get handles GET /api/shopping-lists/:id/.
func (h *ShoppingHandler) Get(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}
	list, err := h.shopping.Get(id, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Create handles POST /api/shopping-lists/.
func (h *ShoppingHandler) Create(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var list domain.ShoppingList
	if err := c.ShouldBindJSON(&list); err != nil {
		respondBadBody(c, err)
		return
	}
	created, err := h.shopping.Create(&list, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Post handles POST /api/shopping-lists/:id/, dispatching the generate
// collection action.
func (h *ShoppingHandler) Post(c *gin.Context) {
	if c.Param("id") != "generate" {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"detail": `Method "POST" not allowed.`})
		return
	}
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req domain.GenerateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c, err)
		return
	}
	list, err := h.shopping.Generate(userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, list)
}

// Update handles PUT and PATCH /api/shopping-lists/:id/.
func (h *ShoppingHandler) Update(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}
	var list domain.ShoppingList
	if err := c.ShouldBindJSON(&list); err != nil {
		respondBadBody(c, err)
		return
	}
	updated, err := h.shopping.Update(id, &list, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/shopping-lists/:id/.
func (h *ShoppingHandler) Delete(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}
	if err := h.shopping.Delete(id, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Action handles POST /api/shopping-lists/:id/:action/ for add_item and
// clear_checked.
func (h *ShoppingHandler) Action(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}
	switch c.Param("action") {
	case "add_item":
		var item domain.ShoppingListItem
		if err := c.ShouldBindJSON(&item); err != nil {
			respondBadBody(c, err)
			return
		}
		created, err := h.shopping.AddItem(id, userID, &item)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	case "clear_checked":
		deleted, err := h.shopping.ClearChecked(id, userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted_count": deleted})
	default:
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
	}
}

// GetItem handles GET /api/shopping-list-items/:id/.
func (h *ShoppingHandler) GetItem(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}
	item, err := h.shopping.GetItem(id, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateItem handles PUT and PATCH /api/shopping-list-items/:id/.
func (h *ShoppingHandler) UpdateItem(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}
	var item domain.ShoppingListItem
	if err := c.ShouldBindJSON(&item); err != nil {
		respondBadBody(c, err)
		return
	}
	updated, err := h.shopping.UpdateItem(id, userID, &item)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteItem handles DELETE /api/shopping-list-items/:id/.
func (h *ShoppingHandler) DeleteItem(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}
	if err := h.shopping.DeleteItem(id, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ItemAction handles POST /api/shopping-list-items/:id/:action/ for
// toggle_check.
func (h *ShoppingHandler) ItemAction(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}
	if c.Param("action") != "toggle_check" {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}
	item, err := h.shopping.ToggleCheck(id, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}
