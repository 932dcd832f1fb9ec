package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/client"
	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/domain"
)

// itemGroup is one aisle section of the shopping list view.
type itemGroup struct {
	Category string
	Items    []domain.ShoppingListItem
}

func groupItems(items []domain.ShoppingListItem) []itemGroup {
	var groups []itemGroup
	for _, category := range domain.ShoppingItemCategories {
		var inCategory []domain.ShoppingListItem
		for _, item := range items {
			if item.Category == category {
				inCategory = append(inCategory, item)
			}
		}
		if len(inCategory) > 0 {
			groups = append(groups, itemGroup{Category: category, Items: inCategory})
		}
	}
	return groups
}

// ShoppingLists renders the caller's lists.
func (h *Handlers) ShoppingLists(c *gin.Context) {
	if currentUser(c) == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	api, store := h.apiClient(c)
	lists, err := api.ListShoppingLists(c.Request.Context())
	if err != nil {
		if errors.Is(err, client.ErrSessionExpired) {
			clearCookies(c)
			c.Redirect(http.StatusFound, "/login")
			return
		}
		h.log.Errorf("shopping lists failed: %v", err)
		c.HTML(http.StatusOK, "shopping_lists.html", gin.H{
			"error": "Could not load shopping lists. Please try again.",
			"user":  currentUser(c),
		})
		return
	}
	h.syncCookies(c, store)
	c.HTML(http.StatusOK, "shopping_lists.html", gin.H{"lists": lists, "user": currentUser(c)})
}

// ShoppingListDetail renders one list grouped by aisle.
func (h *Handlers) ShoppingListDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/shopping-lists")
		return
	}
	api, store := h.apiClient(c)
	list, err := api.GetShoppingList(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, client.ErrSessionExpired) {
			clearCookies(c)
			c.Redirect(http.StatusFound, "/login")
			return
		}
		h.log.Errorf("shopping list detail failed: %v", err)
		c.Redirect(http.StatusFound, "/shopping-lists")
		return
	}
	h.syncCookies(c, store)
	c.HTML(http.StatusOK, "shopping_list.html", gin.H{
		"list":   list,
		"groups": groupItems(list.Items),
		"user":   currentUser(c),
	})
}

// ShoppingListDelete removes a list.
func (h *Handlers) ShoppingListDelete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/shopping-lists")
		return
	}
	api, store := h.apiClient(c)
	if err := api.DeleteShoppingList(c.Request.Context(), uint(id)); err != nil {
		h.log.Errorf("shopping list delete failed: %v", err)
	}
	h.syncCookies(c, store)
	c.Redirect(http.StatusFound, "/shopping-lists")
}

// ShoppingItemToggle flips one item's checked state.
func (h *Handlers) ShoppingItemToggle(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("itemID"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/shopping-lists")
		return
	}
	api, store := h.apiClient(c)
	if _, err := api.ToggleItemChecked(c.Request.Context(), uint(itemID)); err != nil {
		h.log.Errorf("item toggle failed: %v", err)
	}
	h.syncCookies(c, store)
	c.Redirect(http.StatusFound, "/shopping-lists/"+c.Param("id"))
}

// ShoppingItemAdd appends a custom item.
func (h *Handlers) ShoppingItemAdd(c *gin.Context) {
	listID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/shopping-lists")
		return
	}
	quantity, _ := strconv.ParseFloat(c.PostForm("quantity"), 64)
	item := domain.ShoppingListItem{
		IngredientName: c.PostForm("ingredient_name"),
		Quantity:       quantity,
		Unit:           c.PostForm("unit"),
		Notes:          c.PostForm("notes"),
	}
	api, store := h.apiClient(c)
	if _, err := api.AddShoppingListItem(c.Request.Context(), uint(listID), item); err != nil {
		h.log.Errorf("item add failed: %v", err)
	}
	h.syncCookies(c, store)
	c.Redirect(http.StatusFound, "/shopping-lists/"+c.Param("id"))
}

// ShoppingItemDelete removes one item.
func (h *Handlers) ShoppingItemDelete(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("itemID"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/shopping-lists")
		return
	}
	api, store := h.apiClient(c)
	if err := api.DeleteShoppingListItem(c.Request.Context(), uint(itemID)); err != nil {
		h.log.Errorf("item delete failed: %v", err)
	}
	h.syncCookies(c, store)
	c.Redirect(http.StatusFound, "/shopping-lists/"+c.Param("id"))
}

// ShoppingClearChecked removes all checked items from a list.
func (h *Handlers) ShoppingClearChecked(c *gin.Context) {
	listID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/shopping-lists")
		return
	}
	api, store := h.apiClient(c)
	if _, err := api.ClearCheckedItems(c.Request.Context(), uint(listID)); err != nil {
		h.log.Errorf("clear checked failed: %v", err)
	}
	h.syncCookies(c, store)
	c.Redirect(http.StatusFound, "/shopping-lists/"+c.Param("id"))
}
