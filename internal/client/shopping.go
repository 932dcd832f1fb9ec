package client

import (
	"context"
	"fmt"

	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/domain"
)

// ListShoppingLists fetches the caller's shopping lists.
func (c *Client) ListShoppingLists(ctx context.Context) ([]domain.ShoppingList, error) {
	resp, err := c.Get(ctx, "/shopping-lists/")
	if err != nil {
		return nil, err
	}
	var lists []domain.ShoppingList
	if err := decode(resp, &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

// GetShoppingList fetches one shopping list with its items.
func (c *Client) GetShoppingList(ctx context.Context, id uint) (*domain.ShoppingList, error) {
	resp, err := c.Get(ctx, fmt.Sprintf("/shopping-lists/%d/", id))
	if err != nil {
		return nil, err
	}
	var list domain.ShoppingList
	if err := decode(resp, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GenerateShoppingList builds a list from the caller's meal plans in the
// given date range.
func (c *Client) GenerateShoppingList(ctx context.Context, req domain.GenerateListRequest) (*domain.ShoppingList, error) {
	resp, err := c.Post(ctx, "/shopping-lists/generate/", req)
	if err != nil {
		return nil, err
	}
	var list domain.ShoppingList
	if err := decode(resp, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// DeleteShoppingList removes a shopping list.
func (c *Client) DeleteShoppingList(ctx context.Context, id uint) error {
	resp, err := c.Delete(ctx, fmt.Sprintf("/shopping-lists/%d/", id))
	if err != nil {
		return err
	}
	return decode(resp, nil)
}

// AddShoppingListItem appends a custom item to a list.
func (c *Client) AddShoppingListItem(ctx context.Context, listID uint, item domain.ShoppingListItem) (*domain.ShoppingListItem, error) {
	resp, err := c.Post(ctx, fmt.Sprintf("/shopping-lists/%d/add_item/", listID), item)
	if err != nil {
		return nil, err
	}
	var created domain.ShoppingListItem
	if err := decode(resp, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ClearCheckedItems removes all checked items from a list and reports how
// many were deleted.
func (c *Client) ClearCheckedItems(ctx context.Context, listID uint) (int, error) {
	resp, err := c.Post(ctx, fmt.Sprintf("/shopping-lists/%d/clear_checked/", listID), nil)
	if err != nil {
		return 0, err
	}
	var result struct {
		DeletedCount int `json:"deleted_count"`
	}
	if err := decode(resp, &result); err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// ToggleItemChecked flips the checked state of one item.
func (c *Client) ToggleItemChecked(ctx context.Context, itemID uint) (*domain.ShoppingListItem, error) {
	resp, err := c.Post(ctx, fmt.Sprintf("/shopping-list-items/%d/toggle_check/", itemID), nil)
	if err != nil {
		return nil, err
	}
	var item domain.ShoppingListItem
	if err := decode(resp, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteShoppingListItem removes one item.
func (c *Client) DeleteShoppingListItem(ctx context.Context, itemID uint) error {
	resp, err := c.Delete(ctx, fmt.Sprintf("/shopping-list-items/%d/", itemID))
	if err != nil {
		return err
	}
	return decode(resp, nil)
}
