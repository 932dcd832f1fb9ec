package client

import (
	"context"
	"fmt"

	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/domain"
)

// ListMealPlans fetches the caller's meal-plan entries, optionally
// restricted to [start, end].
func (c *Client) ListMealPlans(ctx context.Context, start, end *domain.Date) ([]domain.MealPlan, error) {
	endpoint := "/meal-plans/"
	if start != nil && end != nil {
		endpoint = fmt.Sprintf("/meal-plans/?start_date=%s&end_date=%s", start, end)
	}
	resp, err := c.Get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	var plans []domain.MealPlan
	if err := decode(resp, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// Week fetches the seven-day window starting at start.
func (c *Client) Week(ctx context.Context, start domain.Date) (*domain.WeekResponse, error) {
	resp, err := c.Get(ctx, fmt.Sprintf("/meal-plans/week/?start_date=%s", start))
	if err != nil {
		return nil, err
	}
	var week domain.WeekResponse
	if err := decode(resp, &week); err != nil {
		return nil, err
	}
	return &week, nil
}

// CreateMealPlan stores a new entry.
func (c *Client) CreateMealPlan(ctx context.Context, plan domain.MealPlan) (*domain.MealPlan, error) {
	resp, err := c.Post(ctx, "/meal-plans/", plan)
	if err != nil {
		return nil, err
	}
	var created domain.MealPlan
	if err := decode(resp, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateMealPlan stores changes to an entry.
func (c *Client) UpdateMealPlan(ctx context.Context, id uint, plan domain.MealPlan) (*domain.MealPlan, error) {
	resp, err := c.Put(ctx, fmt.Sprintf("/meal-plans/%d/", id), plan)
	if err != nil {
		return nil, err
	}
	var updated domain.MealPlan
	if err := decode(resp, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteMealPlan removes an entry.
func (c *Client) DeleteMealPlan(ctx context.Context, id uint) error {
	resp, err := c.Delete(ctx, fmt.Sprintf("/meal-plans/%d/", id))
	if err != nil {
		return err
	}
	return decode(resp, nil)
}

// BulkMealPlanOperation clears or copies all entries in a date range.
func (c *Client) BulkMealPlanOperation(ctx context.Context, req domain.BulkOperationRequest) (*domain.BulkOperationResult, error) {
	resp, err := c.Post(ctx, "/meal-plans/bulk_operation/", req)
	if err != nil {
		return nil, err
	}
	var result domain.BulkOperationResult
	if err := decode(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
