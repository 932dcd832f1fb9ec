package client

import (
	"context"
	"fmt"

	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/domain"
)

// WeekStart returns the most recent Sunday on or before d.
func WeekStart(d domain.Date) domain.Date {
	return d.AddDays(-int(d.Weekday()))
}

// SlotKey builds the bucket key for a (date, meal type) grid slot.
func SlotKey(date domain.Date, mealType string) string {
	return date.String() + "-" + mealType
}

// BucketEntries groups entries by slot key, preserving fetch order within
// each slot so several recipes can share one.
func BucketEntries(plans []domain.MealPlan) map[string][]domain.MealPlan {
	buckets := make(map[string][]domain.MealPlan)
	for _, plan := range plans {
		key := SlotKey(plan.Date, plan.MealType)
		buckets[key] = append(buckets[key], plan)
	}
	return buckets
}

// FormatWeekRange renders the visible week range, collapsing the month
// when start and end share one: "Nov 3-9, 2025" or "Oct 29 - Nov 4, 2025".
func FormatWeekRange(start domain.Date) string {
	end := start.AddDays(6)
	if start.Month() == end.Month() && start.Year() == end.Year() {
		return fmt.Sprintf("%s %d-%d, %d", start.Format("Jan"), start.Day(), end.Day(), end.Year())
	}
	return fmt.Sprintf("%s %d - %s %d, %d", start.Format("Jan"), start.Day(), end.Format("Jan"), end.Day(), end.Year())
}

// WeekView manages the seven-day, three-meal grid: loading a week's
// entries, navigating between weeks, and mutating slots.
type WeekView struct {
	client *Client

	// Start is the Sunday the grid currently shows.
	Start domain.Date
	// Buckets maps slot keys to the entries in that slot.
	Buckets map[string][]domain.MealPlan
}

// NewWeekView creates a WeekView anchored on the week containing ref.
func NewWeekView(client *Client, ref domain.Date) *WeekView {
	return &WeekView{
		client:  client,
		Start:   WeekStart(ref),
		Buckets: map[string][]domain.MealPlan{},
	}
}

// End returns the Saturday closing the visible week.
func (w *WeekView) End() domain.Date {
	return w.Start.AddDays(6)
}

// RangeLabel returns the formatted visible range.
func (w *WeekView) RangeLabel() string {
	return FormatWeekRange(w.Start)
}

// Load fetches the visible week's entries and rebuilds the buckets. On
// failure the previous buckets are kept.
func (w *WeekView) Load(ctx context.Context) error {
	week, err := w.client.Week(ctx, w.Start)
	if err != nil {
		return err
	}
	w.Buckets = BucketEntries(week.MealPlans)
	return nil
}

// Next advances one week and reloads.
func (w *WeekView) Next(ctx context.Context) error {
	w.Start = w.Start.AddDays(7)
	return w.Load(ctx)
}

// Prev goes back one week and reloads.
func (w *WeekView) Prev(ctx context.Context) error {
	w.Start = w.Start.AddDays(-7)
	return w.Load(ctx)
}

// Today resets to the week containing ref and reloads.
func (w *WeekView) Today(ctx context.Context, ref domain.Date) error {
	w.Start = WeekStart(ref)
	return w.Load(ctx)
}

// Add creates an entry placing the recipe in the given slot and reloads.
func (w *WeekView) Add(ctx context.Context, recipeID uint, date domain.Date, mealType string) error {
	_, err := w.client.CreateMealPlan(ctx, domain.MealPlan{
		RecipeID: recipeID,
		Date:     date,
		MealType: mealType,
	})
	if err != nil {
		return err
	}
	return w.Load(ctx)
}

// Remove deletes one entry and prunes it from its bucket.
func (w *WeekView) Remove(ctx context.Context, entryID uint) error {
	if err := w.client.DeleteMealPlan(ctx, entryID); err != nil {
		return err
	}
	for key, plans := range w.Buckets {
		for i, plan := range plans {
			if plan.ID == entryID {
				w.Buckets[key] = append(plans[:i], plans[i+1:]...)
				if len(w.Buckets[key]) == 0 {
					delete(w.Buckets, key)
				}
				return nil
			}
		}
	}
	return nil
}

// ClearWeek bulk-deletes every entry in the visible week and reloads.
// Callers gate this behind an explicit confirmation.
func (w *WeekView) ClearWeek(ctx context.Context) (int, error) {
	result, err := w.client.BulkMealPlanOperation(ctx, domain.BulkOperationRequest{
		Action:    domain.BulkActionClear,
		StartDate: w.Start,
		EndDate:   w.End(),
	})
	if err != nil {
		return 0, err
	}
	if err := w.Load(ctx); err != nil {
		return result.DeletedCount, err
	}
	return result.DeletedCount, nil
}

// GenerateShoppingList builds a shopping list for the visible week and
// returns it so the caller can navigate to its detail view.
func (w *WeekView) GenerateShoppingList(ctx context.Context) (*domain.ShoppingList, error) {
	return w.client.GenerateShoppingList(ctx, domain.GenerateListRequest{
		Name:      "Week of " + w.Start.String(),
		StartDate: w.Start,
		EndDate:   w.End(),
	})
}
