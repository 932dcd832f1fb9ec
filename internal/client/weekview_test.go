package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/domain"
)

func TestWeekStartIsSunday(t *testing.T) {
	// A full week of reference dates, Sunday through Saturday.
	for i := 0; i < 7; i++ {
		d := domain.NewDate(2025, time.November, 2).AddDays(i)
		start := WeekStart(d)
		assert.Equal(t, time.Sunday, start.Weekday(), d.String())
		assert.False(t, start.After(d.Time), d.String())
		assert.True(t, d.Before(start.AddDays(7).Time), d.String())
	}
}

func TestWeekStartIdempotent(t *testing.T) {
	d := domain.NewDate(2025, time.November, 6)
	start := WeekStart(d)
	assert.Equal(t, start, WeekStart(start))
}

func TestBucketEntriesPreservesFetchOrder(t *testing.T) {
	date := domain.NewDate(2025, time.November, 3)
	plans := []domain.MealPlan{
		{ID: 1, Date: date, MealType: "dinner"},
		{ID: 2, Date: date, MealType: "breakfast"},
		{ID: 3, Date: date, MealType: "dinner"},
	}
	buckets := BucketEntries(plans)

	require.Len(t, buckets, 2)
	dinner := buckets[SlotKey(date, "dinner")]
	require.Len(t, dinner, 2)
	assert.Equal(t, uint(1), dinner[0].ID)
	assert.Equal(t, uint(3), dinner[1].ID)
	assert.Len(t, buckets[SlotKey(date, "breakfast")], 1)
}

func TestSlotKey(t *testing.T) {
	date := domain.NewDate(2025, time.November, 3)
	assert.Equal(t, "2025-11-03-lunch", SlotKey(date, "lunch"))
}

func TestFormatWeekRangeSameMonth(t *testing.T) {
	start := domain.NewDate(2025, time.November, 3)
	assert.Equal(t, "Nov 3-9, 2025", FormatWeekRange(start))
}

func TestFormatWeekRangeCrossMonth(t *testing.T) {
	start := domain.NewDate(2025, time.October, 29)
	assert.Equal(t, "Oct 29 - Nov 4, 2025", FormatWeekRange(start))
}

func newWeekViewServer(t *testing.T, plans *[]domain.MealPlan) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/meal-plans/week/":
			start, err := domain.ParseDate(r.URL.Query().Get("start_date"))
			require.NoError(t, err)
			end := start.AddDays(6)
			var inRange []domain.MealPlan
			for _, p := range *plans {
				if !p.Date.Before(start.Time) && !p.Date.After(end.Time) {
					inRange = append(inRange, p)
				}
			}
			json.NewEncoder(w).Encode(domain.WeekResponse{StartDate: start, EndDate: end, MealPlans: inRange})
		case r.URL.Path == "/meal-plans/bulk_operation/":
			var req domain.BulkOperationRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, domain.BulkActionClear, req.Action)
			var kept []domain.MealPlan
			deleted := 0
			for _, p := range *plans {
				if !p.Date.Before(req.StartDate.Time) && !p.Date.After(req.EndDate.Time) {
					deleted++
					continue
				}
				kept = append(kept, p)
			}
			*plans = kept
			json.NewEncoder(w).Encode(domain.BulkOperationResult{Action: req.Action, DeletedCount: deleted})
		default:
			t.Errorf("unexpected request to %s", r.URL.Path)
		}
	}))
}

func TestWeekViewClearDeletesOnlyVisibleRange(t *testing.T) {
	token := makeToken(t, time.Hour)
	inside := domain.NewDate(2025, time.November, 3)
	boundary := domain.NewDate(2025, time.November, 8)
	outside := domain.NewDate(2025, time.November, 10)
	plans := []domain.MealPlan{
		{ID: 1, Date: inside, MealType: "dinner"},
		{ID: 2, Date: boundary, MealType: "lunch"},
		{ID: 3, Date: outside, MealType: "dinner"},
	}

	srv := newWeekViewServer(t, &plans)
	defer srv.Close()

	c, _ := newTestClient(t, srv, Session{AccessToken: token, RefreshToken: "refresh"})
	view := NewWeekView(c, domain.NewDate(2025, time.November, 5))
	require.Equal(t, "2025-11-02", view.Start.String())

	deleted, err := view.ClearWeek(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)
	assert.Empty(t, view.Buckets)

	// The entry outside the window survives.
	require.Len(t, plans, 1)
	assert.Equal(t, uint(3), plans[0].ID)
}

func TestWeekViewNavigation(t *testing.T) {
	token := makeToken(t, time.Hour)
	plans := []domain.MealPlan{
		{ID: 1, Date: domain.NewDate(2025, time.November, 3), MealType: "dinner"},
		{ID: 2, Date: domain.NewDate(2025, time.November, 10), MealType: "dinner"},
	}

	srv := newWeekViewServer(t, &plans)
	defer srv.Close()

	c, _ := newTestClient(t, srv, Session{AccessToken: token, RefreshToken: "refresh"})
	view := NewWeekView(c, domain.NewDate(2025, time.November, 5))

	require.NoError(t, view.Load(context.Background()))
	assert.Len(t, view.Buckets, 1)

	require.NoError(t, view.Next(context.Background()))
	assert.Equal(t, "2025-11-09", view.Start.String())
	require.Len(t, view.Buckets, 1)
	assert.Equal(t, uint(2), view.Buckets[SlotKey(domain.NewDate(2025, time.November, 10), "dinner")][0].ID)

	require.NoError(t, view.Prev(context.Background()))
	assert.Equal(t, "2025-11-02", view.Start.String())

	require.NoError(t, view.Today(context.Background(), domain.NewDate(2025, time.November, 20)))
	assert.Equal(t, "2025-11-16", view.Start.String())
}
