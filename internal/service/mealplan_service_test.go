package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/domain"
)

func date(day int) domain.Date {
	return domain.NewDate(2025, time.November, day)
}

func (e *testEnv) planMeal(t *testing.T, userID, recipeID uint, d domain.Date, mealType string) *domain.MealPlan {
	t.Helper()
	plan, err := e.plans.Create(&domain.MealPlan{RecipeID: recipeID, Date: d, MealType: mealType}, userID)
	require.NoError(t, err)
	return plan
}

func TestCreateMealPlanRejectsUnknownRecipe(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")

	_, err := env.plans.Create(&domain.MealPlan{RecipeID: 999, Date: date(3), MealType: "dinner"}, alice)
	verrs, ok := domain.AsValidationErrors(err)
	require.True(t, ok)
	assert.Contains(t, verrs, "recipe")
}

func TestCreateMealPlanRejectsInvalidMealType(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")
	recipe := env.createRecipe(t, alice, "Stew")

	_, err := env.plans.Create(&domain.MealPlan{RecipeID: recipe.ID, Date: date(3), MealType: "brunch"}, alice)
	verrs, ok := domain.AsValidationErrors(err)
	require.True(t, ok)
	assert.Contains(t, verrs, "meal_type")
}

func TestMealPlansScopedToUser(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	recipe := env.createRecipe(t, alice, "Stew")

	plan := env.planMeal(t, alice, recipe.ID, date(3), "dinner")

	_, err := env.plans.Get(plan.ID, bob)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	err = env.plans.Delete(plan.ID, bob)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	bobPlans, err := env.plans.List(bob, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, bobPlans)
}

func TestWeekReturnsSevenDayWindow(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")
	recipe := env.createRecipe(t, alice, "Stew")

	env.planMeal(t, alice, recipe.ID, date(2), "dinner")  // Sunday, in range
	env.planMeal(t, alice, recipe.ID, date(8), "lunch")   // Saturday, in range
	env.planMeal(t, alice, recipe.ID, date(9), "dinner")  // next Sunday, out
	env.planMeal(t, alice, recipe.ID, date(1), "dinner")  // Saturday before, out

	week, err := env.plans.Week(alice, date(2))
	require.NoError(t, err)
	assert.Equal(t, "2025-11-02", week.StartDate.String())
	assert.Equal(t, "2025-11-08", week.EndDate.String())
	require.Len(t, week.MealPlans, 2)
	// Ordered by date.
	assert.Equal(t, "2025-11-02", week.MealPlans[0].Date.String())
	assert.Equal(t, "2025-11-08", week.MealPlans[1].Date.String())
}

func TestWeekOrdersWithinSlot(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")
	recipe := env.createRecipe(t, alice, "Stew")

	second, err := env.plans.Create(&domain.MealPlan{RecipeID: recipe.ID, Date: date(3), MealType: "dinner", Order: 1}, alice)
	require.NoError(t, err)
	first, err := env.plans.Create(&domain.MealPlan{RecipeID: recipe.ID, Date: date(3), MealType: "dinner", Order: 0}, alice)
	require.NoError(t, err)

	week, err := env.plans.Week(alice, date(2))
	require.NoError(t, err)
	require.Len(t, week.MealPlans, 2)
	assert.Equal(t, first.ID, week.MealPlans[0].ID)
	assert.Equal(t, second.ID, week.MealPlans[1].ID)
}

func TestBulkClearRespectsRangeBoundaries(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	recipe := env.createRecipe(t, alice, "Stew")
	bobRecipe := env.createRecipe(t, bob, "Curry")

	env.planMeal(t, alice, recipe.ID, date(2), "dinner")
	env.planMeal(t, alice, recipe.ID, date(8), "dinner")
	outside := env.planMeal(t, alice, recipe.ID, date(9), "dinner")
	env.planMeal(t, bob, bobRecipe.ID, date(3), "dinner") // other user, untouched

	result, err := env.plans.Bulk(alice, domain.BulkOperationRequest{
		Action:    domain.BulkActionClear,
		StartDate: date(2),
		EndDate:   date(8),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.BulkActionClear, result.Action)
	assert.Equal(t, 2, result.DeletedCount)

	remaining, err := env.plans.List(alice, nil, nil)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, outside.ID, remaining[0].ID)

	bobPlans, err := env.plans.List(bob, nil, nil)
	require.NoError(t, err)
	assert.Len(t, bobPlans, 1)
}

func TestBulkCopyShiftsByDayOffset(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")
	recipe := env.createRecipe(t, alice, "Stew")

	env.planMeal(t, alice, recipe.ID, date(2), "dinner")
	env.planMeal(t, alice, recipe.ID, date(5), "lunch")

	result, err := env.plans.Bulk(alice, domain.BulkOperationRequest{
		Action:          domain.BulkActionCopy,
		StartDate:       date(2),
		EndDate:         date(8),
		TargetStartDate: date(9),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.CopiedCount)

	start, end := date(9), date(15)
	copied, err := env.plans.List(alice, &start, &end)
	require.NoError(t, err)
	require.Len(t, copied, 2)
	assert.Equal(t, "2025-11-09", copied[0].Date.String())
	assert.Equal(t, "dinner", copied[0].MealType)
	assert.Equal(t, "2025-11-12", copied[1].Date.String())
	assert.Equal(t, "lunch", copied[1].MealType)
}

func TestBulkRejectsUnknownAction(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")

	_, err := env.plans.Bulk(alice, domain.BulkOperationRequest{
		Action:    "explode",
		StartDate: date(2),
		EndDate:   date(8),
	})
	verrs, ok := domain.AsValidationErrors(err)
	require.True(t, ok)
	assert.Contains(t, verrs, "action")
}

func TestBulkCopyRequiresTargetDate(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")

	_, err := env.plans.Bulk(alice, domain.BulkOperationRequest{
		Action:    domain.BulkActionCopy,
		StartDate: date(2),
		EndDate:   date(8),
	})
	verrs, ok := domain.AsValidationErrors(err)
	require.True(t, ok)
	assert.Contains(t, verrs, "target_start_date")
}
