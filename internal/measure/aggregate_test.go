package measure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateSameIngredients(t *testing.T) {
	items := Aggregate([]SourceIngredient{
		{RecipeID: 1, Name: "Flour", Measurement: "2 cups"},
		{RecipeID: 2, Name: "Flour", Measurement: "1 cup"},
	})

	require.Len(t, items, 1)
	assert.Equal(t, "flour", items[0].Name)
	assert.InDelta(t, 3, items[0].Quantity, 0.001)
	assert.Equal(t, "cups", items[0].Unit)
	assert.Equal(t, []uint{1, 2}, items[0].SourceRecipes)
}

func TestAggregateWithUnitConversion(t *testing.T) {
	items := Aggregate([]SourceIngredient{
		{RecipeID: 1, Name: "Milk", Measurement: "2 cups"},
		{RecipeID: 2, Name: "Milk", Measurement: "8 tablespoons"},
	})

	require.Len(t, items, 1)
	// 2 cups + 8 tbsp (0.5 cups) = 2.5 cups
	assert.InDelta(t, 2.5, items[0].Quantity, 0.001)
	assert.Equal(t, "cups", items[0].Unit)
}

func TestAggregateDifferentIngredients(t *testing.T) {
	items := Aggregate([]SourceIngredient{
		{RecipeID: 1, Name: "Flour", Measurement: "2 cups"},
		{RecipeID: 1, Name: "Sugar", Measurement: "1 cup"},
	})

	require.Len(t, items, 2)
	assert.Equal(t, "flour", items[0].Name)
	assert.Equal(t, "sugar", items[1].Name)
}

func TestAggregateIncompatibleUnits(t *testing.T) {
	items := Aggregate([]SourceIngredient{
		{RecipeID: 1, Name: "Tomato", Measurement: "2 whole"},
		{RecipeID: 2, Name: "Tomato", Measurement: "1 cup"},
	})

	require.Len(t, items, 1)
	assert.InDelta(t, 2, items[0].Quantity, 0.001)
	require.Len(t, items[0].Notes, 1)
	assert.Equal(t, "+ 1 cup", items[0].Notes[0])
	assert.Equal(t, []uint{1, 2}, items[0].SourceRecipes)
}

func TestAggregatePreservesOriginalName(t *testing.T) {
	items := Aggregate([]SourceIngredient{
		{RecipeID: 1, Name: "Fresh Basil", Measurement: "2 tablespoons"},
	})

	require.Len(t, items, 1)
	assert.Equal(t, "fresh basil", items[0].Name)
	assert.Equal(t, "Fresh Basil", items[0].OriginalName)
}

func TestAggregateEmpty(t *testing.T) {
	assert.Empty(t, Aggregate(nil))
}

func TestCategorizeIngredient(t *testing.T) {
	tests := map[string]string{
		"tomato":         "produce",
		"milk":           "dairy",
		"chicken":        "meat",
		"pasta":          "pantry",
		"canned beans":   "canned",
		"soy sauce":      "condiments",
		"cinnamon":       "spices",
		"ice cream":      "dairy", // "cream" matches dairy before frozen
		"frozen waffles": "frozen",
		"tortilla":       "bakery",
		"coffee":         "beverages",
		"unknown item":   "other",
	}
	for name, want := range tests {
		assert.Equal(t, want, CategorizeIngredient(name), name)
	}
}
