package web

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeFromFormDefaults(t *testing.T) {
	values := url.Values{}
	values.Set("name", "Chocolate Chip Cookies")
	values.Set("prep_time", "15")
	values.Set("cook_time", "12")
	values.Add("ingredient_name", "Flour")
	values.Add("ingredient_measurement", "2 cups")

	recipe := RecipeFromForm(values)

	payload, err := json.Marshal(recipe)
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal(payload, &got))

	assert.Equal(t, "Chocolate Chip Cookies", got["name"])
	assert.Equal(t, float64(15), got["prep_time"])
	assert.Equal(t, float64(12), got["cook_time"])
	assert.Equal(t, "dinner", got["category"])
	assert.Equal(t, "easy", got["difficulty"])
	assert.Equal(t, "", got["description"])

	ingredients := got["ingredients"].([]any)
	require.Len(t, ingredients, 1)
	first := ingredients[0].(map[string]any)
	assert.Equal(t, "Flour", first["name"])
	assert.Equal(t, "2 cups", first["measurement"])
	assert.Equal(t, float64(0), first["order"])
}

func TestRecipeFromFormSkipsEmptyIngredientRows(t *testing.T) {
	values := url.Values{}
	values.Set("name", "Toast")
	values.Add("ingredient_name", "")
	values.Add("ingredient_measurement", "1 cup")
	values.Add("ingredient_name", "Bread")
	values.Add("ingredient_measurement", "2 slices")

	recipe := RecipeFromForm(values)
	require.Len(t, recipe.Ingredients, 1)
	assert.Equal(t, "Bread", recipe.Ingredients[0].Name)
	assert.Equal(t, "2 slices", recipe.Ingredients[0].Measurement)
	assert.Equal(t, 0, recipe.Ingredients[0].Order)
}

func TestRecipeFromFormBadNumbers(t *testing.T) {
	values := url.Values{}
	values.Set("name", "Toast")
	values.Set("prep_time", "abc")

	recipe := RecipeFromForm(values)
	assert.Equal(t, 0, recipe.PrepTime)
}
