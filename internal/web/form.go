package web

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/domain"
)

// RecipeFromForm builds the create/update payload from the recipe form.
// Category and difficulty fall back to their defaults when the form leaves
// them unset; ingredient rows with an empty name are skipped and the rest
// are numbered in form order.
func RecipeFromForm(values url.Values) domain.Recipe {
	recipe := domain.Recipe{
		Name:        strings.TrimSpace(values.Get("name")),
		Description: values.Get("description"),
		Category:    values.Get("category"),
		Difficulty:  values.Get("difficulty"),
		PrepTime:    atoiOr(values.Get("prep_time"), 0),
		CookTime:    atoiOr(values.Get("cook_time"), 0),
		IsPrivate:   values.Get("is_private") == "on",
		DietaryTags: values["dietary_tags"],
		Ingredients: []domain.Ingredient{},
	}
	if recipe.Category == "" {
		recipe.Category = "dinner"
	}
	if recipe.Difficulty == "" {
		recipe.Difficulty = "easy"
	}

	names := values["ingredient_name"]
	measurements := values["ingredient_measurement"]
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		measurement := ""
		if i < len(measurements) {
			measurement = strings.TrimSpace(measurements[i])
		}
		recipe.Ingredients = append(recipe.Ingredients, domain.Ingredient{
			Name:        name,
			Measurement: measurement,
			Order:       len(recipe.Ingredients),
		})
	}
	return recipe
}

func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return n
}
