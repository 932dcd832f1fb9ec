package measure

import (
	"fmt"
	"strings"
)

// SourceIngredient is one ingredient line taken from a recipe.
type SourceIngredient struct {
	RecipeID    uint
	Name        string
	Measurement string
}

// AggregatedItem is the combined shopping entry for one ingredient.
type AggregatedItem struct {
	// Name is the normalized (lowercased) ingredient name used as the
	// aggregation key; OriginalName keeps the first-seen capitalization.
	Name          string
	OriginalName  string
	Quantity      float64
	Unit          string
	Category      string
	SourceRecipes []uint
	Notes         []string
}

// Aggregate combines ingredients from multiple recipes, converting units
// where possible and accumulating inconvertible measurements as notes.
// Items come back in first-seen order with display-optimized units.
func Aggregate(ingredients []SourceIngredient) []AggregatedItem {
	items := []AggregatedItem{}
	index := map[string]int{}

	for _, ing := range ingredients {
		quantity, unit := ParseMeasurement(ing.Measurement)
		name := strings.TrimSpace(strings.ToLower(ing.Name))

		i, seen := index[name]
		if !seen {
			index[name] = len(items)
			items = append(items, AggregatedItem{
				Name:          name,
				OriginalName:  ing.Name,
				Quantity:      quantity,
				Unit:          unit,
				Category:      CategorizeIngredient(name),
				SourceRecipes: sourceList(ing.RecipeID),
			})
			continue
		}

		existing := &items[i]
		switch {
		case CanConvert(unit, existing.Unit):
			if converted, ok := Convert(quantity, unit, existing.Unit); ok {
				existing.Quantity += converted
			} else {
				existing.Quantity += quantity
			}
		case NormalizeUnit(unit) == NormalizeUnit(existing.Unit):
			existing.Quantity += quantity
		default:
			// Incompatible units stay listed separately.
			existing.Notes = append(existing.Notes, fmt.Sprintf("+ %v %s", quantity, unit))
		}
		if ing.RecipeID != 0 && !containsID(existing.SourceRecipes, ing.RecipeID) {
			existing.SourceRecipes = append(existing.SourceRecipes, ing.RecipeID)
		}
	}

	for i := range items {
		items[i].Quantity, items[i].Unit = BestUnit(items[i].Quantity, items[i].Unit)
	}
	return items
}

func sourceList(recipeID uint) []uint {
	if recipeID == 0 {
		return []uint{}
	}
	return []uint{recipeID}
}

func containsID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// Keyword tables for aisle categorization. Checked in order; the first
// matching table wins, with pantry as the late fallback before "other".
var (
	produceKeywords = []string{
		"tomato", "lettuce", "spinach", "kale", "carrot", "celery", "onion",
		"garlic", "potato", "pepper", "cucumber", "zucchini", "squash",
		"broccoli", "cauliflower", "cabbage", "mushroom", "avocado",
		"apple", "banana", "orange", "lemon", "lime", "berry", "berries",
		"basil", "cilantro", "parsley", "mint", "thyme", "rosemary",
	}
	dairyKeywords = []string{
		"milk", "cream", "butter", "cheese", "yogurt", "sour cream",
		"cottage cheese", "ricotta", "mozzarella", "cheddar", "parmesan",
		"egg", "eggs",
	}
	meatKeywords = []string{
		"chicken", "beef", "pork", "turkey", "lamb", "fish", "salmon",
		"tuna", "shrimp", "bacon", "sausage", "ham", "steak", "ground meat",
	}
	cannedKeywords = []string{
		"canned", "can of", "tomato paste", "tomato sauce", "broth", "stock",
		"beans", "chickpeas", "corn",
	}
	condimentKeywords = []string{
		"sauce", "ketchup", "mustard", "mayonnaise", "salsa", "dressing",
		"soy sauce", "hot sauce", "bbq sauce", "worcestershire",
	}
	spiceKeywords = []string{
		"pepper", "paprika", "cumin", "oregano", "basil", "cinnamon",
		"nutmeg", "ginger", "turmeric", "curry", "chili powder", "cayenne",
		"garlic powder", "onion powder",
	}
	frozenKeywords = []string{"frozen", "ice cream"}
	bakeryKeywords = []string{
		"bread", "roll", "bun", "bagel", "croissant", "tortilla", "pita",
	}
	beverageKeywords = []string{
		"juice", "soda", "water", "coffee", "tea", "wine", "beer",
	}
	pantryKeywords = []string{
		"flour", "sugar", "salt", "rice", "pasta", "oil", "vinegar",
		"honey", "syrup", "baking powder", "baking soda", "yeast",
		"cornstarch", "cocoa", "chocolate", "vanilla", "almond extract",
	}
)

func matchesAny(name string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

// CategorizeIngredient maps an ingredient name to a store-aisle category.
func CategorizeIngredient(ingredientName string) string {
	name := strings.ToLower(ingredientName)
	switch {
	case matchesAny(name, produceKeywords):
		return "produce"
	case matchesAny(name, dairyKeywords):
		return "dairy"
	case matchesAny(name, meatKeywords):
		return "meat"
	case matchesAny(name, cannedKeywords):
		return "canned"
	case matchesAny(name, condimentKeywords):
		return "condiments"
	case matchesAny(name, spiceKeywords):
		return "spices"
	case matchesAny(name, frozenKeywords):
		return "frozen"
	case matchesAny(name, bakeryKeywords):
		return "bakery"
	case matchesAny(name, beverageKeywords):
		return "beverages"
	case matchesAny(name, pantryKeywords):
		return "pantry"
	default:
		return "other"
	}
}
