package domain

import "time"

// Recipe categories, matching the fixed set enforced at the database level.
var RecipeCategories = []string{
	"appetizers", "baking_bread", "breakfast", "desserts",
	"dinner", "drinks", "international", "lunch",
}

// CategoryDisplayNames maps category values to their human-readable labels.
var CategoryDisplayNames = map[string]string{
	"appetizers":    "Appetizers",
	"baking_bread":  "Baking and Bread",
	"breakfast":     "Breakfast",
	"desserts":      "Desserts",
	"dinner":        "Dinner",
	"drinks":        "Drinks",
	"international": "International",
	"lunch":         "Lunch",
}

// Recipe difficulty levels.
var RecipeDifficulties = []string{"easy", "medium", "hard"}

// Supported dietary tags.
var DietaryTags = []string{
	"vegan", "vegetarian", "gluten_free", "dairy_free", "nut_free",
	"low_carb", "keto", "paleo", "halal", "kosher",
}

// Maximum prep/cook time in minutes (one week).
const MaxRecipeTime = 10080

// Recipe stores a cooking recipe with timing and difficulty information.
type Recipe struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	Name        string       `json:"name" gorm:"size:200;not null;index"`
	Description string       `json:"description" gorm:"type:text"`
	Category    string       `json:"category" gorm:"size:20;default:dinner;index"`
	PrepTime    int          `json:"prep_time" gorm:"not null"`
	CookTime    int          `json:"cook_time" gorm:"not null"`
	Difficulty  string       `json:"difficulty" gorm:"size:10;default:easy;index"`
	DietaryTags []string     `json:"dietary_tags" gorm:"serializer:json"`
	Ingredients []Ingredient `json:"ingredients" gorm:"constraint:OnDelete:CASCADE"`
	OwnerID     *uint        `json:"owner,omitempty" gorm:"index"`
	IsPrivate   bool         `json:"is_private" gorm:"default:false"`
	FavoritedBy []User       `json:"-" gorm:"many2many:recipe_favorites;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time    `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time    `json:"updated_at"`

	// Computed for responses, not stored.
	TotalTime      int  `json:"total_time" gorm:"-"`
	IsFavorited    bool `json:"is_favorited" gorm:"-"`
	FavoritesCount int  `json:"favorites_count" gorm:"-"`
}

// Ingredient stores a single recipe ingredient with its measurement.
type Ingredient struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	RecipeID    uint   `json:"-" gorm:"index;not null"`
	Name        string `json:"name" gorm:"size:200;not null;index"`
	Measurement string `json:"measurement" gorm:"size:100;not null"`
	Order       int    `json:"order" gorm:"default:0"`
}

// ValidCategory reports whether c is one of the fixed recipe categories.
func ValidCategory(c string) bool {
	for _, v := range RecipeCategories {
		if v == c {
			return true
		}
	}
	return false
}

// ValidDifficulty reports whether d is one of the fixed difficulty levels.
func ValidDifficulty(d string) bool {
	for _, v := range RecipeDifficulties {
		if v == d {
			return true
		}
	}
	return false
}

// Validate applies the field rules enforced by the API boundary. Defaults
// for category and difficulty are filled in before checking.
func (r *Recipe) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if r.Category == "" {
		r.Category = "dinner"
	}
	if r.Difficulty == "" {
		r.Difficulty = "easy"
	}
	if r.Name == "" {
		errs.Add("name", "This field is required.")
	} else if len(r.Name) > 200 {
		errs.Add("name", "Ensure this field has no more than 200 characters.")
	}
	if !ValidCategory(r.Category) {
		errs.Add("category", `"`+r.Category+`" is not a valid choice.`)
	}
	if !ValidDifficulty(r.Difficulty) {
		errs.Add("difficulty", `"`+r.Difficulty+`" is not a valid choice.`)
	}
	if r.PrepTime < 0 || r.PrepTime > MaxRecipeTime {
		errs.Add("prep_time", "Ensure this value is between 0 and 10080.")
	}
	if r.CookTime < 0 || r.CookTime > MaxRecipeTime {
		errs.Add("cook_time", "Ensure this value is between 0 and 10080.")
	}
	for _, ing := range r.Ingredients {
		if ing.Name == "" {
			errs.Add("ingredients", "Ingredient name is required.")
		}
		if ing.Order < 0 {
			errs.Add("ingredients", "Ingredient order must be non-negative.")
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Finalize fills the computed fields for a response to the given viewer.
func (r *Recipe) Finalize(viewerID *uint) {
	r.TotalTime = r.PrepTime + r.CookTime
	r.FavoritesCount = len(r.FavoritedBy)
	r.IsFavorited = false
	if viewerID != nil {
		for _, u := range r.FavoritedBy {
			if u.ID == *viewerID {
				r.IsFavorited = true
				break
			}
		}
	}
	if r.DietaryTags == nil {
		r.DietaryTags = []string{}
	}
	if r.Ingredients == nil {
		r.Ingredients = []Ingredient{}
	}
}

// VisibleTo reports whether the recipe may be read by the given viewer.
// Private recipes are visible to their owner only.
func (r *Recipe) VisibleTo(viewerID *uint) bool {
	if !r.IsPrivate {
		return true
	}
	return r.OwnerID != nil && viewerID != nil && *r.OwnerID == *viewerID
}

// OwnedBy reports whether the viewer owns the recipe.
func (r *Recipe) OwnedBy(viewerID *uint) bool {
	return r.OwnerID != nil && viewerID != nil && *r.OwnerID == *viewerID
}
