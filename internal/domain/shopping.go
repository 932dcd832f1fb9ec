package domain

import "time"

// Shopping list item categories (store aisles).
var ShoppingItemCategories = []string{
	"produce", "dairy", "meat", "pantry", "canned",
	"condiments", "spices", "frozen", "bakery", "beverages", "other",
}

// ValidShoppingItemCategory reports whether c is a known aisle category.
func ValidShoppingItemCategory(c string) bool {
	for _, v := range ShoppingItemCategories {
		if v == c {
			return true
		}
	}
	return false
}

// ShoppingList is a dated shopping list owned by a user.
type ShoppingList struct {
	ID        uint               `json:"id" gorm:"primaryKey"`
	UserID    uint               `json:"-" gorm:"index;not null"`
	Name      string             `json:"name" gorm:"size:200;not null"`
	StartDate Date               `json:"start_date"`
	EndDate   Date               `json:"end_date"`
	IsActive  bool               `json:"is_active" gorm:"default:true"`
	Items     []ShoppingListItem `json:"items" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// ShoppingListItem is a single line on a shopping list. Items generated
// from meal plans carry their source recipe ids; manually added items are
// flagged as custom.
type ShoppingListItem struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	ShoppingListID uint      `json:"shopping_list" gorm:"index;not null"`
	IngredientName string    `json:"ingredient_name" gorm:"size:200;not null"`
	Quantity       float64   `json:"quantity"`
	Unit           string    `json:"unit" gorm:"size:50"`
	Category       string    `json:"category" gorm:"size:20;default:other"`
	IsChecked      bool      `json:"is_checked" gorm:"default:false"`
	IsCustom       bool      `json:"is_custom" gorm:"default:false"`
	Notes          string    `json:"notes" gorm:"type:text"`
	SourceRecipes  []uint    `json:"source_recipes" gorm:"serializer:json"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// GenerateListRequest asks for a shopping list built from the caller's
// meal plans in the given date range.
type GenerateListRequest struct {
	Name               string             `json:"name"`
	StartDate          Date               `json:"start_date"`
	EndDate            Date               `json:"end_date"`
	IncludeCustomItems bool               `json:"include_custom_items"`
	CustomItems        []ShoppingListItem `json:"custom_items"`
}
