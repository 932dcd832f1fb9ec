package domain

// UserRepository persists user accounts.
type UserRepository interface {
	Create(user *User) error
	GetByUsername(username string) (*User, error)
	GetByEmail(email string) (*User, error)
	GetByID(id uint) (*User, error)
}

// RecipeRepository persists recipes and their ingredients.
type RecipeRepository interface {
	Create(recipe *Recipe) error
	GetByID(id uint) (*Recipe, error)
	// List returns recipes visible to the viewer: all public recipes
	// plus the viewer's own private ones, ordered by category then
	// newest first.
	List(viewerID *uint) ([]Recipe, error)
	ListByOwner(ownerID uint) ([]Recipe, error)
	ListFavorites(userID uint) ([]Recipe, error)
	Update(recipe *Recipe) error
	// ReplaceIngredients deletes the recipe's ingredient set and writes
	// the given one in its place.
	ReplaceIngredients(recipeID uint, ingredients []Ingredient) error
	Delete(id uint) error
	AddFavorite(recipeID, userID uint) error
	RemoveFavorite(recipeID, userID uint) error
}

// MealPlanRepository persists meal-plan entries.
type MealPlanRepository interface {
	Create(plan *MealPlan) error
	CreateBatch(plans []MealPlan) error
	GetByID(id uint) (*MealPlan, error)
	// ListByUser returns the user's entries, optionally restricted to
	// [start, end], ordered by date then slot order.
	ListByUser(userID uint, start, end *Date) ([]MealPlan, error)
	Update(plan *MealPlan) error
	Delete(id uint) error
	// DeleteRange removes all of the user's entries with
	// start <= date <= end and reports how many were deleted.
	DeleteRange(userID uint, start, end Date) (int64, error)
}

// ShoppingListRepository persists shopping lists and their items.
type ShoppingListRepository interface {
	Create(list *ShoppingList) error
	GetByID(id uint) (*ShoppingList, error)
	ListByUser(userID uint) ([]ShoppingList, error)
	Update(list *ShoppingList) error
	Delete(id uint) error
	AddItem(item *ShoppingListItem) error
	GetItem(id uint) (*ShoppingListItem, error)
	UpdateItem(item *ShoppingListItem) error
	DeleteItem(id uint) error
	// DeleteCheckedItems removes all checked items from the list and
	// reports how many were deleted.
	DeleteCheckedItems(listID uint) (int64, error)
}
