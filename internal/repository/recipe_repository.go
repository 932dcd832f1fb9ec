package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/domain"
)

// recipeRepository implements domain.RecipeRepository using GORM.
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new RecipeRepository with the given GORM DB instance.
func NewRecipeRepository(db *gorm.DB) domain.RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) preloaded() *gorm.DB {
	return r.db.
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("\"order\", id")
		}).
		Preload("FavoritedBy")
}

// Create inserts a recipe together with its ingredients.
func (r *recipeRepository) Create(recipe *domain.Recipe) error {
	if err := r.db.Create(recipe).Error; err != nil {
		return fmt.Errorf("failed to create recipe: %w", err)
	}
	return nil
}

// GetByID retrieves a recipe with its ingredients and favorites.
func (r *recipeRepository) GetByID(id uint) (*domain.Recipe, error) {
	var recipe domain.Recipe
	if err := r.preloaded().First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return &recipe, nil
}

// List returns recipes visible to the viewer, ordered by category then
// newest first.
func (r *recipeRepository) List(viewerID *uint) ([]domain.Recipe, error) {
	var recipes []domain.Recipe
	q := r.preloaded().Order("category, created_at DESC")
	if viewerID != nil {
		q = q.Where("is_private = ? OR owner_id = ?", false, *viewerID)
	} else {
		q = q.Where("is_private = ?", false)
	}
	if err := q.Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, nil
}

// ListByOwner returns all of one user's recipes, private included.
func (r *recipeRepository) ListByOwner(ownerID uint) ([]domain.Recipe, error) {
	var recipes []domain.Recipe
	err := r.preloaded().
		Where("owner_id = ?", ownerID).
		Order("category, created_at DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes by owner: %w", err)
	}
	return recipes, nil
}

// ListFavorites returns the recipes the user has favorited.
func (r *recipeRepository) ListFavorites(userID uint) ([]domain.Recipe, error) {
	var user domain.User
	if err := r.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	var recipes []domain.Recipe
	err := r.preloaded().
		Joins("JOIN recipe_favorites rf ON rf.recipe_id = recipes.id").
		Where("rf.user_id = ?", userID).
		Order("category, created_at DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list favorite recipes: %w", err)
	}
	return recipes, nil
}

// Update saves recipe field changes. Ingredients are managed separately
// through ReplaceIngredients.
func (r *recipeRepository) Update(recipe *domain.Recipe) error {
	err := r.db.Omit("Ingredients", "FavoritedBy").Save(recipe).Error
	if err != nil {
		return fmt.Errorf("failed to update recipe: %w", err)
	}
	return nil
}

// ReplaceIngredients swaps the recipe's ingredient set atomically.
func (r *recipeRepository) ReplaceIngredients(recipeID uint, ingredients []domain.Ingredient) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&domain.Ingredient{}).Error; err != nil {
			return fmt.Errorf("failed to delete ingredients: %w", err)
		}
		for i := range ingredients {
			ingredients[i].ID = 0
			ingredients[i].RecipeID = recipeID
		}
		if len(ingredients) > 0 {
			if err := tx.Create(&ingredients).Error; err != nil {
				return fmt.Errorf("failed to create ingredients: %w", err)
			}
		}
		return nil
	})
}

// Delete removes a recipe; ingredients cascade.
func (r *recipeRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&domain.Ingredient{}).Error; err != nil {
			return fmt.Errorf("failed to delete ingredients: %w", err)
		}
		result := tx.Delete(&domain.Recipe{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete recipe: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

// AddFavorite marks the recipe as favorited by the user.
func (r *recipeRepository) AddFavorite(recipeID, userID uint) error {
	recipe := domain.Recipe{ID: recipeID}
	user := domain.User{ID: userID}
	if err := r.db.Model(&recipe).Association("FavoritedBy").Append(&user); err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

// RemoveFavorite clears the user's favorite mark on the recipe.
func (r *recipeRepository) RemoveFavorite(recipeID, userID uint) error {
	recipe := domain.Recipe{ID: recipeID}
	user := domain.User{ID: userID}
	if err := r.db.Model(&recipe).Association("FavoritedBy").Delete(&user); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}
