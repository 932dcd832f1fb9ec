package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/domain"
)

// mealPlanRepository implements domain.MealPlanRepository using GORM.
type mealPlanRepository struct {
	db *gorm.DB
}

// NewMealPlanRepository creates a new MealPlanRepository with the given GORM DB instance.
func NewMealPlanRepository(db *gorm.DB) domain.MealPlanRepository {
	return &mealPlanRepository{db: db}
}

func (r *mealPlanRepository) preloaded() *gorm.DB {
	return r.db.Preload("Recipe").Preload("Recipe.Ingredients")
}

// Create inserts a meal-plan entry.
func (r *mealPlanRepository) Create(plan *domain.MealPlan) error {
	if err := r.db.Create(plan).Error; err != nil {
		return fmt.Errorf("failed to create meal plan: %w", err)
	}
	if plan.Recipe == nil && plan.RecipeID != 0 {
		var recipe domain.Recipe
		if err := r.db.Preload("Ingredients").First(&recipe, plan.RecipeID).Error; err == nil {
			plan.Recipe = &recipe
		}
	}
	return nil
}

// CreateBatch inserts several entries in one transaction.
func (r *mealPlanRepository) CreateBatch(plans []domain.MealPlan) error {
	if len(plans) == 0 {
		return nil
	}
	if err := r.db.Create(&plans).Error; err != nil {
		return fmt.Errorf("failed to create meal plans: %w", err)
	}
	return nil
}

// GetByID retrieves a meal-plan entry with its recipe.
func (r *mealPlanRepository) GetByID(id uint) (*domain.MealPlan, error) {
	var plan domain.MealPlan
	if err := r.preloaded().First(&plan, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get meal plan: %w", err)
	}
	return &plan, nil
}

// ListByUser returns the user's entries ordered by date, slot order and id.
// A nil bound leaves that side of the range open.
func (r *mealPlanRepository) ListByUser(userID uint, start, end *domain.Date) ([]domain.MealPlan, error) {
	var plans []domain.MealPlan
	q := r.preloaded().Where("user_id = ?", userID)
	if start != nil {
		q = q.Where("date >= ?", start.String())
	}
	if end != nil {
		q = q.Where("date <= ?", end.String())
	}
	if err := q.Order("date, \"order\", id").Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("failed to list meal plans: %w", err)
	}
	return plans, nil
}

// Update saves entry field changes.
func (r *mealPlanRepository) Update(plan *domain.MealPlan) error {
	if err := r.db.Omit("Recipe").Save(plan).Error; err != nil {
		return fmt.Errorf("failed to update meal plan: %w", err)
	}
	return nil
}

// Delete removes a meal-plan entry.
func (r *mealPlanRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.MealPlan{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete meal plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteRange removes all of the user's entries within [start, end].
func (r *mealPlanRepository) DeleteRange(userID uint, start, end domain.Date) (int64, error) {
	result := r.db.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start.String(), end.String()).
		Delete(&domain.MealPlan{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete meal plans: %w", result.Error)
	}
	return result.RowsAffected, nil
}
