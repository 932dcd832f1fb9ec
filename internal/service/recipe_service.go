package service

import (
	"github.com/microcosm-cc/bluemonday"

	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/domain"
	"github.com/yc6chen/Claude-WebApp-Test-sub002/pkg/logger"
)

// RecipeService handles recipe CRUD, visibility, and favorites.
type RecipeService struct {
	recipes   domain.RecipeRepository
	sanitizer *bluemonday.Policy
	log       *logger.Logger
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(recipes domain.RecipeRepository, log *logger.Logger) *RecipeService {
	return &RecipeService{
		recipes:   recipes,
		sanitizer: bluemonday.StrictPolicy(),
		log:       log,
	}
}

func (s *RecipeService) finalize(recipes []domain.Recipe, viewerID *uint) []domain.Recipe {
	for i := range recipes {
		recipes[i].Finalize(viewerID)
	}
	return recipes
}

// List returns every recipe visible to the viewer.
func (s *RecipeService) List(viewerID *uint) ([]domain.Recipe, error) {
	recipes, err := s.recipes.List(viewerID)
	if err != nil {
		return nil, err
	}
	return s.finalize(recipes, viewerID), nil
}

// Get returns a single recipe, honoring privacy.
func (s *RecipeService) Get(id uint, viewerID *uint) (*domain.Recipe, error) {
	recipe, err := s.recipes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !recipe.VisibleTo(viewerID) {
		// Private recipes do not reveal their existence.
		return nil, domain.ErrNotFound
	}
	recipe.Finalize(viewerID)
	return recipe, nil
}

// MyRecipes returns all of the caller's recipes, private included.
func (s *RecipeService) MyRecipes(userID uint) ([]domain.Recipe, error) {
	recipes, err := s.recipes.ListByOwner(userID)
	if err != nil {
		return nil, err
	}
	return s.finalize(recipes, &userID), nil
}

// Favorites returns the recipes the caller has favorited.
func (s *RecipeService) Favorites(userID uint) ([]domain.Recipe, error) {
	recipes, err := s.recipes.ListFavorites(userID)
	if err != nil {
		return nil, err
	}
	return s.finalize(recipes, &userID), nil
}

// Create validates and stores a new recipe owned by the caller.
func (s *RecipeService) Create(recipe *domain.Recipe, ownerID uint) (*domain.Recipe, error) {
	recipe.ID = 0
	recipe.OwnerID = &ownerID
	recipe.Description = s.sanitizer.Sanitize(recipe.Description)
	if errs := recipe.Validate(); errs != nil {
		return nil, errs
	}
	for i := range recipe.Ingredients {
		recipe.Ingredients[i].ID = 0
	}
	if err := s.recipes.Create(recipe); err != nil {
		return nil, err
	}
	s.log.Infof("recipe %d created by user %d", recipe.ID, ownerID)
	recipe.Finalize(&ownerID)
	return recipe, nil
}

// Update validates and stores changes to a recipe the caller owns.
func (s *RecipeService) Update(id uint, updated *domain.Recipe, userID uint) (*domain.Recipe, error) {
	existing, err := s.recipes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !existing.VisibleTo(&userID) {
		return nil, domain.ErrNotFound
	}
	if !existing.OwnedBy(&userID) {
		return nil, domain.ErrForbidden
	}

	existing.Name = updated.Name
	existing.Description = s.sanitizer.Sanitize(updated.Description)
	existing.Category = updated.Category
	existing.PrepTime = updated.PrepTime
	existing.CookTime = updated.CookTime
	existing.Difficulty = updated.Difficulty
	existing.DietaryTags = updated.DietaryTags
	existing.IsPrivate = updated.IsPrivate
	existing.Ingredients = updated.Ingredients
	if errs := existing.Validate(); errs != nil {
		return nil, errs
	}

	if err := s.recipes.ReplaceIngredients(id, existing.Ingredients); err != nil {
		return nil, err
	}
	if err := s.recipes.Update(existing); err != nil {
		return nil, err
	}
	return s.Get(id, &userID)
}

// Delete removes a recipe the caller owns.
func (s *RecipeService) Delete(id, userID uint) error {
	existing, err := s.recipes.GetByID(id)
	if err != nil {
		return err
	}
	if !existing.VisibleTo(&userID) {
		return domain.ErrNotFound
	}
	if !existing.OwnedBy(&userID) {
		return domain.ErrForbidden
	}
	return s.recipes.Delete(id)
}

// Favorite marks the recipe as one of the caller's favorites.
func (s *RecipeService) Favorite(id, userID uint) (*domain.Recipe, error) {
	existing, err := s.recipes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !existing.VisibleTo(&userID) {
		return nil, domain.ErrNotFound
	}
	if err := s.recipes.AddFavorite(id, userID); err != nil {
		return nil, err
	}
	return s.Get(id, &userID)
}

// Unfavorite removes the caller's favorite mark from the recipe.
func (s *RecipeService) Unfavorite(id, userID uint) (*domain.Recipe, error) {
	existing, err := s.recipes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !existing.VisibleTo(&userID) {
		return nil, domain.ErrNotFound
	}
	if err := s.recipes.RemoveFavorite(id, userID); err != nil {
		return nil, err
	}
	return s.Get(id, &userID)
}
