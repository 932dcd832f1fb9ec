package service

import (
	"fmt"

	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/domain"
	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/measure"
	"github.com/yc6chen/Claude-WebApp-Test-sub002/pkg/logger"
)

// ShoppingService handles shopping lists, list generation from meal plans,
// and item-level mutations.
type ShoppingService struct {
	lists domain.ShoppingListRepository
	plans domain.MealPlanRepository
	log   *logger.Logger
}

// NewShoppingService creates a new ShoppingService.
func NewShoppingService(lists domain.ShoppingListRepository, plans domain.MealPlanRepository, log *logger.Logger) *ShoppingService {
	return &ShoppingService{lists: lists, plans: plans, log: log}
}

// List returns the caller's shopping lists.
func (s *ShoppingService) List(userID uint) ([]domain.ShoppingList, error) {
	lists, err := s.lists.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	for i := range lists {
		if lists[i].Items == nil {
			lists[i].Items = []domain.ShoppingListItem{}
		}
	}
	return lists, nil
}

// Get returns one of the caller's shopping lists.
func (s *ShoppingService) Get(id, userID uint) (*domain.ShoppingList, error) {
	list, err := s.lists.GetByID(id)
	if err != nil {
		return nil, err
	}
	if list.UserID != userID {
		return nil, domain.ErrNotFound
	}
	if list.Items == nil {
		list.Items = []domain.ShoppingListItem{}
	}
	return list, nil
}

// Create stores a new shopping list for the caller.
func (s *ShoppingService) Create(list *domain.ShoppingList, userID uint) (*domain.ShoppingList, error) {
	list.ID = 0
	list.UserID = userID
	if errs := validateList(list); errs != nil {
		return nil, errs
	}
	if err := s.lists.Create(list); err != nil {
		return nil, err
	}
	return s.Get(list.ID, userID)
}

// Update stores changes to one of the caller's lists.
func (s *ShoppingService) Update(id uint, updated *domain.ShoppingList, userID uint) (*domain.ShoppingList, error) {
	existing, err := s.Get(id, userID)
	if err != nil {
		return nil, err
	}
	existing.Name = updated.Name
	existing.StartDate = updated.StartDate
	existing.EndDate = updated.EndDate
	existing.IsActive = updated.IsActive
	if errs := validateList(existing); errs != nil {
		return nil, errs
	}
	if err := s.lists.Update(existing); err != nil {
		return nil, err
	}
	return s.Get(id, userID)
}

// Delete removes one of the caller's lists.
func (s *ShoppingService) Delete(id, userID uint) error {
	if _, err := s.Get(id, userID); err != nil {
		return err
	}
	return s.lists.Delete(id)
}

// Generate builds a shopping list from the caller's meal plans in the
// requested date range. Ingredients with the same name are combined, with
// unit conversion where possible.
func (s *ShoppingService) Generate(userID uint, req domain.GenerateListRequest) (*domain.ShoppingList, error) {
	errs := domain.ValidationErrors{}
	if req.StartDate.IsZero() {
		errs.Add("start_date", "This field is required.")
	}
	if req.EndDate.IsZero() {
		errs.Add("end_date", "This field is required.")
	}
	if len(errs) > 0 {
		return nil, errs
	}

	plans, err := s.plans.ListByUser(userID, &req.StartDate, &req.EndDate)
	if err != nil {
		return nil, err
	}

	var source []measure.SourceIngredient
	for _, plan := range plans {
		if plan.Recipe == nil {
			continue
		}
		for _, ing := range plan.Recipe.Ingredients {
			source = append(source, measure.SourceIngredient{
				RecipeID:    plan.RecipeID,
				Name:        ing.Name,
				Measurement: ing.Measurement,
			})
		}
	}
	aggregated := measure.Aggregate(source)

	name := req.Name
	if name == "" {
		name = fmt.Sprintf("Shopping List %s", req.StartDate)
	}
	list := &domain.ShoppingList{
		UserID:    userID,
		Name:      name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		IsActive:  true,
	}
	for _, item := range aggregated {
		notes := ""
		for i, n := range item.Notes {
			if i > 0 {
				notes += "; "
			}
			notes += n
		}
		list.Items = append(list.Items, domain.ShoppingListItem{
			IngredientName: item.Name,
			Quantity:       item.Quantity,
			Unit:           item.Unit,
			Category:       item.Category,
			SourceRecipes:  item.SourceRecipes,
			Notes:          notes,
		})
	}
	if req.IncludeCustomItems {
		for _, custom := range req.CustomItems {
			custom.ID = 0
			custom.IsCustom = true
			if custom.Category == "" || !domain.ValidShoppingItemCategory(custom.Category) {
				custom.Category = measure.CategorizeIngredient(custom.IngredientName)
			}
			if custom.SourceRecipes == nil {
				custom.SourceRecipes = []uint{}
			}
			list.Items = append(list.Items, custom)
		}
	}

	if err := s.lists.Create(list); err != nil {
		return nil, err
	}
	s.log.Infof("generated shopping list %d with %d items for user %d", list.ID, len(list.Items), userID)
	return s.Get(list.ID, userID)
}

// AddItem appends a custom item to one of the caller's lists.
func (s *ShoppingService) AddItem(listID, userID uint, item *domain.ShoppingListItem) (*domain.ShoppingListItem, error) {
	if _, err := s.Get(listID, userID); err != nil {
		return nil, err
	}
	errs := domain.ValidationErrors{}
	if item.IngredientName == "" {
		errs.Add("ingredient_name", "This field is required.")
	}
	if item.Category != "" && !domain.ValidShoppingItemCategory(item.Category) {
		errs.Add("category", `"`+item.Category+`" is not a valid choice.`)
	}
	if len(errs) > 0 {
		return nil, errs
	}
	item.ID = 0
	item.ShoppingListID = listID
	item.IsCustom = true
	if item.Category == "" {
		item.Category = measure.CategorizeIngredient(item.IngredientName)
	}
	if item.SourceRecipes == nil {
		item.SourceRecipes = []uint{}
	}
	if err := s.lists.AddItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

// ClearChecked removes all checked items from one of the caller's lists.
func (s *ShoppingService) ClearChecked(listID, userID uint) (int64, error) {
	if _, err := s.Get(listID, userID); err != nil {
		return 0, err
	}
	return s.lists.DeleteCheckedItems(listID)
}

// GetItem returns a list item if its parent list belongs to the caller.
func (s *ShoppingService) GetItem(itemID, userID uint) (*domain.ShoppingListItem, error) {
	item, err := s.lists.GetItem(itemID)
	if err != nil {
		return nil, err
	}
	if _, err := s.Get(item.ShoppingListID, userID); err != nil {
		return nil, domain.ErrNotFound
	}
	if item.SourceRecipes == nil {
		item.SourceRecipes = []uint{}
	}
	return item, nil
}

// UpdateItem stores changes to one of the caller's list items.
func (s *ShoppingService) UpdateItem(itemID, userID uint, updated *domain.ShoppingListItem) (*domain.ShoppingListItem, error) {
	existing, err := s.GetItem(itemID, userID)
	if err != nil {
		return nil, err
	}
	existing.IngredientName = updated.IngredientName
	existing.Quantity = updated.Quantity
	existing.Unit = updated.Unit
	existing.IsChecked = updated.IsChecked
	existing.Notes = updated.Notes
	if updated.Category != "" {
		if !domain.ValidShoppingItemCategory(updated.Category) {
			errs := domain.ValidationErrors{}
			errs.Add("category", `"`+updated.Category+`" is not a valid choice.`)
			return nil, errs
		}
		existing.Category = updated.Category
	}
	if err := s.lists.UpdateItem(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteItem removes one of the caller's list items.
func (s *ShoppingService) DeleteItem(itemID, userID uint) error {
	if _, err := s.GetItem(itemID, userID); err != nil {
		return err
	}
	return s.lists.DeleteItem(itemID)
}

// ToggleCheck flips the checked state of one of the caller's list items.
func (s *ShoppingService) ToggleCheck(itemID, userID uint) (*domain.ShoppingListItem, error) {
	item, err := s.GetItem(itemID, userID)
	if err != nil {
		return nil, err
	}
	item.IsChecked = !item.IsChecked
	if err := s.lists.UpdateItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

func validateList(list *domain.ShoppingList) domain.ValidationErrors {
	errs := domain.ValidationErrors{}
	if list.Name == "" {
		errs.Add("name", "This field is required.")
	} else if len(list.Name) > 200 {
		errs.Add("name", "Ensure this field has no more than 200 characters.")
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
