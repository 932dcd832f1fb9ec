package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/domain"
)

// shoppingListRepository implements domain.ShoppingListRepository using GORM.
type shoppingListRepository struct {
	db *gorm.DB
}

// NewShoppingListRepository creates a new ShoppingListRepository with the given GORM DB instance.
func NewShoppingListRepository(db *gorm.DB) domain.ShoppingListRepository {
	return &shoppingListRepository{db: db}
}

func (r *shoppingListRepository) preloaded() *gorm.DB {
	return r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("category, ingredient_name")
	})
}

// Create inserts a shopping list together with its items.
func (r *shoppingListRepository) Create(list *domain.ShoppingList) error {
	if err := r.db.Create(list).Error; err != nil {
		return fmt.Errorf("failed to create shopping list: %w", err)
	}
	return nil
}

// GetByID retrieves a shopping list with its items.
func (r *shoppingListRepository) GetByID(id uint) (*domain.ShoppingList, error) {
	var list domain.ShoppingList
	if err := r.preloaded().First(&list, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get shopping list: %w", err)
	}
	return &list, nil
}

// ListByUser returns the user's shopping lists, newest first.
func (r *shoppingListRepository) ListByUser(userID uint) ([]domain.ShoppingList, error) {
	var lists []domain.ShoppingList
	err := r.preloaded().
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&lists).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list shopping lists: %w", err)
	}
	return lists, nil
}

// Update saves list field changes. Items are managed individually.
func (r *shoppingListRepository) Update(list *domain.ShoppingList) error {
	if err := r.db.Omit("Items").Save(list).Error; err != nil {
		return fmt.Errorf("failed to update shopping list: %w", err)
	}
	return nil
}

// Delete removes a shopping list; items cascade.
func (r *shoppingListRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("shopping_list_id = ?", id).Delete(&domain.ShoppingListItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete items: %w", err)
		}
		result := tx.Delete(&domain.ShoppingList{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete shopping list: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

// AddItem inserts an item into its list.
func (r *shoppingListRepository) AddItem(item *domain.ShoppingListItem) error {
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}

// GetItem retrieves a single list item.
func (r *shoppingListRepository) GetItem(id uint) (*domain.ShoppingListItem, error) {
	var item domain.ShoppingListItem
	if err := r.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return &item, nil
}

// UpdateItem saves item field changes.
func (r *shoppingListRepository) UpdateItem(item *domain.ShoppingListItem) error {
	if err := r.db.Save(item).Error; err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	return nil
}

// DeleteItem removes a single list item.
func (r *shoppingListRepository) DeleteItem(id uint) error {
	result := r.db.Delete(&domain.ShoppingListItem{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteCheckedItems removes all checked items from the list.
func (r *shoppingListRepository) DeleteCheckedItems(listID uint) (int64, error) {
	result := r.db.
		Where("shopping_list_id = ? AND is_checked = ?", listID, true).
		Delete(&domain.ShoppingListItem{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete checked items: %w", result.Error)
	}
	return result.RowsAffected, nil
}
