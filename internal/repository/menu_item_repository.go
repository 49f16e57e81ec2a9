package repository

import (
	"errors"
	"restaurant_menu/internal/models"

	"gorm.io/gorm"
)

type MenuItemRepository interface {
	Create(item *models.MenuItem) error
	GetByID(id uint) (*models.MenuItem, error)
	GetAll() ([]models.MenuItem, error)
	Update(item *models.MenuItem) error
}

type menuItemRepository struct {
	db *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) MenuItemRepository {
	return &menuItemRepository{db: db}
}

func (r *menuItemRepository) Create(item *models.MenuItem) error {
	return r.db.Create(item).Error
}

// GetByID returns (nil, nil) when the menu item does not exist, so order
// placement can skip unresolvable lines without treating them as failures.
func (r *menuItemRepository) GetByID(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// GetAll lists items for the admin screen, grouped by category name then
// item name.
func (r *menuItemRepository) GetAll() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.
		Joins("LEFT JOIN menucategory ON menucategory.category_id = menuitem.category_id").
		Order("menucategory.category_name, menuitem.name").
		Preload("Category").
		Find(&items).Error
	return items, err
}

func (r *menuItemRepository) Update(item *models.MenuItem) error {
	return r.db.Save(item).Error
}
