package repository

import (
	"errors"
	"restaurant_menu/internal/models"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *models.Category) error
	GetByID(id uint) (*models.Category, error)
	GetAll() ([]models.Category, error)
	GetActive() ([]models.Category, error)
	GetActiveWithActiveItems() ([]models.Category, error)
	Update(category *models.Category) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

// GetByID returns (nil, nil) when the category does not exist.
func (r *categoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("category_name").Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) GetActive() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("is_active = ?", true).Order("category_name").Find(&categories).Error
	return categories, err
}

// GetActiveWithActiveItems loads the diner-facing menu: active categories,
// each carrying only its active menu items.
func (r *categoryRepository) GetActiveWithActiveItems() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.
		Where("is_active = ?", true).
		Order("category_name").
		Preload("MenuItems", "is_active = ?", true).
		Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}
