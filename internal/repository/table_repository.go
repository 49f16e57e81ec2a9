package repository

import (
	"errors"
	"restaurant_menu/internal/models"

	"gorm.io/gorm"
)

type TableRepository interface {
	Create(table *models.Table) error
	GetByID(id uint) (*models.Table, error)
	GetByCode(code string) (*models.Table, error)
	GetAll() ([]models.Table, error)
	Update(table *models.Table) error
}

type tableRepository struct {
	db *gorm.DB
}

func NewTableRepository(db *gorm.DB) TableRepository {
	return &tableRepository{db: db}
}

// Create relies on the unique index on table_code; inserting a duplicate
// code fails with the constraint violation from the database.
func (r *tableRepository) Create(table *models.Table) error {
	return r.db.Create(table).Error
}

func (r *tableRepository) GetByID(id uint) (*models.Table, error) {
	var table models.Table
	err := r.db.First(&table, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &table, nil
}

// GetByCode returns (nil, nil) when no table carries the code.
func (r *tableRepository) GetByCode(code string) (*models.Table, error) {
	var table models.Table
	err := r.db.Where("table_code = ?", code).First(&table).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &table, nil
}

func (r *tableRepository) GetAll() ([]models.Table, error) {
	var tables []models.Table
	err := r.db.Order("table_code").Find(&tables).Error
	return tables, err
}

func (r *tableRepository) Update(table *models.Table) error {
	return r.db.Save(table).Error
}
