package services

import (
	"fmt"
	"restaurant_menu/internal/models"
	"restaurant_menu/internal/repository"
)

const maxNameLength = 100

// CatalogService covers the staff-facing management of categories, menu
// items and tables. Nothing here is ever hard-deleted; rows are
// deactivated so historical orders keep their references.
type CatalogService interface {
	ListCategories() ([]models.Category, error)
	AddCategory(name string) error
	UpdateCategory(id uint, name string, isActive bool) error

	ListMenuItems() ([]models.MenuItem, error)
	ListActiveCategories() ([]models.Category, error)
	AddMenuItem(name string, price float64, categoryID uint, imageURL string) error
	UpdateMenuItem(id uint, name string, price float64, categoryID uint, imageURL string, isActive bool) error

	ListTables() ([]models.Table, error)
	AddTable(code string) error
	UpdateTable(id uint, isActive bool) error
}

type catalogService struct {
	categoryRepo repository.CategoryRepository
	menuItemRepo repository.MenuItemRepository
	tableRepo    repository.TableRepository
}

func NewCatalogService(
	categoryRepo repository.CategoryRepository,
	menuItemRepo repository.MenuItemRepository,
	tableRepo repository.TableRepository,
) CatalogService {
	return &catalogService{
		categoryRepo: categoryRepo,
		menuItemRepo: menuItemRepo,
		tableRepo:    tableRepo,
	}
}

func (s *catalogService) ListCategories() ([]models.Category, error) {
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("%w: listing categories: %v", ErrPersistence, err)
	}
	return categories, nil
}

func (s *catalogService) AddCategory(name string) error {
	if err := validateName(name, "category name"); err != nil {
		return err
	}

	active := true
	category := &models.Category{Name: name, IsActive: &active}
	if err := s.categoryRepo.Create(category); err != nil {
		return fmt.Errorf("%w: creating category: %v", ErrPersistence, err)
	}
	return nil
}

func (s *catalogService) UpdateCategory(id uint, name string, isActive bool) error {
	if err := validateName(name, "category name"); err != nil {
		return err
	}

	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return fmt.Errorf("%w: loading category %d: %v", ErrPersistence, id, err)
	}
	if category == nil {
		return fmt.Errorf("%w: category %d", ErrNotFound, id)
	}

	category.Name = name
	category.IsActive = &isActive
	if err := s.categoryRepo.Update(category); err != nil {
		return fmt.Errorf("%w: updating category %d: %v", ErrPersistence, id, err)
	}
	return nil
}

func (s *catalogService) ListMenuItems() ([]models.MenuItem, error) {
	items, err := s.menuItemRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("%w: listing menu items: %v", ErrPersistence, err)
	}
	return items, nil
}

func (s *catalogService) ListActiveCategories() ([]models.Category, error) {
	categories, err := s.categoryRepo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("%w: listing active categories: %v", ErrPersistence, err)
	}
	return categories, nil
}

func (s *catalogService) AddMenuItem(name string, price float64, categoryID uint, imageURL string) error {
	if err := validateMenuItem(name, price); err != nil {
		return err
	}

	active := true
	item := &models.MenuItem{
		Name:       name,
		Price:      price,
		ImageURL:   imageURL,
		CategoryID: optionalID(categoryID),
		IsActive:   &active,
	}
	if err := s.menuItemRepo.Create(item); err != nil {
		return fmt.Errorf("%w: creating menu item: %v", ErrPersistence, err)
	}
	return nil
}

func (s *catalogService) UpdateMenuItem(id uint, name string, price float64, categoryID uint, imageURL string, isActive bool) error {
	if err := validateMenuItem(name, price); err != nil {
		return err
	}

	item, err := s.menuItemRepo.GetByID(id)
	if err != nil {
		return fmt.Errorf("%w: loading menu item %d: %v", ErrPersistence, id, err)
	}
	if item == nil {
		return fmt.Errorf("%w: menu item %d", ErrNotFound, id)
	}

	item.Name = name
	item.Price = price
	item.ImageURL = imageURL
	item.CategoryID = optionalID(categoryID)
	item.IsActive = &isActive
	if err := s.menuItemRepo.Update(item); err != nil {
		return fmt.Errorf("%w: updating menu item %d: %v", ErrPersistence, id, err)
	}
	return nil
}

func (s *catalogService) ListTables() ([]models.Table, error) {
	tables, err := s.tableRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("%w: listing tables: %v", ErrPersistence, err)
	}
	return tables, nil
}

// AddTable creates a table; a duplicate code is rejected by the unique
// constraint and surfaces as ErrPersistence.
func (s *catalogService) AddTable(code string) error {
	if err := validateName(code, "table code"); err != nil {
		return err
	}

	active := true
	table := &models.Table{Code: code, IsActive: &active}
	if err := s.tableRepo.Create(table); err != nil {
		return fmt.Errorf("%w: creating table: %v", ErrPersistence, err)
	}
	return nil
}

func (s *catalogService) UpdateTable(id uint, isActive bool) error {
	table, err := s.tableRepo.GetByID(id)
	if err != nil {
		return fmt.Errorf("%w: loading table %d: %v", ErrPersistence, id, err)
	}
	if table == nil {
		return fmt.Errorf("%w: table %d", ErrNotFound, id)
	}

	table.IsActive = &isActive
	if err := s.tableRepo.Update(table); err != nil {
		return fmt.Errorf("%w: updating table %d: %v", ErrPersistence, id, err)
	}
	return nil
}

func validateName(value, field string) error {
	if value == "" {
		return fmt.Errorf("%w: %s is required", ErrValidation, field)
	}
	if len(value) > maxNameLength {
		return fmt.Errorf("%w: %s exceeds %d characters", ErrValidation, field, maxNameLength)
	}
	return nil
}

func validateMenuItem(name string, price float64) error {
	if err := validateName(name, "menu item name"); err != nil {
		return err
	}
	if price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	return nil
}

func optionalID(id uint) *uint {
	if id == 0 {
		return nil
	}
	return &id
}
