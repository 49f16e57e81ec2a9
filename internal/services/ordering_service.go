package services

import (
	"fmt"
	"log"
	"restaurant_menu/internal/models"
	"restaurant_menu/internal/repository"
	"time"
)

// CartLine is one submitted cart position.
type CartLine struct {
	MenuItemID uint `json:"menuItemId"`
	Quantity   int  `json:"quantity"`
}

type OrderingService interface {
	GetMenu(tableCode string) ([]models.Category, error)
	PlaceOrder(tableCode string, lines []CartLine) (uint, error)
}

type orderingService struct {
	tableRepo    repository.TableRepository
	menuItemRepo repository.MenuItemRepository
	categoryRepo repository.CategoryRepository
	orderRepo    repository.OrderRepository
}

func NewOrderingService(
	tableRepo repository.TableRepository,
	menuItemRepo repository.MenuItemRepository,
	categoryRepo repository.CategoryRepository,
	orderRepo repository.OrderRepository,
) OrderingService {
	return &orderingService{
		tableRepo:    tableRepo,
		menuItemRepo: menuItemRepo,
		categoryRepo: categoryRepo,
		orderRepo:    orderRepo,
	}
}

// GetMenu returns the active categories with their active items for a
// valid table code.
func (s *orderingService) GetMenu(tableCode string) ([]models.Category, error) {
	if _, err := s.resolveTable(tableCode); err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.GetActiveWithActiveItems()
	if err != nil {
		return nil, fmt.Errorf("%w: loading menu: %v", ErrPersistence, err)
	}
	return categories, nil
}

// PlaceOrder turns a cart into an order with one line per resolvable
// positive-quantity cart line. Lines whose menu item id does not resolve
// are skipped with a log entry rather than failing the whole order; each
// kept line snapshots the menu item's price at this instant. The order and
// its lines commit in a single transaction.
func (s *orderingService) PlaceOrder(tableCode string, lines []CartLine) (uint, error) {
	table, err := s.resolveTable(tableCode)
	if err != nil {
		return 0, err
	}

	hasItems := false
	for _, line := range lines {
		if line.Quantity > 0 {
			hasItems = true
			break
		}
	}
	if !hasItems {
		return 0, fmt.Errorf("%w: no items selected for order", ErrValidation)
	}

	status := models.StatusPending
	order := &models.Order{
		TableID:   &table.ID,
		OrderTime: time.Now(),
		Status:    &status,
	}

	var orderLines []models.OrderLine
	for _, line := range lines {
		if line.Quantity <= 0 {
			continue
		}

		menuItem, err := s.menuItemRepo.GetByID(line.MenuItemID)
		if err != nil {
			return 0, fmt.Errorf("%w: looking up menu item %d: %v", ErrPersistence, line.MenuItemID, err)
		}
		if menuItem == nil {
			log.Printf("PlaceOrder: menu item %d not found, skipping line", line.MenuItemID)
			continue
		}

		orderLines = append(orderLines, models.OrderLine{
			MenuItemID:   menuItem.ID,
			Quantity:     line.Quantity,
			PriceAtOrder: menuItem.Price,
		})
	}

	if err := s.orderRepo.CreateWithLines(order, orderLines); err != nil {
		return 0, fmt.Errorf("%w: saving order: %v", ErrPersistence, err)
	}

	log.Printf("Order %d placed for table %s with %d lines", order.ID, table.Code, len(orderLines))
	return order.ID, nil
}

// resolveTable looks up the table by code, requiring it to exist and not
// be explicitly inactive. An unset active flag counts as usable.
func (s *orderingService) resolveTable(tableCode string) (*models.Table, error) {
	if tableCode == "" {
		return nil, fmt.Errorf("%w: table code is required", ErrValidation)
	}

	table, err := s.tableRepo.GetByCode(tableCode)
	if err != nil {
		return nil, fmt.Errorf("%w: looking up table %q: %v", ErrPersistence, tableCode, err)
	}
	if table == nil || !table.Usable() {
		return nil, fmt.Errorf("%w: invalid or inactive table %q", ErrNotFound, tableCode)
	}
	return table, nil
}
