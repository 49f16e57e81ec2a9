package repository

import (
	"errors"
	"restaurant_menu/internal/models"
	"time"

	"gorm.io/gorm"
)

// openOrders matches orders that still need kitchen attention: status
// "Pending", "New", or never set.
const openOrders = "status IN ('Pending', 'New') OR status IS NULL"

type OrderRepository interface {
	CreateWithLines(order *models.Order, lines []models.OrderLine) error
	GetByID(id uint) (*models.Order, error)
	GetByIDWithDetails(id uint) (*models.Order, error)
	GetOpen(limit int) ([]models.Order, error)
	GetByDateRange(start, end time.Time) ([]models.Order, error)
	CountAll() (int64, error)
	CountOpen() (int64, error)
	CountOpenTables() (int64, error)
	Update(order *models.Order) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// CreateWithLines inserts the order and all its lines in one transaction.
// The order insert runs first to obtain the id; any line failure rolls the
// whole order back so the dashboard never sees a partial write.
func (r *orderRepository) CreateWithLines(order *models.Order, lines []models.OrderLine) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}
		for i := range lines {
			lines[i].OrderID = order.ID
		}
		return tx.Create(&lines).Error
	})
}

// GetByID returns (nil, nil) when the order does not exist.
func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByIDWithDetails(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.
		Preload("Table").
		Preload("Lines.MenuItem").
		First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetOpen(limit int) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.
		Where(openOrders).
		Order("order_time DESC").
		Limit(limit).
		Preload("Table").
		Preload("Lines.MenuItem").
		Find(&orders).Error
	return orders, err
}

// GetByDateRange loads orders with order_time in [start, end), lines and
// menu items included.
func (r *orderRepository) GetByDateRange(start, end time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.
		Where("order_time >= ? AND order_time < ?", start, end).
		Preload("Lines.MenuItem").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).Count(&count).Error
	return count, err
}

func (r *orderRepository) CountOpen() (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).Where(openOrders).Count(&count).Error
	return count, err
}

// CountOpenTables counts distinct tables with at least one open order.
func (r *orderRepository) CountOpenTables() (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).Where(openOrders).Distinct("table_id").Count(&count).Error
	return count, err
}

func (r *orderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}
