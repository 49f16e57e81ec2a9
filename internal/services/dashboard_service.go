package services

import (
	"fmt"
	"log"
	"math"
	"restaurant_menu/internal/models"
	"restaurant_menu/internal/repository"
	"sort"
	"time"
)

// StatsCache is the slice of the Redis client the dashboard uses. A nil
// cache disables caching; stats are then computed on every poll.
type StatsCache interface {
	GetDashboardStats(dest interface{}) error
	SetDashboardStats(value interface{}, ttl time.Duration) error
	InvalidateDashboardStats() error
}

type DashboardStats struct {
	TotalOrders   int64   `json:"totalOrders"`
	PendingOrders int64   `json:"pendingOrders"`
	TodayRevenue  float64 `json:"todayRevenue"`
	ActiveTables  int64   `json:"activeTables"`
}

type ItemSales struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type HistoryStats struct {
	TotalOrders       int         `json:"totalOrders"`
	TotalRevenue      float64     `json:"totalRevenue"`
	AverageOrderValue float64     `json:"averageOrderValue"`
	MostSoldItem      string      `json:"mostSoldItem"`
	TopItems          []ItemSales `json:"topItems"`
}

type PendingOrderLine struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type PendingOrder struct {
	OrderID   uint               `json:"orderId"`
	TableCode string             `json:"tableCode"`
	TableID   uint               `json:"tableId"`
	OrderTime string             `json:"orderTime"`
	Status    string             `json:"status"`
	Items     []PendingOrderLine `json:"orderitems"`
}

type OrderDetailItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Total    float64 `json:"total"`
}

type OrderDetails struct {
	OrderID   uint              `json:"orderId"`
	TableCode string            `json:"tableCode"`
	TableID   uint              `json:"tableId"`
	OrderTime string            `json:"orderTime"`
	Status    string            `json:"status"`
	Total     float64           `json:"total"`
	Items     []OrderDetailItem `json:"items"`
}

type DashboardService interface {
	GetDashboardStats() (*DashboardStats, error)
	GetHistoryData(startDate, endDate time.Time) (*HistoryStats, error)
	GetPendingOrders() ([]PendingOrder, error)
	GetOrderDetails(orderID uint) (*OrderDetails, error)
	UpdateOrderStatus(orderID uint, status string) error
}

type dashboardService struct {
	orderRepo repository.OrderRepository
	cache     StatsCache
	settings  SettingsService
	cacheTTL  time.Duration
}

func NewDashboardService(
	orderRepo repository.OrderRepository,
	cache StatsCache,
	settings SettingsService,
	cacheTTL time.Duration,
) DashboardService {
	return &dashboardService{
		orderRepo: orderRepo,
		cache:     cache,
		settings:  settings,
		cacheTTL:  cacheTTL,
	}
}

// GetDashboardStats computes the live dashboard tiles. Today's revenue is
// recomputed from the current menu item price, not the per-line snapshot;
// historical views use the snapshot. The snapshot is authoritative for
// anything historical, the live tile is a dashboard approximation.
func (s *dashboardService) GetDashboardStats() (*DashboardStats, error) {
	if s.cache != nil {
		var cached DashboardStats
		if err := s.cache.GetDashboardStats(&cached); err == nil {
			return &cached, nil
		}
	}

	totalOrders, err := s.orderRepo.CountAll()
	if err != nil {
		return nil, fmt.Errorf("%w: counting orders: %v", ErrPersistence, err)
	}

	pendingOrders, err := s.orderRepo.CountOpen()
	if err != nil {
		return nil, fmt.Errorf("%w: counting open orders: %v", ErrPersistence, err)
	}

	activeTables, err := s.orderRepo.CountOpenTables()
	if err != nil {
		return nil, fmt.Errorf("%w: counting active tables: %v", ErrPersistence, err)
	}

	today := s.startOfToday()
	orders, err := s.orderRepo.GetByDateRange(today, today.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("%w: loading today's orders: %v", ErrPersistence, err)
	}

	revenue := 0.0
	for _, order := range orders {
		for _, line := range order.Lines {
			if line.MenuItem != nil {
				revenue += float64(line.Quantity) * line.MenuItem.Price
			}
		}
	}

	stats := &DashboardStats{
		TotalOrders:   totalOrders,
		PendingOrders: pendingOrders,
		TodayRevenue:  round2(revenue),
		ActiveTables:  activeTables,
	}

	if s.cache != nil {
		if err := s.cache.SetDashboardStats(stats, s.cacheTTL); err != nil {
			log.Printf("Warning: failed to cache dashboard stats: %v", err)
		}
	}
	return stats, nil
}

// GetHistoryData aggregates orders placed in [startDate, endDate+1d) using
// the per-line price snapshots. A range with no orders yields ErrNoOrders.
func (s *dashboardService) GetHistoryData(startDate, endDate time.Time) (*HistoryStats, error) {
	orders, err := s.orderRepo.GetByDateRange(startDate, endDate.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("%w: loading order history: %v", ErrPersistence, err)
	}
	if len(orders) == 0 {
		return nil, ErrNoOrders
	}

	totalRevenue := 0.0
	sales := make(map[string]int)
	var names []string // first-encountered grouping order, kept for ties

	for _, order := range orders {
		for _, line := range order.Lines {
			totalRevenue += float64(line.Quantity) * line.PriceAtOrder

			name := lineItemName(&line)
			if _, seen := sales[name]; !seen {
				names = append(names, name)
			}
			sales[name] += line.Quantity
		}
	}

	// Stable sort keeps first-encountered order between equal quantities.
	sort.SliceStable(names, func(i, j int) bool {
		return sales[names[i]] > sales[names[j]]
	})

	topItems := make([]ItemSales, 0, 5)
	for _, name := range names {
		if len(topItems) == 5 {
			break
		}
		topItems = append(topItems, ItemSales{Name: name, Quantity: sales[name]})
	}

	mostSoldItem := "N/A"
	if len(topItems) > 0 {
		mostSoldItem = topItems[0].Name
	}

	return &HistoryStats{
		TotalOrders:       len(orders),
		TotalRevenue:      round2(totalRevenue),
		AverageOrderValue: round2(totalRevenue / float64(len(orders))),
		MostSoldItem:      mostSoldItem,
		TopItems:          topItems,
	}, nil
}

// GetPendingOrders returns the open orders, most recent first, capped at 20.
func (s *dashboardService) GetPendingOrders() ([]PendingOrder, error) {
	orders, err := s.orderRepo.GetOpen(20)
	if err != nil {
		return nil, fmt.Errorf("%w: loading pending orders: %v", ErrPersistence, err)
	}

	result := make([]PendingOrder, 0, len(orders))
	for _, order := range orders {
		pending := PendingOrder{
			OrderID:   order.ID,
			OrderTime: order.OrderTime.Format("15:04"),
			Status:    order.DisplayStatus(),
			Items:     make([]PendingOrderLine, 0, len(order.Lines)),
		}
		if order.Table != nil {
			pending.TableCode = order.Table.Code
			pending.TableID = order.Table.ID
		}
		for _, line := range order.Lines {
			pending.Items = append(pending.Items, PendingOrderLine{
				Name:     lineItemName(&line),
				Quantity: line.Quantity,
				Price:    line.PriceAtOrder,
			})
		}
		result = append(result, pending)
	}
	return result, nil
}

func (s *dashboardService) GetOrderDetails(orderID uint) (*OrderDetails, error) {
	order, err := s.orderRepo.GetByIDWithDetails(orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: loading order %d: %v", ErrPersistence, orderID, err)
	}
	if order == nil {
		return nil, fmt.Errorf("%w: order %d", ErrNotFound, orderID)
	}

	details := &OrderDetails{
		OrderID:   order.ID,
		OrderTime: order.OrderTime.Format("02/01/2006 15:04"),
		Status:    order.DisplayStatus(),
		Items:     make([]OrderDetailItem, 0, len(order.Lines)),
	}
	if order.Table != nil {
		details.TableCode = order.Table.Code
		details.TableID = order.Table.ID
	}

	total := 0.0
	for _, line := range order.Lines {
		lineTotal := float64(line.Quantity) * line.PriceAtOrder
		total += lineTotal
		details.Items = append(details.Items, OrderDetailItem{
			Name:     lineItemName(&line),
			Quantity: line.Quantity,
			Price:    line.PriceAtOrder,
			Total:    round2(lineTotal),
		})
	}
	details.Total = round2(total)
	return details, nil
}

// UpdateOrderStatus overwrites the status unconditionally. Any string is
// accepted; there is no transition validation.
func (s *dashboardService) UpdateOrderStatus(orderID uint, status string) error {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return fmt.Errorf("%w: loading order %d: %v", ErrPersistence, orderID, err)
	}
	if order == nil {
		return fmt.Errorf("%w: order %d", ErrNotFound, orderID)
	}

	order.Status = &status
	if err := s.orderRepo.Update(order); err != nil {
		return fmt.Errorf("%w: updating order %d: %v", ErrPersistence, orderID, err)
	}

	if s.cache != nil {
		if err := s.cache.InvalidateDashboardStats(); err != nil {
			log.Printf("Warning: failed to invalidate dashboard stats: %v", err)
		}
	}
	return nil
}

// startOfToday returns midnight of the local calendar day, in the
// configured restaurant timezone when one is set.
func (s *dashboardService) startOfToday() time.Time {
	loc := time.Local
	if s.settings != nil {
		if sys, err := s.settings.GetSystemSettings(); err == nil && sys.Timezone != "" {
			if l, err := time.LoadLocation(sys.Timezone); err == nil {
				loc = l
			}
		}
	}
	now := time.Now().In(loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
}

func lineItemName(line *models.OrderLine) string {
	if line.MenuItem != nil {
		return line.MenuItem.Name
	}
	return fmt.Sprintf("item #%d", line.MenuItemID)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
