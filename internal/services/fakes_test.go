package services

import (
	"encoding/json"
	"fmt"
	"restaurant_menu/internal/models"
	"restaurant_menu/internal/redis"
	"sort"
	"time"
)

// In-memory stand-ins for the repository and store interfaces, shared by
// the service tests in this package.

type fakeTableRepo struct {
	tables    map[string]*models.Table
	createErr error
}

func newFakeTableRepo() *fakeTableRepo {
	return &fakeTableRepo{tables: make(map[string]*models.Table)}
}

func (r *fakeTableRepo) add(id uint, code string, isActive *bool) *models.Table {
	table := &models.Table{ID: id, Code: code, IsActive: isActive}
	r.tables[code] = table
	return table
}

func (r *fakeTableRepo) Create(table *models.Table) error {
	if r.createErr != nil {
		return r.createErr
	}
	if _, exists := r.tables[table.Code]; exists {
		return fmt.Errorf("duplicate key value violates unique constraint")
	}
	table.ID = uint(len(r.tables) + 1)
	r.tables[table.Code] = table
	return nil
}

func (r *fakeTableRepo) GetByID(id uint) (*models.Table, error) {
	for _, table := range r.tables {
		if table.ID == id {
			return table, nil
		}
	}
	return nil, nil
}

func (r *fakeTableRepo) GetByCode(code string) (*models.Table, error) {
	return r.tables[code], nil
}

func (r *fakeTableRepo) GetAll() ([]models.Table, error) {
	var tables []models.Table
	for _, table := range r.tables {
		tables = append(tables, *table)
	}
	return tables, nil
}

func (r *fakeTableRepo) Update(table *models.Table) error {
	r.tables[table.Code] = table
	return nil
}

type fakeMenuItemRepo struct {
	items  map[uint]*models.MenuItem
	getErr error
}

func newFakeMenuItemRepo() *fakeMenuItemRepo {
	return &fakeMenuItemRepo{items: make(map[uint]*models.MenuItem)}
}

func (r *fakeMenuItemRepo) add(id uint, name string, price float64) *models.MenuItem {
	item := &models.MenuItem{ID: id, Name: name, Price: price}
	r.items[id] = item
	return item
}

func (r *fakeMenuItemRepo) Create(item *models.MenuItem) error {
	item.ID = uint(len(r.items) + 1)
	r.items[item.ID] = item
	return nil
}

func (r *fakeMenuItemRepo) GetByID(id uint) (*models.MenuItem, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.items[id], nil
}

func (r *fakeMenuItemRepo) GetAll() ([]models.MenuItem, error) {
	var items []models.MenuItem
	for _, item := range r.items {
		items = append(items, *item)
	}
	return items, nil
}

func (r *fakeMenuItemRepo) Update(item *models.MenuItem) error {
	r.items[item.ID] = item
	return nil
}

type fakeCategoryRepo struct {
	categories map[uint]*models.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uint]*models.Category)}
}

func (r *fakeCategoryRepo) Create(category *models.Category) error {
	category.ID = uint(len(r.categories) + 1)
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) GetByID(id uint) (*models.Category, error) {
	return r.categories[id], nil
}

func (r *fakeCategoryRepo) GetAll() ([]models.Category, error) {
	var categories []models.Category
	for _, category := range r.categories {
		categories = append(categories, *category)
	}
	return categories, nil
}

func (r *fakeCategoryRepo) GetActive() ([]models.Category, error) {
	var categories []models.Category
	for _, category := range r.categories {
		if category.IsActive != nil && *category.IsActive {
			categories = append(categories, *category)
		}
	}
	return categories, nil
}

func (r *fakeCategoryRepo) GetActiveWithActiveItems() ([]models.Category, error) {
	return r.GetActive()
}

func (r *fakeCategoryRepo) Update(category *models.Category) error {
	r.categories[category.ID] = category
	return nil
}

type fakeOrderRepo struct {
	orders     map[uint]*models.Order
	nextID     uint
	createErr  error
	rangeCalls int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uint]*models.Order)}
}

func (r *fakeOrderRepo) add(order *models.Order) {
	if order.ID == 0 {
		r.nextID++
		order.ID = r.nextID
	}
	r.orders[order.ID] = order
}

func (r *fakeOrderRepo) CreateWithLines(order *models.Order, lines []models.OrderLine) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	order.ID = r.nextID
	for i := range lines {
		lines[i].OrderID = order.ID
	}
	order.Lines = lines
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GetByID(id uint) (*models.Order, error) {
	return r.orders[id], nil
}

func (r *fakeOrderRepo) GetByIDWithDetails(id uint) (*models.Order, error) {
	return r.orders[id], nil
}

func (r *fakeOrderRepo) GetOpen(limit int) ([]models.Order, error) {
	var open []models.Order
	for _, order := range r.orders {
		if order.IsOpen() {
			open = append(open, *order)
		}
	}
	sort.Slice(open, func(i, j int) bool {
		return open[i].OrderTime.After(open[j].OrderTime)
	})
	if len(open) > limit {
		open = open[:limit]
	}
	return open, nil
}

func (r *fakeOrderRepo) GetByDateRange(start, end time.Time) ([]models.Order, error) {
	r.rangeCalls++
	var matched []models.Order
	for _, order := range r.orders {
		if !order.OrderTime.Before(start) && order.OrderTime.Before(end) {
			matched = append(matched, *order)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].ID < matched[j].ID
	})
	return matched, nil
}

func (r *fakeOrderRepo) CountAll() (int64, error) {
	return int64(len(r.orders)), nil
}

func (r *fakeOrderRepo) CountOpen() (int64, error) {
	var count int64
	for _, order := range r.orders {
		if order.IsOpen() {
			count++
		}
	}
	return count, nil
}

func (r *fakeOrderRepo) CountOpenTables() (int64, error) {
	seen := make(map[uint]bool)
	for _, order := range r.orders {
		if order.IsOpen() && order.TableID != nil {
			seen[*order.TableID] = true
		}
	}
	return int64(len(seen)), nil
}

func (r *fakeOrderRepo) Update(order *models.Order) error {
	r.orders[order.ID] = order
	return nil
}

type fakeStatsCache struct {
	data []byte
	sets int
	hits int
}

func (c *fakeStatsCache) GetDashboardStats(dest interface{}) error {
	if c.data == nil {
		return redis.ErrNotFound
	}
	c.hits++
	return json.Unmarshal(c.data, dest)
}

func (c *fakeStatsCache) SetDashboardStats(value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data = data
	c.sets++
	return nil
}

func (c *fakeStatsCache) InvalidateDashboardStats() error {
	c.data = nil
	return nil
}

type fakeSettingsStore struct {
	values map[string][]byte
}

func newFakeSettingsStore() *fakeSettingsStore {
	return &fakeSettingsStore{values: make(map[string][]byte)}
}

func (s *fakeSettingsStore) SetSettings(name string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.values[name] = data
	return nil
}

func (s *fakeSettingsStore) GetSettings(name string, dest interface{}) error {
	data, ok := s.values[name]
	if !ok {
		return redis.ErrNotFound
	}
	return json.Unmarshal(data, dest)
}

type fakeSessionStore struct {
	sessions map[string]string
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]string)}
}

func (s *fakeSessionStore) SetAdminSession(token, username string, ttl time.Duration) error {
	s.sessions[token] = username
	return nil
}

func (s *fakeSessionStore) GetAdminSession(token string) (string, error) {
	username, ok := s.sessions[token]
	if !ok {
		return "", redis.ErrNotFound
	}
	return username, nil
}

func (s *fakeSessionStore) DeleteAdminSession(token string) error {
	delete(s.sessions, token)
	return nil
}

func boolPtr(v bool) *bool {
	return &v
}

func strPtr(v string) *string {
	return &v
}
