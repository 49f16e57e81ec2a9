package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"restaurant_menu/internal/models"
	"restaurant_menu/internal/services"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

type fakeDashboardService struct {
	statsErr   error
	historyErr error
	updated    map[uint]string
}

func (s *fakeDashboardService) GetDashboardStats() (*services.DashboardStats, error) {
	if s.statsErr != nil {
		return nil, s.statsErr
	}
	return &services.DashboardStats{TotalOrders: 3, PendingOrders: 1, TodayRevenue: 21.5, ActiveTables: 1}, nil
}

func (s *fakeDashboardService) GetHistoryData(startDate, endDate time.Time) (*services.HistoryStats, error) {
	if s.historyErr != nil {
		return nil, s.historyErr
	}
	return &services.HistoryStats{TotalOrders: 2, TotalRevenue: 45, AverageOrderValue: 22.5, MostSoldItem: "Pizza"}, nil
}

func (s *fakeDashboardService) GetPendingOrders() ([]services.PendingOrder, error) {
	return []services.PendingOrder{}, nil
}

func (s *fakeDashboardService) GetOrderDetails(orderID uint) (*services.OrderDetails, error) {
	if orderID == 404 {
		return nil, fmt.Errorf("%w: order %d", services.ErrNotFound, orderID)
	}
	return &services.OrderDetails{OrderID: orderID}, nil
}

func (s *fakeDashboardService) UpdateOrderStatus(orderID uint, status string) error {
	if orderID == 404 {
		return fmt.Errorf("%w: order %d", services.ErrNotFound, orderID)
	}
	if s.updated == nil {
		s.updated = make(map[uint]string)
	}
	s.updated[orderID] = status
	return nil
}

type fakeCatalogService struct {
	addTableErr error
	tables      []string
}

func (s *fakeCatalogService) ListCategories() ([]models.Category, error) { return nil, nil }
func (s *fakeCatalogService) AddCategory(name string) error { return nil }
func (s *fakeCatalogService) UpdateCategory(uint, string, bool) error { return nil }
func (s *fakeCatalogService) ListMenuItems() ([]models.MenuItem, error) { return nil, nil }
func (s *fakeCatalogService) ListActiveCategories() ([]models.Category, error) { return nil, nil }
func (s *fakeCatalogService) AddMenuItem(string, float64, uint, string) error { return nil }
func (s *fakeCatalogService) UpdateMenuItem(uint, string, float64, uint, string, bool) error {
	return nil
}
func (s *fakeCatalogService) ListTables() ([]models.Table, error) { return nil, nil }
func (s *fakeCatalogService) AddTable(code string) error {
	if s.addTableErr != nil {
		return s.addTableErr
	}
	s.tables = append(s.tables, code)
	return nil
}
func (s *fakeCatalogService) UpdateTable(uint, bool) error { return nil }

type fakeSettingsService struct {
	system services.SystemSettings
}

func (s *fakeSettingsService) GetRestaurantInfo() (*services.RestaurantInfo, error) {
	return &services.RestaurantInfo{}, nil
}
func (s *fakeSettingsService) UpdateRestaurantInfo(*services.RestaurantInfo) error { return nil }
func (s *fakeSettingsService) GetSystemSettings() (*services.SystemSettings, error) {
	return &s.system, nil
}
func (s *fakeSettingsService) UpdateSystemSettings(settings *services.SystemSettings) error {
	s.system = *settings
	return nil
}
func (s *fakeSettingsService) GetSecuritySettings() (*services.SecuritySettings, error) {
	return &services.SecuritySettings{}, nil
}
func (s *fakeSettingsService) UpdateSecuritySettings(*services.SecuritySettings) error { return nil }

func newAdminRouter(dashboard services.DashboardService, catalog services.CatalogService, settings services.SettingsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewAdminHandler(dashboard, catalog, settings)
	router.GET("/admin/getdashboardstats", handler.GetDashboardStats)
	router.GET("/admin/gethistorydata", handler.GetHistoryData)
	router.GET("/admin/getpendingorders", handler.GetPendingOrders)
	router.GET("/admin/getorderdetails", handler.GetOrderDetails)
	router.POST("/admin/updateorderstatus", handler.UpdateOrderStatus)
	router.POST("/admin/tables/add", handler.AddTable)
	router.POST("/admin/settings/system", handler.UpdateSystemSettings)
	return router
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)
	return w
}

func TestGetDashboardStats_FailSoft(t *testing.T) {
	router := newAdminRouter(
		&fakeDashboardService{statsErr: fmt.Errorf("%w: db down", services.ErrPersistence)},
		&fakeCatalogService{}, &fakeSettingsService{},
	)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/getdashboardstats", nil))

	// The polling dashboard always gets a 200 with zeroed numbers.
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var stats services.DashboardStats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if stats != (services.DashboardStats{}) {
		t.Errorf("expected zeroed stats, got %+v", stats)
	}
}

func TestGetHistoryData_Endpoint(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		serviceErr error
		wantError  bool
	}{
		{"valid range", "startDate=2026-03-01&endDate=2026-03-10", nil, false},
		{"missing dates", "", nil, true},
		{"no orders", "startDate=2026-03-01&endDate=2026-03-10", services.ErrNoOrders, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAdminRouter(
				&fakeDashboardService{historyErr: tt.serviceErr},
				&fakeCatalogService{}, &fakeSettingsService{},
			)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/gethistorydata?"+tt.query, nil))

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200 (errors ride inside the body)", w.Code)
			}
			var body map[string]interface{}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			_, hasError := body["error"]
			if hasError != tt.wantError {
				t.Errorf("error present = %v, want %v (body: %s)", hasError, tt.wantError, w.Body.String())
			}
		})
	}
}

func TestUpdateOrderStatus_Endpoint(t *testing.T) {
	dashboard := &fakeDashboardService{}
	router := newAdminRouter(dashboard, &fakeCatalogService{}, &fakeSettingsService{})

	w := postForm(router, "/admin/updateorderstatus", url.Values{"orderId": {"7"}, "status": {"Served"}})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"success":true`) {
		t.Errorf("body = %s, want success:true", w.Body.String())
	}
	if dashboard.updated[7] != "Served" {
		t.Errorf("status not forwarded to service: %v", dashboard.updated)
	}

	w = postForm(router, "/admin/updateorderstatus", url.Values{"orderId": {"404"}, "status": {"Served"}})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"success":false`) {
		t.Errorf("body = %s, want success:false", w.Body.String())
	}
}

func TestAddTable_RedirectsWithFlash(t *testing.T) {
	catalog := &fakeCatalogService{}
	router := newAdminRouter(&fakeDashboardService{}, catalog, &fakeSettingsService{})

	w := postForm(router, "/admin/tables/add", url.Values{"tableCode": {"T9"}})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if got := w.Header().Get("Location"); got != "/admin/tables" {
		t.Errorf("redirect location = %q, want /admin/tables", got)
	}
	cookies := w.Result().Cookies()
	found := false
	for _, cookie := range cookies {
		if cookie.Name == "flash_message" {
			found = true
		}
	}
	if !found {
		t.Errorf("no flash_message cookie set; cookies: %v", cookies)
	}

	// Failure path flashes an error instead.
	catalog.addTableErr = fmt.Errorf("%w: duplicate code", services.ErrPersistence)
	w = postForm(router, "/admin/tables/add", url.Values{"tableCode": {"T9"}})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	found = false
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "flash_error" {
			found = true
		}
	}
	if !found {
		t.Error("no flash_error cookie set on failure")
	}
}

func TestUpdateSystemSettings_Endpoint(t *testing.T) {
	settings := &fakeSettingsService{}
	router := newAdminRouter(&fakeDashboardService{}, &fakeCatalogService{}, settings)

	w := postForm(router, "/admin/settings/system", url.Values{
		"currency":      {"EUR"},
		"timezone":      {"Europe/Rome"},
		"language":      {"it"},
		"notifications": {"on"},
	})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if settings.system.Timezone != "Europe/Rome" || !settings.system.Notifications {
		t.Errorf("settings not applied: %+v", settings.system)
	}
}
