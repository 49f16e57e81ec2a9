package handlers

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"restaurant_menu/internal/services"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	dashboardService services.DashboardService
	catalogService   services.CatalogService
	settingsService  services.SettingsService
}

func NewAdminHandler(
	dashboardService services.DashboardService,
	catalogService services.CatalogService,
	settingsService services.SettingsService,
) *AdminHandler {
	return &AdminHandler{
		dashboardService: dashboardService,
		catalogService:   catalogService,
		settingsService:  settingsService,
	}
}

// GetDashboardStats always answers 200: the dashboard polls this endpoint
// and a zeroed payload beats an error banner. Failures are logged only.
func (h *AdminHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.dashboardService.GetDashboardStats()
	if err != nil {
		log.Printf("Error fetching dashboard stats: %v", err)
		c.JSON(http.StatusOK, services.DashboardStats{})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) GetHistoryData(c *gin.Context) {
	startDate, err1 := time.Parse("2006-01-02", c.Query("startDate"))
	endDate, err2 := time.Parse("2006-01-02", c.Query("endDate"))
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusOK, gin.H{"error": "Invalid date range"})
		return
	}

	stats, err := h.dashboardService.GetHistoryData(startDate, endDate)
	if err != nil {
		if errors.Is(err, services.ErrNoOrders) {
			c.JSON(http.StatusOK, gin.H{"error": "No orders found for the selected date range"})
			return
		}
		log.Printf("Error fetching history data: %v", err)
		c.JSON(http.StatusOK, gin.H{"error": "Error fetching history data"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) GetPendingOrders(c *gin.Context) {
	orders, err := h.dashboardService.GetPendingOrders()
	if err != nil {
		log.Printf("Error fetching pending orders: %v", err)
		c.JSON(http.StatusOK, []services.PendingOrder{})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *AdminHandler) GetOrderDetails(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Query("orderId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"error": "Order not found"})
		return
	}

	details, err := h.dashboardService.GetOrderDetails(uint(orderID))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"error": "Order not found"})
			return
		}
		log.Printf("Error fetching order details: %v", err)
		c.JSON(http.StatusOK, gin.H{"error": "Error fetching order details"})
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.PostForm("orderId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid order id"})
		return
	}
	status := c.PostForm("status")

	if err := h.dashboardService.UpdateOrderStatus(uint(orderID), status); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Order not found"})
			return
		}
		log.Printf("Error updating order status: %v", err)
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Error updating order status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Categories management

func (h *AdminHandler) Categories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories()
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *AdminHandler) AddCategory(c *gin.Context) {
	name := c.PostForm("categoryName")

	if err := h.catalogService.AddCategory(name); err != nil {
		log.Printf("Error adding category: %v", err)
		redirectWithFlash(c, "/admin/categories", "", "Error adding category")
		return
	}
	redirectWithFlash(c, "/admin/categories", "Category added successfully!", "")
}

func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.PostForm("categoryId"), 10, 32)
	if err != nil {
		redirectWithFlash(c, "/admin/categories", "", "Category not found")
		return
	}
	name := c.PostForm("categoryName")
	isActive := formBool(c.PostForm("isActive"))

	if err := h.catalogService.UpdateCategory(uint(categoryID), name, isActive); err != nil {
		log.Printf("Error updating category: %v", err)
		if errors.Is(err, services.ErrNotFound) {
			redirectWithFlash(c, "/admin/categories", "", "Category not found")
			return
		}
		redirectWithFlash(c, "/admin/categories", "", "Error updating category")
		return
	}
	redirectWithFlash(c, "/admin/categories", "Category updated successfully!", "")
}

// Menu items management

func (h *AdminHandler) MenuItems(c *gin.Context) {
	items, err := h.catalogService.ListMenuItems()
	if err != nil {
		log.Printf("Error listing menu items: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing menu items"})
		return
	}

	categories, err := h.catalogService.ListActiveCategories()
	if err != nil {
		log.Printf("Error listing active categories: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing menu items"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"menuItems":  items,
		"categories": categories,
	})
}

func (h *AdminHandler) AddMenuItem(c *gin.Context) {
	name := c.PostForm("name")
	price, _ := strconv.ParseFloat(c.PostForm("price"), 64)
	categoryID, _ := strconv.ParseUint(c.PostForm("categoryId"), 10, 32)
	imageURL := c.PostForm("imageUrl")

	if err := h.catalogService.AddMenuItem(name, price, uint(categoryID), imageURL); err != nil {
		log.Printf("Error adding menu item: %v", err)
		redirectWithFlash(c, "/admin/menuitems", "", "Error adding menu item")
		return
	}
	redirectWithFlash(c, "/admin/menuitems", "Menu item added successfully!", "")
}

func (h *AdminHandler) UpdateMenuItem(c *gin.Context) {
	menuItemID, err := strconv.ParseUint(c.PostForm("menuItemId"), 10, 32)
	if err != nil {
		redirectWithFlash(c, "/admin/menuitems", "", "Menu item not found")
		return
	}
	name := c.PostForm("name")
	price, _ := strconv.ParseFloat(c.PostForm("price"), 64)
	categoryID, _ := strconv.ParseUint(c.PostForm("categoryId"), 10, 32)
	imageURL := c.PostForm("imageUrl")
	isActive := formBool(c.PostForm("isActive"))

	if err := h.catalogService.UpdateMenuItem(uint(menuItemID), name, price, uint(categoryID), imageURL, isActive); err != nil {
		log.Printf("Error updating menu item: %v", err)
		if errors.Is(err, services.ErrNotFound) {
			redirectWithFlash(c, "/admin/menuitems", "", "Menu item not found")
			return
		}
		redirectWithFlash(c, "/admin/menuitems", "", "Error updating menu item")
		return
	}
	redirectWithFlash(c, "/admin/menuitems", "Menu item updated successfully!", "")
}

// Tables management

func (h *AdminHandler) Tables(c *gin.Context) {
	tables, err := h.catalogService.ListTables()
	if err != nil {
		log.Printf("Error listing tables: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing tables"})
		return
	}
	c.JSON(http.StatusOK, tables)
}

func (h *AdminHandler) AddTable(c *gin.Context) {
	code := c.PostForm("tableCode")

	if err := h.catalogService.AddTable(code); err != nil {
		log.Printf("Error adding table: %v", err)
		redirectWithFlash(c, "/admin/tables", "", "Error adding table")
		return
	}
	redirectWithFlash(c, "/admin/tables", "Table added successfully!", "")
}

func (h *AdminHandler) UpdateTable(c *gin.Context) {
	tableID, err := strconv.ParseUint(c.PostForm("tableId"), 10, 32)
	if err != nil {
		redirectWithFlash(c, "/admin/tables", "", "Table not found")
		return
	}
	isActive := formBool(c.PostForm("isActive"))

	if err := h.catalogService.UpdateTable(uint(tableID), isActive); err != nil {
		log.Printf("Error updating table: %v", err)
		if errors.Is(err, services.ErrNotFound) {
			redirectWithFlash(c, "/admin/tables", "", "Table not found")
			return
		}
		redirectWithFlash(c, "/admin/tables", "", "Error updating table")
		return
	}
	redirectWithFlash(c, "/admin/tables", "Table updated successfully!", "")
}

// Settings management

func (h *AdminHandler) Settings(c *gin.Context) {
	info, err := h.settingsService.GetRestaurantInfo()
	if err != nil {
		log.Printf("Error reading restaurant info: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading settings"})
		return
	}
	system, err := h.settingsService.GetSystemSettings()
	if err != nil {
		log.Printf("Error reading system settings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading settings"})
		return
	}
	security, err := h.settingsService.GetSecuritySettings()
	if err != nil {
		log.Printf("Error reading security settings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurantInfo": info,
		"system":         system,
		"security":       security,
	})
}

func (h *AdminHandler) UpdateRestaurantInfo(c *gin.Context) {
	info := &services.RestaurantInfo{
		Name:    c.PostForm("restaurantName"),
		Address: c.PostForm("restaurantAddress"),
		Phone:   c.PostForm("restaurantPhone"),
		Email:   c.PostForm("restaurantEmail"),
	}

	if err := h.settingsService.UpdateRestaurantInfo(info); err != nil {
		log.Printf("Error updating restaurant info: %v", err)
		redirectWithFlash(c, "/admin/settings", "", "Error updating restaurant information")
		return
	}
	redirectWithFlash(c, "/admin/settings", "Restaurant information updated successfully!", "")
}

func (h *AdminHandler) UpdateSystemSettings(c *gin.Context) {
	settings := &services.SystemSettings{
		Currency:        c.PostForm("currency"),
		Timezone:        c.PostForm("timezone"),
		Language:        c.PostForm("language"),
		Notifications:   formBool(c.PostForm("notifications")),
		AutoBackup:      formBool(c.PostForm("autoBackup")),
		MaintenanceMode: formBool(c.PostForm("maintenanceMode")),
	}

	if err := h.settingsService.UpdateSystemSettings(settings); err != nil {
		log.Printf("Error updating system settings: %v", err)
		redirectWithFlash(c, "/admin/settings", "", "Error updating system settings")
		return
	}
	redirectWithFlash(c, "/admin/settings", "System settings updated successfully!", "")
}

func (h *AdminHandler) UpdateSecuritySettings(c *gin.Context) {
	sessionTimeout, _ := strconv.Atoi(c.PostForm("sessionTimeout"))
	maxLoginAttempts, _ := strconv.Atoi(c.PostForm("maxLoginAttempts"))
	settings := &services.SecuritySettings{
		SessionTimeout:   sessionTimeout,
		MaxLoginAttempts: maxLoginAttempts,
		TwoFactorAuth:    formBool(c.PostForm("twoFactorAuth")),
		PasswordExpiry:   formBool(c.PostForm("passwordExpiry")),
	}

	if err := h.settingsService.UpdateSecuritySettings(settings); err != nil {
		log.Printf("Error updating security settings: %v", err)
		redirectWithFlash(c, "/admin/settings", "", "Error updating security settings")
		return
	}
	redirectWithFlash(c, "/admin/settings", "Security settings updated successfully!", "")
}

// redirectWithFlash carries the result of a form post through a short-lived
// cookie, then 303-redirects back to the listing page.
func redirectWithFlash(c *gin.Context, location, message, errMessage string) {
	if message != "" {
		c.SetCookie("flash_message", url.QueryEscape(message), 10, "/", "", false, true)
	}
	if errMessage != "" {
		c.SetCookie("flash_error", url.QueryEscape(errMessage), 10, "/", "", false, true)
	}
	c.Redirect(http.StatusSeeOther, location)
}

// formBool reads an HTML checkbox value; anything unchecked posts nothing.
func formBool(value string) bool {
	return value == "on" || value == "true" || value == "1"
}
