package main

import (
	"log"
	"restaurant_menu/internal/config"
	"restaurant_menu/internal/database"
	"restaurant_menu/internal/handlers"
	"restaurant_menu/internal/migrations"
	"restaurant_menu/internal/redis"
	"restaurant_menu/internal/repository"
	"restaurant_menu/internal/services"
	"time"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Seed default data
	if err := migrations.SeedDefaultData(db); err != nil {
		log.Printf("Warning: failed to seed default data: %v", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize repositories
	categoryRepo := repository.NewCategoryRepository(db)
	menuItemRepo := repository.NewMenuItemRepository(db)
	tableRepo := repository.NewTableRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Initialize services
	settingsService := services.NewSettingsService(redisClient)
	orderingService := services.NewOrderingService(tableRepo, menuItemRepo, categoryRepo, orderRepo)
	dashboardService := services.NewDashboardService(orderRepo, redisClient, settingsService, time.Duration(cfg.StatsCacheTTL)*time.Second)
	catalogService := services.NewCatalogService(categoryRepo, menuItemRepo, tableRepo)
	authService, err := services.NewAuthService(cfg.AdminUsername, cfg.AdminPassword, redisClient, time.Duration(cfg.SessionTimeout)*time.Second)
	if err != nil {
		log.Fatal("Failed to initialize auth:", err)
	}
	if !authService.Enabled() {
		log.Println("Warning: ADMIN_PASSWORD not set, admin endpoints are open")
	}

	// Initialize handlers
	menuHandler := handlers.NewMenuHandler(orderingService)
	adminHandler := handlers.NewAdminHandler(dashboardService, catalogService, settingsService)
	authHandler := handlers.NewAuthHandler(authService, cfg.SessionTimeout)

	// Setup routes
	router := gin.Default()

	// Diner-facing endpoints
	menu := router.Group("/menu")
	{
		menu.GET("/thankyou", menuHandler.ThankYou)
		menu.GET("/:code", menuHandler.GetMenu)
		menu.POST("/placeorder", menuHandler.PlaceOrder)
	}

	// Login stays outside the session check
	router.POST("/admin/login", authHandler.Login)

	// Admin endpoints
	admin := router.Group("/admin")
	admin.Use(handlers.AuthRequired(authService))
	{
		admin.POST("/logout", authHandler.Logout)

		admin.GET("/getdashboardstats", adminHandler.GetDashboardStats)
		admin.GET("/gethistorydata", adminHandler.GetHistoryData)
		admin.GET("/getpendingorders", adminHandler.GetPendingOrders)
		admin.GET("/getorderdetails", adminHandler.GetOrderDetails)
		admin.POST("/updateorderstatus", adminHandler.UpdateOrderStatus)

		admin.GET("/categories", adminHandler.Categories)
		admin.POST("/categories/add", adminHandler.AddCategory)
		admin.POST("/categories/update", adminHandler.UpdateCategory)

		admin.GET("/menuitems", adminHandler.MenuItems)
		admin.POST("/menuitems/add", adminHandler.AddMenuItem)
		admin.POST("/menuitems/update", adminHandler.UpdateMenuItem)

		admin.GET("/tables", adminHandler.Tables)
		admin.POST("/tables/add", adminHandler.AddTable)
		admin.POST("/tables/update", adminHandler.UpdateTable)

		admin.GET("/settings", adminHandler.Settings)
		admin.POST("/settings/restaurantinfo", adminHandler.UpdateRestaurantInfo)
		admin.POST("/settings/system", adminHandler.UpdateSystemSettings)
		admin.POST("/settings/security", adminHandler.UpdateSecuritySettings)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
