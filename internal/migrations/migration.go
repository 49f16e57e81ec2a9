package migrations

import (
	"log"
	"restaurant_menu/internal/models"

	"gorm.io/gorm"
)

// SeedDefaultData creates a starter table and a small sample menu on an
// empty database so the app is usable right after first start. It is
// idempotent: existing rows are left alone.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	var tableCount int64
	if err := db.Model(&models.Table{}).Count(&tableCount).Error; err != nil {
		return err
	}
	if tableCount == 0 {
		log.Println("Creating default tables...")
		active := true
		for _, code := range []string{"TABLE-001", "TABLE-002", "TABLE-003", "TABLE-004"} {
			table := models.Table{Code: code, IsActive: &active}
			if err := db.Create(&table).Error; err != nil {
				log.Printf("Warning: failed to create table %s: %v", code, err)
			}
		}
	}

	var categoryCount int64
	if err := db.Model(&models.Category{}).Count(&categoryCount).Error; err != nil {
		return err
	}
	if categoryCount == 0 {
		log.Println("Creating sample menu...")
		if err := createSampleMenu(db); err != nil {
			log.Printf("Warning: failed to create sample menu: %v", err)
		}
	}

	log.Println("Default data seeded successfully!")
	return nil
}

func createSampleMenu(db *gorm.DB) error {
	active := true

	starters := models.Category{Name: "Starters", IsActive: &active}
	if err := db.Create(&starters).Error; err != nil {
		return err
	}
	mains := models.Category{Name: "Main Courses", IsActive: &active}
	if err := db.Create(&mains).Error; err != nil {
		return err
	}
	drinks := models.Category{Name: "Drinks", IsActive: &active}
	if err := db.Create(&drinks).Error; err != nil {
		return err
	}

	items := []models.MenuItem{
		{Name: "Tomato Soup", Price: 4.50, CategoryID: &starters.ID, IsActive: &active},
		{Name: "Bruschetta", Price: 5.00, CategoryID: &starters.ID, IsActive: &active},
		{Name: "Margherita Pizza", Price: 9.90, CategoryID: &mains.ID, IsActive: &active},
		{Name: "Grilled Chicken", Price: 12.50, CategoryID: &mains.ID, IsActive: &active},
		{Name: "Still Water", Price: 2.00, CategoryID: &drinks.ID, IsActive: &active},
		{Name: "Fresh Orange Juice", Price: 3.50, CategoryID: &drinks.ID, IsActive: &active},
	}
	return db.Create(&items).Error
}
