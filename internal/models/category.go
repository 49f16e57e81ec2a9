package models

import "time"

// Category groups menu items on the diner-facing menu. Categories are
// deactivated rather than deleted so historical orders keep their items.
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey;column:category_id"`
	Name      string    `json:"name" gorm:"column:category_name;size:100;not null"`
	IsActive  *bool     `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	MenuItems []MenuItem `json:"menu_items,omitempty" gorm:"foreignKey:CategoryID"`
}

func (Category) TableName() string {
	return "menucategory"
}
