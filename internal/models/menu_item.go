package models

import "time"

type MenuItem struct {
	ID         uint      `json:"id" gorm:"primaryKey;column:menu_item_id"`
	Name       string    `json:"name"`
	Price      float64   `json:"price" gorm:"type:decimal(10,2)"`
	ImageURL   string    `json:"image_url" gorm:"column:image_url"`
	CategoryID *uint     `json:"category_id"`
	IsActive   *bool     `json:"is_active" gorm:"default:true"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

func (MenuItem) TableName() string {
	return "menuitem"
}
