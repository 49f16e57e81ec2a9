package models

import "time"

// OrderLine is one menu item position inside an order. It is written once
// at placement and never updated: PriceAtOrder snapshots the menu item
// price at that instant, so later price edits cannot change history.
type OrderLine struct {
	ID           uint    `json:"id" gorm:"primaryKey;column:order_item_id"`
	OrderID      uint    `json:"order_id" gorm:"not null"`
	MenuItemID   uint    `json:"menu_item_id" gorm:"not null"`
	Quantity     int     `json:"quantity" gorm:"not null"`
	PriceAtOrder float64 `json:"price_at_order" gorm:"column:price_at_order;type:decimal(10,2);not null"`

	CreatedAt time.Time `json:"created_at"`

	MenuItem *MenuItem `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
}

func (OrderLine) TableName() string {
	return "orderitems"
}
