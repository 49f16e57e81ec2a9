package models

import "time"

type Order struct {
	ID        uint      `json:"id" gorm:"primaryKey;column:order_id"`
	TableID   *uint     `json:"table_id"`
	OrderTime time.Time `json:"order_time" gorm:"not null"`
	Status    *string   `json:"status"`

	Table *Table      `json:"table,omitempty" gorm:"foreignKey:TableID"`
	Lines []OrderLine `json:"lines,omitempty" gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string {
	return "orders"
}

// Conventional status values. Status is free text on the wire and
// UpdateOrderStatus accepts any string; these constants cover the values
// the kitchen flow actually uses.
const (
	StatusPending   = "Pending"
	StatusNew       = "New"
	StatusPreparing = "Preparing"
	StatusServed    = "Served"
	StatusClosed    = "Closed"
)

// IsOpen reports whether the order still needs kitchen attention:
// status "Pending", "New", or never set.
func (o *Order) IsOpen() bool {
	return o.Status == nil || *o.Status == StatusPending || *o.Status == StatusNew
}

// DisplayStatus renders an unset status as "New" for the dashboard.
func (o *Order) DisplayStatus() string {
	if o.Status == nil {
		return StatusNew
	}
	return *o.Status
}
