package models

import "time"

// Table is a physical restaurant table. Code is the identifier printed on
// the table's QR code and must stay unique even across inactive tables.
type Table struct {
	ID        uint      `json:"id" gorm:"primaryKey;column:table_id"`
	Code      string    `json:"code" gorm:"column:table_code;size:100;uniqueIndex;not null"`
	IsActive  *bool     `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Orders []Order `json:"-" gorm:"foreignKey:TableID"`
}

func (Table) TableName() string {
	return "tables"
}

// Usable reports whether diners may order at this table: active flag is
// true or was never set. Only an explicit false blocks ordering.
func (t *Table) Usable() bool {
	return t.IsActive == nil || *t.IsActive
}
