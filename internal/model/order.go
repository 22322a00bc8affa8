package model

import "time"

type Order struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderNo   string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"order_no"`
	ItemID    uint      `gorm:"not null;index" json:"item_id" validate:"required"`
	Qty       int       `gorm:"not null" json:"qty" validate:"required,gt=0"`
	Price     float64   `gorm:"not null" json:"price" validate:"gte=0"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// "order" is a reserved word in Postgres
func (Order) TableName() string {
	return "orders"
}
