package model

import "time"

// Item is the stock-bearing aggregate. Stock is only ever written by the
// stock service's inventory/order paths; the plain update path leaves it alone.
type Item struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null;index" json:"name" validate:"required"`
	Price     float64   `gorm:"not null;default:0" json:"price" validate:"gte=0"`
	Stock     int       `gorm:"not null;default:0;index" json:"stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
