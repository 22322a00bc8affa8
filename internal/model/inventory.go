package model

import "time"

type TransactionType string

const (
	TypeTopUp      TransactionType = "T"
	TypeWithdrawal TransactionType = "W"
)

// Inventory is one ledger entry of the stock history. Creating one mutates
// the referenced item's stock; updating or deleting one does not reverse it.
type Inventory struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	ItemID    uint            `gorm:"not null;index" json:"item_id" validate:"required"`
	Qty       int             `gorm:"not null" json:"qty" validate:"required,gt=0"`
	Type      TransactionType `gorm:"type:varchar(10);not null;index" json:"type" validate:"required"`
	CreatedAt time.Time       `gorm:"index" json:"created_at"`
}
