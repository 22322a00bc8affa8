package repository

import (
	"go-stock-api/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StockTx is the view a stock mutation sees inside one database transaction.
// Everything done through it commits or rolls back as a unit.
type StockTx interface {
	// ItemForUpdate reads the item row under a row lock, so concurrent
	// stock mutations against the same item serialize on the database.
	ItemForUpdate(id uint) (*model.Item, error)
	SaveItemStock(id uint, newStock int) error
	CreateInventory(inv *model.Inventory) error
	CreateOrder(order *model.Order) error
}

// StockStore runs stock mutations inside a single transaction. Returning an
// error from fn aborts the whole unit and leaves prior state unchanged.
type StockStore interface {
	WithinTx(fn func(tx StockTx) error) error
}

type gormStockStore struct {
	db *gorm.DB
}

func NewStockStore(db *gorm.DB) StockStore {
	return &gormStockStore{db}
}

func (s *gormStockStore) WithinTx(fn func(tx StockTx) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&gormStockTx{tx})
	})
}

type gormStockTx struct {
	tx *gorm.DB
}

func (t *gormStockTx) ItemForUpdate(id uint) (*model.Item, error) {
	var item model.Item
	// SELECT ... FOR UPDATE: the lock is held until the surrounding
	// transaction ends
	if err := t.tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (t *gormStockTx) SaveItemStock(id uint, newStock int) error {
	return t.tx.Model(&model.Item{}).
		Where("id = ?", id).
		Update("stock", newStock).Error
}

func (t *gormStockTx) CreateInventory(inv *model.Inventory) error {
	return t.tx.Create(inv).Error
}

// CreateOrder surfaces a unique-constraint violation on order_no as
// gorm.ErrDuplicatedKey (driver error translation is enabled in pkg/database).
func (t *gormStockTx) CreateOrder(order *model.Order) error {
	return t.tx.Create(order).Error
}
