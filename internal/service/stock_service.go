package service

import (
	"errors"
	"fmt"
	"time"

	"go-stock-api/internal/model"
	"go-stock-api/internal/repository"
	"go-stock-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Notifier receives stock events after a successful mutation commits.
// Publication is fire-and-forget and never part of the transaction.
type Notifier interface {
	Publish(event interface{})
}

type StockService interface {
	CreateItem(item *model.Item) error
	GetItem(id uint) (*model.Item, error)
	ListItems(page, size int) ([]model.Item, int64, error)
	UpdateItem(id uint, details *model.Item) (*model.Item, error)
	DeleteItem(id uint) error

	AddInventory(inv *model.Inventory) error
	GetInventory(id uint) (*model.Inventory, error)
	ListInventory(page, size int) ([]model.Inventory, int64, error)
	UpdateInventory(id uint, details *model.Inventory) (*model.Inventory, error)
	DeleteInventory(id uint) error

	PlaceOrder(order *model.Order) error
	GetOrder(id uint) (*model.Order, error)
	ListOrders(page, size int) ([]model.Order, int64, error)
	UpdateOrder(id uint, details *model.Order) (*model.Order, error)
	DeleteOrder(id uint) error

	GetDashboardStats() (*repository.DashboardStats, error)
	GetStockMovement(startDate, endDate time.Time) ([]repository.StockMovementData, error)
}

type stockService struct {
	itemRepo  repository.ItemRepository
	invRepo   repository.InventoryRepository
	orderRepo repository.OrderRepository
	store     repository.StockStore
	notifier  Notifier
}

func NewStockService(
	itemRepo repository.ItemRepository,
	invRepo repository.InventoryRepository,
	orderRepo repository.OrderRepository,
	store repository.StockStore,
	notifier Notifier,
) StockService {
	return &stockService{
		itemRepo:  itemRepo,
		invRepo:   invRepo,
		orderRepo: orderRepo,
		store:     store,
		notifier:  notifier,
	}
}

// ---------- ITEM ----------

func (s *stockService) CreateItem(item *model.Item) error {
	if err := validateStruct(item); err != nil {
		return err
	}

	// Stock is authoritative only through the inventory/order paths
	item.Stock = 0

	if err := s.itemRepo.Create(item); err != nil {
		return err
	}

	log.Info().Uint("item_id", item.ID).Str("name", item.Name).Msg("[ITEM] Item created")
	s.notify("item_created", map[string]interface{}{
		"item": map[string]interface{}{"id": item.ID, "name": item.Name, "stock": item.Stock, "price": item.Price},
	})
	return nil
}

func (s *stockService) GetItem(id uint) (*model.Item, error) {
	item, err := s.itemRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *stockService) ListItems(page, size int) ([]model.Item, int64, error) {
	return s.itemRepo.FindPage(page, size)
}

// UpdateItem replaces name and price only. Stock is never written here so
// that the inventory/order paths stay the sole writers of it.
func (s *stockService) UpdateItem(id uint, details *model.Item) (*model.Item, error) {
	item, err := s.itemRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	item.Name = details.Name
	item.Price = details.Price

	if err := validateStruct(item); err != nil {
		return nil, err
	}
	if err := s.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem is a no-op when the item is absent. Ledger and order rows that
// reference the item are not checked and remain behind.
func (s *stockService) DeleteItem(id uint) error {
	return s.itemRepo.Delete(id)
}

// ---------- INVENTORY ----------

// AddInventory records one ledger entry and applies its stock effect. The
// lock-read, sufficiency check, stock write and ledger insert run inside a
// single transaction; any failure rolls all of it back.
func (s *stockService) AddInventory(inv *model.Inventory) error {
	if err := validateStruct(inv); err != nil {
		return err
	}

	var oldStock, newStock int
	err := s.store.WithinTx(func(tx repository.StockTx) error {
		item, err := tx.ItemForUpdate(inv.ItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}

		oldStock = item.Stock
		switch inv.Type {
		case model.TypeTopUp:
			newStock = item.Stock + inv.Qty
		case model.TypeWithdrawal:
			if item.Stock < inv.Qty {
				log.Warn().Uint("item_id", item.ID).Int("stock", item.Stock).Int("qty", inv.Qty).
					Msg("[INVENTORY] Insufficient stock for withdrawal")
				return ErrInsufficientStock
			}
			newStock = item.Stock - inv.Qty
		default:
			log.Error().Str("type", string(inv.Type)).Msg("[INVENTORY] Invalid transaction type")
			return ErrInvalidTransactionType
		}

		if err := tx.SaveItemStock(item.ID, newStock); err != nil {
			return err
		}
		return tx.CreateInventory(inv)
	})
	if err != nil {
		return err
	}

	log.Info().Uint("inventory_id", inv.ID).Uint("item_id", inv.ItemID).Str("type", string(inv.Type)).
		Int("old_stock", oldStock).Int("new_stock", newStock).Msg("[INVENTORY] Transaction recorded")
	s.notify("inventory_recorded", map[string]interface{}{
		"transaction": map[string]interface{}{
			"id": inv.ID, "item_id": inv.ItemID, "type": inv.Type, "qty": inv.Qty, "new_stock": newStock,
		},
	})
	return nil
}

func (s *stockService) GetInventory(id uint) (*model.Inventory, error) {
	inv, err := s.invRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInventoryNotFound
		}
		return nil, err
	}
	return inv, nil
}

func (s *stockService) ListInventory(page, size int) ([]model.Inventory, int64, error) {
	return s.invRepo.FindPage(page, size)
}

// UpdateInventory replaces the row's fields without re-applying any stock
// delta. The ledger can therefore drift from the item's actual stock; this
// mirrors the historical behavior and is pinned by tests.
func (s *stockService) UpdateInventory(id uint, details *model.Inventory) (*model.Inventory, error) {
	inv, err := s.invRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInventoryNotFound
		}
		return nil, err
	}

	inv.ItemID = details.ItemID
	inv.Qty = details.Qty
	inv.Type = details.Type

	if err := validateStruct(inv); err != nil {
		return nil, err
	}
	if err := s.invRepo.Update(inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// DeleteInventory removes the ledger row. The stock effect it once applied
// stays in place.
func (s *stockService) DeleteInventory(id uint) error {
	if err := s.invRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInventoryNotFound
		}
		return err
	}
	return nil
}

// ---------- ORDER ----------

// PlaceOrder decrements the item's stock and persists the order atomically.
// A duplicate order number rolls the decrement back.
func (s *stockService) PlaceOrder(order *model.Order) error {
	if order.OrderNo == "" {
		order.OrderNo = uuid.NewString()
	}
	if err := validateStruct(order); err != nil {
		return err
	}

	var newStock int
	err := s.store.WithinTx(func(tx repository.StockTx) error {
		item, err := tx.ItemForUpdate(order.ItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}

		if item.Stock < order.Qty {
			log.Warn().Str("order_no", order.OrderNo).Uint("item_id", item.ID).
				Int("stock", item.Stock).Int("qty", order.Qty).Msg("[ORDER] Insufficient stock")
			return ErrInsufficientStock
		}

		newStock = item.Stock - order.Qty
		if err := tx.SaveItemStock(item.ID, newStock); err != nil {
			return err
		}
		if err := tx.CreateOrder(order); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateOrderNo
			}
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info().Str("order_no", order.OrderNo).Uint("item_id", order.ItemID).
		Int("qty", order.Qty).Int("new_stock", newStock).Msg("[ORDER] Order placed")
	s.notify("order_placed", map[string]interface{}{
		"order": map[string]interface{}{
			"id": order.ID, "order_no": order.OrderNo, "item_id": order.ItemID, "qty": order.Qty, "new_stock": newStock,
		},
	})
	return nil
}

func (s *stockService) GetOrder(id uint) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *stockService) ListOrders(page, size int) ([]model.Order, int64, error) {
	return s.orderRepo.FindPage(page, size)
}

// UpdateOrder replaces qty and price without adjusting stock.
func (s *stockService) UpdateOrder(id uint, details *model.Order) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	order.Qty = details.Qty
	order.Price = details.Price

	if err := validateStruct(order); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}

// DeleteOrder removes the order row without restoring stock.
func (s *stockService) DeleteOrder(id uint) error {
	if err := s.orderRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	return nil
}

// ---------- DASHBOARD ----------

func (s *stockService) GetDashboardStats() (*repository.DashboardStats, error) {
	return s.invRepo.GetDashboardStats()
}

func (s *stockService) GetStockMovement(startDate, endDate time.Time) ([]repository.StockMovementData, error) {
	return s.invRepo.GetStockMovement(startDate, endDate)
}

// ---------- helpers ----------

func validateStruct(data interface{}) error {
	if errs := validator.ValidateStruct(data); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, first.FailedField, first.Tag)
	}
	return nil
}

func (s *stockService) notify(action string, payload map[string]interface{}) {
	if s.notifier == nil {
		return
	}
	event := map[string]interface{}{
		"type":   "stock_update",
		"action": action,
	}
	for k, v := range payload {
		event[k] = v
	}
	go s.notifier.Publish(event)
}
