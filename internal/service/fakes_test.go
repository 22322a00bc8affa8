package service

import (
	"sort"
	"sync"
	"time"

	"go-stock-api/internal/model"
	"go-stock-api/internal/repository"

	"gorm.io/gorm"
)

// memBackend is a mutex-guarded in-memory stand-in for the Postgres store.
// WithinTx holds the mutex for the whole transaction, so concurrent stock
// mutations serialize exactly as they would on the locked item row.
type memBackend struct {
	mu          sync.Mutex
	items       map[uint]model.Item
	invs        map[uint]model.Inventory
	orders      map[uint]model.Order
	nextItemID  uint
	nextInvID   uint
	nextOrderID uint
}

func newMemBackend() *memBackend {
	return &memBackend{
		items:  make(map[uint]model.Item),
		invs:   make(map[uint]model.Inventory),
		orders: make(map[uint]model.Order),
	}
}

func (b *memBackend) addItem(name string, price float64, stock int) uint {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextItemID++
	b.items[b.nextItemID] = model.Item{ID: b.nextItemID, Name: name, Price: price, Stock: stock}
	return b.nextItemID
}

func (b *memBackend) itemStock(id uint) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.items[id].Stock
}

func (b *memBackend) inventoryCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.invs)
}

func (b *memBackend) orderCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.orders)
}

type memSnapshot struct {
	items       map[uint]model.Item
	invs        map[uint]model.Inventory
	orders      map[uint]model.Order
	nextInvID   uint
	nextOrderID uint
}

func (b *memBackend) snapshot() memSnapshot {
	snap := memSnapshot{
		items:       make(map[uint]model.Item, len(b.items)),
		invs:        make(map[uint]model.Inventory, len(b.invs)),
		orders:      make(map[uint]model.Order, len(b.orders)),
		nextInvID:   b.nextInvID,
		nextOrderID: b.nextOrderID,
	}
	for k, v := range b.items {
		snap.items[k] = v
	}
	for k, v := range b.invs {
		snap.invs[k] = v
	}
	for k, v := range b.orders {
		snap.orders[k] = v
	}
	return snap
}

func (b *memBackend) restore(snap memSnapshot) {
	b.items = snap.items
	b.invs = snap.invs
	b.orders = snap.orders
	b.nextInvID = snap.nextInvID
	b.nextOrderID = snap.nextOrderID
}

// ---------- StockStore ----------

type memStockStore struct {
	b *memBackend
}

func (s *memStockStore) WithinTx(fn func(repository.StockTx) error) error {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()

	snap := s.b.snapshot()
	if err := fn(&memStockTx{s.b}); err != nil {
		s.b.restore(snap)
		return err
	}
	return nil
}

type memStockTx struct {
	b *memBackend
}

func (t *memStockTx) ItemForUpdate(id uint) (*model.Item, error) {
	item, ok := t.b.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &item, nil
}

func (t *memStockTx) SaveItemStock(id uint, newStock int) error {
	item, ok := t.b.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	item.Stock = newStock
	t.b.items[id] = item
	return nil
}

func (t *memStockTx) CreateInventory(inv *model.Inventory) error {
	t.b.nextInvID++
	inv.ID = t.b.nextInvID
	inv.CreatedAt = time.Now()
	t.b.invs[inv.ID] = *inv
	return nil
}

func (t *memStockTx) CreateOrder(order *model.Order) error {
	for _, existing := range t.b.orders {
		if existing.OrderNo == order.OrderNo {
			return gorm.ErrDuplicatedKey
		}
	}
	t.b.nextOrderID++
	order.ID = t.b.nextOrderID
	order.CreatedAt = time.Now()
	t.b.orders[order.ID] = *order
	return nil
}

// ---------- Repositories ----------

type memItemRepo struct {
	b *memBackend
}

func (r *memItemRepo) Create(item *model.Item) error {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	r.b.nextItemID++
	item.ID = r.b.nextItemID
	item.CreatedAt = time.Now()
	r.b.items[item.ID] = *item
	return nil
}

func (r *memItemRepo) FindPage(page, size int) ([]model.Item, int64, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	all := make([]model.Item, 0, len(r.b.items))
	for _, item := range r.b.items {
		all = append(all, item)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return slicePage(all, page, size), int64(len(all)), nil
}

func (r *memItemRepo) FindByID(id uint) (*model.Item, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	item, ok := r.b.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &item, nil
}

func (r *memItemRepo) Update(item *model.Item) error {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	r.b.items[item.ID] = *item
	return nil
}

func (r *memItemRepo) Delete(id uint) error {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	delete(r.b.items, id)
	return nil
}

type memInventoryRepo struct {
	b *memBackend
}

func (r *memInventoryRepo) FindPage(page, size int) ([]model.Inventory, int64, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	all := make([]model.Inventory, 0, len(r.b.invs))
	for _, inv := range r.b.invs {
		all = append(all, inv)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	return slicePage(all, page, size), int64(len(all)), nil
}

func (r *memInventoryRepo) FindByID(id uint) (*model.Inventory, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	inv, ok := r.b.invs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &inv, nil
}

func (r *memInventoryRepo) Update(inv *model.Inventory) error {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	r.b.invs[inv.ID] = *inv
	return nil
}

func (r *memInventoryRepo) Delete(id uint) error {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	if _, ok := r.b.invs[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.b.invs, id)
	return nil
}

func (r *memInventoryRepo) GetDashboardStats() (*repository.DashboardStats, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	stats := &repository.DashboardStats{}
	for _, item := range r.b.items {
		stats.TotalItems++
		if item.Stock < 10 {
			stats.LowStockCount++
		}
		stats.StockValuation += float64(item.Stock) * item.Price
	}
	return stats, nil
}

func (r *memInventoryRepo) GetStockMovement(startDate, endDate time.Time) ([]repository.StockMovementData, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	byDate := make(map[string]*repository.StockMovementData)
	for _, inv := range r.b.invs {
		if inv.CreatedAt.Before(startDate) || inv.CreatedAt.After(endDate) {
			continue
		}
		date := inv.CreatedAt.Format("2006-01-02")
		data, ok := byDate[date]
		if !ok {
			data = &repository.StockMovementData{Date: date}
			byDate[date] = data
		}
		if inv.Type == model.TypeTopUp {
			data.Inbound += inv.Qty
		} else if inv.Type == model.TypeWithdrawal {
			data.Outbound += inv.Qty
		}
	}
	results := make([]repository.StockMovementData, 0, len(byDate))
	for _, data := range byDate {
		results = append(results, *data)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Date < results[j].Date })
	return results, nil
}

type memOrderRepo struct {
	b *memBackend
}

func (r *memOrderRepo) FindPage(page, size int) ([]model.Order, int64, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	all := make([]model.Order, 0, len(r.b.orders))
	for _, order := range r.b.orders {
		all = append(all, order)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	return slicePage(all, page, size), int64(len(all)), nil
}

func (r *memOrderRepo) FindByID(id uint) (*model.Order, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	order, ok := r.b.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &order, nil
}

func (r *memOrderRepo) Update(order *model.Order) error {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	r.b.orders[order.ID] = *order
	return nil
}

func (r *memOrderRepo) Delete(id uint) error {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	if _, ok := r.b.orders[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.b.orders, id)
	return nil
}

func slicePage[T any](all []T, page, size int) []T {
	start := page * size
	if start >= len(all) {
		return []T{}
	}
	end := start + size
	if end > len(all) {
		end = len(all)
	}
	return all[start:end]
}

// ---------- Notifier ----------

type captureNotifier struct {
	ch chan map[string]interface{}
}

func newCaptureNotifier() *captureNotifier {
	return &captureNotifier{ch: make(chan map[string]interface{}, 64)}
}

func (n *captureNotifier) Publish(event interface{}) {
	if m, ok := event.(map[string]interface{}); ok {
		n.ch <- m
	}
}

// ---------- Harness ----------

type testEnv struct {
	backend  *memBackend
	svc      StockService
	notifier *captureNotifier
}

func newTestEnv() *testEnv {
	b := newMemBackend()
	n := newCaptureNotifier()
	svc := NewStockService(&memItemRepo{b}, &memInventoryRepo{b}, &memOrderRepo{b}, &memStockStore{b}, n)
	return &testEnv{backend: b, svc: svc, notifier: n}
}
