package repository

import (
	"time"

	"go-stock-api/internal/model"

	"gorm.io/gorm"
)

// StockMovementData untuk chart data
type StockMovementData struct {
	Date     string `json:"date"`
	Inbound  int    `json:"inbound"`
	Outbound int    `json:"outbound"`
}

// DashboardStats untuk overview stats
type DashboardStats struct {
	TotalItems     int64   `json:"total_items"`
	LowStockCount  int64   `json:"low_stock_count"`
	StockValuation float64 `json:"stock_valuation"`
}

type InventoryRepository interface {
	FindPage(page, size int) ([]model.Inventory, int64, error)
	FindByID(id uint) (*model.Inventory, error)
	Update(inv *model.Inventory) error
	Delete(id uint) error
	GetDashboardStats() (*DashboardStats, error)
	GetStockMovement(startDate, endDate time.Time) ([]StockMovementData, error)
}

type inventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepo(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db}
}

func (r *inventoryRepo) FindPage(page, size int) ([]model.Inventory, int64, error) {
	var transactions []model.Inventory
	var total int64

	if err := r.db.Model(&model.Inventory{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Order("created_at DESC").Offset(page * size).Limit(size).Find(&transactions).Error
	return transactions, total, err
}

func (r *inventoryRepo) FindByID(id uint) (*model.Inventory, error) {
	var transaction model.Inventory
	err := r.db.First(&transaction, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *inventoryRepo) Update(inv *model.Inventory) error {
	return r.db.Save(inv).Error
}

func (r *inventoryRepo) Delete(id uint) error {
	res := r.db.Delete(&model.Inventory{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *inventoryRepo) GetDashboardStats() (*DashboardStats, error) {
	var stats DashboardStats

	if err := r.db.Model(&model.Item{}).Count(&stats.TotalItems).Error; err != nil {
		return nil, err
	}

	// Low Stock Count (stock < 10)
	if err := r.db.Model(&model.Item{}).Where("stock < ?", 10).Count(&stats.LowStockCount).Error; err != nil {
		return nil, err
	}

	// Total Valuation (SUM of stock * price)
	if err := r.db.Model(&model.Item{}).Select("COALESCE(SUM(stock * price), 0)").Scan(&stats.StockValuation).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}

func (r *inventoryRepo) GetStockMovement(startDate, endDate time.Time) ([]StockMovementData, error) {
	var results []StockMovementData

	// Aggregate ledger entries per day
	rows, err := r.db.Model(&model.Inventory{}).
		Select(`
			DATE(created_at) as date,
			COALESCE(SUM(CASE WHEN type = 'T' THEN qty ELSE 0 END), 0) as inbound,
			COALESCE(SUM(CASE WHEN type = 'W' THEN qty ELSE 0 END), 0) as outbound
		`).
		Where("created_at BETWEEN ? AND ?", startDate, endDate).
		Group("DATE(created_at)").
		Order("date ASC").
		Rows()

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var data StockMovementData
		if err := rows.Scan(&data.Date, &data.Inbound, &data.Outbound); err != nil {
			return nil, err
		}
		results = append(results, data)
	}

	return results, nil
}
