package repository

import (
	"go-stock-api/internal/model"

	"gorm.io/gorm"
)

type OrderRepository interface {
	FindPage(page, size int) ([]model.Order, int64, error)
	FindByID(id uint) (*model.Order, error)
	Update(order *model.Order) error
	Delete(id uint) error
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) OrderRepository {
	return &orderRepo{db}
}

func (r *orderRepo) FindPage(page, size int) ([]model.Order, int64, error) {
	var orders []model.Order
	var total int64

	if err := r.db.Model(&model.Order{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Order("created_at DESC").Offset(page * size).Limit(size).Find(&orders).Error
	return orders, total, err
}

func (r *orderRepo) FindByID(id uint) (*model.Order, error) {
	var order model.Order
	err := r.db.First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepo) Update(order *model.Order) error {
	return r.db.Save(order).Error
}

func (r *orderRepo) Delete(id uint) error {
	res := r.db.Delete(&model.Order{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
