package repository

import (
	"go-stock-api/internal/model"

	"gorm.io/gorm"
)

type ItemRepository interface {
	Create(item *model.Item) error
	FindPage(page, size int) ([]model.Item, int64, error)
	FindByID(id uint) (*model.Item, error)
	Update(item *model.Item) error
	Delete(id uint) error
}

type itemRepo struct {
	db *gorm.DB
}

func NewItemRepo(db *gorm.DB) ItemRepository {
	return &itemRepo{db}
}

func (r *itemRepo) Create(item *model.Item) error {
	return r.db.Create(item).Error
}

func (r *itemRepo) FindPage(page, size int) ([]model.Item, int64, error) {
	var items []model.Item
	var total int64

	if err := r.db.Model(&model.Item{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Order("id ASC").Offset(page * size).Limit(size).Find(&items).Error
	return items, total, err
}

func (r *itemRepo) FindByID(id uint) (*model.Item, error) {
	var item model.Item
	err := r.db.First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepo) Update(item *model.Item) error {
	return r.db.Save(item).Error
}

// Delete is a no-op when the row is absent. Historical inventory and order
// rows referencing the item are left in place.
func (r *itemRepo) Delete(id uint) error {
	return r.db.Delete(&model.Item{}, "id = ?", id).Error
}
