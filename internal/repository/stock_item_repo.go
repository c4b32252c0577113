package repository

import (
	"context"
	"time"

	"github.com/NightFoX54/ERP-Proje/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StockItemRepository is the data access contract for stock lots.
type StockItemRepository interface {
	Create(ctx context.Context, item *model.StockItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.StockItem, error)
	List(ctx context.Context) ([]model.StockItem, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]model.StockItem, error)
	ListByCategoryAndDiameter(ctx context.Context, categoryID uuid.UUID, diameter int) ([]model.StockItem, error)
	ListCreatedBetween(ctx context.Context, start, end time.Time) ([]model.StockItem, error)
	Save(ctx context.Context, item *model.StockItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByCategory(ctx context.Context, categoryID uuid.UUID) error
}

type stockItemRepo struct{ db *gorm.DB }

func NewStockItemRepository(db *gorm.DB) StockItemRepository { return &stockItemRepo{db: db} }

func (r *stockItemRepo) Create(ctx context.Context, item *model.StockItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *stockItemRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.StockItem, error) {
	var item model.StockItem
	err := r.db.WithContext(ctx).First(&item, id).Error
	return &item, err
}

func (r *stockItemRepo) List(ctx context.Context) ([]model.StockItem, error) {
	var items []model.StockItem
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *stockItemRepo) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]model.StockItem, error) {
	var items []model.StockItem
	err := r.db.WithContext(ctx).Where("product_category_id = ?", categoryID).Find(&items).Error
	return items, err
}

func (r *stockItemRepo) ListByCategoryAndDiameter(ctx context.Context, categoryID uuid.UUID, diameter int) ([]model.StockItem, error) {
	var items []model.StockItem
	err := r.db.WithContext(ctx).
		Where("product_category_id = ? AND diameter = ?", categoryID, diameter).
		Find(&items).Error
	return items, err
}

func (r *stockItemRepo) ListCreatedBetween(ctx context.Context, start, end time.Time) ([]model.StockItem, error) {
	var items []model.StockItem
	err := r.db.WithContext(ctx).
		Where("created_at BETWEEN ? AND ?", start, end).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *stockItemRepo) Save(ctx context.Context, item *model.StockItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *stockItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.StockItem{}, id).Error
}

func (r *stockItemRepo) DeleteByCategory(ctx context.Context, categoryID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("product_category_id = ?", categoryID).
		Delete(&model.StockItem{}).Error
}
