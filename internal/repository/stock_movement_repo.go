package repository

import (
	"context"

	"github.com/NightFoX54/ERP-Proje/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StockMovementRepository is the data access contract for the per-deduction
// audit trail.
type StockMovementRepository interface {
	Create(ctx context.Context, m *model.StockMovement) error
	ListByItem(ctx context.Context, itemID uuid.UUID) ([]model.StockMovement, error)
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]model.StockMovement, error)
}

type stockMovementRepo struct{ db *gorm.DB }

func NewStockMovementRepository(db *gorm.DB) StockMovementRepository {
	return &stockMovementRepo{db: db}
}

func (r *stockMovementRepo) Create(ctx context.Context, m *model.StockMovement) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *stockMovementRepo) ListByItem(ctx context.Context, itemID uuid.UUID) ([]model.StockMovement, error) {
	var ms []model.StockMovement
	err := r.db.WithContext(ctx).Where("stock_item_id = ?", itemID).Order("created_at DESC").Find(&ms).Error
	return ms, err
}

func (r *stockMovementRepo) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]model.StockMovement, error) {
	var ms []model.StockMovement
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("created_at ASC").Find(&ms).Error
	return ms, err
}
