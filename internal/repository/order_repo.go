package repository

import (
	"context"
	"time"

	"github.com/NightFoX54/ERP-Proje/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderRepository defines the data access contract for orders.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via in-memory stubs.
type OrderRepository interface {
	Create(ctx context.Context, o *model.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	// List returns all orders, newest order date first.
	List(ctx context.Context) ([]model.Order, error)
	ListByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error)
	ListByOrderDateBetween(ctx context.Context, start, end time.Time) ([]model.Order, error)
	Save(ctx context.Context, o *model.Order) error
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) OrderRepository { return &orderRepo{db: db} }

func (r *orderRepo) Create(ctx context.Context, o *model.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *orderRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).First(&o, id).Error
	return &o, err
}

func (r *orderRepo) List(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).Order("order_date DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepo) ListByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).Where("status = ?", status).Order("order_date DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepo) ListByOrderDateBetween(ctx context.Context, start, end time.Time) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Where("order_date BETWEEN ? AND ?", start, end).
		Order("order_date DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepo) Save(ctx context.Context, o *model.Order) error {
	return r.db.WithContext(ctx).Save(o).Error
}
