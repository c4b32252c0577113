package repository

import (
	"context"

	"github.com/NightFoX54/ERP-Proje/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationRepository is the data access contract for in-app notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *model.Notification) error
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]model.Notification, error)
	ListUnreadByAccount(ctx context.Context, accountID uuid.UUID) ([]model.Notification, error)
	ListByDeliveryBranch(ctx context.Context, branchID uuid.UUID) ([]model.Notification, error)
	MarkRead(ctx context.Context, accountID, id uuid.UUID) error
}

type notificationRepo struct{ db *gorm.DB }

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) Create(ctx context.Context, n *model.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *notificationRepo) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]model.Notification, error) {
	var ns []model.Notification
	err := r.db.WithContext(ctx).Where("account_id = ?", accountID).Order("created_at DESC").Find(&ns).Error
	return ns, err
}

func (r *notificationRepo) ListUnreadByAccount(ctx context.Context, accountID uuid.UUID) ([]model.Notification, error) {
	var ns []model.Notification
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND read = false", accountID).
		Order("created_at DESC").
		Find(&ns).Error
	return ns, err
}

func (r *notificationRepo) ListByDeliveryBranch(ctx context.Context, branchID uuid.UUID) ([]model.Notification, error) {
	var ns []model.Notification
	err := r.db.WithContext(ctx).Where("delivery_branch_id = ?", branchID).Order("created_at DESC").Find(&ns).Error
	return ns, err
}

func (r *notificationRepo) MarkRead(ctx context.Context, accountID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("id = ? AND account_id = ?", id, accountID).
		Update("read", true).Error
}
