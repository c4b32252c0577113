package service

import (
	"context"

	"github.com/NightFoX54/ERP-Proje/internal/model"
	"github.com/NightFoX54/ERP-Proje/internal/repository"

	"github.com/google/uuid"
)

// NotificationService is the read side of in-app notifications. Creation
// happens asynchronously in the worker pool during order fan-out.
type NotificationService interface {
	ListForAccount(ctx context.Context, accountID uuid.UUID) ([]model.Notification, error)
	ListUnreadForAccount(ctx context.Context, accountID uuid.UUID) ([]model.Notification, error)
	MarkRead(ctx context.Context, accountID, notificationID uuid.UUID) error
}

type notificationService struct {
	notifications repository.NotificationRepository
}

func NewNotificationService(notifications repository.NotificationRepository) NotificationService {
	return &notificationService{notifications: notifications}
}

func (s *notificationService) ListForAccount(ctx context.Context, accountID uuid.UUID) ([]model.Notification, error) {
	return s.notifications.ListByAccount(ctx, accountID)
}

func (s *notificationService) ListUnreadForAccount(ctx context.Context, accountID uuid.UUID) ([]model.Notification, error) {
	return s.notifications.ListUnreadByAccount(ctx, accountID)
}

// MarkRead is scoped to the caller — an account can only touch its own rows.
func (s *notificationService) MarkRead(ctx context.Context, accountID, notificationID uuid.UUID) error {
	return s.notifications.MarkRead(ctx, accountID, notificationID)
}
