package worker

// notification_worker.go
// Processes order-creation fan-out jobs from QueueNotifications: one
// in-app notification row per delivery-branch account and per admin, plus
// an email job for every account that has an address on file.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/NightFoX54/ERP-Proje/internal/model"
	"github.com/NightFoX54/ERP-Proje/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// OrderCreatedPayload is the job envelope sent to QueueNotifications.
type OrderCreatedPayload struct {
	OrderID          string `json:"order_id"`
	CustomerName     string `json:"customer_name"`
	DeliveryBranchID string `json:"delivery_branch_id"`
}

type NotificationWorker struct {
	accounts      repository.AccountRepository
	notifications repository.NotificationRepository
	dispatcher    *Dispatcher
}

func NewNotificationWorker(
	accounts repository.AccountRepository,
	notifications repository.NotificationRepository,
	dispatcher *Dispatcher,
) *NotificationWorker {
	return &NotificationWorker{accounts: accounts, notifications: notifications, dispatcher: dispatcher}
}

// Process fans one order-created event out to branch users and admins.
// Failures on individual recipients are logged and skipped — a broken
// account must not starve the rest of the branch of the notification.
func (w *NotificationWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload OrderCreatedPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("notification_worker: invalid payload")
		return
	}
	orderID, err := uuid.Parse(payload.OrderID)
	if err != nil {
		log.Error().Str("order_id", payload.OrderID).Msg("notification_worker: bad order id")
		return
	}
	branchID, err := uuid.Parse(payload.DeliveryBranchID)
	if err != nil {
		log.Error().Str("branch_id", payload.DeliveryBranchID).Msg("notification_worker: bad branch id")
		return
	}

	recipients, err := w.accounts.ListByBranch(ctx, branchID)
	if err != nil {
		log.Error().Err(err).Msg("notification_worker: list branch accounts")
		return
	}
	admins, err := w.accounts.ListByRole(ctx, model.RoleAdmin)
	if err != nil {
		log.Error().Err(err).Msg("notification_worker: list admins")
		return
	}

	message := fmt.Sprintf("New order created for customer %s.", payload.CustomerName)

	seen := make(map[uuid.UUID]bool, len(recipients)+len(admins))
	for _, account := range append(recipients, admins...) {
		if seen[account.ID] {
			continue
		}
		seen[account.ID] = true

		n := &model.Notification{
			OrderID:          &orderID,
			AccountID:        account.ID,
			DeliveryBranchID: &branchID,
			Message:          message,
		}
		if err := w.notifications.Create(ctx, n); err != nil {
			log.Error().Err(err).Str("account", account.ID.String()).Msg("notification_worker: create notification")
			continue
		}

		if account.Email != nil && *account.Email != "" {
			_ = w.dispatcher.EnqueueEmail(ctx, EmailJobPayload{
				ToEmail: *account.Email,
				Subject: "New order",
				Body:    message,
			})
		}
	}

	log.Info().
		Str("order_id", payload.OrderID).
		Int("recipients", len(seen)).
		Msg("notification_worker: order fan-out complete")
}
