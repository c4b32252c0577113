package dto

import (
	"time"

	"github.com/NightFoX54/ERP-Proje/internal/model"
)

type NotificationResponse struct {
	ID        string    `json:"id"`
	OrderID   *string   `json:"order_id,omitempty"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

func NewNotificationResponse(n *model.Notification) *NotificationResponse {
	resp := &NotificationResponse{
		ID:        n.ID.String(),
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
	if n.OrderID != nil {
		s := n.OrderID.String()
		resp.OrderID = &s
	}
	return resp
}

func NewNotificationResponses(notifications []model.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(notifications))
	for i := range notifications {
		out = append(out, *NewNotificationResponse(&notifications[i]))
	}
	return out
}
