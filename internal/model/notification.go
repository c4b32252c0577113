package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an in-app message delivered to one account, usually the
// fan-out of an order event to the delivery branch's users and the admins.
type Notification struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderID          *uuid.UUID `gorm:"type:uuid;index"`
	AccountID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	DeliveryBranchID *uuid.UUID `gorm:"type:uuid;index"`
	Message          string     `gorm:"not null"`
	Read             bool       `gorm:"not null;default:false;index"`
	CreatedAt        time.Time
}
