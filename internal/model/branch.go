package model

import (
	"time"

	"github.com/google/uuid"
)

// Branch is a physical location scoping stock and orders. Branches with
// StockEnabled=false take orders but hold no material of their own.
type Branch struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"uniqueIndex;not null"`
	StockEnabled bool      `gorm:"not null"`
	CreatedAt    time.Time
}

// TableName overrides GORM's default (branchs).
func (Branch) TableName() string { return "branches" }
