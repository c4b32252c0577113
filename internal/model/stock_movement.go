package model

import (
	"time"

	"github.com/google/uuid"
)

// StockMovement records every deduction the ledger applies to a stock item.
// One row per fulfilled cutting line; quantities are the applied deltas
// (negative = material leaving stock).
type StockMovement struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StockItemID uuid.UUID `gorm:"type:uuid;not null;index"`
	// Kind is "cut" for order fulfillment, "adjustment" for manual corrections.
	Kind          string  `gorm:"not null"`
	LengthDelta   float64 // mm, includes trim wastage
	WeightDelta   float64 // kg, includes trim wastage
	CountDelta    int
	WastageLength float64
	WastageWeight float64
	// OrderID references the order whose fulfillment caused the cut, if any.
	OrderID   *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time

	StockItem *StockItem `gorm:"foreignKey:StockItemID"`
}

// TableName keeps the table name plural without GORM guessing.
func (StockMovement) TableName() string { return "stock_movements" }
