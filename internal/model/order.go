package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the order lifecycle state.
// Created → Confirmed → Ready → Dispatched; Cancelled and Dispatched are
// terminal. SetStatus deliberately does not enforce transition legality
// (see OrderService); the cutting engine only ever drives * → Ready.
type OrderStatus string

const (
	StatusCreated    OrderStatus = "Created"
	StatusConfirmed  OrderStatus = "Confirmed"
	StatusReady      OrderStatus = "Ready"
	StatusDispatched OrderStatus = "Dispatched"
	StatusCancelled  OrderStatus = "Cancelled"
)

// Valid reports whether s is one of the five recognized states.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusCreated, StatusConfirmed, StatusReady, StatusDispatched, StatusCancelled:
		return true
	}
	return false
}

// SoldItem is one fulfilled cutting line appended to an order's ledger.
// Solid lines carry CutLength (total span, mm) and CutQuantity; count-tracked
// lines carry Quantity instead — the JSON shape mirrors that union.
type SoldItem struct {
	StockItemID   uuid.UUID `json:"stock_item_id"`
	SoldWeight    float64   `json:"total_sold_weight"`
	KgPrice       float64   `json:"kg_price"`
	TotalPrice    float64   `json:"total_price"`
	WastageWeight float64   `json:"wastage_weight"`
	WastageLength float64   `json:"wastage_length"`
	CutLength     float64   `json:"cut_length,omitempty"`
	CutQuantity   int       `json:"cut_quantity,omitempty"`
	Quantity      int       `json:"quantity,omitempty"`
}

// SoldItemList is stored as a JSONB column on orders.
type SoldItemList []SoldItem

func (l SoldItemList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]SoldItem{})
	}
	return json.Marshal(l)
}

func (l *SoldItemList) Scan(src interface{}) error {
	if src == nil {
		*l = SoldItemList{}
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("sold items: unsupported scan source")
	}
	return json.Unmarshal(data, l)
}

// Order is a customer fulfillment record. Accumulator fields are created
// zero-valued and only ever grow: the cutting engine appends sold items and
// increments totals, it never re-processes or resets. Orders are archived,
// never deleted.
type Order struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerName     string    `gorm:"index;not null"`
	GivenBranchID    uuid.UUID `gorm:"type:uuid;not null;index"`
	DeliveryBranchID uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderDate        time.Time `gorm:"index"`
	DeliveryDate     time.Time
	Status           OrderStatus  `gorm:"not null;default:'Created';index"`
	SoldItems        SoldItemList `gorm:"type:jsonb"`

	TotalPrice         float64 `gorm:"not null;default:0"`
	TotalSaleWeight    float64 `gorm:"not null;default:0"`
	TotalSaleLength    float64 `gorm:"not null;default:0"`
	TotalWastageWeight float64 `gorm:"not null;default:0"`
	TotalWastageLength float64 `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
