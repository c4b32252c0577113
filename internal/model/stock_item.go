package model

import (
	"time"

	"github.com/google/uuid"
)

// StockItem is one physical lot of material: a bundle of bars of the same
// diameter bought together, or a count of discrete pieces for non-solid
// profiles. Remaining quantities are mutated exclusively by the stock ledger;
// the Purchase* fields are an immutable acquisition snapshot.
type StockItem struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductCategoryID uuid.UUID `gorm:"type:uuid;not null;index"`
	// Diameter in mm — meaningful only for solid profiles.
	Diameter int
	// Length is the remaining length in mm for length-tracked items.
	Length float64
	// Weight is the remaining weight in kg.
	Weight float64
	// Stock is the remaining piece count for count-tracked items.
	Stock int
	// KgPrice is the unit sale price per kg.
	KgPrice       float64
	PurchasePrice float64
	// Acquisition snapshot, set once at intake.
	PurchaseLength float64
	PurchaseWeight float64
	PurchaseStock  int
	Fields         FieldMap `gorm:"type:jsonb"`
	Active         bool     `gorm:"not null;default:true;index"`
	CreatedAt      time.Time

	ProductCategory *ProductCategory `gorm:"foreignKey:ProductCategoryID"`
}
