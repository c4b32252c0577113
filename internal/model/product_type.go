package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileSolid is the product type name for solid bar/rod stock ("Dolu").
// Solid items are tracked by continuous length and incur trim wastage when
// cut; every other profile is tracked by discrete piece count.
const ProfileSolid = "Dolu"

// ProductType classifies a category of stock by physical profile.
// Reference data: created by admins, read by the cutting engine, never
// mutated by it.
type ProductType struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name           string    `gorm:"uniqueIndex;not null"`
	RequiredFields FieldMap  `gorm:"type:jsonb"`
	CreatedAt      time.Time
}

// Solid reports whether items of this type are length-tracked.
func (t *ProductType) Solid() bool { return t.Name == ProfileSolid }
