package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductCategory groups stock items of one material/profile within a branch
// (e.g. "1040 steel round bar" at the Ankara branch). FinalFields carries the
// category's resolved attribute schema values.
type ProductCategory struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string    `gorm:"index;not null"`
	ProductTypeID uuid.UUID `gorm:"type:uuid;not null;index"`
	BranchID      uuid.UUID `gorm:"type:uuid;not null;index"`
	FinalFields   FieldMap  `gorm:"type:jsonb"`
	CreatedAt     time.Time

	ProductType *ProductType `gorm:"foreignKey:ProductTypeID"`
	Branch      *Branch      `gorm:"foreignKey:BranchID"`
}

// TableName overrides GORM's pluralization (product_categories, not
// product_categorys).
func (ProductCategory) TableName() string { return "product_categories" }
