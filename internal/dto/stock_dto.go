package dto

import (
	"time"

	"github.com/NightFoX54/ERP-Proje/internal/model"
)

// CreateStockItemRequest registers one acquired lot. Exactly one of KgPrice
// or PurchasePrice may be omitted — the missing one is derived from the
// other at intake.
type CreateStockItemRequest struct {
	ProductCategoryID string         `json:"product_category_id" validate:"required,uuid"`
	Diameter          int            `json:"diameter"            validate:"min=0"`
	Length            float64        `json:"length"              validate:"min=0"`
	Weight            float64        `json:"weight"              validate:"required,gt=0"`
	Stock             int            `json:"stock"               validate:"min=0"`
	KgPrice           *float64       `json:"kg_price"            validate:"omitempty,min=0"`
	PurchasePrice     *float64       `json:"purchase_price"      validate:"omitempty,min=0"`
	Fields            model.FieldMap `json:"fields"`
}

// UpdateStockItemRequest patches mutable lot attributes. Nil means "leave
// as is"; the purchase snapshot is never touched.
type UpdateStockItemRequest struct {
	Diameter *int           `json:"diameter" validate:"omitempty,min=0"`
	Length   *float64       `json:"length"   validate:"omitempty,min=0"`
	Weight   *float64       `json:"weight"   validate:"omitempty,min=0"`
	Stock    *int           `json:"stock"    validate:"omitempty,min=0"`
	KgPrice  *float64       `json:"kg_price" validate:"omitempty,min=0"`
	Fields   model.FieldMap `json:"fields"`
	Active   *bool          `json:"active"`
}

type StockItemResponse struct {
	ID                string         `json:"id"`
	ProductCategoryID string         `json:"product_category_id"`
	Diameter          int            `json:"diameter"`
	Length            float64        `json:"length"`
	Weight            float64        `json:"weight"`
	Stock             int            `json:"stock"`
	KgPrice           float64        `json:"kg_price"`
	PurchasePrice     float64        `json:"purchase_price"`
	PurchaseLength    float64        `json:"purchase_length"`
	PurchaseWeight    float64        `json:"purchase_weight"`
	PurchaseStock     int            `json:"purchase_stock"`
	Fields            model.FieldMap `json:"fields"`
	Active            bool           `json:"active"`
	CreatedAt         time.Time      `json:"created_at"`
}

func NewStockItemResponse(item *model.StockItem) *StockItemResponse {
	return &StockItemResponse{
		ID:                item.ID.String(),
		ProductCategoryID: item.ProductCategoryID.String(),
		Diameter:          item.Diameter,
		Length:            item.Length,
		Weight:            item.Weight,
		Stock:             item.Stock,
		KgPrice:           item.KgPrice,
		PurchasePrice:     item.PurchasePrice,
		PurchaseLength:    item.PurchaseLength,
		PurchaseWeight:    item.PurchaseWeight,
		PurchaseStock:     item.PurchaseStock,
		Fields:            item.Fields,
		Active:            item.Active,
		CreatedAt:         item.CreatedAt,
	}
}

func NewStockItemResponses(items []model.StockItem) []StockItemResponse {
	out := make([]StockItemResponse, 0, len(items))
	for i := range items {
		out = append(out, *NewStockItemResponse(&items[i]))
	}
	return out
}

type CreateCategoryRequest struct {
	Name          string         `json:"name"            validate:"required"`
	ProductTypeID string         `json:"product_type_id" validate:"required,uuid"`
	BranchID      string         `json:"branch_id"       validate:"required,uuid"`
	FinalFields   model.FieldMap `json:"final_fields"`
}

type CategoryResponse struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	ProductTypeID string         `json:"product_type_id"`
	BranchID      string         `json:"branch_id"`
	FinalFields   model.FieldMap `json:"final_fields"`
}

func NewCategoryResponse(c *model.ProductCategory) *CategoryResponse {
	return &CategoryResponse{
		ID:            c.ID.String(),
		Name:          c.Name,
		ProductTypeID: c.ProductTypeID.String(),
		BranchID:      c.BranchID.String(),
		FinalFields:   c.FinalFields,
	}
}

type CreateProductTypeRequest struct {
	Name           string         `json:"name" validate:"required"`
	RequiredFields model.FieldMap `json:"required_fields"`
}

type ProductTypeResponse struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	RequiredFields model.FieldMap `json:"required_fields"`
}

func NewProductTypeResponse(t *model.ProductType) *ProductTypeResponse {
	return &ProductTypeResponse{
		ID:             t.ID.String(),
		Name:           t.Name,
		RequiredFields: t.RequiredFields,
	}
}
