package dto

import (
	"time"

	"github.com/NightFoX54/ERP-Proje/internal/model"
)

// CuttingRequest is one line of a fulfillment batch. TotalCutWeight is
// precomputed by the caller (requested quantity × unit weight) and trusted.
// CutLength is absent for count-tracked profiles.
type CuttingRequest struct {
	StockItemID    string  `json:"stock_item_id"    validate:"required,uuid"`
	Quantity       int     `json:"quantity"         validate:"required,min=1"`
	CutLength      *int    `json:"cut_length"       validate:"omitempty,min=1"`
	TotalCutWeight float64 `json:"total_cut_weight" validate:"required,gt=0"`
	KgPrice        float64 `json:"kg_price"         validate:"min=0"`
}

// FulfillOrderRequest carries the ordered batch of cutting lines.
// An empty batch is legal — it still drives the order to Ready.
type FulfillOrderRequest struct {
	CuttingInfo []CuttingRequest `json:"cutting_info" validate:"dive"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type CreateOrderRequest struct {
	CustomerName     string    `json:"customer_name"      validate:"required"`
	GivenBranchID    string    `json:"given_branch_id"    validate:"required,uuid"`
	DeliveryBranchID string    `json:"delivery_branch_id" validate:"required,uuid"`
	OrderDate        time.Time `json:"order_date"`
	DeliveryDate     time.Time `json:"delivery_date"`
}

// OrderResponse mirrors the persisted order, sold-item ledger included.
type OrderResponse struct {
	ID               string           `json:"id"`
	CustomerName     string           `json:"customer_name"`
	GivenBranchID    string           `json:"given_branch_id"`
	DeliveryBranchID string           `json:"delivery_branch_id"`
	OrderDate        time.Time        `json:"order_date"`
	DeliveryDate     time.Time        `json:"delivery_date"`
	Status           string           `json:"status"`
	SoldItems        []model.SoldItem `json:"sold_items"`

	TotalPrice         float64 `json:"total_price"`
	TotalSaleWeight    float64 `json:"total_sale_weight"`
	TotalSaleLength    float64 `json:"total_sale_length"`
	TotalWastageWeight float64 `json:"total_wastage_weight"`
	TotalWastageLength float64 `json:"total_wastage_length"`
}

func NewOrderResponse(o *model.Order) *OrderResponse {
	return &OrderResponse{
		ID:                 o.ID.String(),
		CustomerName:       o.CustomerName,
		GivenBranchID:      o.GivenBranchID.String(),
		DeliveryBranchID:   o.DeliveryBranchID.String(),
		OrderDate:          o.OrderDate,
		DeliveryDate:       o.DeliveryDate,
		Status:             string(o.Status),
		SoldItems:          o.SoldItems,
		TotalPrice:         o.TotalPrice,
		TotalSaleWeight:    o.TotalSaleWeight,
		TotalSaleLength:    o.TotalSaleLength,
		TotalWastageWeight: o.TotalWastageWeight,
		TotalWastageLength: o.TotalWastageLength,
	}
}
