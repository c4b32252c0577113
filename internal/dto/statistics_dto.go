package dto

import "github.com/shopspring/decimal"

// PurchaseStatRow is one branch → category aggregation bucket of stock
// bought inside the requested window.
type PurchaseStatRow struct {
	BranchID     string          `json:"branch_id"`
	BranchName   string          `json:"branch_name"`
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	ItemCount    int             `json:"item_count"`
	TotalWeight  float64         `json:"total_weight"`
	TotalPrice   decimal.Decimal `json:"total_price"`
}

type PurchaseStatistics struct {
	Rows       []PurchaseStatRow `json:"rows"`
	TotalPrice decimal.Decimal   `json:"total_price"`
}

// SalesStatRow is one branch → customer → category aggregation bucket of
// sold-item ledger lines inside the requested window.
type SalesStatRow struct {
	BranchID      string          `json:"branch_id"`
	BranchName    string          `json:"branch_name"`
	CustomerName  string          `json:"customer_name"`
	CategoryID    string          `json:"category_id"`
	CategoryName  string          `json:"category_name"`
	SoldWeight    float64         `json:"sold_weight"`
	WastageWeight float64         `json:"wastage_weight"`
	TotalPrice    decimal.Decimal `json:"total_price"`
}

type SalesStatistics struct {
	Rows       []SalesStatRow  `json:"rows"`
	TotalPrice decimal.Decimal `json:"total_price"`
}
