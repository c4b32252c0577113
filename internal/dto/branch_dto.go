package dto

import "github.com/NightFoX54/ERP-Proje/internal/model"

type CreateBranchRequest struct {
	Name         string `json:"name" validate:"required"`
	StockEnabled bool   `json:"stock_enabled"`
}

type UpdateBranchRequest struct {
	Name         *string `json:"name"`
	StockEnabled *bool   `json:"stock_enabled"`
}

type BranchResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	StockEnabled bool   `json:"stock_enabled"`
}

func NewBranchResponse(b *model.Branch) *BranchResponse {
	return &BranchResponse{
		ID:           b.ID.String(),
		Name:         b.Name,
		StockEnabled: b.StockEnabled,
	}
}

func NewBranchResponses(branches []model.Branch) []BranchResponse {
	out := make([]BranchResponse, 0, len(branches))
	for i := range branches {
		out = append(out, *NewBranchResponse(&branches[i]))
	}
	return out
}
