package service_test

import (
	"context"
	"testing"

	"github.com/NightFoX54/ERP-Proje/internal/dto"
	"github.com/NightFoX54/ERP-Proje/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBranchCreate_DuplicateNameRejected(t *testing.T) {
	svc := service.NewBranchService(newStubBranchRepo())

	_, err := svc.Create(context.Background(), dto.CreateBranchRequest{Name: "Central"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), dto.CreateBranchRequest{Name: "Central"})
	assert.ErrorIs(t, err, service.ErrBranchExists)
}

func TestBranchUpdate_ToggleStockEnabled(t *testing.T) {
	svc := service.NewBranchService(newStubBranchRepo())

	branch, err := svc.Create(context.Background(), dto.CreateBranchRequest{Name: "North", StockEnabled: true})
	require.NoError(t, err)

	enabled := false
	updated, err := svc.Update(context.Background(), branch.ID, dto.UpdateBranchRequest{StockEnabled: &enabled})
	require.NoError(t, err)
	assert.False(t, updated.StockEnabled)

	stockBranches, err := svc.ListStockEnabled(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stockBranches)
}

func TestBranchDelete_UnknownBranch(t *testing.T) {
	svc := service.NewBranchService(newStubBranchRepo())
	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrBranchNotFound)
}
