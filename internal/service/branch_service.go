package service

import (
	"context"

	"github.com/NightFoX54/ERP-Proje/internal/dto"
	"github.com/NightFoX54/ERP-Proje/internal/model"
	"github.com/NightFoX54/ERP-Proje/internal/repository"

	"github.com/google/uuid"
)

type BranchService interface {
	Create(ctx context.Context, req dto.CreateBranchRequest) (*model.Branch, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Branch, error)
	List(ctx context.Context) ([]model.Branch, error)
	ListStockEnabled(ctx context.Context) ([]model.Branch, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateBranchRequest) (*model.Branch, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type branchService struct {
	branches repository.BranchRepository
}

func NewBranchService(branches repository.BranchRepository) BranchService {
	return &branchService{branches: branches}
}

func (s *branchService) Create(ctx context.Context, req dto.CreateBranchRequest) (*model.Branch, error) {
	exists, err := s.branches.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrBranchExists
	}
	branch := &model.Branch{Name: req.Name, StockEnabled: req.StockEnabled}
	if err := s.branches.Create(ctx, branch); err != nil {
		return nil, err
	}
	return branch, nil
}

func (s *branchService) Get(ctx context.Context, id uuid.UUID) (*model.Branch, error) {
	branch, err := s.branches.FindByID(ctx, id)
	if err != nil {
		return nil, ErrBranchNotFound
	}
	return branch, nil
}

func (s *branchService) List(ctx context.Context) ([]model.Branch, error) {
	return s.branches.List(ctx)
}

func (s *branchService) ListStockEnabled(ctx context.Context) ([]model.Branch, error) {
	return s.branches.ListStockEnabled(ctx)
}

func (s *branchService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateBranchRequest) (*model.Branch, error) {
	branch, err := s.branches.FindByID(ctx, id)
	if err != nil {
		return nil, ErrBranchNotFound
	}
	if req.Name != nil && *req.Name != branch.Name {
		exists, err := s.branches.ExistsByName(ctx, *req.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrBranchExists
		}
		branch.Name = *req.Name
	}
	if req.StockEnabled != nil {
		branch.StockEnabled = *req.StockEnabled
	}
	if err := s.branches.Save(ctx, branch); err != nil {
		return nil, err
	}
	return branch, nil
}

func (s *branchService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.branches.FindByID(ctx, id); err != nil {
		return ErrBranchNotFound
	}
	return s.branches.Delete(ctx, id)
}
