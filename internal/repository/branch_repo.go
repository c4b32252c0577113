package repository

import (
	"context"

	"github.com/NightFoX54/ERP-Proje/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BranchRepository is the data access contract for branches.
type BranchRepository interface {
	Create(ctx context.Context, b *model.Branch) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Branch, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]model.Branch, error)
	ListStockEnabled(ctx context.Context) ([]model.Branch, error)
	Save(ctx context.Context, b *model.Branch) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type branchRepo struct{ db *gorm.DB }

func NewBranchRepository(db *gorm.DB) BranchRepository { return &branchRepo{db: db} }

func (r *branchRepo) Create(ctx context.Context, b *model.Branch) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *branchRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Branch, error) {
	var b model.Branch
	err := r.db.WithContext(ctx).First(&b, id).Error
	return &b, err
}

func (r *branchRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Branch{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

func (r *branchRepo) List(ctx context.Context) ([]model.Branch, error) {
	var branches []model.Branch
	err := r.db.WithContext(ctx).Order("name ASC").Find(&branches).Error
	return branches, err
}

func (r *branchRepo) ListStockEnabled(ctx context.Context) ([]model.Branch, error) {
	var branches []model.Branch
	err := r.db.WithContext(ctx).Where("stock_enabled = true").Order("name ASC").Find(&branches).Error
	return branches, err
}

func (r *branchRepo) Save(ctx context.Context, b *model.Branch) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *branchRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Branch{}, id).Error
}
