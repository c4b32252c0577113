package repository

import (
	"context"

	"github.com/NightFoX54/ERP-Proje/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryRepository is the data access contract for product categories.
type CategoryRepository interface {
	Create(ctx context.Context, c *model.ProductCategory) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ProductCategory, error)
	ListByBranch(ctx context.Context, branchID uuid.UUID) ([]model.ProductCategory, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryRepo struct{ db *gorm.DB }

func NewCategoryRepository(db *gorm.DB) CategoryRepository { return &categoryRepo{db: db} }

func (r *categoryRepo) Create(ctx context.Context, c *model.ProductCategory) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.ProductCategory, error) {
	var c model.ProductCategory
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *categoryRepo) ListByBranch(ctx context.Context, branchID uuid.UUID) ([]model.ProductCategory, error) {
	var categories []model.ProductCategory
	err := r.db.WithContext(ctx).Where("branch_id = ?", branchID).Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ProductCategory{}, id).Error
}

// ProductTypeRepository is the data access contract for profile types.
type ProductTypeRepository interface {
	Create(ctx context.Context, t *model.ProductType) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ProductType, error)
	List(ctx context.Context) ([]model.ProductType, error)
}

type productTypeRepo struct{ db *gorm.DB }

func NewProductTypeRepository(db *gorm.DB) ProductTypeRepository { return &productTypeRepo{db: db} }

func (r *productTypeRepo) Create(ctx context.Context, t *model.ProductType) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *productTypeRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.ProductType, error) {
	var t model.ProductType
	err := r.db.WithContext(ctx).First(&t, id).Error
	return &t, err
}

func (r *productTypeRepo) List(ctx context.Context) ([]model.ProductType, error) {
	var types []model.ProductType
	err := r.db.WithContext(ctx).Order("name ASC").Find(&types).Error
	return types, err
}
