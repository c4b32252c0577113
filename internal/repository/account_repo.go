package repository

import (
	"context"

	"github.com/NightFoX54/ERP-Proje/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountRepository is the data access contract for user accounts.
type AccountRepository interface {
	Create(ctx context.Context, a *model.Account) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Account, error)
	FindByUsername(ctx context.Context, username string) (*model.Account, error)
	ListByBranch(ctx context.Context, branchID uuid.UUID) ([]model.Account, error)
	ListByRole(ctx context.Context, role string) ([]model.Account, error)
	Save(ctx context.Context, a *model.Account) error
}

type accountRepo struct{ db *gorm.DB }

func NewAccountRepository(db *gorm.DB) AccountRepository { return &accountRepo{db: db} }

func (r *accountRepo) Create(ctx context.Context, a *model.Account) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *accountRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Account, error) {
	var a model.Account
	err := r.db.WithContext(ctx).First(&a, id).Error
	return &a, err
}

func (r *accountRepo) FindByUsername(ctx context.Context, username string) (*model.Account, error) {
	var a model.Account
	err := r.db.WithContext(ctx).Where("username = ? AND active = true", username).First(&a).Error
	return &a, err
}

func (r *accountRepo) ListByBranch(ctx context.Context, branchID uuid.UUID) ([]model.Account, error) {
	var accounts []model.Account
	err := r.db.WithContext(ctx).Where("branch_id = ? AND active = true", branchID).Find(&accounts).Error
	return accounts, err
}

func (r *accountRepo) ListByRole(ctx context.Context, role string) ([]model.Account, error) {
	var accounts []model.Account
	err := r.db.WithContext(ctx).Where("role = ? AND active = true", role).Find(&accounts).Error
	return accounts, err
}

func (r *accountRepo) Save(ctx context.Context, a *model.Account) error {
	return r.db.WithContext(ctx).Save(a).Error
}
