package service_test

import (
	"context"
	"errors"
	"time"

	"github.com/NightFoX54/ERP-Proje/internal/model"
	"github.com/NightFoX54/ERP-Proje/internal/repository"

	"github.com/google/uuid"
)

var errStubNotFound = errors.New("not found")

// stubOrderRepo is an in-memory OrderRepository.
type stubOrderRepo struct {
	orders map[uuid.UUID]*model.Order
	saves  int
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[uuid.UUID]*model.Order)}
}

func (r *stubOrderRepo) Create(_ context.Context, o *model.Order) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	r.orders[o.ID] = o
	return nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, errStubNotFound
	}
	copied := *o
	return &copied, nil
}

func (r *stubOrderRepo) List(_ context.Context) ([]model.Order, error) {
	var out []model.Order
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (r *stubOrderRepo) ListByStatus(_ context.Context, status model.OrderStatus) ([]model.Order, error) {
	var out []model.Order
	for _, o := range r.orders {
		if o.Status == status {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) ListByOrderDateBetween(_ context.Context, start, end time.Time) ([]model.Order, error) {
	var out []model.Order
	for _, o := range r.orders {
		if !o.OrderDate.Before(start) && !o.OrderDate.After(end) {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) Save(_ context.Context, o *model.Order) error {
	copied := *o
	r.orders[o.ID] = &copied
	r.saves++
	return nil
}

var _ repository.OrderRepository = (*stubOrderRepo)(nil)

// stubItemRepo is an in-memory StockItemRepository.
type stubItemRepo struct {
	items map[uuid.UUID]*model.StockItem
}

func newStubItemRepo() *stubItemRepo {
	return &stubItemRepo{items: make(map[uuid.UUID]*model.StockItem)}
}

func (r *stubItemRepo) Create(_ context.Context, item *model.StockItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	r.items[item.ID] = item
	return nil
}

func (r *stubItemRepo) FindByID(_ context.Context, id uuid.UUID) (*model.StockItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, errStubNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *stubItemRepo) List(_ context.Context) ([]model.StockItem, error) {
	var out []model.StockItem
	for _, item := range r.items {
		out = append(out, *item)
	}
	return out, nil
}

func (r *stubItemRepo) ListByCategory(_ context.Context, categoryID uuid.UUID) ([]model.StockItem, error) {
	var out []model.StockItem
	for _, item := range r.items {
		if item.ProductCategoryID == categoryID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *stubItemRepo) ListByCategoryAndDiameter(_ context.Context, categoryID uuid.UUID, diameter int) ([]model.StockItem, error) {
	var out []model.StockItem
	for _, item := range r.items {
		if item.ProductCategoryID == categoryID && item.Diameter == diameter {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *stubItemRepo) ListCreatedBetween(_ context.Context, start, end time.Time) ([]model.StockItem, error) {
	var out []model.StockItem
	for _, item := range r.items {
		if !item.CreatedAt.Before(start) && !item.CreatedAt.After(end) {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *stubItemRepo) Save(_ context.Context, item *model.StockItem) error {
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *stubItemRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *stubItemRepo) DeleteByCategory(_ context.Context, categoryID uuid.UUID) error {
	for id, item := range r.items {
		if item.ProductCategoryID == categoryID {
			delete(r.items, id)
		}
	}
	return nil
}

var _ repository.StockItemRepository = (*stubItemRepo)(nil)

// stubCategoryRepo is an in-memory CategoryRepository.
type stubCategoryRepo struct {
	categories map[uuid.UUID]*model.ProductCategory
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[uuid.UUID]*model.ProductCategory)}
}

func (r *stubCategoryRepo) Create(_ context.Context, c *model.ProductCategory) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.categories[c.ID] = c
	return nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*model.ProductCategory, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, errStubNotFound
	}
	return c, nil
}

func (r *stubCategoryRepo) ListByBranch(_ context.Context, branchID uuid.UUID) ([]model.ProductCategory, error) {
	var out []model.ProductCategory
	for _, c := range r.categories {
		if c.BranchID == branchID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.categories, id)
	return nil
}

var _ repository.CategoryRepository = (*stubCategoryRepo)(nil)

// stubTypeRepo is an in-memory ProductTypeRepository.
type stubTypeRepo struct {
	types map[uuid.UUID]*model.ProductType
}

func newStubTypeRepo() *stubTypeRepo {
	return &stubTypeRepo{types: make(map[uuid.UUID]*model.ProductType)}
}

func (r *stubTypeRepo) Create(_ context.Context, t *model.ProductType) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	r.types[t.ID] = t
	return nil
}

func (r *stubTypeRepo) FindByID(_ context.Context, id uuid.UUID) (*model.ProductType, error) {
	t, ok := r.types[id]
	if !ok {
		return nil, errStubNotFound
	}
	return t, nil
}

func (r *stubTypeRepo) List(_ context.Context) ([]model.ProductType, error) {
	var out []model.ProductType
	for _, t := range r.types {
		out = append(out, *t)
	}
	return out, nil
}

var _ repository.ProductTypeRepository = (*stubTypeRepo)(nil)

// stubMovementRepo captures ledger movement rows for assertion.
type stubMovementRepo struct {
	movements []model.StockMovement
}

func (r *stubMovementRepo) Create(_ context.Context, m *model.StockMovement) error {
	r.movements = append(r.movements, *m)
	return nil
}

func (r *stubMovementRepo) ListByItem(_ context.Context, itemID uuid.UUID) ([]model.StockMovement, error) {
	var out []model.StockMovement
	for _, m := range r.movements {
		if m.StockItemID == itemID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *stubMovementRepo) ListByOrder(_ context.Context, orderID uuid.UUID) ([]model.StockMovement, error) {
	var out []model.StockMovement
	for _, m := range r.movements {
		if m.OrderID != nil && *m.OrderID == orderID {
			out = append(out, m)
		}
	}
	return out, nil
}

var _ repository.StockMovementRepository = (*stubMovementRepo)(nil)

// stubBranchRepo is an in-memory BranchRepository.
type stubBranchRepo struct {
	branches map[uuid.UUID]*model.Branch
}

func newStubBranchRepo() *stubBranchRepo {
	return &stubBranchRepo{branches: make(map[uuid.UUID]*model.Branch)}
}

func (r *stubBranchRepo) Create(_ context.Context, b *model.Branch) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	r.branches[b.ID] = b
	return nil
}

func (r *stubBranchRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Branch, error) {
	b, ok := r.branches[id]
	if !ok {
		return nil, errStubNotFound
	}
	return b, nil
}

func (r *stubBranchRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, b := range r.branches {
		if b.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubBranchRepo) List(_ context.Context) ([]model.Branch, error) {
	var out []model.Branch
	for _, b := range r.branches {
		out = append(out, *b)
	}
	return out, nil
}

func (r *stubBranchRepo) ListStockEnabled(_ context.Context) ([]model.Branch, error) {
	var out []model.Branch
	for _, b := range r.branches {
		if b.StockEnabled {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *stubBranchRepo) Save(_ context.Context, b *model.Branch) error {
	r.branches[b.ID] = b
	return nil
}

func (r *stubBranchRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.branches, id)
	return nil
}

var _ repository.BranchRepository = (*stubBranchRepo)(nil)

// stubAccountRepo is an in-memory AccountRepository.
type stubAccountRepo struct {
	accounts map[uuid.UUID]*model.Account
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[uuid.UUID]*model.Account)}
}

func (r *stubAccountRepo) Create(_ context.Context, a *model.Account) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.accounts[a.ID] = a
	return nil
}

func (r *stubAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return nil, errStubNotFound
	}
	return a, nil
}

func (r *stubAccountRepo) FindByUsername(_ context.Context, username string) (*model.Account, error) {
	for _, a := range r.accounts {
		if a.Username == username && a.Active {
			return a, nil
		}
	}
	return nil, errStubNotFound
}

func (r *stubAccountRepo) ListByBranch(_ context.Context, branchID uuid.UUID) ([]model.Account, error) {
	var out []model.Account
	for _, a := range r.accounts {
		if a.BranchID != nil && *a.BranchID == branchID && a.Active {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubAccountRepo) ListByRole(_ context.Context, role string) ([]model.Account, error) {
	var out []model.Account
	for _, a := range r.accounts {
		if a.Role == role && a.Active {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubAccountRepo) Save(_ context.Context, a *model.Account) error {
	r.accounts[a.ID] = a
	return nil
}

var _ repository.AccountRepository = (*stubAccountRepo)(nil)
