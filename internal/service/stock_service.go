package service

import (
	"context"

	"github.com/NightFoX54/ERP-Proje/internal/dto"
	"github.com/NightFoX54/ERP-Proje/internal/model"
	"github.com/NightFoX54/ERP-Proje/internal/repository"

	"github.com/google/uuid"
)

// StockService covers intake and catalog management: stock lots, product
// categories, and profile types. Branch actors are confined to categories
// of their own branch; admins are unrestricted.
type StockService interface {
	CreateItem(ctx context.Context, actor Actor, req dto.CreateStockItemRequest) (*model.StockItem, error)
	GetItem(ctx context.Context, actor Actor, id uuid.UUID) (*model.StockItem, error)
	ListItems(ctx context.Context, actor Actor) ([]model.StockItem, error)
	ListItemsByCategory(ctx context.Context, actor Actor, categoryID uuid.UUID) ([]model.StockItem, error)
	ListItemsByCategoryAndDiameter(ctx context.Context, actor Actor, categoryID uuid.UUID, diameter int) ([]model.StockItem, error)
	UpdateItem(ctx context.Context, actor Actor, id uuid.UUID, req dto.UpdateStockItemRequest) (*model.StockItem, error)
	DeleteItem(ctx context.Context, actor Actor, id uuid.UUID) error

	CreateCategory(ctx context.Context, actor Actor, req dto.CreateCategoryRequest) (*model.ProductCategory, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*model.ProductCategory, error)
	ListCategoriesByBranch(ctx context.Context, branchID uuid.UUID) ([]model.ProductCategory, error)
	DeleteCategory(ctx context.Context, actor Actor, id uuid.UUID) error

	CreateProductType(ctx context.Context, req dto.CreateProductTypeRequest) (*model.ProductType, error)
	ListProductTypes(ctx context.Context) ([]model.ProductType, error)
}

type stockService struct {
	items      repository.StockItemRepository
	categories repository.CategoryRepository
	types      repository.ProductTypeRepository
	branches   repository.BranchRepository
}

func NewStockService(
	items repository.StockItemRepository,
	categories repository.CategoryRepository,
	types repository.ProductTypeRepository,
	branches repository.BranchRepository,
) StockService {
	return &stockService{items: items, categories: categories, types: types, branches: branches}
}

// resolveCategory loads the category and enforces branch scope for the actor.
func (s *stockService) resolveCategory(ctx context.Context, actor Actor, categoryID uuid.UUID) (*model.ProductCategory, error) {
	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		return nil, ErrCategoryNotFound
	}
	if !actor.MayManageBranch(category.BranchID) {
		return nil, ErrBranchForbidden
	}
	return category, nil
}

// CreateItem registers an acquired lot. Whichever of the two prices is
// missing gets derived from the other: the per-kg rate times the lot's
// weight and piece count equals the purchase price. The remaining
// quantities start equal to the purchase snapshot.
func (s *stockService) CreateItem(ctx context.Context, actor Actor, req dto.CreateStockItemRequest) (*model.StockItem, error) {
	categoryID, err := uuid.Parse(req.ProductCategoryID)
	if err != nil {
		return nil, ErrCategoryNotFound
	}
	if _, err := s.resolveCategory(ctx, actor, categoryID); err != nil {
		return nil, err
	}

	// Single-bundle lots carry stock=0; price math treats them as one unit.
	units := float64(req.Stock)
	if units == 0 {
		units = 1
	}

	var kgPrice, purchasePrice float64
	switch {
	case req.KgPrice != nil && req.PurchasePrice != nil:
		kgPrice = *req.KgPrice
		purchasePrice = *req.PurchasePrice
	case req.PurchasePrice != nil:
		purchasePrice = *req.PurchasePrice
		kgPrice = purchasePrice / units / req.Weight
	case req.KgPrice != nil:
		kgPrice = *req.KgPrice
		purchasePrice = kgPrice * req.Weight * units
	}

	item := &model.StockItem{
		ProductCategoryID: categoryID,
		Diameter:          req.Diameter,
		Length:            req.Length,
		Weight:            req.Weight,
		Stock:             req.Stock,
		KgPrice:           kgPrice,
		PurchasePrice:     purchasePrice,
		PurchaseLength:    req.Length,
		PurchaseWeight:    req.Weight,
		PurchaseStock:     req.Stock,
		Fields:            req.Fields,
		Active:            true,
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *stockService) GetItem(ctx context.Context, actor Actor, id uuid.UUID) (*model.StockItem, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, ErrStockItemNotFound
	}
	if _, err := s.resolveCategory(ctx, actor, item.ProductCategoryID); err != nil {
		return nil, err
	}
	return item, nil
}

// ListItems returns every lot for admins; branch actors get the union of
// their branch's categories.
func (s *stockService) ListItems(ctx context.Context, actor Actor) ([]model.StockItem, error) {
	if actor.Admin() {
		return s.items.List(ctx)
	}
	if actor.BranchID == nil {
		return nil, ErrBranchForbidden
	}
	categories, err := s.categories.ListByBranch(ctx, *actor.BranchID)
	if err != nil {
		return nil, err
	}
	var out []model.StockItem
	for _, c := range categories {
		items, err := s.items.ListByCategory(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}

func (s *stockService) ListItemsByCategory(ctx context.Context, actor Actor, categoryID uuid.UUID) ([]model.StockItem, error) {
	if _, err := s.resolveCategory(ctx, actor, categoryID); err != nil {
		return nil, err
	}
	return s.items.ListByCategory(ctx, categoryID)
}

func (s *stockService) ListItemsByCategoryAndDiameter(ctx context.Context, actor Actor, categoryID uuid.UUID, diameter int) ([]model.StockItem, error) {
	if _, err := s.resolveCategory(ctx, actor, categoryID); err != nil {
		return nil, err
	}
	return s.items.ListByCategoryAndDiameter(ctx, categoryID, diameter)
}

func (s *stockService) UpdateItem(ctx context.Context, actor Actor, id uuid.UUID, req dto.UpdateStockItemRequest) (*model.StockItem, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, ErrStockItemNotFound
	}
	if _, err := s.resolveCategory(ctx, actor, item.ProductCategoryID); err != nil {
		return nil, err
	}

	if req.Diameter != nil {
		item.Diameter = *req.Diameter
	}
	if req.Length != nil {
		item.Length = *req.Length
	}
	if req.Weight != nil {
		item.Weight = *req.Weight
	}
	if req.Stock != nil {
		item.Stock = *req.Stock
	}
	if req.KgPrice != nil {
		item.KgPrice = *req.KgPrice
	}
	if req.Fields != nil {
		item.Fields = req.Fields
	}
	if req.Active != nil {
		item.Active = *req.Active
	}
	if err := s.items.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *stockService) DeleteItem(ctx context.Context, actor Actor, id uuid.UUID) error {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return ErrStockItemNotFound
	}
	if _, err := s.resolveCategory(ctx, actor, item.ProductCategoryID); err != nil {
		return err
	}
	return s.items.Delete(ctx, id)
}

func (s *stockService) CreateCategory(ctx context.Context, actor Actor, req dto.CreateCategoryRequest) (*model.ProductCategory, error) {
	typeID, err := uuid.Parse(req.ProductTypeID)
	if err != nil {
		return nil, ErrProductTypeNotFound
	}
	if _, err := s.types.FindByID(ctx, typeID); err != nil {
		return nil, ErrProductTypeNotFound
	}
	branchID, err := uuid.Parse(req.BranchID)
	if err != nil {
		return nil, ErrBranchNotFound
	}
	if _, err := s.branches.FindByID(ctx, branchID); err != nil {
		return nil, ErrBranchNotFound
	}
	if !actor.MayManageBranch(branchID) {
		return nil, ErrBranchForbidden
	}

	category := &model.ProductCategory{
		Name:          req.Name,
		ProductTypeID: typeID,
		BranchID:      branchID,
		FinalFields:   req.FinalFields,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *stockService) GetCategory(ctx context.Context, id uuid.UUID) (*model.ProductCategory, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

func (s *stockService) ListCategoriesByBranch(ctx context.Context, branchID uuid.UUID) ([]model.ProductCategory, error) {
	return s.categories.ListByBranch(ctx, branchID)
}

// DeleteCategory removes the category and every lot under it.
func (s *stockService) DeleteCategory(ctx context.Context, actor Actor, id uuid.UUID) error {
	if _, err := s.resolveCategory(ctx, actor, id); err != nil {
		return err
	}
	if err := s.items.DeleteByCategory(ctx, id); err != nil {
		return err
	}
	return s.categories.Delete(ctx, id)
}

func (s *stockService) CreateProductType(ctx context.Context, req dto.CreateProductTypeRequest) (*model.ProductType, error) {
	t := &model.ProductType{
		Name:           req.Name,
		RequiredFields: req.RequiredFields,
	}
	if err := s.types.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *stockService) ListProductTypes(ctx context.Context) ([]model.ProductType, error) {
	return s.types.List(ctx)
}
