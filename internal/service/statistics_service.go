package service

import (
	"context"
	"sort"
	"time"

	"github.com/NightFoX54/ERP-Proje/internal/dto"
	"github.com/NightFoX54/ERP-Proje/internal/model"
	"github.com/NightFoX54/ERP-Proje/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StatisticsService aggregates purchases and sales over a date window.
// Money totals are summed as decimals so report figures never drift from
// the per-line amounts the branches see. Branch actors get only their own
// branch's buckets.
type StatisticsService interface {
	Purchases(ctx context.Context, actor Actor, start, end time.Time) (*dto.PurchaseStatistics, error)
	Sales(ctx context.Context, actor Actor, start, end time.Time) (*dto.SalesStatistics, error)
}

type statisticsService struct {
	items      repository.StockItemRepository
	orders     repository.OrderRepository
	categories repository.CategoryRepository
	branches   repository.BranchRepository
}

func NewStatisticsService(
	items repository.StockItemRepository,
	orders repository.OrderRepository,
	categories repository.CategoryRepository,
	branches repository.BranchRepository,
) StatisticsService {
	return &statisticsService{items: items, orders: orders, categories: categories, branches: branches}
}

// Purchases buckets stock lots created in the window by branch and category.
func (s *statisticsService) Purchases(ctx context.Context, actor Actor, start, end time.Time) (*dto.PurchaseStatistics, error) {
	items, err := s.items.ListCreatedBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	lookup := newCatalogLookup(s.categories, s.branches)
	buckets := make(map[uuid.UUID]*dto.PurchaseStatRow)
	total := decimal.Zero

	for i := range items {
		item := &items[i]
		category, branch, err := lookup.resolve(ctx, item.ProductCategoryID)
		if err != nil {
			// Orphaned lot (category deleted since intake) — skip, don't fail
			// the whole report.
			continue
		}
		if !actor.Admin() && (actor.BranchID == nil || *actor.BranchID != branch.ID) {
			continue
		}

		row, ok := buckets[category.ID]
		if !ok {
			row = &dto.PurchaseStatRow{
				BranchID:     branch.ID.String(),
				BranchName:   branch.Name,
				CategoryID:   category.ID.String(),
				CategoryName: category.Name,
				TotalPrice:   decimal.Zero,
			}
			buckets[category.ID] = row
		}
		price := decimal.NewFromFloat(item.PurchasePrice)
		row.ItemCount++
		row.TotalWeight += item.PurchaseWeight
		row.TotalPrice = row.TotalPrice.Add(price)
		total = total.Add(price)
	}

	stats := &dto.PurchaseStatistics{Rows: make([]dto.PurchaseStatRow, 0, len(buckets)), TotalPrice: total}
	for _, row := range buckets {
		stats.Rows = append(stats.Rows, *row)
	}
	sortPurchaseRows(stats.Rows)
	return stats, nil
}

// Sales buckets sold-item ledger lines of orders dated in the window by
// branch, customer, and category. The selling branch is the order's given
// branch.
func (s *statisticsService) Sales(ctx context.Context, actor Actor, start, end time.Time) (*dto.SalesStatistics, error) {
	orders, err := s.orders.ListByOrderDateBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	lookup := newCatalogLookup(s.categories, s.branches)
	type key struct {
		branch   uuid.UUID
		customer string
		category uuid.UUID
	}
	buckets := make(map[key]*dto.SalesStatRow)
	total := decimal.Zero

	for i := range orders {
		order := &orders[i]
		if !actor.Admin() && (actor.BranchID == nil || *actor.BranchID != order.GivenBranchID) {
			continue
		}
		for _, sold := range order.SoldItems {
			item, err := s.items.FindByID(ctx, sold.StockItemID)
			if err != nil {
				continue
			}
			category, branch, err := lookup.resolve(ctx, item.ProductCategoryID)
			if err != nil {
				continue
			}

			k := key{branch: order.GivenBranchID, customer: order.CustomerName, category: category.ID}
			row, ok := buckets[k]
			if !ok {
				row = &dto.SalesStatRow{
					BranchID:     order.GivenBranchID.String(),
					BranchName:   branch.Name,
					CustomerName: order.CustomerName,
					CategoryID:   category.ID.String(),
					CategoryName: category.Name,
					TotalPrice:   decimal.Zero,
				}
				buckets[k] = row
			}
			price := decimal.NewFromFloat(sold.TotalPrice)
			row.SoldWeight += sold.SoldWeight
			row.WastageWeight += sold.WastageWeight
			row.TotalPrice = row.TotalPrice.Add(price)
			total = total.Add(price)
		}
	}

	stats := &dto.SalesStatistics{Rows: make([]dto.SalesStatRow, 0, len(buckets)), TotalPrice: total}
	for _, row := range buckets {
		stats.Rows = append(stats.Rows, *row)
	}
	sortSalesRows(stats.Rows)
	return stats, nil
}

// catalogLookup memoizes category and branch fetches for the duration of
// one report.
type catalogLookup struct {
	categories repository.CategoryRepository
	branches   repository.BranchRepository
	catCache   map[uuid.UUID]*model.ProductCategory
	brCache    map[uuid.UUID]*model.Branch
}

func newCatalogLookup(categories repository.CategoryRepository, branches repository.BranchRepository) *catalogLookup {
	return &catalogLookup{
		categories: categories,
		branches:   branches,
		catCache:   make(map[uuid.UUID]*model.ProductCategory),
		brCache:    make(map[uuid.UUID]*model.Branch),
	}
}

func (l *catalogLookup) resolve(ctx context.Context, categoryID uuid.UUID) (*model.ProductCategory, *model.Branch, error) {
	category, ok := l.catCache[categoryID]
	if !ok {
		var err error
		category, err = l.categories.FindByID(ctx, categoryID)
		if err != nil {
			return nil, nil, err
		}
		l.catCache[categoryID] = category
	}
	branch, ok := l.brCache[category.BranchID]
	if !ok {
		var err error
		branch, err = l.branches.FindByID(ctx, category.BranchID)
		if err != nil {
			return nil, nil, err
		}
		l.brCache[category.BranchID] = branch
	}
	return category, branch, nil
}

func sortPurchaseRows(rows []dto.PurchaseStatRow) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].BranchName != rows[j].BranchName {
			return rows[i].BranchName < rows[j].BranchName
		}
		return rows[i].CategoryName < rows[j].CategoryName
	})
}

func sortSalesRows(rows []dto.SalesStatRow) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].BranchName != rows[j].BranchName {
			return rows[i].BranchName < rows[j].BranchName
		}
		if rows[i].CustomerName != rows[j].CustomerName {
			return rows[i].CustomerName < rows[j].CustomerName
		}
		return rows[i].CategoryName < rows[j].CategoryName
	})
}
