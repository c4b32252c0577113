package service

import (
	"context"
	"fmt"
	"math"

	"github.com/NightFoX54/ERP-Proje/internal/dto"
	"github.com/NightFoX54/ERP-Proje/internal/model"
	"github.com/NightFoX54/ERP-Proje/internal/repository"
	"github.com/NightFoX54/ERP-Proje/internal/worker"

	"github.com/google/uuid"
)

const (
	// trimAllowance is the material (mm) the saw consumes per cut piece.
	trimAllowance = 3
	// steelDensity in kg/m³ — wastage weight assumes solid steel bar.
	steelDensity = 7850.0
)

type OrderService interface {
	Create(ctx context.Context, req dto.CreateOrderRequest) (*model.Order, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	ListByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error)
	// Fulfill applies a batch of cutting requests to the order, in request
	// order, and drives it to Ready. See the method doc for failure semantics.
	Fulfill(ctx context.Context, orderID uuid.UUID, cuts []dto.CuttingRequest) (*model.Order, error)
	SetStatus(ctx context.Context, orderID uuid.UUID, status model.OrderStatus) (*model.Order, error)
}

type orderService struct {
	orders     repository.OrderRepository
	items      repository.StockItemRepository
	categories repository.CategoryRepository
	types      repository.ProductTypeRepository
	ledger     StockLedger
	dispatcher *worker.Dispatcher
}

func NewOrderService(
	orders repository.OrderRepository,
	items repository.StockItemRepository,
	categories repository.CategoryRepository,
	types repository.ProductTypeRepository,
	ledger StockLedger,
	dispatcher *worker.Dispatcher,
) OrderService {
	return &orderService{
		orders:     orders,
		items:      items,
		categories: categories,
		types:      types,
		ledger:     ledger,
		dispatcher: dispatcher,
	}
}

func (s *orderService) Create(ctx context.Context, req dto.CreateOrderRequest) (*model.Order, error) {
	givenID, err := uuid.Parse(req.GivenBranchID)
	if err != nil {
		return nil, fmt.Errorf("given_branch_id: %w", err)
	}
	deliveryID, err := uuid.Parse(req.DeliveryBranchID)
	if err != nil {
		return nil, fmt.Errorf("delivery_branch_id: %w", err)
	}

	// Accumulators are explicitly zero-valued and the sold-item ledger
	// explicitly empty from the start, so Fulfill never needs defensive
	// initialization.
	order := &model.Order{
		CustomerName:     req.CustomerName,
		GivenBranchID:    givenID,
		DeliveryBranchID: deliveryID,
		OrderDate:        req.OrderDate,
		DeliveryDate:     req.DeliveryDate,
		Status:           model.StatusCreated,
		SoldItems:        model.SoldItemList{},
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	// Fan-out is best effort — the order exists either way.
	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueOrderCreated(ctx, worker.OrderCreatedPayload{
			OrderID:          order.ID.String(),
			CustomerName:     order.CustomerName,
			DeliveryBranchID: order.DeliveryBranchID.String(),
		})
	}
	return order, nil
}

func (s *orderService) Get(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *orderService) List(ctx context.Context) ([]model.Order, error) {
	return s.orders.List(ctx)
}

func (s *orderService) ListByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	return s.orders.ListByStatus(ctx, status)
}

// Fulfill processes cuts sequentially against the order. Each line resolves
// its stock item, category, and profile type; computes trim wastage for solid
// profiles; deducts through the stock ledger; and folds the result into the
// order's running totals and sold-item ledger. After the batch — even an
// empty one — the order transitions to Ready and is persisted.
//
// Line application is not transactional: when a mid-batch resolution fails,
// the already-applied lines stay committed, the order is saved with the
// prefix accumulation, and the NotFound surfaces to the caller.
func (s *orderService) Fulfill(ctx context.Context, orderID uuid.UUID, cuts []dto.CuttingRequest) (*model.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	if order.SoldItems == nil {
		// Orders persisted before the sold-item ledger existed.
		order.SoldItems = model.SoldItemList{}
	}

	for i, cut := range cuts {
		itemID, err := uuid.Parse(cut.StockItemID)
		if err != nil {
			return s.abortFulfill(ctx, order, fmt.Errorf("line %d: stock_item_id: %w", i, err))
		}
		item, err := s.items.FindByID(ctx, itemID)
		if err != nil {
			return s.abortFulfill(ctx, order, fmt.Errorf("line %d: %w", i, ErrStockItemNotFound))
		}
		category, err := s.categories.FindByID(ctx, item.ProductCategoryID)
		if err != nil {
			return s.abortFulfill(ctx, order, fmt.Errorf("line %d: %w", i, ErrCategoryNotFound))
		}
		profile, err := s.types.FindByID(ctx, category.ProductTypeID)
		if err != nil {
			return s.abortFulfill(ctx, order, fmt.Errorf("line %d: %w", i, ErrProductTypeNotFound))
		}

		solid := profile.Solid() && cut.CutLength != nil

		var wastageLength, wastageWeight, cutSpan float64
		deduction := Deduction{
			CutWeight: cut.TotalCutWeight,
			OrderID:   &order.ID,
		}
		if solid {
			cutLength := *cut.CutLength
			// Each piece costs a trim allowance; when the bar cannot fit a
			// full allowance after the last piece, that piece's trim is free.
			// quantity=1 on a short bar therefore yields zero wastage — that
			// is the established behavior and billing depends on it.
			if float64((cutLength+trimAllowance)*cut.Quantity) > item.Length {
				wastageLength = float64(trimAllowance * (cut.Quantity - 1))
			} else {
				wastageLength = float64(trimAllowance * cut.Quantity)
			}

			// Cylinder volume × steel density; mm → m conversions.
			lengthM := wastageLength / 1000
			radiusM := float64(item.Diameter) / 2000
			wastageWeight = lengthM * radiusM * radiusM * math.Pi * steelDensity

			cutSpan = float64(cutLength * cut.Quantity)

			deduction.LengthTracked = true
			deduction.CutLength = cutSpan
			deduction.WastageLength = wastageLength
			deduction.WastageWeight = wastageWeight
		} else {
			deduction.Quantity = cut.Quantity
		}

		if _, err := s.ledger.Deduct(ctx, item.ID, deduction); err != nil {
			return s.abortFulfill(ctx, order, fmt.Errorf("line %d: %w", i, err))
		}

		lineTotal := cut.TotalCutWeight * cut.KgPrice
		order.TotalSaleWeight += cut.TotalCutWeight
		order.TotalPrice += lineTotal

		sold := model.SoldItem{
			StockItemID:   item.ID,
			SoldWeight:    cut.TotalCutWeight,
			KgPrice:       cut.KgPrice,
			TotalPrice:    lineTotal,
			WastageWeight: wastageWeight,
			WastageLength: wastageLength,
		}
		if solid {
			order.TotalSaleLength += cutSpan
			order.TotalWastageWeight += wastageWeight
			order.TotalWastageLength += wastageLength
			sold.CutLength = cutSpan
			sold.CutQuantity = cut.Quantity
		} else {
			sold.Quantity = cut.Quantity
		}
		order.SoldItems = append(order.SoldItems, sold)
	}

	order.Status = model.StatusReady
	if err := s.orders.Save(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// abortFulfill persists whatever prefix of the batch already applied — the
// stock deductions for those lines are committed, so the order's totals must
// reflect them — then surfaces the line error.
func (s *orderService) abortFulfill(ctx context.Context, order *model.Order, lineErr error) (*model.Order, error) {
	_ = s.orders.Save(ctx, order)
	return nil, lineErr
}

// SetStatus persists the requested status after verifying the order exists.
// Any of the five states may be forced from any other — there is no
// transition-legality check, and downstream consumers rely on that (e.g.
// cancelling an already-Ready order).
func (s *orderService) SetStatus(ctx context.Context, orderID uuid.UUID, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	order.Status = status
	if err := s.orders.Save(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}
