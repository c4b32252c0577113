package service

import (
	"context"

	"github.com/NightFoX54/ERP-Proje/internal/model"
	"github.com/NightFoX54/ERP-Proje/internal/repository"

	"github.com/google/uuid"
)

// exhaustedWeightEpsilon is the remaining-weight threshold below which a
// count-tracked lot is considered used up: a kilogram of offcuts is not
// sellable material.
const exhaustedWeightEpsilon = 1.0

// Deduction is the set of deltas one fulfilled cutting line removes from a
// stock item. For length-tracked (solid) lots the cut span and trim wastage
// come off remaining length and weight; for count-tracked lots Quantity
// pieces and CutWeight come off instead.
type Deduction struct {
	LengthTracked bool
	// CutLength is the total span sold (cut length × quantity), mm.
	CutLength     float64
	CutWeight     float64
	WastageLength float64
	WastageWeight float64
	// Quantity is the piece count removed from count-tracked lots.
	Quantity int
	// OrderID links the resulting movement row to the order being fulfilled.
	OrderID *uuid.UUID
}

// StockLedger owns stock-item remaining quantities and the active/inactive
// lifecycle. One Deduct call per cutting line; re-invocation re-deducts, so
// callers must not replay.
type StockLedger interface {
	Deduct(ctx context.Context, itemID uuid.UUID, d Deduction) (*model.StockItem, error)
}

type stockLedger struct {
	items     repository.StockItemRepository
	movements repository.StockMovementRepository
}

func NewStockLedger(items repository.StockItemRepository, movements repository.StockMovementRepository) StockLedger {
	return &stockLedger{items: items, movements: movements}
}

// Deduct applies d to the item and persists it. Inputs are trusted: the
// cutting engine validates upstream, and the ledger deliberately lets
// remaining quantities go negative before flipping Active off — that is the
// exhaustion signal, not an error.
func (l *stockLedger) Deduct(ctx context.Context, itemID uuid.UUID, d Deduction) (*model.StockItem, error) {
	item, err := l.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, ErrStockItemNotFound
	}

	if d.LengthTracked {
		item.Length -= d.WastageLength + d.CutLength
		item.Weight -= d.WastageWeight + d.CutWeight
		if item.Length <= 0 || item.Weight <= 0 {
			item.Active = false
		}
	} else {
		item.Stock -= d.Quantity
		item.Weight -= d.CutWeight
		if item.Weight <= exhaustedWeightEpsilon || item.Stock <= 0 {
			item.Active = false
		}
	}

	if err := l.items.Save(ctx, item); err != nil {
		return nil, err
	}

	mov := &model.StockMovement{
		StockItemID:   item.ID,
		Kind:          "cut",
		WeightDelta:   -(d.WastageWeight + d.CutWeight),
		WastageLength: d.WastageLength,
		WastageWeight: d.WastageWeight,
		OrderID:       d.OrderID,
	}
	if d.LengthTracked {
		mov.LengthDelta = -(d.WastageLength + d.CutLength)
	} else {
		mov.CountDelta = -d.Quantity
	}
	if err := l.movements.Create(ctx, mov); err != nil {
		return nil, err
	}

	return item, nil
}
