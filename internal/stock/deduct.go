package stock

import (
	"errors"
	"math"

	"github.com/mbodj/clinivet/internal/domain/models"
)

// Deduct removes qty (expressed in the given denomination) from the state,
// unsealing packages into loose units as needed. The request is checked
// against the derived total before anything is touched; on rejection the
// returned state is the input state, bit for bit.
//
// Every consumption path (consultation dispensing, POS checkout) funnels
// through this one function so that borrowing and rounding behave identically
// everywhere. It is not idempotent: callers invoke it exactly once per
// consumption event.
func Deduct(s State, qty float64, denom models.Denomination) (State, error) {
	if qty <= 0 {
		return s, &ValidationError{Field: "quantity", Reason: "must be positive"}
	}
	if s.Ratio <= 0 {
		return s, &ValidationError{Field: "package ratio", Reason: "must be positive"}
	}

	request := round2(qty)
	if denom == models.DenomPackage {
		request = round2(qty * s.Ratio)
	}

	total := s.Total()
	if request > total+floatSlack {
		return s, &InsufficientStockError{Requested: request, Available: total}
	}

	if request <= s.Loose+floatSlack {
		next := s
		next.Loose = round2(math.Max(0, s.Loose-request))
		return next, nil
	}

	remaining := round2(request - s.Loose)
	needed := int(math.Ceil(remaining/s.Ratio - floatSlack))

	next := s
	next.Sealed = s.Sealed - needed
	if next.Sealed < 0 {
		next.Sealed = 0
	}
	next.Loose = round2(float64(needed)*s.Ratio - remaining)
	return next, nil
}

// ItemState extracts the engine state from a stock item document. Simple
// items degenerate to a single loose counter with ratio 1.
func ItemState(it models.StockItem) State {
	if it.Family == models.FamilySimple {
		return State{Sealed: 0, Loose: it.LooseRemainder, Ratio: 1}
	}
	return State{Sealed: it.SealedCount, Loose: it.LooseRemainder, Ratio: it.PackageUnitsRatio}
}

// ApplyState writes the counters back onto the item and recomputes the cached
// total from them. The cached field exists for fast filtering and sorting; it
// is never an independent source of truth.
func ApplyState(it *models.StockItem, s State) {
	it.SealedCount = s.Sealed
	it.LooseRemainder = s.Loose
	it.TotalStock = s.Total()
}

// DeductItem runs Deduct against an item document and returns the mutated
// copy. InsufficientStock errors are annotated with the item's atomic unit
// name for user-facing messages.
func DeductItem(it models.StockItem, qty float64, denom models.Denomination) (models.StockItem, error) {
	next, err := Deduct(ItemState(it), qty, denom)
	if err != nil {
		var insufficient *InsufficientStockError
		if errors.As(err, &insufficient) {
			insufficient.Unit = Units(it).AtomicName
		}
		return it, err
	}

	ApplyState(&it, next)
	return it, nil
}
