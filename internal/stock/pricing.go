package stock

import "github.com/mbodj/clinivet/internal/domain/models"

// PriceFor returns the per-unit price for the chosen denomination. The two
// prices of a split item are configured independently; a package price is not
// derived from ratio times the atomic price (bulk pricing differs from
// per-unit retail), so callers must never cross-compute one from the other.
func PriceFor(it models.StockItem, denom models.Denomination) float64 {
	if it.Family == models.FamilySimple {
		return it.PricePerAtomic
	}
	if denom == models.DenomPackage {
		return it.PricePerPackage
	}
	return it.PricePerAtomic
}

// LineTotal computes the price of qty units in the chosen denomination.
func LineTotal(it models.StockItem, qty float64, denom models.Denomination) float64 {
	return round2(PriceFor(it, denom) * qty)
}
