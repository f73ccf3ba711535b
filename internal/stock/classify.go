package stock

import "github.com/mbodj/clinivet/internal/domain/models"

// DefaultLowStockThreshold is the stock level at or below which an item is
// flagged as running low, in atomic units. Overridable through configuration.
const DefaultLowStockThreshold = 10

// Classify reports the status of a total stock level against the low-stock
// threshold.
func Classify(total, lowThreshold float64) models.StockStatus {
	switch {
	case total <= 0:
		return models.StockOut
	case total <= lowThreshold:
		return models.StockLow
	default:
		return models.StockOk
	}
}
