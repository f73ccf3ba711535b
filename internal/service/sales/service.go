// Package sales implements the point-of-sale checkout. A ticket is priced
// with the resolver, validated line by line against current stock, and only
// recorded once every deduction has been persisted. An InsufficientStock
// rejection aborts the checkout before any document is written.
package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mbodj/clinivet/internal/domain/models"
	"github.com/mbodj/clinivet/internal/repository"
	"github.com/mbodj/clinivet/internal/stock"
)

// Inventory is the slice of the inventory service used by checkout.
type Inventory interface {
	Item(ctx context.Context, id string) (models.StockItem, error)
	SaveCounters(ctx context.Context, item models.StockItem) error
}

// CheckoutRequest is a POS ticket before pricing.
type CheckoutRequest struct {
	ClientID string         `json:"client_id"`
	Lines    []CheckoutLine `json:"lines" binding:"required,min=1"`
	Paid     float64        `json:"paid"`
}

// CheckoutLine is one requested line of a ticket.
type CheckoutLine struct {
	ItemID       string              `json:"item_id" binding:"required"`
	Quantity     float64             `json:"quantity" binding:"required"`
	Denomination models.Denomination `json:"denomination" binding:"required"`
}

// Service implements checkout against the sale store and the inventory.
type Service struct {
	store     repository.SaleRepository
	inventory Inventory
	logger    *zap.Logger
	now       func() time.Time
}

// NewService wires a sales service.
func NewService(store repository.SaleRepository, inv Inventory, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:     store,
		inventory: inv,
		logger:    logger,
		now:       time.Now,
	}
}

// Checkout prices and fulfills a ticket. All lines are run through the
// deduction engine against working copies first, so a rejection on any line
// surfaces before a single counter is written; lines targeting the same item
// accumulate on one copy. The persisted counters are then written per item
// and the sale document recorded last.
func (s *Service) Checkout(ctx context.Context, req CheckoutRequest) (models.Sale, error) {
	copies := make(map[string]models.StockItem)
	order := make([]string, 0, len(req.Lines))
	lines := make([]models.SaleLine, 0, len(req.Lines))

	for _, line := range req.Lines {
		item, ok := copies[line.ItemID]
		if !ok {
			var err error
			item, err = s.inventory.Item(ctx, line.ItemID)
			if err != nil {
				return models.Sale{}, err
			}
			order = append(order, line.ItemID)
		}

		next, err := stock.DeductItem(item, line.Quantity, line.Denomination)
		if err != nil {
			return models.Sale{}, err
		}
		copies[line.ItemID] = next

		lines = append(lines, models.SaleLine{
			ItemID:       item.ID,
			ItemName:     item.Name,
			Quantity:     line.Quantity,
			Denomination: line.Denomination,
			UnitPrice:    stock.PriceFor(item, line.Denomination),
			LineTotal:    stock.LineTotal(item, line.Quantity, line.Denomination),
		})
	}

	for _, id := range order {
		if err := s.inventory.SaveCounters(ctx, copies[id]); err != nil {
			return models.Sale{}, err
		}
	}

	var total float64
	for _, line := range lines {
		total += line.LineTotal
	}

	sale := models.Sale{
		ID:        uuid.NewString(),
		ClientID:  req.ClientID,
		Lines:     lines,
		Total:     total,
		Paid:      req.Paid,
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.CreateSale(ctx, sale); err != nil {
		return models.Sale{}, err
	}

	s.logger.Info("checkout completed",
		zap.String("sale_id", sale.ID),
		zap.Int("lines", len(sale.Lines)),
		zap.Float64("total", sale.Total))
	return sale, nil
}

// SalesBetween lists sales in a time window for reporting callers.
func (s *Service) SalesBetween(ctx context.Context, start, end time.Time) ([]models.Sale, error) {
	return s.store.ListSalesBetween(ctx, start, end)
}
