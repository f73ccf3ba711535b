// Package inventory orchestrates the stock engine against the record store.
// Every consumption call site (consultation dispensing, POS checkout) and the
// receiving path go through this service, so borrowing and rounding behave
// identically everywhere.
//
// Writes follow a plain read-modify-write cycle with no compare-and-swap: the
// application assumes a single active operator per item. Two overlapping
// checkouts of the same item would lose one update.
package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mbodj/clinivet/internal/domain/models"
	"github.com/mbodj/clinivet/internal/repository"
	"github.com/mbodj/clinivet/internal/stock"
)

// Service exposes receiving, deduction and stock listing.
type Service struct {
	store     repository.StockRepository
	threshold float64
	logger    *zap.Logger
	now       func() time.Time
}

// NewService wires an inventory service. threshold is the low-stock level in
// atomic units.
func NewService(store repository.StockRepository, threshold float64, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if threshold <= 0 {
		threshold = stock.DefaultLowStockThreshold
	}
	return &Service{
		store:     store,
		threshold: threshold,
		logger:    logger,
		now:       time.Now,
	}
}

// Receive commits a purchase-order line and creates the batch's stock item
// document. Validation failures surface before any document is written.
func (s *Service) Receive(ctx context.Context, line models.PurchaseOrderLine) (models.StockItem, error) {
	var (
		state stock.State
		err   error
	)
	if stock.IsSplit(line.Family) {
		state, err = stock.Receive(line.UnitsPerPackage, line.OrderedPackages)
	} else {
		state, err = stock.ReceiveSimple(float64(line.OrderedPackages) * maxOne(line.UnitsPerPackage))
	}
	if err != nil {
		return models.StockItem{}, err
	}

	now := s.now().UTC()
	item := models.StockItem{
		ID:                uuid.NewString(),
		Name:              line.Name,
		Family:            line.Family,
		PackageUnitsRatio: state.Ratio,
		PricePerAtomic:    line.PricePerAtomic,
		PricePerPackage:   line.PricePerPackage,
		SupplierID:        line.SupplierID,
		ReceivedAt:        now,
		UpdatedAt:         now,
	}
	stock.ApplyState(&item, state)

	if err := s.store.CreateStockItem(ctx, item); err != nil {
		return models.StockItem{}, err
	}

	s.logger.Info("stock received",
		zap.String("item_id", item.ID),
		zap.String("name", item.Name),
		zap.Float64("total", item.TotalStock))
	return item, nil
}

// Item loads the current state of one stock item.
func (s *Service) Item(ctx context.Context, id string) (models.StockItem, error) {
	return s.store.GetStockItem(ctx, id)
}

// Deduct runs the engine once against the latest counters of the item and
// persists the result. An InsufficientStock rejection leaves the document
// untouched.
func (s *Service) Deduct(ctx context.Context, itemID string, qty float64, denom models.Denomination) (models.StockItem, error) {
	item, err := s.store.GetStockItem(ctx, itemID)
	if err != nil {
		return models.StockItem{}, err
	}

	next, err := stock.DeductItem(item, qty, denom)
	if err != nil {
		return models.StockItem{}, err
	}

	if err := s.SaveCounters(ctx, next); err != nil {
		return models.StockItem{}, err
	}
	return next, nil
}

// SaveCounters persists the counter fields of an engine-produced item state.
// This is the only stock write path besides Receive.
func (s *Service) SaveCounters(ctx context.Context, item models.StockItem) error {
	return s.store.UpdateStockCounters(ctx, item.ID, repository.StockCounters{
		SealedCount:    item.SealedCount,
		LooseRemainder: item.LooseRemainder,
		TotalStock:     item.TotalStock,
	})
}

// List returns every stock item decorated with its classifier status.
func (s *Service) List(ctx context.Context) ([]models.StockItemView, error) {
	items, err := s.store.ListStockItems(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]models.StockItemView, 0, len(items))
	for _, item := range items {
		views = append(views, models.StockItemView{
			StockItem: item,
			Status:    stock.Classify(item.TotalStock, s.threshold),
		})
	}
	return views, nil
}

// Get returns one stock item decorated with its classifier status.
func (s *Service) Get(ctx context.Context, id string) (models.StockItemView, error) {
	item, err := s.store.GetStockItem(ctx, id)
	if err != nil {
		return models.StockItemView{}, err
	}
	return models.StockItemView{StockItem: item, Status: stock.Classify(item.TotalStock, s.threshold)}, nil
}

// Threshold exposes the configured low-stock level for read-side callers.
func (s *Service) Threshold() float64 {
	return s.threshold
}

func maxOne(v float64) float64 {
	if v <= 0 {
		return 1
	}
	return v
}
