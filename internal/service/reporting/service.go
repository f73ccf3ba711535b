// Package reporting builds the operator-facing stock and sales summaries and
// appends them to the clinic's bookkeeping spreadsheet.
package reporting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mbodj/clinivet/internal/domain/models"
	"github.com/mbodj/clinivet/internal/repository/sheets"
	"github.com/mbodj/clinivet/internal/stock"
)

const (
	dateLayout       = "2006-01-02"
	salesLedgerRange = "Sales!A:E"
	stockAlertRange  = "StockAlerts!A:D"
)

// StockLister provides classified stock views.
type StockLister interface {
	List(ctx context.Context) ([]models.StockItemView, error)
}

// SalesSource provides sales in a time window.
type SalesSource interface {
	SalesBetween(ctx context.Context, start, end time.Time) ([]models.Sale, error)
}

// Service builds reports and exports ledger rows.
type Service struct {
	stockSvc StockLister
	salesSvc SalesSource
	exporter sheets.Exporter
	logger   *zap.Logger
}

// NewService wires a reporting service. exporter may be nil, in which case
// spreadsheet exports are skipped.
func NewService(stockSvc StockLister, salesSvc SalesSource, exporter sheets.Exporter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		stockSvc: stockSvc,
		salesSvc: salesSvc,
		exporter: exporter,
		logger:   logger,
	}
}

// LowStockReport formats the out-of-stock and low-stock items into an alert
// message for the clinic owner. The empty string means nothing needs
// attention.
func (s *Service) LowStockReport(ctx context.Context) (string, error) {
	views, err := s.stockSvc.List(ctx)
	if err != nil {
		return "", fmt.Errorf("list stock: %w", err)
	}

	var out, low []models.StockItemView
	for _, v := range views {
		switch v.Status {
		case models.StockOut:
			out = append(out, v)
		case models.StockLow:
			low = append(low, v)
		}
	}

	if len(out) == 0 && len(low) == 0 {
		return "", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Stock alert: %d out, %d running low.", len(out), len(low))
	for _, v := range out {
		fmt.Fprintf(&b, "\n- %s: OUT", v.Name)
	}
	for _, v := range low {
		fmt.Fprintf(&b, "\n- %s: %.2f %s left", v.Name, v.TotalStock, stock.Units(v.StockItem).AtomicName)
	}
	return b.String(), nil
}

// DailySalesSummary formats ticket count and revenue for the given day.
func (s *Service) DailySalesSummary(ctx context.Context, day time.Time) (string, error) {
	start := day.Truncate(24 * time.Hour)
	end := start.Add(24 * time.Hour)

	sales, err := s.salesSvc.SalesBetween(ctx, start, end)
	if err != nil {
		return "", fmt.Errorf("list sales: %w", err)
	}

	var total float64
	for _, sale := range sales {
		total += sale.Total
	}
	return fmt.Sprintf("Sales %s: %d tickets, total %.2f.", start.Format(dateLayout), len(sales), total), nil
}

// ExportDailyLedger appends the day's sales and the current stock alerts to
// the spreadsheet. A nil exporter turns this into a no-op.
func (s *Service) ExportDailyLedger(ctx context.Context, day time.Time) error {
	if s.exporter == nil {
		s.logger.Debug("sheets exporter disabled, skipping ledger export")
		return nil
	}

	start := day.Truncate(24 * time.Hour)
	end := start.Add(24 * time.Hour)
	date := start.Format(dateLayout)

	sales, err := s.salesSvc.SalesBetween(ctx, start, end)
	if err != nil {
		return fmt.Errorf("list sales: %w", err)
	}
	for _, sale := range sales {
		row := []interface{}{date, sale.ID, sale.ClientID, sale.Total, sale.Paid}
		if err := s.exporter.AppendRow(ctx, salesLedgerRange, row); err != nil {
			return fmt.Errorf("export sale %s: %w", sale.ID, err)
		}
	}

	views, err := s.stockSvc.List(ctx)
	if err != nil {
		return fmt.Errorf("list stock: %w", err)
	}
	for _, v := range views {
		if v.Status == models.StockOk {
			continue
		}
		row := []interface{}{date, v.Name, string(v.Status), v.TotalStock}
		if err := s.exporter.AppendRow(ctx, stockAlertRange, row); err != nil {
			return fmt.Errorf("export stock alert for %s: %w", v.Name, err)
		}
	}

	s.logger.Info("daily ledger exported", zap.String("date", date), zap.Int("sales", len(sales)))
	return nil
}
