package reporting

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mbodj/clinivet/internal/domain/models"
)

type fakeStock struct {
	views []models.StockItemView
}

func (f *fakeStock) List(context.Context) ([]models.StockItemView, error) {
	return f.views, nil
}

type fakeSales struct {
	sales []models.Sale
}

func (f *fakeSales) SalesBetween(context.Context, time.Time, time.Time) ([]models.Sale, error) {
	return f.sales, nil
}

type captureExporter struct {
	rows map[string][][]interface{}
}

func (c *captureExporter) AppendRow(_ context.Context, sheetRange string, values []interface{}) error {
	if c.rows == nil {
		c.rows = make(map[string][][]interface{})
	}
	c.rows[sheetRange] = append(c.rows[sheetRange], values)
	return nil
}

func splitView(name string, family models.Family, total float64, status models.StockStatus) models.StockItemView {
	return models.StockItemView{
		StockItem: models.StockItem{Name: name, Family: family, TotalStock: total},
		Status:    status,
	}
}

func TestLowStockReportFormatsAlerts(t *testing.T) {
	svc := NewService(&fakeStock{views: []models.StockItemView{
		splitView("Rabies vaccine", models.FamilySimple, 0, models.StockOut),
		splitView("Amoxicillin syrup", models.FamilySyrupBottle, 4.5, models.StockLow),
		splitView("Doxycycline", models.FamilyTabletBox, 400, models.StockOk),
	}}, &fakeSales{}, nil, nil)

	report, err := svc.LowStockReport(context.Background())
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if !strings.Contains(report, "1 out, 1 running low") {
		t.Fatalf("unexpected header: %q", report)
	}
	if !strings.Contains(report, "Rabies vaccine: OUT") {
		t.Fatalf("missing out line: %q", report)
	}
	if !strings.Contains(report, "Amoxicillin syrup: 4.50 ml left") {
		t.Fatalf("missing low line with unit: %q", report)
	}
	if strings.Contains(report, "Doxycycline") {
		t.Fatalf("ok items must not appear: %q", report)
	}
}

func TestLowStockReportEmptyWhenAllOk(t *testing.T) {
	svc := NewService(&fakeStock{views: []models.StockItemView{
		splitView("Doxycycline", models.FamilyTabletBox, 400, models.StockOk),
	}}, &fakeSales{}, nil, nil)

	report, err := svc.LowStockReport(context.Background())
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if report != "" {
		t.Fatalf("expected empty report, got %q", report)
	}
}

func TestDailySalesSummary(t *testing.T) {
	svc := NewService(&fakeStock{}, &fakeSales{sales: []models.Sale{
		{ID: "s1", Total: 41.25},
		{ID: "s2", Total: 10},
	}}, nil, nil)

	summary, err := svc.DailySalesSummary(context.Background(), time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if !strings.Contains(summary, "2 tickets") || !strings.Contains(summary, "51.25") {
		t.Fatalf("unexpected summary: %q", summary)
	}
}

func TestExportDailyLedger(t *testing.T) {
	exporter := &captureExporter{}
	svc := NewService(&fakeStock{views: []models.StockItemView{
		splitView("Rabies vaccine", models.FamilySimple, 0, models.StockOut),
		splitView("Doxycycline", models.FamilyTabletBox, 400, models.StockOk),
	}}, &fakeSales{sales: []models.Sale{
		{ID: "s1", ClientID: "c1", Total: 41.25, Paid: 45},
	}}, exporter, nil)

	if err := svc.ExportDailyLedger(context.Background(), time.Now()); err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(exporter.rows[salesLedgerRange]) != 1 {
		t.Fatalf("expected 1 sales row, got %+v", exporter.rows)
	}
	if len(exporter.rows[stockAlertRange]) != 1 {
		t.Fatalf("only non-ok items are exported, got %+v", exporter.rows[stockAlertRange])
	}
}

func TestExportSkippedWithoutExporter(t *testing.T) {
	svc := NewService(&fakeStock{}, &fakeSales{}, nil, nil)
	if err := svc.ExportDailyLedger(context.Background(), time.Now()); err != nil {
		t.Fatalf("expected no-op, got %v", err)
	}
}
