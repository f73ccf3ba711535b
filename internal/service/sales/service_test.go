package sales

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mbodj/clinivet/internal/domain/models"
	"github.com/mbodj/clinivet/internal/repository/memory"
	inventorysvc "github.com/mbodj/clinivet/internal/service/inventory"
	"github.com/mbodj/clinivet/internal/stock"
)

func setup(t *testing.T) (*Service, *inventorysvc.Service, *memory.Store) {
	t.Helper()
	store := memory.New()
	inv := inventorysvc.NewService(store, stock.DefaultLowStockThreshold, nil)
	return NewService(store, inv, nil), inv, store
}

func receiveSyrup(t *testing.T, inv *inventorysvc.Service) models.StockItem {
	t.Helper()
	item, err := inv.Receive(context.Background(), models.PurchaseOrderLine{
		Name:            "Amoxicillin syrup 60ml",
		Family:          models.FamilySyrupBottle,
		OrderedPackages: 10,
		UnitsPerPackage: 60,
		PricePerAtomic:  0.35,
		PricePerPackage: 18,
	})
	if err != nil {
		t.Fatalf("receive: %v", err)
	}
	return item
}

func TestCheckoutPricesAndDeducts(t *testing.T) {
	svc, inv, _ := setup(t)
	ctx := context.Background()
	item := receiveSyrup(t, inv)

	sale, err := svc.Checkout(ctx, CheckoutRequest{
		ClientID: "client-1",
		Lines: []CheckoutLine{
			{ItemID: item.ID, Quantity: 2, Denomination: models.DenomPackage},
			{ItemID: item.ID, Quantity: 15, Denomination: models.DenomAtomic},
		},
		Paid: 45,
	})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	// 2 bottles at the bottle price plus 15 ml at the per-ml price; the two
	// prices are independent.
	if sale.Lines[0].LineTotal != 36 || sale.Lines[1].LineTotal != 5.25 {
		t.Fatalf("unexpected line totals: %+v", sale.Lines)
	}
	if sale.Total != 41.25 {
		t.Fatalf("expected total 41.25, got %v", sale.Total)
	}

	after, err := inv.Item(ctx, item.ID)
	if err != nil {
		t.Fatalf("item: %v", err)
	}
	// 600 - 120 - 15 = 465
	if after.TotalStock != 465 {
		t.Fatalf("expected total stock 465, got %v", after.TotalStock)
	}
	if after.SealedCount != 7 || after.LooseRemainder != 45 {
		t.Fatalf("unexpected counters: %+v", after)
	}
}

func TestCheckoutInsufficientLineRecordsNothing(t *testing.T) {
	svc, inv, store := setup(t)
	ctx := context.Background()
	item := receiveSyrup(t, inv)

	_, err := svc.Checkout(ctx, CheckoutRequest{
		Lines: []CheckoutLine{
			{ItemID: item.ID, Quantity: 5, Denomination: models.DenomPackage},
			{ItemID: item.ID, Quantity: 400, Denomination: models.DenomAtomic},
		},
	})
	var insufficient *stock.InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}

	after, err := inv.Item(ctx, item.ID)
	if err != nil {
		t.Fatalf("item: %v", err)
	}
	if after.SealedCount != 9 || after.LooseRemainder != 60 || after.TotalStock != 600 {
		t.Fatalf("stock mutated by rejected checkout: %+v", after)
	}

	sales, err := store.ListSalesBetween(ctx, time.Time{}, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("list sales: %v", err)
	}
	if len(sales) != 0 {
		t.Fatalf("sale recorded despite rejection: %+v", sales)
	}
}

func TestCheckoutUnknownItem(t *testing.T) {
	svc, _, _ := setup(t)

	_, err := svc.Checkout(context.Background(), CheckoutRequest{
		Lines: []CheckoutLine{{ItemID: "missing", Quantity: 1, Denomination: models.DenomAtomic}},
	})
	if err == nil {
		t.Fatal("expected error for unknown item")
	}
}

func TestCheckoutAccumulatesLinesOnSameItem(t *testing.T) {
	svc, inv, _ := setup(t)
	ctx := context.Background()
	item := receiveSyrup(t, inv)

	// Two lines of 300 ml each consume the entire batch; a third ml would
	// have failed, so accumulation across lines is checked against one
	// working copy.
	sale, err := svc.Checkout(ctx, CheckoutRequest{
		Lines: []CheckoutLine{
			{ItemID: item.ID, Quantity: 300, Denomination: models.DenomAtomic},
			{ItemID: item.ID, Quantity: 300, Denomination: models.DenomAtomic},
		},
	})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if len(sale.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(sale.Lines))
	}

	after, err := inv.Item(ctx, item.ID)
	if err != nil {
		t.Fatalf("item: %v", err)
	}
	if after.TotalStock != 0 || after.SealedCount != 0 || after.LooseRemainder != 0 {
		t.Fatalf("expected drained stock, got %+v", after)
	}
}
