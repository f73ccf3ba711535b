package consultations

import (
	"context"
	"errors"
	"testing"

	"github.com/mbodj/clinivet/internal/domain/models"
	"github.com/mbodj/clinivet/internal/repository/memory"
	inventorysvc "github.com/mbodj/clinivet/internal/service/inventory"
	"github.com/mbodj/clinivet/internal/stock"
)

func setup(t *testing.T) (*Service, *inventorysvc.Service) {
	t.Helper()
	store := memory.New()
	inv := inventorysvc.NewService(store, stock.DefaultLowStockThreshold, nil)
	return NewService(store, inv, nil), inv
}

func TestSaveDispensesAndRecords(t *testing.T) {
	svc, inv := setup(t)
	ctx := context.Background()

	item, err := inv.Receive(ctx, models.PurchaseOrderLine{
		Name:            "Meloxicam 1.5mg/ml",
		Family:          models.FamilySyrupBottle,
		OrderedPackages: 3,
		UnitsPerPackage: 32,
	})
	if err != nil {
		t.Fatalf("receive: %v", err)
	}

	consultation, err := svc.Save(ctx, SaveRequest{
		ClientID:  "client-1",
		PetID:     "pet-1",
		Diagnosis: "post-op pain",
		Dispensed: []models.DispensedLine{
			{ItemID: item.ID, Quantity: 4.5, Denomination: models.DenomAtomic},
		},
		Fee: 30,
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if consultation.Dispensed[0].ItemName != "Meloxicam 1.5mg/ml" {
		t.Fatalf("expected item name on line, got %+v", consultation.Dispensed[0])
	}

	after, err := inv.Item(ctx, item.ID)
	if err != nil {
		t.Fatalf("item: %v", err)
	}
	if after.LooseRemainder != 27.5 || after.TotalStock != 91.5 {
		t.Fatalf("unexpected counters: %+v", after)
	}

	history, err := svc.HistoryByPet(ctx, "pet-1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 || history[0].ID != consultation.ID {
		t.Fatalf("unexpected history: %+v", history)
	}
}

func TestSaveBlockedByInsufficientStock(t *testing.T) {
	svc, inv := setup(t)
	ctx := context.Background()

	item, err := inv.Receive(ctx, models.PurchaseOrderLine{
		Name:            "Rabies vaccine",
		Family:          models.FamilySimple,
		OrderedPackages: 2,
	})
	if err != nil {
		t.Fatalf("receive: %v", err)
	}

	_, err = svc.Save(ctx, SaveRequest{
		ClientID: "client-1",
		PetID:    "pet-1",
		Dispensed: []models.DispensedLine{
			{ItemID: item.ID, Quantity: 3, Denomination: models.DenomAtomic},
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
	if after.TotalStock != 2 {
		t.Fatalf("stock mutated by blocked save: %+v", after)
	}

	history, err := svc.HistoryByPet(ctx, "pet-1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("consultation recorded despite rejection: %+v", history)
	}
}

func TestSaveWithoutDispensedLines(t *testing.T) {
	svc, _ := setup(t)

	consultation, err := svc.Save(context.Background(), SaveRequest{
		ClientID:  "client-1",
		PetID:     "pet-2",
		Diagnosis: "annual checkup",
		Fee:       25,
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if len(consultation.Dispensed) != 0 {
		t.Fatalf("unexpected dispensed lines: %+v", consultation.Dispensed)
	}
}
