package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/mbodj/clinivet/internal/domain/models"
	"github.com/mbodj/clinivet/internal/repository"
)

func TestCounterUpdateIsPartial(t *testing.T) {
	s := New()
	ctx := context.Background()

	item := models.StockItem{
		ID:                "it-1",
		Name:              "Doxycycline 100mg",
		Family:            models.FamilyTabletBox,
		PackageUnitsRatio: 100,
		SealedCount:       4,
		LooseRemainder:    100,
		TotalStock:        500,
		PricePerAtomic:    0.5,
		PricePerPackage:   40,
	}
	if err := s.CreateStockItem(ctx, item); err != nil {
		t.Fatalf("create: %v", err)
	}

	err := s.UpdateStockCounters(ctx, "it-1", repository.StockCounters{SealedCount: 3, LooseRemainder: 25, TotalStock: 325})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := s.GetStockItem(ctx, "it-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.SealedCount != 3 || got.LooseRemainder != 25 || got.TotalStock != 325 {
		t.Fatalf("counters not applied: %+v", got)
	}
	if got.Name != item.Name || got.PricePerPackage != item.PricePerPackage {
		t.Fatalf("non-counter fields clobbered: %+v", got)
	}
}

func TestUpdateUnknownItem(t *testing.T) {
	s := New()
	err := s.UpdateStockCounters(context.Background(), "missing", repository.StockCounters{})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListStockSortsByTotal(t *testing.T) {
	s := New()
	ctx := context.Background()
	for _, it := range []models.StockItem{
		{ID: "a", TotalStock: 50},
		{ID: "b", TotalStock: 0},
		{ID: "c", TotalStock: 7},
	} {
		if err := s.CreateStockItem(ctx, it); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	items, err := s.ListStockItems(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 3 || items[0].ID != "b" || items[1].ID != "c" || items[2].ID != "a" {
		t.Fatalf("unexpected order: %+v", items)
	}
}

func TestConcurrentCounterWrites(t *testing.T) {
	s := New()
	ctx := context.Background()
	if err := s.CreateStockItem(ctx, models.StockItem{ID: "it-1"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = s.UpdateStockCounters(ctx, "it-1", repository.StockCounters{SealedCount: n})
		}(i)
	}
	wg.Wait()

	if _, err := s.GetStockItem(ctx, "it-1"); err != nil {
		t.Fatalf("get after concurrent writes: %v", err)
	}
}
