package stock

import (
	"testing"

	"github.com/mbodj/clinivet/internal/domain/models"
)

func TestPriceForSplitItem(t *testing.T) {
	// Package and atomic prices are configured independently; neither is
	// derived from the other.
	it := models.StockItem{
		Family:            models.FamilyTabletBox,
		PackageUnitsRatio: 100,
		PricePerAtomic:    0.5,
		PricePerPackage:   40,
	}

	if got := PriceFor(it, models.DenomPackage); got != 40 {
		t.Fatalf("package price: got %v", got)
	}
	if got := PriceFor(it, models.DenomAtomic); got != 0.5 {
		t.Fatalf("atomic price: got %v", got)
	}
}

func TestPriceForSimpleItem(t *testing.T) {
	it := models.StockItem{Family: models.FamilySimple, PricePerAtomic: 12}
	if got := PriceFor(it, models.DenomPackage); got != 12 {
		t.Fatalf("simple items have a single price, got %v", got)
	}
}

func TestLineTotal(t *testing.T) {
	it := models.StockItem{
		Family:            models.FamilySyrupBottle,
		PackageUnitsRatio: 60,
		PricePerAtomic:    0.35,
		PricePerPackage:   18,
	}

	if got := LineTotal(it, 2, models.DenomPackage); got != 36 {
		t.Fatalf("expected 36, got %v", got)
	}
	if got := LineTotal(it, 7.5, models.DenomAtomic); got != 2.63 {
		t.Fatalf("expected 2.63, got %v", got)
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		total float64
		want  models.StockStatus
	}{
		{0, models.StockOut},
		{0.5, models.StockLow},
		{10, models.StockLow},
		{10.01, models.StockOk},
		{600, models.StockOk},
	}

	for _, tc := range cases {
		if got := Classify(tc.total, DefaultLowStockThreshold); got != tc.want {
			t.Fatalf("classify(%v) = %v, want %v", tc.total, got, tc.want)
		}
	}
}

func TestUnitsPerFamily(t *testing.T) {
	cases := []struct {
		family  models.Family
		pkg     string
		atomic  string
		isSplit bool
	}{
		{models.FamilyTabletBox, "box", "tablet", true},
		{models.FamilySyrupBottle, "bottle", "ml", true},
		{models.FamilyFoodSack, "sack", "kg", true},
		{models.FamilySimple, "unit", "unit", false},
	}

	for _, tc := range cases {
		it := models.StockItem{Family: tc.family, PackageUnitsRatio: 12}
		spec := Units(it)
		if spec.PackageName != tc.pkg || spec.AtomicName != tc.atomic {
			t.Fatalf("%s: unexpected spec %+v", tc.family, spec)
		}
		if tc.isSplit && spec.Ratio != 12 {
			t.Fatalf("%s: expected ratio 12, got %v", tc.family, spec.Ratio)
		}
		if !tc.isSplit && spec.Ratio != 1 {
			t.Fatalf("%s: expected ratio 1, got %v", tc.family, spec.Ratio)
		}
		if IsSplit(tc.family) != tc.isSplit {
			t.Fatalf("%s: IsSplit mismatch", tc.family)
		}
	}
}
