package models

import "time"

// Family tags a stock item with its packaging metaphor. Split families share
// identical dual-counter behavior and differ only in unit naming.
type Family string

const (
	FamilySimple      Family = "simple"
	FamilyTabletBox   Family = "tablet_box"
	FamilySyrupBottle Family = "syrup_bottle"
	FamilyFoodSack    Family = "food_sack"
)

// Denomination selects which unit a transaction quantity is expressed in.
type Denomination string

const (
	DenomPackage Denomination = "package"
	DenomAtomic  Denomination = "atomic"
)

// StockStatus is the classifier verdict for a total stock level.
type StockStatus string

const (
	StockOut StockStatus = "out"
	StockLow StockStatus = "low"
	StockOk  StockStatus = "ok"
)

// StockItem is a dispensable or sellable good. For split families the state
// lives in the SealedCount/LooseRemainder pair; TotalStock is a cached value
// recomputed from the counters on every write, never trusted on its own.
// Simple items keep SealedCount at zero and carry their whole quantity in
// LooseRemainder with a ratio of 1.
type StockItem struct {
	ID                string    `bson:"_id" json:"id"`
	Name              string    `bson:"name" json:"name"`
	Family            Family    `bson:"family" json:"family"`
	PackageUnitsRatio float64   `bson:"package_units_ratio" json:"package_units_ratio"`
	SealedCount       int       `bson:"sealed_count" json:"sealed_count"`
	LooseRemainder    float64   `bson:"loose_remainder" json:"loose_remainder"`
	TotalStock        float64   `bson:"total_stock" json:"total_stock"`
	PricePerAtomic    float64   `bson:"price_per_atomic" json:"price_per_atomic"`
	PricePerPackage   float64   `bson:"price_per_package" json:"price_per_package"`
	SupplierID        string    `bson:"supplier_id,omitempty" json:"supplier_id,omitempty"`
	ReceivedAt        time.Time `bson:"received_at" json:"received_at"`
	UpdatedAt         time.Time `bson:"updated_at" json:"updated_at"`
}

// StockItemView decorates an item with its classifier status for listings.
type StockItemView struct {
	StockItem
	Status StockStatus `json:"status"`
}

// PurchaseOrderLine is the receiving input: a count of sealed packages and
// the atomic units each package contains for this batch.
type PurchaseOrderLine struct {
	Name            string  `json:"name" binding:"required"`
	Family          Family  `json:"family" binding:"required"`
	OrderedPackages int     `json:"ordered_packages" binding:"required"`
	UnitsPerPackage float64 `json:"units_per_package"`
	PricePerAtomic  float64 `json:"price_per_atomic"`
	PricePerPackage float64 `json:"price_per_package"`
	SupplierID      string  `json:"supplier_id"`
}
