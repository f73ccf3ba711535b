package stock

import "github.com/mbodj/clinivet/internal/domain/models"

// UnitSpec names the denominations a transaction on an item may be expressed
// in, and the conversion factor between them.
type UnitSpec struct {
	PackageName string
	AtomicName  string
	Ratio       float64
}

// Units derives the unit spec for an item from its family tag. Simple items
// have a single denomination and a ratio of 1.
func Units(it models.StockItem) UnitSpec {
	switch it.Family {
	case models.FamilyTabletBox:
		return UnitSpec{PackageName: "box", AtomicName: "tablet", Ratio: it.PackageUnitsRatio}
	case models.FamilySyrupBottle:
		return UnitSpec{PackageName: "bottle", AtomicName: "ml", Ratio: it.PackageUnitsRatio}
	case models.FamilyFoodSack:
		return UnitSpec{PackageName: "sack", AtomicName: "kg", Ratio: it.PackageUnitsRatio}
	default:
		return UnitSpec{PackageName: "unit", AtomicName: "unit", Ratio: 1}
	}
}

// IsSplit reports whether the family carries the two-tier packaging split.
func IsSplit(f models.Family) bool {
	switch f {
	case models.FamilyTabletBox, models.FamilySyrupBottle, models.FamilyFoodSack:
		return true
	default:
		return false
	}
}
