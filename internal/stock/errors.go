package stock

import "fmt"

// ValidationError reports malformed engine input. It is returned before any
// state is created or touched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InsufficientStockError signals that a requested deduction exceeds the total
// available quantity. The state it was checked against is left unchanged.
type InsufficientStockError struct {
	Requested float64
	Available float64
	Unit      string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: requested %.2f %s, only %.2f available", e.Requested, e.Unit, e.Available)
}
