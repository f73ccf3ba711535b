package models

import "time"

// SaleLine is one priced line of a point-of-sale ticket.
type SaleLine struct {
	ItemID       string       `bson:"item_id" json:"item_id" binding:"required"`
	ItemName     string       `bson:"item_name" json:"item_name"`
	Quantity     float64      `bson:"quantity" json:"quantity" binding:"required"`
	Denomination Denomination `bson:"denomination" json:"denomination" binding:"required"`
	UnitPrice    float64      `bson:"unit_price" json:"unit_price"`
	LineTotal    float64      `bson:"line_total" json:"line_total"`
}

// Sale is a completed checkout. It is only written after every line's
// deduction has gone through.
type Sale struct {
	ID        string     `bson:"_id" json:"id"`
	ClientID  string     `bson:"client_id,omitempty" json:"client_id,omitempty"`
	Lines     []SaleLine `bson:"lines" json:"lines"`
	Total     float64    `bson:"total" json:"total"`
	Paid      float64    `bson:"paid" json:"paid"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
}

// Expense captures an operating expense entry.
type Expense struct {
	ID        string    `bson:"_id" json:"id"`
	Category  string    `bson:"category" json:"category"`
	Amount    float64   `bson:"amount" json:"amount"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
