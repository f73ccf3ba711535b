// Package repository declares the persistence contracts shared by the MongoDB
// and in-memory stores. Stock counters are written through UpdateCounters
// only, a partial-field update, so the document's other fields follow
// last-write-wins semantics at the field level.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/mbodj/clinivet/internal/domain/models"
)

// ErrNotFound is returned when a document id does not exist.
var ErrNotFound = errors.New("record not found")

// StockCounters is the partial update written after every engine run: the two
// source-of-truth counters plus the recomputed cached total.
type StockCounters struct {
	SealedCount    int
	LooseRemainder float64
	TotalStock     float64
}

// StockRepository persists stock item documents.
type StockRepository interface {
	CreateStockItem(ctx context.Context, item models.StockItem) error
	GetStockItem(ctx context.Context, id string) (models.StockItem, error)
	ListStockItems(ctx context.Context) ([]models.StockItem, error)
	UpdateStockCounters(ctx context.Context, id string, counters StockCounters) error
}

// SaleRepository persists completed checkouts.
type SaleRepository interface {
	CreateSale(ctx context.Context, sale models.Sale) error
	ListSalesBetween(ctx context.Context, start, end time.Time) ([]models.Sale, error)
}

// ConsultationRepository persists medical visits.
type ConsultationRepository interface {
	CreateConsultation(ctx context.Context, c models.Consultation) error
	ListConsultationsByPet(ctx context.Context, petID string) ([]models.Consultation, error)
}

// ClientRepository persists pet owners and their pets.
type ClientRepository interface {
	CreateClient(ctx context.Context, c models.Client) error
	GetClient(ctx context.Context, id string) (models.Client, error)
	ListClients(ctx context.Context) ([]models.Client, error)
}

// ExpenseRepository persists operating expenses.
type ExpenseRepository interface {
	CreateExpense(ctx context.Context, e models.Expense) error
	ListExpenses(ctx context.Context) ([]models.Expense, error)
}

// Store aggregates every contract a storage backend provides.
type Store interface {
	StockRepository
	SaleRepository
	ConsultationRepository
	ClientRepository
	ExpenseRepository
}
