// Package memory provides a map-backed store implementing the repository
// contracts. It backs the test suites and the dev mode where no MongoDB is
// reachable.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mbodj/clinivet/internal/domain/models"
	"github.com/mbodj/clinivet/internal/repository"
)

// Store holds every collection in plain maps guarded by one RWMutex.
type Store struct {
	mu            sync.RWMutex
	stock         map[string]models.StockItem
	sales         map[string]models.Sale
	consultations map[string]models.Consultation
	clients       map[string]models.Client
	expenses      map[string]models.Expense
}

// New builds an empty in-memory store.
func New() *Store {
	return &Store{
		stock:         make(map[string]models.StockItem),
		sales:         make(map[string]models.Sale),
		consultations: make(map[string]models.Consultation),
		clients:       make(map[string]models.Client),
		expenses:      make(map[string]models.Expense),
	}
}

func (s *Store) CreateStockItem(_ context.Context, item models.StockItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stock[item.ID] = item
	return nil
}

func (s *Store) GetStockItem(_ context.Context, id string) (models.StockItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.stock[id]
	if !ok {
		return models.StockItem{}, repository.ErrNotFound
	}
	return item, nil
}

func (s *Store) ListStockItems(_ context.Context) ([]models.StockItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.StockItem, 0, len(s.stock))
	for _, item := range s.stock {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].TotalStock < items[j].TotalStock })
	return items, nil
}

// UpdateStockCounters overwrites only the counter fields, mirroring the $set
// partial update performed by the MongoDB store.
func (s *Store) UpdateStockCounters(_ context.Context, id string, counters repository.StockCounters) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.stock[id]
	if !ok {
		return repository.ErrNotFound
	}
	item.SealedCount = counters.SealedCount
	item.LooseRemainder = counters.LooseRemainder
	item.TotalStock = counters.TotalStock
	item.UpdatedAt = time.Now().UTC()
	s.stock[id] = item
	return nil
}

func (s *Store) CreateSale(_ context.Context, sale models.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sales[sale.ID] = sale
	return nil
}

func (s *Store) ListSalesBetween(_ context.Context, start, end time.Time) ([]models.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var sales []models.Sale
	for _, sale := range s.sales {
		if sale.CreatedAt.Before(start) || !sale.CreatedAt.Before(end) {
			continue
		}
		sales = append(sales, sale)
	}
	sort.Slice(sales, func(i, j int) bool { return sales[i].CreatedAt.Before(sales[j].CreatedAt) })
	return sales, nil
}

func (s *Store) CreateConsultation(_ context.Context, c models.Consultation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.consultations[c.ID] = c
	return nil
}

func (s *Store) ListConsultationsByPet(_ context.Context, petID string) ([]models.Consultation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var consultations []models.Consultation
	for _, c := range s.consultations {
		if c.PetID == petID {
			consultations = append(consultations, c)
		}
	}
	sort.Slice(consultations, func(i, j int) bool { return consultations[i].CreatedAt.Before(consultations[j].CreatedAt) })
	return consultations, nil
}

func (s *Store) CreateClient(_ context.Context, c models.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[c.ID] = c
	return nil
}

func (s *Store) GetClient(_ context.Context, id string) (models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.clients[id]
	if !ok {
		return models.Client{}, repository.ErrNotFound
	}
	return c, nil
}

func (s *Store) ListClients(_ context.Context) ([]models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	clients := make([]models.Client, 0, len(s.clients))
	for _, c := range s.clients {
		clients = append(clients, c)
	}
	sort.Slice(clients, func(i, j int) bool { return clients[i].Name < clients[j].Name })
	return clients, nil
}

func (s *Store) CreateExpense(_ context.Context, e models.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses[e.ID] = e
	return nil
}

func (s *Store) ListExpenses(_ context.Context) ([]models.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	expenses := make([]models.Expense, 0, len(s.expenses))
	for _, e := range s.expenses {
		expenses = append(expenses, e)
	}
	sort.Slice(expenses, func(i, j int) bool { return expenses[i].CreatedAt.Before(expenses[j].CreatedAt) })
	return expenses, nil
}
