// Package registry covers the plain record-keeping around the stock core:
// clients with their pets, and expense entries.
package registry

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mbodj/clinivet/internal/domain/models"
	"github.com/mbodj/clinivet/internal/repository"
)

// CreateClientRequest registers a pet owner with their pets.
type CreateClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Pets    []struct {
		Name    string `json:"name" binding:"required"`
		Species string `json:"species" binding:"required"`
		Breed   string `json:"breed"`
	} `json:"pets"`
}

// CreateExpenseRequest records an operating expense.
type CreateExpenseRequest struct {
	Category string  `json:"category" binding:"required"`
	Amount   float64 `json:"amount" binding:"required"`
	Notes    string  `json:"notes"`
}

// Service implements client and expense record keeping.
type Service struct {
	clients  repository.ClientRepository
	expenses repository.ExpenseRepository
	logger   *zap.Logger
	now      func() time.Time
}

// NewService wires a registry service.
func NewService(clients repository.ClientRepository, expenses repository.ExpenseRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		clients:  clients,
		expenses: expenses,
		logger:   logger,
		now:      time.Now,
	}
}

// CreateClient registers a pet owner.
func (s *Service) CreateClient(ctx context.Context, req CreateClientRequest) (models.Client, error) {
	client := models.Client{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Phone:     req.Phone,
		Address:   req.Address,
		Pets:      make([]models.Pet, 0, len(req.Pets)),
		CreatedAt: s.now().UTC(),
	}
	for _, p := range req.Pets {
		client.Pets = append(client.Pets, models.Pet{
			ID:      uuid.NewString(),
			Name:    p.Name,
			Species: p.Species,
			Breed:   p.Breed,
		})
	}

	if err := s.clients.CreateClient(ctx, client); err != nil {
		return models.Client{}, err
	}
	s.logger.Info("client registered", zap.String("client_id", client.ID), zap.Int("pets", len(client.Pets)))
	return client, nil
}

// GetClient loads one client with their pets.
func (s *Service) GetClient(ctx context.Context, id string) (models.Client, error) {
	return s.clients.GetClient(ctx, id)
}

// ListClients returns all registered clients.
func (s *Service) ListClients(ctx context.Context) ([]models.Client, error) {
	return s.clients.ListClients(ctx)
}

// CreateExpense records an operating expense.
func (s *Service) CreateExpense(ctx context.Context, req CreateExpenseRequest) (models.Expense, error) {
	expense := models.Expense{
		ID:        uuid.NewString(),
		Category:  req.Category,
		Amount:    req.Amount,
		Notes:     req.Notes,
		CreatedAt: s.now().UTC(),
	}
	if err := s.expenses.CreateExpense(ctx, expense); err != nil {
		return models.Expense{}, err
	}
	return expense, nil
}

// ListExpenses returns all expense entries.
func (s *Service) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	return s.expenses.ListExpenses(ctx)
}
