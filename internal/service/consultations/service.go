// Package consultations records medical visits and dispenses the prescribed
// medicines through the same deduction engine the POS uses. A visit is only
// recorded once every dispensed line has been deducted; a rejection on any
// line blocks the whole save.
package consultations

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mbodj/clinivet/internal/domain/models"
	"github.com/mbodj/clinivet/internal/repository"
	"github.com/mbodj/clinivet/internal/stock"
)

// Inventory is the slice of the inventory service used when dispensing.
type Inventory interface {
	Item(ctx context.Context, id string) (models.StockItem, error)
	SaveCounters(ctx context.Context, item models.StockItem) error
}

// SaveRequest carries a consultation to record.
type SaveRequest struct {
	ClientID  string                 `json:"client_id" binding:"required"`
	PetID     string                 `json:"pet_id" binding:"required"`
	Diagnosis string                 `json:"diagnosis"`
	Notes     string                 `json:"notes"`
	Dispensed []models.DispensedLine `json:"dispensed"`
	Fee       float64                `json:"fee"`
}

// Service implements consultation saving.
type Service struct {
	store     repository.ConsultationRepository
	inventory Inventory
	logger    *zap.Logger
	now       func() time.Time
}

// NewService wires a consultations service.
func NewService(store repository.ConsultationRepository, inv Inventory, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:     store,
		inventory: inv,
		logger:    logger,
		now:       time.Now,
	}
}

// Save dispenses every line and records the visit. Like the POS checkout,
// all lines are validated against working copies before any counter write,
// so a failed dispense leaves both stock and the visit history untouched.
func (s *Service) Save(ctx context.Context, req SaveRequest) (models.Consultation, error) {
	copies := make(map[string]models.StockItem)
	order := make([]string, 0, len(req.Dispensed))
	dispensed := make([]models.DispensedLine, 0, len(req.Dispensed))

	for _, line := range req.Dispensed {
		item, ok := copies[line.ItemID]
		if !ok {
			var err error
			item, err = s.inventory.Item(ctx, line.ItemID)
			if err != nil {
				return models.Consultation{}, err
			}
			order = append(order, line.ItemID)
		}

		next, err := stock.DeductItem(item, line.Quantity, line.Denomination)
		if err != nil {
			return models.Consultation{}, err
		}
		copies[line.ItemID] = next

		line.ItemName = item.Name
		dispensed = append(dispensed, line)
	}

	for _, id := range order {
		if err := s.inventory.SaveCounters(ctx, copies[id]); err != nil {
			return models.Consultation{}, err
		}
	}

	consultation := models.Consultation{
		ID:        uuid.NewString(),
		ClientID:  req.ClientID,
		PetID:     req.PetID,
		Diagnosis: req.Diagnosis,
		Notes:     req.Notes,
		Dispensed: dispensed,
		Fee:       req.Fee,
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.CreateConsultation(ctx, consultation); err != nil {
		return models.Consultation{}, err
	}

	s.logger.Info("consultation recorded",
		zap.String("consultation_id", consultation.ID),
		zap.String("pet_id", consultation.PetID),
		zap.Int("dispensed_lines", len(consultation.Dispensed)))
	return consultation, nil
}

// HistoryByPet returns a pet's visit history.
func (s *Service) HistoryByPet(ctx context.Context, petID string) ([]models.Consultation, error) {
	return s.store.ListConsultationsByPet(ctx, petID)
}
