package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mbodj/clinivet/internal/service/consultations"
)

// ConsultationHandler exposes consultation saving and history over HTTP.
type ConsultationHandler struct {
	svc    *consultations.Service
	logger *zap.Logger
}

// NewConsultationHandler constructs the HTTP handler adapter for
// consultations.
func NewConsultationHandler(svc *consultations.Service, logger *zap.Logger) *ConsultationHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConsultationHandler{svc: svc, logger: logger}
}

// Save records a visit and dispenses its medicines.
func (h *ConsultationHandler) Save(c *gin.Context) {
	var req consultations.SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid consultation payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	consultation, err := h.svc.Save(c.Request.Context(), req)
	if err != nil {
		respondStockError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, consultation)
}

// HistoryByPet lists the visits recorded for one pet.
func (h *ConsultationHandler) HistoryByPet(c *gin.Context) {
	history, err := h.svc.HistoryByPet(c.Request.Context(), c.Param("petId"))
	if err != nil {
		h.logger.Error("failed listing consultations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list consultations"})
		return
	}

	c.JSON(http.StatusOK, history)
}
