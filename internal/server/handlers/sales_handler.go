package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mbodj/clinivet/internal/service/sales"
)

// SalesHandler exposes the POS checkout over HTTP.
type SalesHandler struct {
	svc    *sales.Service
	logger *zap.Logger
}

// NewSalesHandler constructs the HTTP handler adapter for sales.
func NewSalesHandler(svc *sales.Service, logger *zap.Logger) *SalesHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SalesHandler{svc: svc, logger: logger}
}

// Checkout prices, deducts and records a POS ticket.
func (h *SalesHandler) Checkout(c *gin.Context) {
	var req sales.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid checkout payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sale, err := h.svc.Checkout(c.Request.Context(), req)
	if err != nil {
		respondStockError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, sale)
}
