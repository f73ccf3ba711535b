package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mbodj/clinivet/internal/domain/models"
	"github.com/mbodj/clinivet/internal/repository"
	"github.com/mbodj/clinivet/internal/service/inventory"
	"github.com/mbodj/clinivet/internal/stock"
)

// StockHandler exposes receiving, deduction and stock listings over HTTP.
type StockHandler struct {
	svc    *inventory.Service
	logger *zap.Logger
}

// NewStockHandler constructs the HTTP handler adapter for inventory.
func NewStockHandler(svc *inventory.Service, logger *zap.Logger) *StockHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StockHandler{svc: svc, logger: logger}
}

// Receive commits a purchase-order line and creates the stock item.
func (h *StockHandler) Receive(c *gin.Context) {
	var line models.PurchaseOrderLine
	if err := c.ShouldBindJSON(&line); err != nil {
		h.logger.Warn("invalid receiving payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.svc.Receive(c.Request.Context(), line)
	if err != nil {
		respondStockError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// DeductRequest is the body of a direct stock deduction (manual correction).
type DeductRequest struct {
	Quantity     float64             `json:"quantity" binding:"required"`
	Denomination models.Denomination `json:"denomination" binding:"required"`
}

// Deduct removes a quantity from one item outside any sale or consultation.
func (h *StockHandler) Deduct(c *gin.Context) {
	var req DeductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid deduction payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.svc.Deduct(c.Request.Context(), c.Param("id"), req.Quantity, req.Denomination)
	if err != nil {
		respondStockError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// List returns all stock items with their status.
func (h *StockHandler) List(c *gin.Context) {
	views, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing stock", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list stock"})
		return
	}

	c.JSON(http.StatusOK, views)
}

// Get returns one stock item with its status.
func (h *StockHandler) Get(c *gin.Context) {
	view, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStockError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// respondStockError maps engine and store errors onto HTTP statuses. An
// insufficient-stock rejection is a conflict carrying the available quantity
// for the operator message.
func respondStockError(c *gin.Context, logger *zap.Logger, err error) {
	var insufficient *stock.InsufficientStockError
	var invalid *stock.ValidationError

	switch {
	case errors.As(err, &insufficient):
		c.JSON(http.StatusConflict, gin.H{
			"error":     insufficient.Error(),
			"available": insufficient.Available,
			"unit":      insufficient.Unit,
		})
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error()})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
	default:
		logger.Error("stock operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
