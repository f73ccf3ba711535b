package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mbodj/clinivet/internal/repository"
	"github.com/mbodj/clinivet/internal/service/registry"
)

// RegistryHandler exposes client and expense record keeping over HTTP.
type RegistryHandler struct {
	svc    *registry.Service
	logger *zap.Logger
}

// NewRegistryHandler constructs the HTTP handler adapter for the registry.
func NewRegistryHandler(svc *registry.Service, logger *zap.Logger) *RegistryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RegistryHandler{svc: svc, logger: logger}
}

// CreateClient registers a pet owner.
func (h *RegistryHandler) CreateClient(c *gin.Context) {
	var req registry.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid client payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	client, err := h.svc.CreateClient(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("failed creating client", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create client"})
		return
	}

	c.JSON(http.StatusCreated, client)
}

// GetClient loads one client with their pets.
func (h *RegistryHandler) GetClient(c *gin.Context) {
	client, err := h.svc.GetClient(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		return
	}
	if err != nil {
		h.logger.Error("failed loading client", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load client"})
		return
	}

	c.JSON(http.StatusOK, client)
}

// ListClients returns all registered clients.
func (h *RegistryHandler) ListClients(c *gin.Context) {
	clients, err := h.svc.ListClients(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing clients", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list clients"})
		return
	}

	c.JSON(http.StatusOK, clients)
}

// CreateExpense records an operating expense.
func (h *RegistryHandler) CreateExpense(c *gin.Context) {
	var req registry.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid expense payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	expense, err := h.svc.CreateExpense(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("failed creating expense", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create expense"})
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// ListExpenses returns all expense entries.
func (h *RegistryHandler) ListExpenses(c *gin.Context) {
	expenses, err := h.svc.ListExpenses(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing expenses", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list expenses"})
		return
	}

	c.JSON(http.StatusOK, expenses)
}
