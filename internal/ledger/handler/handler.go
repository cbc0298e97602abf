package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/salamtec/inventory-service/internal/auth"
	"github.com/salamtec/inventory-service/internal/ledger"
	"github.com/salamtec/inventory-service/internal/ledger/dto"
	"github.com/salamtec/inventory-service/internal/model"
	"github.com/salamtec/inventory-service/internal/storage"
	"github.com/salamtec/inventory-service/pkg/logger"
)

type StockHandler struct {
	uc     ledger.UseCase
	logger logger.ZapLogger
}

func NewStockHandler(uc ledger.UseCase, log logger.ZapLogger) *StockHandler {
	return &StockHandler{uc: uc, logger: log}
}

type stockRequest struct {
	ProductName string   `json:"product_name" binding:"required"`
	Quantity    int      `json:"qty"`
	Serials     []string `json:"IMEI"`
}

func (h *StockHandler) AddStock(c *gin.Context) {
	var req stockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.uc.AddStock(c.Request.Context(), &dto.AddStockInput{
		ProductName: req.ProductName,
		Quantity:    req.Quantity,
		Serials:     req.Serials,
		Actor:       auth.ActorFromContext(c),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *StockHandler) RemoveStock(c *gin.Context) {
	var req stockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.uc.RemoveStock(c.Request.Context(), &dto.RemoveStockInput{
		ProductName: req.ProductName,
		Quantity:    req.Quantity,
		Serials:     req.Serials,
		Actor:       auth.ActorFromContext(c),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *StockHandler) ListProducts(c *gin.Context) {
	products, err := h.uc.ListProducts(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *StockHandler) writeError(c *gin.Context, err error) {
	status := StatusForError(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("stock request failed", zap.Error(err))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// StatusForError maps ledger error kinds to HTTP statuses. Shared by the
// report and notification handlers for consistency.
func StatusForError(err error) int {
	var conflict *model.SerialConflictError
	var missing *model.SerialNotFoundError
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrModeMismatch),
		errors.Is(err, model.ErrInsufficientStock),
		errors.As(err, &conflict):
		return http.StatusConflict
	case errors.As(err, &missing):
		return http.StatusUnprocessableEntity
	case errors.Is(err, storage.ErrBusy):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
