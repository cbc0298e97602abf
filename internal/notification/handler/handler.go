package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	ledgerhandler "github.com/salamtec/inventory-service/internal/ledger/handler"
	"github.com/salamtec/inventory-service/internal/notification"
	"github.com/salamtec/inventory-service/pkg/logger"
)

// NotificationHandler serves the admin-only notification center. Role
// enforcement lives in the router middleware, not here.
type NotificationHandler struct {
	uc     notification.UseCase
	logger logger.ZapLogger
}

func NewNotificationHandler(uc notification.UseCase, log logger.ZapLogger) *NotificationHandler {
	return &NotificationHandler{uc: uc, logger: log}
}

type pushRequest struct {
	Message string `json:"message" binding:"required"`
}

func (h *NotificationHandler) Push(c *gin.Context) {
	var req pushRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.uc.Push(c.Request.Context(), req.Message); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"pushed": true})
}

func (h *NotificationHandler) List(c *gin.Context) {
	items, count, err := h.uc.ListAll(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": items, "count": count})
}

func (h *NotificationHandler) Clear(c *gin.Context) {
	if err := h.uc.ClearAll(c.Request.Context()); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}

func (h *NotificationHandler) writeError(c *gin.Context, err error) {
	status := ledgerhandler.StatusForError(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("notification request failed", zap.Error(err))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
