package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/salamtec/inventory-service/internal/auth"
	ledgerhandler "github.com/salamtec/inventory-service/internal/ledger/handler"
	"github.com/salamtec/inventory-service/internal/model"
	"github.com/salamtec/inventory-service/internal/report"
	"github.com/salamtec/inventory-service/pkg/logger"
)

type ReportHandler struct {
	uc     report.UseCase
	logger logger.ZapLogger
}

func NewReportHandler(uc report.UseCase, log logger.ZapLogger) *ReportHandler {
	return &ReportHandler{uc: uc, logger: log}
}

func (h *ReportHandler) Dashboard(c *gin.Context) {
	from, to, ok := h.dateRange(c)
	if !ok {
		return
	}
	dash, err := h.uc.DashboardTotals(c.Request.Context(), from, to)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dash)
}

func (h *ReportHandler) History(c *gin.Context) {
	from, to, ok := h.dateRange(c)
	if !ok {
		return
	}
	rows, err := h.uc.HistoryReport(c.Request.Context(), from, to, auth.ActorFromContext(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": rows})
}

// dateRange parses the required from/to query params (YYYY-MM-DD). On a bad
// request it writes the error response itself and reports !ok.
func (h *ReportHandler) dateRange(c *gin.Context) (from, to time.Time, ok bool) {
	var err error
	from, err = time.ParseInLocation(model.DateLayout, c.Query("from"), time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing 'from' date, expected YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}
	to, err = time.ParseInLocation(model.DateLayout, c.Query("to"), time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing 'to' date, expected YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

func (h *ReportHandler) writeError(c *gin.Context, err error) {
	status := ledgerhandler.StatusForError(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("report request failed", zap.Error(err))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
