package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JoseNeto-93/almoxarifado-digital-dn3j/internal/domain/models"
	"github.com/JoseNeto-93/almoxarifado-digital-dn3j/internal/export"
	"github.com/JoseNeto-93/almoxarifado-digital-dn3j/internal/service/reporting"
	"github.com/JoseNeto-93/almoxarifado-digital-dn3j/internal/service/stock"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportsHandler serves the dashboard aggregations, the xlsx export and the
// static training catalog.
type ReportsHandler struct {
	engine    *stock.Engine
	reporting *reporting.Service
	logger    *zap.Logger
}

// NewReportsHandler constructs the HTTP handler adapter.
func NewReportsHandler(engine *stock.Engine, reportingSvc *reporting.Service, logger *zap.Logger) *ReportsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportsHandler{engine: engine, reporting: reportingSvc, logger: logger}
}

// Dashboard returns the control-panel summary.
func (h *ReportsHandler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.reporting.Dashboard(currentSession(c)))
}

// FinancialSummary returns ledger totals and the monthly spend series.
func (h *ReportsHandler) FinancialSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.reporting.Financial(currentSession(c)))
}

// ExportMovements streams the movement ledger and catalog snapshot as an
// xlsx download.
func (h *ReportsHandler) ExportMovements(c *gin.Context) {
	state := currentSession(c)
	items := h.engine.Catalog(state)
	movements := h.engine.Movements(state)

	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", `attachment; filename="movimentacoes.xlsx"`)

	if err := export.WriteMovementsWorkbook(c.Writer, items, movements); err != nil {
		h.logger.Error("xlsx export failed", zap.Error(err))
		c.Status(http.StatusInternalServerError)
	}
}

// Training returns the fixed training-module catalog.
func (h *ReportsHandler) Training(c *gin.Context) {
	c.JSON(http.StatusOK, models.TrainingCatalog)
}
