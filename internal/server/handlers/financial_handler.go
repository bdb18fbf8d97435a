package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/JoseNeto-93/almoxarifado-digital-dn3j/internal/domain/models"
	"github.com/JoseNeto-93/almoxarifado-digital-dn3j/internal/service/stock"
)

const invoiceDateLayout = "2006-01-02"

// FinancialHandler exposes the purchase-invoice ledger.
type FinancialHandler struct {
	engine *stock.Engine
	logger *zap.Logger
}

// NewFinancialHandler constructs the HTTP handler adapter.
func NewFinancialHandler(engine *stock.Engine, logger *zap.Logger) *FinancialHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FinancialHandler{engine: engine, logger: logger}
}

// List returns all financial records in append order.
func (h *FinancialHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.FinancialRecords(currentSession(c)))
}

// Register stores an invoice line and, when the referenced item exists,
// applies the matching stock entry. The response carries the typed partial
// outcome so the caller can tell a full success from a record stored without
// stock effect.
func (h *FinancialHandler) Register(c *gin.Context) {
	var req models.InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid invoice payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	recordDate := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse(invoiceDateLayout, req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted as YYYY-MM-DD"})
			return
		}
		recordDate = parsed
	}

	state := currentSession(c)

	itemName := ""
	if item, ok := h.engine.Item(state, req.ItemID); ok {
		itemName = item.Name
	}

	record := models.FinancialRecord{
		ID:            uuid.NewString(),
		InvoiceNumber: req.InvoiceNumber,
		Supplier:      req.Supplier,
		Date:          recordDate,
		ItemID:        req.ItemID,
		ItemName:      itemName,
		Quantity:      req.Quantity,
		UnitPrice:     req.UnitPrice,
		TotalPrice:    float64(req.Quantity) * req.UnitPrice,
	}

	result, err := h.engine.RegisterInvoice(state, record)
	if err != nil {
		switch {
		case errors.Is(err, stock.ErrInvalidQuantity), errors.Is(err, stock.ErrInvalidPrice):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			h.logger.Error("invoice registration failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "operation failed"})
		}
		return
	}

	c.JSON(http.StatusCreated, result)
}

// Delete removes one financial record. Stock side effects from its
// registration are intentionally kept.
func (h *FinancialHandler) Delete(c *gin.Context) {
	if err := h.engine.DeleteFinancialRecord(currentSession(c), c.Param("id")); err != nil {
		if errors.Is(err, stock.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("financial deletion failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "operation failed"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Clear drops the entire financial ledger.
func (h *FinancialHandler) Clear(c *gin.Context) {
	removed := h.engine.ClearFinancialRecords(currentSession(c))
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}
