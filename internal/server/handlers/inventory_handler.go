package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/JoseNeto-93/almoxarifado-digital-dn3j/internal/domain/models"
	"github.com/JoseNeto-93/almoxarifado-digital-dn3j/internal/export"
	"github.com/JoseNeto-93/almoxarifado-digital-dn3j/internal/service/stock"
)

// InventoryHandler exposes the catalog and the movement ledger.
type InventoryHandler struct {
	engine *stock.Engine
	logger *zap.Logger
}

// NewInventoryHandler constructs the HTTP handler adapter.
func NewInventoryHandler(engine *stock.Engine, logger *zap.Logger) *InventoryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryHandler{engine: engine, logger: logger}
}

// List returns the session catalog.
func (h *InventoryHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.Catalog(currentSession(c)))
}

// Register adds a new catalog item. The server mints the id.
func (h *InventoryHandler) Register(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid product payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item := models.InventoryItem{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Category: req.Category,
		Quantity: req.Quantity,
		MinStock: req.MinStock,
		Unit:     req.Unit,
		Location: req.Location,
	}

	if err := h.engine.RegisterProduct(currentSession(c), item); err != nil {
		h.respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// Update fully replaces a catalog entry. Quantity edits through this path
// are not recorded as movements.
func (h *InventoryHandler) Update(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid product payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	state := currentSession(c)
	item := models.InventoryItem{
		ID:       c.Param("id"),
		Name:     req.Name,
		Category: req.Category,
		Quantity: req.Quantity,
		MinStock: req.MinStock,
		Unit:     req.Unit,
		Location: req.Location,
	}
	if current, ok := h.engine.Item(state, item.ID); ok {
		item.LastUpdated = current.LastUpdated
	}

	if err := h.engine.UpdateProduct(state, item); err != nil {
		h.respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// Zero sets an item's quantity to zero without touching the ledger.
func (h *InventoryHandler) Zero(c *gin.Context) {
	state := currentSession(c)
	if err := h.engine.ZeroStock(state, c.Param("id")); err != nil {
		h.respondEngineError(c, err)
		return
	}

	item, _ := h.engine.Item(state, c.Param("id"))
	c.JSON(http.StatusOK, item)
}

// Movements returns the ledger, newest first.
func (h *InventoryHandler) Movements(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.Movements(currentSession(c)))
}

// RecordMovement registers a manual IN or OUT movement. Over-withdrawal is
// rejected here, before the engine is called; the engine re-checks with a
// distinct error as a second line of defense.
func (h *InventoryHandler) RecordMovement(c *gin.Context) {
	var req models.MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid movement payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	state := currentSession(c)

	newQuantity := req.Quantity
	itemName := ""
	if item, ok := h.engine.Item(state, req.ItemID); ok {
		itemName = item.Name
		switch req.Type {
		case models.MovementOut:
			if req.Quantity > item.Quantity {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "requested quantity exceeds available stock"})
				return
			}
			newQuantity = item.Quantity - req.Quantity
		case models.MovementIn:
			newQuantity = item.Quantity + req.Quantity
		}
	}

	movement := models.StockMovement{
		ID:       uuid.NewString(),
		ItemID:   req.ItemID,
		ItemName: itemName,
		Type:     req.Type,
		Quantity: req.Quantity,
		Date:     time.Now(),
	}
	if req.Type == models.MovementOut {
		movement.EmployeeName = req.EmployeeName
	}

	result, err := h.engine.RecordMovement(state, req.ItemID, newQuantity, movement)
	if err != nil {
		h.respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// Receipt builds the printable withdrawal declaration for one movement.
func (h *InventoryHandler) Receipt(c *gin.Context) {
	state := currentSession(c)

	movement, ok := h.engine.Movement(state, c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "movement not found"})
		return
	}

	var itemRef *models.InventoryItem
	if item, found := h.engine.Item(state, movement.ItemID); found {
		itemRef = &item
	}

	c.JSON(http.StatusOK, export.BuildReceipt(state.Profile(), movement, itemRef))
}

func (h *InventoryHandler) respondEngineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, stock.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, stock.ErrDuplicateID):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, stock.ErrInsufficientStock), errors.Is(err, stock.ErrInvalidQuantity):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		h.logger.Error("inventory operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "operation failed"})
	}
}
