package stock

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/JoseNeto-93/almoxarifado-digital-dn3j/internal/config"
	"github.com/JoseNeto-93/almoxarifado-digital-dn3j/internal/domain/models"
	"github.com/JoseNeto-93/almoxarifado-digital-dn3j/internal/repository/memory"
)

// Typed outcomes of engine operations. Handlers map these onto HTTP statuses.
var (
	ErrInvalidQuantity   = errors.New("quantity must be a positive integer")
	ErrInvalidPrice      = errors.New("unit price must be positive")
	ErrInsufficientStock = errors.New("requested quantity exceeds available stock")
	ErrItemNotFound      = errors.New("inventory item not found")
	ErrRecordNotFound    = errors.New("financial record not found")
	ErrDuplicateID       = errors.New("inventory item id already registered")
)

// Engine is the single write authority over a session's catalog, movement
// ledger and financial ledger. Every mutation runs inside one State.Update
// closure, so the catalog and the ledgers always change together or not at
// all.
type Engine struct {
	cfg    config.InventoryConfig
	logger *zap.Logger
	now    func() time.Time
}

// NewEngine wires a new engine instance.
func NewEngine(cfg config.InventoryConfig, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{cfg: cfg, logger: logger, now: time.Now}
}

// MovementResult reports what a movement actually did. CatalogUpdated is
// false when the referenced item does not exist: the movement is still
// appended to the ledger, only the catalog side effect is skipped.
type MovementResult struct {
	Movement       models.StockMovement  `json:"movement"`
	Item           *models.InventoryItem `json:"item,omitempty"`
	CatalogUpdated bool                  `json:"catalog_updated"`
}

// InvoiceResult reports the outcome of the composite invoice registration.
// StockApplied is false when the invoice referenced an unknown item: the
// financial record is stored anyway and no movement is produced.
type InvoiceResult struct {
	Record       models.FinancialRecord `json:"record"`
	StockApplied bool                   `json:"stock_applied"`
	Movement     *models.StockMovement  `json:"movement,omitempty"`
	Item         *models.InventoryItem  `json:"item,omitempty"`
}

// RecordMovement sets the referenced item's quantity to newQuantity,
// refreshes its last-updated timestamp and prepends the movement to the
// ledger. For IN movements the employee name is stamped with the session
// user's name; the KeepInvoiceLabel switch lets a caller-supplied label win
// instead. The movement is appended even when the item id matches nothing;
// callers inspect CatalogUpdated to decide whether to alert.
func (e *Engine) RecordMovement(state *memory.State, itemID string, newQuantity int, movement models.StockMovement) (MovementResult, error) {
	if movement.Quantity <= 0 {
		return MovementResult{}, ErrInvalidQuantity
	}
	if newQuantity < 0 {
		return MovementResult{}, fmt.Errorf("new quantity %d: %w", newQuantity, ErrInvalidQuantity)
	}
	if !movement.Type.Valid() {
		return MovementResult{}, fmt.Errorf("unknown movement type %q", movement.Type)
	}

	var (
		result MovementResult
		err    error
	)

	state.Update(func(c *memory.Collections) {
		idx := findItem(c.Catalog, itemID)

		if idx >= 0 && movement.Type == models.MovementOut && movement.Quantity > c.Catalog[idx].Quantity {
			err = fmt.Errorf("have %d, requested %d: %w", c.Catalog[idx].Quantity, movement.Quantity, ErrInsufficientStock)
			return
		}

		applied := e.applyMovement(c, idx, newQuantity, movement)
		result.Movement = applied

		if idx >= 0 {
			item := c.Catalog[idx]
			result.Item = &item
			result.CatalogUpdated = true
		}
	})

	if err != nil {
		return MovementResult{}, err
	}

	if !result.CatalogUpdated {
		e.logger.Warn("movement recorded against unknown item",
			zap.String("item_id", itemID),
			zap.String("movement_id", movement.ID))
	}

	return result, nil
}

// RegisterProduct appends a new item to the catalog. No ledger entry is
// created.
func (e *Engine) RegisterProduct(state *memory.State, item models.InventoryItem) error {
	if item.Quantity < 0 || item.MinStock < 0 {
		return ErrInvalidQuantity
	}

	var err error
	state.Update(func(c *memory.Collections) {
		if findItem(c.Catalog, item.ID) >= 0 {
			err = fmt.Errorf("id %s: %w", item.ID, ErrDuplicateID)
			return
		}
		item.LastUpdated = e.now()
		c.Catalog = append(c.Catalog, item)
	})
	return err
}

// UpdateProduct fully replaces the catalog entry with a matching id. Catalog
// edits that change the quantity through this path are deliberately not
// recorded as movements; that is what RecordMovement is for.
func (e *Engine) UpdateProduct(state *memory.State, item models.InventoryItem) error {
	if item.Quantity < 0 || item.MinStock < 0 {
		return ErrInvalidQuantity
	}

	var err error
	state.Update(func(c *memory.Collections) {
		idx := findItem(c.Catalog, item.ID)
		if idx < 0 {
			err = fmt.Errorf("id %s: %w", item.ID, ErrItemNotFound)
			return
		}
		c.Catalog[idx] = item
	})
	return err
}

// ZeroStock sets the item's quantity to zero and refreshes its timestamp,
// keeping the record itself. Like UpdateProduct, no movement is written.
func (e *Engine) ZeroStock(state *memory.State, itemID string) error {
	var err error
	state.Update(func(c *memory.Collections) {
		idx := findItem(c.Catalog, itemID)
		if idx < 0 {
			err = fmt.Errorf("id %s: %w", itemID, ErrItemNotFound)
			return
		}
		c.Catalog[idx].Quantity = 0
		c.Catalog[idx].LastUpdated = e.now()
	})
	return err
}

// RegisterInvoice stores the financial record unconditionally and, when the
// referenced item exists, applies the matching stock entry through the same
// movement path used for manual entries: one financial record, one IN
// movement, one quantity bump, inside a single atomic update.
func (e *Engine) RegisterInvoice(state *memory.State, record models.FinancialRecord) (InvoiceResult, error) {
	if record.Quantity <= 0 {
		return InvoiceResult{}, ErrInvalidQuantity
	}
	if record.UnitPrice <= 0 {
		return InvoiceResult{}, ErrInvalidPrice
	}

	result := InvoiceResult{Record: record}

	state.Update(func(c *memory.Collections) {
		c.Financial = append(c.Financial, record)

		idx := findItem(c.Catalog, record.ItemID)
		if idx < 0 {
			return
		}

		movement := models.StockMovement{
			ID:           uuid.NewString(),
			ItemID:       c.Catalog[idx].ID,
			ItemName:     c.Catalog[idx].Name,
			Type:         models.MovementIn,
			Quantity:     record.Quantity,
			Date:         e.now(),
			EmployeeName: fmt.Sprintf("NF %s - %s", record.InvoiceNumber, record.Supplier),
		}

		applied := e.applyMovement(c, idx, c.Catalog[idx].Quantity+record.Quantity, movement)

		item := c.Catalog[idx]
		result.Item = &item
		result.Movement = &applied
		result.StockApplied = true
	})

	if !result.StockApplied {
		e.logger.Warn("invoice stored without stock effect, item not in catalog",
			zap.String("item_id", record.ItemID),
			zap.String("invoice_number", record.InvoiceNumber))
	}

	return result, nil
}

// DeleteFinancialRecord removes one financial record. The stock and
// movement side effects produced at registration time are kept: the ledger
// is never corrected retroactively.
func (e *Engine) DeleteFinancialRecord(state *memory.State, id string) error {
	var err error
	state.Update(func(c *memory.Collections) {
		for i, r := range c.Financial {
			if r.ID == id {
				c.Financial = append(c.Financial[:i], c.Financial[i+1:]...)
				return
			}
		}
		err = fmt.Errorf("id %s: %w", id, ErrRecordNotFound)
	})
	return err
}

// ClearFinancialRecords drops every financial record and returns how many
// were removed. Stock effects are kept, same as single deletion.
func (e *Engine) ClearFinancialRecords(state *memory.State) int {
	var removed int
	state.Update(func(c *memory.Collections) {
		removed = len(c.Financial)
		c.Financial = []models.FinancialRecord{}
	})
	return removed
}

// Catalog returns a copy of the session's inventory.
func (e *Engine) Catalog(state *memory.State) []models.InventoryItem {
	var out []models.InventoryItem
	state.View(func(c memory.Collections) {
		out = make([]models.InventoryItem, len(c.Catalog))
		copy(out, c.Catalog)
	})
	return out
}

// Item returns a copy of one catalog entry.
func (e *Engine) Item(state *memory.State, id string) (models.InventoryItem, bool) {
	var (
		item models.InventoryItem
		ok   bool
	)
	state.View(func(c memory.Collections) {
		if idx := findItem(c.Catalog, id); idx >= 0 {
			item = c.Catalog[idx]
			ok = true
		}
	})
	return item, ok
}

// Movements returns a copy of the movement ledger, newest first.
func (e *Engine) Movements(state *memory.State) []models.StockMovement {
	var out []models.StockMovement
	state.View(func(c memory.Collections) {
		out = make([]models.StockMovement, len(c.Movements))
		copy(out, c.Movements)
	})
	return out
}

// Movement returns a copy of one ledger entry.
func (e *Engine) Movement(state *memory.State, id string) (models.StockMovement, bool) {
	var (
		mv models.StockMovement
		ok bool
	)
	state.View(func(c memory.Collections) {
		for _, m := range c.Movements {
			if m.ID == id {
				mv = m
				ok = true
				return
			}
		}
	})
	return mv, ok
}

// FinancialRecords returns a copy of the financial ledger in append order.
func (e *Engine) FinancialRecords(state *memory.State) []models.FinancialRecord {
	var out []models.FinancialRecord
	state.View(func(c memory.Collections) {
		out = make([]models.FinancialRecord, len(c.Financial))
		copy(out, c.Financial)
	})
	return out
}

// applyMovement is the single path through which any stock change lands in
// the collections: normalize the label, set the new quantity when the item
// exists, prepend the snapshot to the ledger. Manual entries and
// invoice-triggered entries both go through here.
//
// For IN movements the session user's name replaces whatever label the
// caller supplied, including invoice-derived ones; KeepInvoiceLabel lets a
// non-empty caller label survive instead.
func (e *Engine) applyMovement(c *memory.Collections, idx, newQuantity int, movement models.StockMovement) models.StockMovement {
	if movement.Type == models.MovementIn {
		if !e.cfg.KeepInvoiceLabel || movement.EmployeeName == "" {
			movement.EmployeeName = c.Profile.UserName
		}
	}

	if idx >= 0 {
		c.Catalog[idx].Quantity = newQuantity
		c.Catalog[idx].LastUpdated = e.now()
	}

	c.Movements = append([]models.StockMovement{movement}, c.Movements...)
	return movement
}

func findItem(catalog []models.InventoryItem, id string) int {
	for i := range catalog {
		if catalog[i].ID == id {
			return i
		}
	}
	return -1
}
