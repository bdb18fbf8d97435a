package memory

import (
	"sync"
	"time"

	"github.com/JoseNeto-93/almoxarifado-digital-dn3j/internal/domain/models"
)

// Collections groups the three session-scoped data sets the reconciliation
// engine operates on. Catalog keeps registration order, Movements is kept
// newest-first, Financial keeps append order.
type Collections struct {
	Profile   models.Profile
	Catalog   []models.InventoryItem
	Movements []models.StockMovement
	Financial []models.FinancialRecord
}

// State is the full in-memory state of one browser session. All reads and
// writes go through View/Update so that every engine operation is a single
// atomic transition over the three collections.
type State struct {
	Token     string
	CreatedAt time.Time

	mu       sync.RWMutex
	lastSeen time.Time
	c        Collections
}

// Update runs fn under the session write lock.
func (s *State) Update(fn func(*Collections)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.c)
}

// View runs fn under the session read lock. The closure must not retain or
// mutate the slices it is handed.
func (s *State) View(fn func(Collections)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.c)
}

// Profile returns a copy of the current session profile.
func (s *State) Profile() models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.c.Profile
}

// SetProfile replaces the session profile.
func (s *State) SetProfile(p models.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Profile = p
}

func (s *State) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

// LastSeen reports when the session was last resolved by a request.
func (s *State) LastSeen() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSeen
}
