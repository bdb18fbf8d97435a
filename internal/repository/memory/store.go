package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JoseNeto-93/almoxarifado-digital-dn3j/internal/domain/models"
)

// Store is the session registry. Nothing here survives a process restart;
// each session lives exactly as long as the browser session that opened it
// (or until the idle sweep removes it).
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*State
	now      func() time.Time
}

// NewStore creates an empty session registry.
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*State),
		now:      time.Now,
	}
}

// Create opens a new session seeded with the demo catalog and financial
// history, and returns it with a fresh opaque token.
func (st *Store) Create(profile models.Profile) *State {
	now := st.now()
	s := &State{
		Token:     uuid.NewString(),
		CreatedAt: now,
		lastSeen:  now,
		c: Collections{
			Profile:   profile,
			Catalog:   seedCatalog(now),
			Movements: []models.StockMovement{},
			Financial: seedFinancial(),
		},
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.Token] = s
	return s
}

// Get resolves a session by token and marks it as recently used.
func (st *Store) Get(token string) (*State, bool) {
	st.mu.RLock()
	s, ok := st.sessions[token]
	st.mu.RUnlock()
	if !ok {
		return nil, false
	}
	s.touch(st.now())
	return s, true
}

// Delete discards a session. Deleting an unknown token is a no-op.
func (st *Store) Delete(token string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, token)
}

// PruneIdle drops every session that has been idle for longer than maxIdle
// and returns how many were removed.
func (st *Store) PruneIdle(maxIdle time.Duration) int {
	cutoff := st.now().Add(-maxIdle)

	st.mu.Lock()
	defer st.mu.Unlock()

	pruned := 0
	for token, s := range st.sessions {
		if s.LastSeen().Before(cutoff) {
			delete(st.sessions, token)
			pruned++
		}
	}
	return pruned
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
