package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoseNeto-93/almoxarifado-digital-dn3j/internal/domain/models"
)

func TestCreateSeedsIndependentSessions(t *testing.T) {
	store := NewStore()

	a := store.Create(models.Profile{UserName: "Ana"})
	b := store.Create(models.Profile{UserName: "Bruno"})

	require.NotEqual(t, a.Token, b.Token)

	a.Update(func(c *Collections) {
		c.Catalog[0].Quantity = 0
	})

	b.View(func(c Collections) {
		assert.Equal(t, 12, c.Catalog[0].Quantity, "sessions must not share seed slices")
	})

	a.View(func(c Collections) {
		assert.Len(t, c.Catalog, 7)
		assert.Len(t, c.Financial, 4)
		assert.Empty(t, c.Movements)
	})
}

func TestGetResolvesAndTouches(t *testing.T) {
	store := NewStore()
	s := store.Create(models.Profile{UserName: "Ana"})

	before := s.LastSeen()
	time.Sleep(time.Millisecond)

	got, ok := store.Get(s.Token)
	require.True(t, ok)
	assert.Same(t, s, got)
	assert.True(t, got.LastSeen().After(before))

	_, ok = store.Get("unknown-token")
	assert.False(t, ok)
}

func TestDelete(t *testing.T) {
	store := NewStore()
	s := store.Create(models.Profile{UserName: "Ana"})

	store.Delete(s.Token)
	_, ok := store.Get(s.Token)
	assert.False(t, ok)

	// Deleting twice is a no-op.
	store.Delete(s.Token)
}

func TestPruneIdle(t *testing.T) {
	store := NewStore()
	stale := store.Create(models.Profile{UserName: "Ana"})
	fresh := store.Create(models.Profile{UserName: "Bruno"})

	stale.touch(time.Now().Add(-2 * time.Hour))

	pruned := store.PruneIdle(time.Hour)
	assert.Equal(t, 1, pruned)
	assert.Equal(t, 1, store.Len())

	_, ok := store.Get(stale.Token)
	assert.False(t, ok)
	_, ok = store.Get(fresh.Token)
	assert.True(t, ok)
}

func TestProfileRoundTrip(t *testing.T) {
	store := NewStore()
	s := store.Create(models.Profile{UserName: "Ana", UnitName: "Unidade Sul", City: "Recife"})

	assert.Equal(t, "Ana", s.Profile().UserName)

	s.SetProfile(models.Profile{UserName: "Carla", UnitName: "Unidade Sul", City: "Recife"})
	assert.Equal(t, "Carla", s.Profile().UserName)
}
