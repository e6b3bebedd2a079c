package app

import (
	"sync"
	"testing"

	"killspree/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageCatalog_StartsEmpty(t *testing.T) {
	c := NewMessageCatalog()
	_, ok := c.LookupKill(1)
	assert.False(t, ok)
	_, ok = c.LookupLoss(1)
	assert.False(t, ok)
}

func TestMessageCatalog_FailedLoadKeepsPreviousTable(t *testing.T) {
	c := NewMessageCatalog()
	require.NoError(t, c.Load([]domain.CatalogEntry{{Threshold: 5, Message: "old#old end"}}, nil))

	err := c.Load([]domain.CatalogEntry{
		{Threshold: 5, Message: "new#new end"},
		{Threshold: 6, Message: "broken"},
	}, nil)
	require.ErrorIs(t, err, domain.ErrMissingDelimiter)

	pair, ok := c.LookupKill(5)
	require.True(t, ok)
	assert.Equal(t, "old", pair.Start)
}

func TestMessageCatalog_ReloadReplacesWholesale(t *testing.T) {
	c := NewMessageCatalog()
	require.NoError(t, c.Load([]domain.CatalogEntry{{Threshold: 5, Message: "a#b"}}, []domain.CatalogEntry{{Threshold: 2, Message: "c#d"}}))
	require.NoError(t, c.Load([]domain.CatalogEntry{{Threshold: 7, Message: "e#f"}}, nil))

	_, ok := c.LookupKill(5)
	assert.False(t, ok)
	_, ok = c.LookupLoss(2)
	assert.False(t, ok)
	_, ok = c.LookupKill(7)
	assert.True(t, ok)
}

// Each generation stores the same marker in both tables; a reader holding one
// snapshot must always see matching markers.
func TestMessageCatalog_ConcurrentReloadIsAtomic(t *testing.T) {
	c := NewMessageCatalog()
	load := func(marker string) {
		entries := []domain.CatalogEntry{{Threshold: 1, Message: marker + "#" + marker}}
		assert.NoError(t, c.Load(entries, entries))
	}
	load("gen-0")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			if i%2 == 0 {
				load("even")
			} else {
				load("odd")
			}
		}
	}()

	for i := 0; i < 2000; i++ {
		snap := c.Snapshot()
		kill, okKill := snap.LookupKill(1)
		loss, okLoss := snap.LookupLoss(1)
		require.True(t, okKill)
		require.True(t, okLoss)
		require.Equal(t, kill.Start, loss.Start)
	}
	wg.Wait()
}
