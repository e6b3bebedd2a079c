package app

import (
	"sync/atomic"

	"killspree/internal/domain"
)

// MessageCatalog publishes the active spree message table.
// Load swaps the whole table at once; lookups never see a partially loaded table.
type MessageCatalog struct {
	current atomic.Pointer[domain.Catalog]
}

// NewMessageCatalog returns a catalog that starts out empty.
func NewMessageCatalog() *MessageCatalog {
	c := &MessageCatalog{}
	c.current.Store(domain.EmptyCatalog())
	return c
}

// Load parses the configured entries and publishes them.
// On error the previously published table stays active.
func (c *MessageCatalog) Load(kill, loss []domain.CatalogEntry) error {
	next, err := domain.ParseCatalog(kill, loss)
	if err != nil {
		return err
	}
	c.current.Store(next)
	return nil
}

// Snapshot returns the table currently in effect.
func (c *MessageCatalog) Snapshot() *domain.Catalog {
	return c.current.Load()
}

// LookupKill returns the message pair for exactly count consecutive kills.
func (c *MessageCatalog) LookupKill(count uint) (domain.MessagePair, bool) {
	return c.Snapshot().LookupKill(count)
}

// LookupLoss returns the message pair for exactly count consecutive deaths.
func (c *MessageCatalog) LookupLoss(count uint) (domain.MessagePair, bool) {
	return c.Snapshot().LookupLoss(count)
}
