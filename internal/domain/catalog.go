package domain

import (
	"errors"
	"fmt"
	"strings"
)

// MessageDelimiter separates the start and end halves of a configured spree message.
const MessageDelimiter = "#"

var (
	ErrMissingDelimiter   = errors.New("message has no start/end delimiter")
	ErrExtraDelimiter     = errors.New("message has more than one start/end delimiter")
	ErrInvalidThreshold   = errors.New("threshold must be positive")
	ErrDuplicateThreshold = errors.New("threshold listed more than once")
)

// MessagePair is the announcement shown when a spree starts and the one shown when it ends.
type MessagePair struct {
	Start string
	End   string
}

// CatalogEntry is one configured threshold with its raw "start#end" text.
type CatalogEntry struct {
	Threshold int
	Message   string
}

// SpreeList names which threshold list an entry came from.
type SpreeList string

const (
	KillingSpreeList SpreeList = "killingspree_messages"
	LosingSpreeList  SpreeList = "loosingspree_messages"
)

// EntryError describes a rejected catalog entry.
type EntryError struct {
	List      SpreeList
	Index     int
	Threshold int
	Err       error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("%s[%d] (threshold %d): %v", e.List, e.Index, e.Threshold, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// Catalog is an immutable threshold -> message table for killing and losing sprees.
type Catalog struct {
	kills  map[uint]MessagePair
	losses map[uint]MessagePair
}

// EmptyCatalog returns a catalog with no thresholds.
func EmptyCatalog() *Catalog {
	return &Catalog{
		kills:  map[uint]MessagePair{},
		losses: map[uint]MessagePair{},
	}
}

// ParseCatalog builds a Catalog from raw config entries.
// Any malformed entry rejects the whole load; the returned error joins every EntryError found.
func ParseCatalog(kill, loss []CatalogEntry) (*Catalog, error) {
	kills, killErrs := parseEntries(KillingSpreeList, kill)
	losses, lossErrs := parseEntries(LosingSpreeList, loss)

	if errs := append(killErrs, lossErrs...); len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return &Catalog{kills: kills, losses: losses}, nil
}

func parseEntries(list SpreeList, entries []CatalogEntry) (map[uint]MessagePair, []error) {
	out := make(map[uint]MessagePair, len(entries))
	var errs []error
	for i, entry := range entries {
		fail := func(err error) {
			errs = append(errs, &EntryError{List: list, Index: i, Threshold: entry.Threshold, Err: err})
		}

		if entry.Threshold <= 0 {
			fail(ErrInvalidThreshold)
			continue
		}
		pair, err := SplitMessage(entry.Message)
		if err != nil {
			fail(err)
			continue
		}
		key := uint(entry.Threshold)
		if _, exists := out[key]; exists {
			fail(ErrDuplicateThreshold)
			continue
		}
		out[key] = pair
	}
	return out, errs
}

// SplitMessage splits a raw "start#end" config string into its two halves.
func SplitMessage(raw string) (MessagePair, error) {
	parts := strings.Split(raw, MessageDelimiter)
	switch {
	case len(parts) < 2:
		return MessagePair{}, ErrMissingDelimiter
	case len(parts) > 2:
		return MessagePair{}, ErrExtraDelimiter
	}
	return MessagePair{Start: parts[0], End: parts[1]}, nil
}

// LookupKill returns the pair configured for exactly count consecutive kills.
func (c *Catalog) LookupKill(count uint) (MessagePair, bool) {
	return lookup(c.kills, count)
}

// LookupLoss returns the pair configured for exactly count consecutive deaths.
func (c *Catalog) LookupLoss(count uint) (MessagePair, bool) {
	return lookup(c.losses, count)
}

func lookup(table map[uint]MessagePair, count uint) (MessagePair, bool) {
	if count == 0 {
		return MessagePair{}, false
	}
	pair, ok := table[count]
	return pair, ok
}

// KillThresholds returns the number of killing-spree thresholds.
func (c *Catalog) KillThresholds() int {
	return len(c.kills)
}

// LossThresholds returns the number of losing-spree thresholds.
func (c *Catalog) LossThresholds() int {
	return len(c.losses)
}
