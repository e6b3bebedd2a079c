package app

import (
	"strings"

	"killspree/internal/domain"
)

// fakeRegistry is an in-memory player registry keyed by user ID.
type fakeRegistry struct {
	players map[string]*domain.Player
	order   []string
}

func newFakeRegistry(players ...*domain.Player) *fakeRegistry {
	r := &fakeRegistry{players: make(map[string]*domain.Player)}
	for _, p := range players {
		r.add(p)
	}
	return r
}

func (r *fakeRegistry) add(p *domain.Player) {
	r.players[p.UserID] = p
	r.order = append(r.order, p.UserID)
}

func (r *fakeRegistry) Player(userID string) (*domain.Player, bool) {
	p, ok := r.players[userID]
	return p, ok
}

func (r *fakeRegistry) Players() []*domain.Player {
	out := make([]*domain.Player, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.players[id])
	}
	return out
}

// FindPlayer matches by case-insensitive name prefix and fails on ambiguity.
func (r *fakeRegistry) FindPlayer(pattern string, caller *domain.Player) (*domain.Player, bool) {
	var found *domain.Player
	for _, p := range r.Players() {
		if strings.HasPrefix(strings.ToLower(p.Name), strings.ToLower(pattern)) {
			if found != nil {
				return nil, false
			}
			found = p
		}
	}
	return found, found != nil
}

// recordingSink captures every broadcast line.
type recordingSink struct {
	lines []string
}

func (s *recordingSink) Say(text string) {
	s.lines = append(s.lines, text)
}

func (s *recordingSink) take() []string {
	out := s.lines
	s.lines = nil
	return out
}

func mustCatalog(kill, loss map[int]string) *MessageCatalog {
	toEntries := func(m map[int]string) []domain.CatalogEntry {
		var out []domain.CatalogEntry
		for threshold, msg := range m {
			out = append(out, domain.CatalogEntry{Threshold: threshold, Message: msg})
		}
		return out
	}
	c := NewMessageCatalog()
	if err := c.Load(toEntries(kill), toEntries(loss)); err != nil {
		panic(err)
	}
	return c
}
