package nakama

import (
	"fmt"
	"strings"

	"killspree/internal/domain"
	"killspree/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// Roster is the per-match player registry built from presences.
// A player's spree state lives on its roster entry and is dropped when the player leaves.
type Roster struct {
	players map[string]*domain.Player
	order   []string
	notify  func(userID, text string)
}

// NewRoster creates an empty roster. notify delivers private prompts raised while resolving
// player names; it may be nil.
func NewRoster(notify func(userID, text string)) *Roster {
	return &Roster{
		players: make(map[string]*domain.Player),
		notify:  notify,
	}
}

// Join adds or refreshes the player behind a presence.
func (r *Roster) Join(p runtime.Presence) *domain.Player {
	return r.Add(p.GetUserId(), p.GetUsername(), p.GetHidden())
}

// Add adds or refreshes a player. An existing player keeps its spree state.
func (r *Roster) Add(userID, name string, hidden bool) *domain.Player {
	if existing, ok := r.players[userID]; ok {
		existing.Name = name
		existing.Hidden = hidden
		return existing
	}
	player := &domain.Player{UserID: userID, Name: name, Hidden: hidden}
	r.players[userID] = player
	r.order = append(r.order, userID)
	return player
}

// Leave removes a player and discards their spree state.
func (r *Roster) Leave(userID string) {
	if _, ok := r.players[userID]; !ok {
		return
	}
	delete(r.players, userID)
	for i, id := range r.order {
		if id == userID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of players on the roster.
func (r *Roster) Len() int {
	return len(r.order)
}

// Player returns the player with the given user ID.
func (r *Roster) Player(userID string) (*domain.Player, bool) {
	p, ok := r.players[userID]
	return p, ok
}

// Players returns players in join order.
func (r *Roster) Players() []*domain.Player {
	out := make([]*domain.Player, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.players[id])
	}
	return out
}

// FindPlayer resolves pattern by user ID, then exact name, then unique partial name,
// all case-insensitive. Failures are explained to the caller through notify.
func (r *Roster) FindPlayer(pattern string, caller *domain.Player) (*domain.Player, bool) {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return nil, false
	}
	if p, ok := r.players[pattern]; ok {
		return p, true
	}

	needle := strings.ToLower(pattern)
	var exact, partial []*domain.Player
	for _, p := range r.Players() {
		name := strings.ToLower(p.Name)
		switch {
		case name == needle:
			exact = append(exact, p)
		case strings.Contains(name, needle):
			partial = append(partial, p)
		}
	}

	matches := exact
	if len(matches) == 0 {
		matches = partial
	}
	switch len(matches) {
	case 1:
		return matches[0], true
	case 0:
		r.tell(caller, fmt.Sprintf("No players found matching %s", pattern))
	default:
		names := make([]string, len(matches))
		for i, p := range matches {
			names[i] = p.Name
		}
		r.tell(caller, fmt.Sprintf("Players matching %s: %s", pattern, strings.Join(names, ", ")))
	}
	return nil, false
}

func (r *Roster) tell(caller *domain.Player, text string) {
	if r.notify == nil || caller == nil {
		return
	}
	r.notify(caller.UserID, text)
}

var (
	_ ports.PlayerRegistry = (*Roster)(nil)
	_ ports.PlayerFinder   = (*Roster)(nil)
)
