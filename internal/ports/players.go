package ports

import "killspree/internal/domain"

// PlayerRegistry exposes the players of one session to the spree core.
// The registry owns the players; the core only reads them and attaches spree state.
type PlayerRegistry interface {
	// Player returns the player with the given user ID, if connected.
	Player(userID string) (*domain.Player, bool)
	// Players returns every currently known player.
	Players() []*domain.Player
}

// PlayerFinder resolves a free-form player name or ID typed by a caller.
type PlayerFinder interface {
	// FindPlayer returns the single player matching pattern.
	// It may notify the caller (for example to list ambiguous matches) and returns false
	// when no unique player could be resolved.
	FindPlayer(pattern string, caller *domain.Player) (*domain.Player, bool)
}
