package app

import (
	"killspree/internal/domain"
	"killspree/internal/ports"
)

// Tracker drives the per-player spree state machine for one session.
// It is not safe for concurrent use; callers serialize OnKill, Reset and queries.
type Tracker struct {
	players   ports.PlayerRegistry
	catalog   *MessageCatalog
	announcer *Announcer
}

// NewTracker constructs a Tracker over the given registry, catalog and announcer.
func NewTracker(players ports.PlayerRegistry, catalog *MessageCatalog, announcer *Announcer) *Tracker {
	return &Tracker{
		players:   players,
		catalog:   catalog,
		announcer: announcer,
	}
}

// OnKill applies a kill of victimID by attackerID.
// Either ID may be empty. A player killing themselves only counts as a death.
func (t *Tracker) OnKill(attackerID, victimID string) {
	if attackerID == victimID {
		attackerID = ""
	}
	attacker := t.lookup(attackerID)
	victim := t.lookup(victimID)
	catalog := t.catalog.Snapshot()

	if attacker != nil {
		stats := stateOf(attacker)
		stats.Kills++

		if stats.EndLossMessage != "" {
			t.announcer.Announce(attacker, victim, stats.EndLossMessage)
			stats.EndLossMessage = ""
		}
		if pair, ok := catalog.LookupKill(stats.Kills); ok {
			stats.EndKillMessage = pair.End
			t.announcer.Announce(attacker, victim, pair.Start)
		}
		stats.Deaths = 0
	}

	if victim != nil {
		stats := stateOf(victim)
		stats.Deaths++

		// The broken killing spree is credited to the current attacker, naming the victim.
		if stats.EndKillMessage != "" {
			t.announcer.Announce(attacker, victim, stats.EndKillMessage)
			stats.EndKillMessage = ""
		}
		if pair, ok := catalog.LookupLoss(stats.Deaths); ok {
			stats.EndLossMessage = pair.End
			t.announcer.Announce(victim, attacker, pair.Start)
		}
		stats.Kills = 0
	}
}

// Reset clears a player's spree without announcing anything.
func (t *Tracker) Reset(userID string) {
	if p := t.lookup(userID); p != nil {
		stateOf(p).Reset()
	}
}

// ResetAll clears every known player's spree and returns how many were reset.
func (t *Tracker) ResetAll() int {
	players := t.players.Players()
	for _, p := range players {
		stateOf(p).Reset()
	}
	return len(players)
}

// State returns a copy of the player's current spree state.
func (t *Tracker) State(userID string) (domain.SpreeState, bool) {
	p := t.lookup(userID)
	if p == nil {
		return domain.SpreeState{}, false
	}
	return *stateOf(p), true
}

func (t *Tracker) lookup(userID string) *domain.Player {
	if userID == "" {
		return nil
	}
	p, ok := t.players.Player(userID)
	if !ok {
		return nil
	}
	return p
}

// stateOf returns the player's spree state, attaching a fresh one on first access.
func stateOf(p *domain.Player) *domain.SpreeState {
	if p.Spree == nil {
		p.Spree = &domain.SpreeState{}
	}
	return p.Spree
}
