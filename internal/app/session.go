package app

import "killspree/internal/ports"

// Session bundles the spree services for one game session.
type Session struct {
	Tracker *Tracker
	Reset   *ResetPolicy
	Query   *QueryService
}

// NewSession wires a tracker, reset policy and query service over a session's players.
// resetEnabled is consulted at every session end.
func NewSession(players ports.PlayerRegistry, finder ports.PlayerFinder, catalog *MessageCatalog, out ports.BroadcastPort, resetEnabled func() bool) *Session {
	tracker := NewTracker(players, catalog, NewAnnouncer(out))
	return &Session{
		Tracker: tracker,
		Reset:   NewResetPolicy(tracker, resetEnabled),
		Query:   NewQueryService(tracker, finder),
	}
}
