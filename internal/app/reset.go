package app

// ResetPolicy clears all spree state when a session ends, if enabled.
type ResetPolicy struct {
	tracker *Tracker
	enabled func() bool
}

// NewResetPolicy constructs a policy; enabled is consulted on every session end so
// configuration reloads apply to the next boundary.
func NewResetPolicy(tracker *Tracker, enabled func() bool) *ResetPolicy {
	return &ResetPolicy{tracker: tracker, enabled: enabled}
}

// OnSessionEnd resets every known player when the policy is enabled.
// It returns the number of players reset and never announces.
func (p *ResetPolicy) OnSessionEnd() int {
	if p.enabled == nil || !p.enabled() {
		return 0
	}
	return p.tracker.ResetAll()
}
