package app

import (
	"killspree/internal/domain"
	"killspree/internal/ports"
)

// Announcer resolves spree templates and hands them to the broadcast port.
type Announcer struct {
	out ports.BroadcastPort
}

// NewAnnouncer constructs an Announcer writing to out.
func NewAnnouncer(out ports.BroadcastPort) *Announcer {
	return &Announcer{out: out}
}

// Announce broadcasts template for subject, naming counterpart as %victim% when present.
// Hidden subjects and empty templates are dropped before any substitution happens.
func (a *Announcer) Announce(subject, counterpart *domain.Player, template string) {
	if subject == nil || subject.Hidden || template == "" {
		return
	}
	a.out.Say(domain.RenderAnnouncement(template, subject, counterpart))
}
