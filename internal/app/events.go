package app

// EventKind identifies outbound messages for host dispatch.
type EventKind string

const (
	EventSpreeAnnounced EventKind = "spree_announced"
	EventSpreeReported  EventKind = "spree_reported"
	EventPlayerNotice   EventKind = "player_notice"
)

// Event is an outbound message with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // user IDs; empty means broadcast
}

type AnnouncementPayload struct {
	Text string
}

type ReportPayload struct {
	Report Report
}

type NoticePayload struct {
	Text string
}
