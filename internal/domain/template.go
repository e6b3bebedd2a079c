package domain

import "strings"

const (
	PlayerToken = "%player%"
	VictimToken = "%victim%"
)

// RenderAnnouncement substitutes the subject and, when present, the counterpart into template.
// Without a counterpart any %victim% tokens are left in place.
func RenderAnnouncement(template string, subject, counterpart *Player) string {
	text := strings.ReplaceAll(template, PlayerToken, subject.Name)
	if counterpart != nil {
		text = strings.ReplaceAll(text, VictimToken, counterpart.Name)
	}
	return text
}
