package domain

// SpreeState holds one player's running spree counters.
// Kills and Deaths are never both non-zero.
type SpreeState struct {
	Kills  uint
	Deaths uint

	// EndKillMessage is announced when the current killing spree is broken.
	// Empty means no killing-spree threshold has been hit since the last death.
	EndKillMessage string
	// EndLossMessage is announced when the current losing spree is broken.
	EndLossMessage string
}

// Reset clears counters and drops any pending end messages.
func (s *SpreeState) Reset() {
	*s = SpreeState{}
}

// Player is a participant known to the player registry.
type Player struct {
	UserID string
	Name   string
	Hidden bool

	// Spree is attached lazily by the tracker on first access.
	Spree *SpreeState
}

// SpreeKind classifies a player's current spree.
type SpreeKind string

const (
	SpreeNone   SpreeKind = "none"
	SpreeKills  SpreeKind = "kills"
	SpreeDeaths SpreeKind = "deaths"
)

// Kind reports which spree the state currently describes.
func (s SpreeState) Kind() SpreeKind {
	switch {
	case s.Kills > 0:
		return SpreeKills
	case s.Deaths > 0:
		return SpreeDeaths
	default:
		return SpreeNone
	}
}
