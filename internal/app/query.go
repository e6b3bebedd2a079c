package app

import (
	"fmt"

	"killspree/internal/domain"
	"killspree/internal/ports"
)

// Report is the answer to a spree query.
type Report struct {
	Target *domain.Player
	Kind   domain.SpreeKind
	Count  uint
	Text   string
}

// QueryService answers "what spree is this player on" for the command surface.
type QueryService struct {
	tracker *Tracker
	finder  ports.PlayerFinder
}

// NewQueryService constructs a QueryService.
func NewQueryService(tracker *Tracker, finder ports.PlayerFinder) *QueryService {
	return &QueryService{tracker: tracker, finder: finder}
}

// ReportSpree describes the spree of the player named by targetName, or of caller when the
// name is empty. It returns false when the target cannot be resolved; nothing should be
// delivered in that case.
func (q *QueryService) ReportSpree(caller *domain.Player, targetName string) (Report, bool) {
	target := caller
	if targetName != "" {
		found, ok := q.finder.FindPlayer(targetName, caller)
		if !ok {
			return Report{}, false
		}
		target = found
	}
	if target == nil {
		return Report{}, false
	}

	stats := *stateOf(target)
	report := Report{Target: target, Kind: stats.Kind()}
	self := caller != nil && target.UserID == caller.UserID

	switch report.Kind {
	case domain.SpreeKills:
		report.Count = stats.Kills
		report.Text = fmt.Sprintf("%s %d kills in a row", havePhrase(target, self), stats.Kills)
	case domain.SpreeDeaths:
		report.Count = stats.Deaths
		report.Text = fmt.Sprintf("%s %d deaths in a row", havePhrase(target, self), stats.Deaths)
	default:
		report.Text = fmt.Sprintf("%s not having a spree right now", bePhrase(target, self))
	}
	return report, true
}

func havePhrase(target *domain.Player, self bool) string {
	if self {
		return PhraseSelfHave
	}
	return target.Name + " has"
}

func bePhrase(target *domain.Player, self bool) string {
	if self {
		return PhraseSelfBe
	}
	return target.Name + " is"
}
