package nakama

import (
	"testing"

	"killspree/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notice struct {
	userID string
	text   string
}

func newTestRoster(names ...string) (*Roster, *[]notice) {
	var notices []notice
	r := NewRoster(func(userID, text string) {
		notices = append(notices, notice{userID: userID, text: text})
	})
	for i, name := range names {
		r.Add(string(rune('a'+i)), name, false)
	}
	return r, &notices
}

func TestRoster_AddKeepsSpreeState(t *testing.T) {
	r, _ := newTestRoster()
	p := r.Add("u1", "Alicia", false)
	p.Spree = &domain.SpreeState{Kills: 3}

	again := r.Join(fakePresence{userID: "u1", username: "Alice", hidden: true})
	assert.Same(t, p, again)
	assert.Equal(t, "Alice", again.Name)
	assert.True(t, again.Hidden)
	assert.Equal(t, uint(3), again.Spree.Kills)
	assert.Equal(t, 1, r.Len())
}

func TestRoster_LeavePreservesOrder(t *testing.T) {
	r, _ := newTestRoster("Alice", "Bob", "Carol")
	r.Leave("b")
	r.Leave("missing")

	names := []string{}
	for _, p := range r.Players() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Alice", "Carol"}, names)
	_, ok := r.Player("b")
	assert.False(t, ok)
}

func TestRoster_FindPlayer(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    string
	}{
		{name: "ByUserID", pattern: "b", want: "Bob"},
		{name: "ExactNameIgnoresCase", pattern: "alice", want: "Alice"},
		{name: "ExactBeatsPartial", pattern: "Al", want: "Al"},
		{name: "UniquePartial", pattern: "aro", want: "Carol"},
		{name: "TrimsSpaces", pattern: "  bob ", want: "Bob"},
	}

	r, notices := newTestRoster("Alice", "Bob", "Carol", "Al")
	caller, _ := r.Player("a")
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p, ok := r.FindPlayer(test.pattern, caller)
			require.True(t, ok)
			assert.Equal(t, test.want, p.Name)
		})
	}
	assert.Empty(t, *notices)
}

func TestRoster_FindPlayerFailuresNotifyCaller(t *testing.T) {
	r, notices := newTestRoster("Alice", "Alicia", "Bob")
	caller, _ := r.Player("c")

	_, ok := r.FindPlayer("ali", caller)
	assert.False(t, ok)
	_, ok = r.FindPlayer("zed", caller)
	assert.False(t, ok)
	_, ok = r.FindPlayer("   ", caller)
	assert.False(t, ok)

	assert.Equal(t, []notice{
		{userID: "c", text: "Players matching ali: Alice, Alicia"},
		{userID: "c", text: "No players found matching zed"},
	}, *notices)

	_, ok = r.FindPlayer("zed", nil)
	assert.False(t, ok)
	assert.Len(t, *notices, 2, "server callers get no prompt")
}
