package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"killspree/internal/app"
	"killspree/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

const matchTickRate = 5

// MatchState holds the authoritative runtime state for a spree match.
type MatchState struct {
	Presences map[string]runtime.Presence `json:"-"` // Map UserId -> Presence for targeted messaging
	Roster    *Roster                     `json:"-"` // Players and their attached spree state
	Spree     *app.Session                `json:"-"` // Tracker, reset policy and query service
	out       *matchOutbox
}

// matchOutbox routes app events to the dispatcher of the hook currently running.
// Nakama hands every hook the same dispatcher; it is rebound on each call.
type matchOutbox struct {
	dispatcher runtime.MatchDispatcher
	logger     runtime.Logger
	presences  map[string]runtime.Presence
}

func (o *matchOutbox) bind(dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	o.dispatcher = dispatcher
	o.logger = logger
}

// Say implements ports.BroadcastPort.
func (o *matchOutbox) Say(text string) {
	o.dispatch(app.Event{Kind: app.EventSpreeAnnounced, Payload: app.AnnouncementPayload{Text: text}})
}

func (o *matchOutbox) notify(userID, text string) {
	o.dispatch(app.Event{
		Kind:       app.EventPlayerNotice,
		Payload:    app.NoticePayload{Text: text},
		Recipients: []string{userID},
	})
}

// dispatch handles the conversion and dispatching of app events to Nakama.
func (o *matchOutbox) dispatch(ev app.Event) {
	if o.dispatcher == nil {
		return
	}

	opCode, data, err := encodeEvent(ev)
	if err != nil {
		o.logger.Error("Failed to encode event %v: %v", ev.Kind, err)
		return
	}

	// Determine recipients (default to broadcast)
	var recipients []runtime.Presence
	if len(ev.Recipients) > 0 {
		for _, uid := range ev.Recipients {
			if p, ok := o.presences[uid]; ok {
				recipients = append(recipients, p)
			}
		}

		// Intended recipients that are no longer connected must not turn into a broadcast.
		if len(recipients) == 0 {
			return
		}
	}

	if err := o.dispatcher.BroadcastMessage(opCode, data, recipients, nil, true); err != nil {
		o.logger.Error("Failed to broadcast event %v: %v", ev.Kind, err)
	}
}

type matchHandler struct {
	catalog  *app.MessageCatalog
	settings *config.Store
}

func newMatchHandler(catalog *app.MessageCatalog, settings *config.Store) *matchHandler {
	return &matchHandler{catalog: catalog, settings: settings}
}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing spree match.")

	presences := make(map[string]runtime.Presence)
	out := &matchOutbox{logger: logger, presences: presences}
	roster := NewRoster(out.notify)

	state := &MatchState{
		Presences: presences,
		Roster:    roster,
		Spree:     app.NewSession(roster, roster, mh.catalog, out, mh.settings.ResetSpree),
		out:       out,
	}

	label, err := matchLabel(0)
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}
	return state, matchTickRate, label
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	if _, ok := state.(*MatchState); !ok {
		return state, false, "state not found"
	}
	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p
		matchState.Roster.Join(p)
		logger.Debug("MatchJoin: User %s (%s) joined, hidden=%t.", p.GetUserId(), p.GetUsername(), p.GetHidden())
	}

	mh.updateLabel(matchState, dispatcher, logger)
	return matchState
}

// MatchLeave is called when one or more players leave the match.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())
		matchState.Roster.Leave(p.GetUserId())
		logger.Debug("MatchLeave: User %s left, spree state discarded.", p.GetUserId())
	}

	if matchState.Roster.Len() == 0 {
		logger.Info("MatchLeave: Terminating empty spree match.")
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)
	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}
	matchState.out.bind(dispatcher, logger)

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpKillReported:
			mh.handleKill(matchState, logger, msg)
		case OpSessionEnded:
			reset := matchState.Spree.Reset.OnSessionEnd()
			logger.Debug("MatchLoop: Session ended by %s, %d spree states reset.", msg.GetUserId(), reset)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	return matchState
}

func (mh *matchHandler) handleKill(state *MatchState, logger runtime.Logger, msg runtime.MatchData) {
	payload, err := decodePayload(msg.GetData())
	if err != nil {
		logger.Warn("handleKill: Invalid kill report from %s: %v", msg.GetUserId(), err)
		return
	}

	attacker := stringField(payload, fieldAttacker)
	victim := stringField(payload, fieldVictim)
	state.Spree.Tracker.OnKill(attacker, victim)
}

// MatchSignal answers spree queries forwarded by the spree RPC.
// The reply is the JSON-encoded spreeQueryResult, or empty when the target could not be resolved.
func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, ""
	}
	matchState.out.bind(dispatcher, logger)

	var query spreeQuery
	if err := json.Unmarshal([]byte(data), &query); err != nil {
		logger.Warn("MatchSignal: Invalid spree query: %v", err)
		return matchState, ""
	}

	return matchState, mh.answerQuery(matchState, logger, query)
}

func (mh *matchHandler) answerQuery(state *MatchState, logger runtime.Logger, query spreeQuery) string {
	caller, _ := state.Roster.Player(query.Caller)
	if caller == nil && query.Target == "" {
		logger.Debug("answerQuery: Caller %q is not in the match and gave no target.", query.Caller)
		return ""
	}

	report, ok := state.Spree.Query.ReportSpree(caller, query.Target)
	if !ok {
		return ""
	}

	ev := app.Event{Kind: app.EventSpreeReported, Payload: app.ReportPayload{Report: report}}
	if !query.Loud {
		if caller == nil {
			// Server callers only get the RPC reply.
			return encodeQueryResult(report)
		}
		ev.Recipients = []string{caller.UserID}
	}
	state.out.dispatch(ev)

	return encodeQueryResult(report)
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	label, err := matchLabel(state.Roster.Len())
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(label); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, graceSeconds int) interface{} {
	logger.Debug("MatchTerminate: Match terminated with %d grace seconds", graceSeconds)
	return state
}
