package nakama

import (
	"context"
	"encoding/json"
	"strings"

	"killspree/internal/app"
	"killspree/internal/config"
	"killspree/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// SpreeRequest is the payload of the spree RPC.
type SpreeRequest struct {
	MatchID string `json:"match_id"`
	Target  string `json:"target,omitempty"`
	Loud    bool   `json:"loud,omitempty"`
}

// spreeQuery is forwarded to the match through MatchSignal.
type spreeQuery struct {
	Caller string `json:"caller"`
	Target string `json:"target,omitempty"`
	Loud   bool   `json:"loud,omitempty"`
}

// SpreeResponse is returned to the RPC caller.
type SpreeResponse struct {
	Text   string `json:"text"`
	Target string `json:"target"`
	Kind   string `json:"kind"`
	Count  uint   `json:"count"`
}

// ReloadResponse summarizes a successful settings reload.
type ReloadResponse struct {
	KillThresholds int  `json:"kill_thresholds"`
	LossThresholds int  `json:"loss_thresholds"`
	ResetSpree     bool `json:"reset_spree"`
}

func encodeQueryResult(report app.Report) string {
	resp := SpreeResponse{Text: report.Text, Kind: string(report.Kind), Count: report.Count}
	if report.Target != nil {
		resp.Target = report.Target.UserID
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

// MatchSignaler is the slice of runtime.NakamaModule used to reach a running match.
type MatchSignaler interface {
	MatchSignal(ctx context.Context, id string, data string) (string, error)
}

// spreeCommand builds the spree command handler. Queries run inside the target match so
// they are serialized with its kill events.
func spreeCommand(logger runtime.Logger, matches MatchSignaler) ports.CommandHandler {
	return func(ctx context.Context, req ports.CommandRequest) (string, error) {
		var in SpreeRequest
		if err := json.Unmarshal([]byte(req.Payload), &in); err != nil {
			return "", runtime.NewError("Invalid payload", 3) // INVALID_ARGUMENT
		}
		if in.MatchID == "" {
			return "", runtime.NewError("match_id is required", 3)
		}

		signal, _ := json.Marshal(spreeQuery{
			Caller: req.CallerID,
			Target: strings.TrimSpace(in.Target),
			Loud:   in.Loud,
		})
		result, err := matches.MatchSignal(ctx, in.MatchID, string(signal))
		if err != nil {
			logger.Warn("RpcSpree [User:%s]: Failed to signal match %s: %v", req.CallerID, in.MatchID, err)
			return "", runtime.NewError("match not found", 5) // NOT_FOUND
		}
		return result, nil
	}
}

// reloadCommand builds the handler that re-reads the settings file and republishes
// the catalog and options. A rejected file leaves the previous configuration active.
func reloadCommand(logger runtime.Logger, env config.Env, catalog *app.MessageCatalog, store *config.Store) ports.CommandHandler {
	return func(ctx context.Context, req ports.CommandRequest) (string, error) {
		settings, err := loadModuleConfig(env, catalog)
		if err != nil {
			logger.Error("RpcSpreeReload [User:%s]: %v", req.CallerID, err)
			return "", runtime.NewError(err.Error(), 13) // INTERNAL
		}
		store.Set(settings)

		snap := catalog.Snapshot()
		logger.Info("RpcSpreeReload [User:%s]: Loaded %d killing and %d losing spree messages", req.CallerID, snap.KillThresholds(), snap.LossThresholds())

		b, _ := json.Marshal(ReloadResponse{
			KillThresholds: snap.KillThresholds(),
			LossThresholds: snap.LossThresholds(),
			ResetSpree:     settings.Options.ResetSpree,
		})
		return string(b), nil
	}
}
