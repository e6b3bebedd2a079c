package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

const findMatchQuery = "+label.game:" + MatchLabelGame

// FindMatchResponse is the payload returned to clients looking for a spree match.
type FindMatchResponse struct {
	MatchID string `json:"match_id"`
	IsNew   bool   `json:"is_new"`
}

// MatchFinder is the slice of runtime.NakamaModule used to list and create matches.
type MatchFinder interface {
	MatchList(ctx context.Context, limit int, authoritative bool, label string, minSize, maxSize *int, query string) ([]*api.Match, error)
	MatchCreate(ctx context.Context, module string, params map[string]interface{}) (string, error)
}

func rpcFindMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	return findMatch(ctx, logger, nk)
}

func findMatch(ctx context.Context, logger runtime.Logger, matches MatchFinder) (string, error) {
	minSize := 1
	found, err := matches.MatchList(ctx, 10, true, "", &minSize, nil, findMatchQuery)
	if err != nil {
		logger.Error("MatchList error: %v", err)
		return "", err
	}

	resp := FindMatchResponse{}
	if len(found) > 0 {
		resp.MatchID = found[0].GetMatchId()
	} else {
		matchID, err := matches.MatchCreate(ctx, MatchNameSpree, map[string]interface{}{})
		if err != nil {
			logger.Error("MatchCreate error: %v", err)
			return "", err
		}
		resp = FindMatchResponse{MatchID: matchID, IsNew: true}
	}

	b, _ := json.Marshal(resp)
	return string(b), nil
}
