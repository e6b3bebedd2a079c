package nakama

import (
	"context"
	"encoding/json"
	"fmt"

	"killspree/internal/ports"

	"github.com/heroiclabs/nakama-common/api"
)

// metadataLevelKey is the account metadata key holding a user's privilege level.
const metadataLevelKey = "level"

// AccountReader is the slice of runtime.NakamaModule the privilege adapter needs.
type AccountReader interface {
	AccountGetId(ctx context.Context, userID string) (*api.Account, error)
}

// NakamaPrivilegeAdapter implements ports.PrivilegePort using account metadata.
type NakamaPrivilegeAdapter struct {
	accounts AccountReader
}

// NewNakamaPrivilegeAdapter creates a new privilege adapter.
func NewNakamaPrivilegeAdapter(accounts AccountReader) *NakamaPrivilegeAdapter {
	return &NakamaPrivilegeAdapter{accounts: accounts}
}

// Level reads {"level": N} from the user's account metadata.
// Missing metadata or a missing key means level 0.
func (a *NakamaPrivilegeAdapter) Level(ctx context.Context, userID string) (int, error) {
	account, err := a.accounts.AccountGetId(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to get account: %w", err)
	}

	raw := account.GetUser().GetMetadata()
	if raw == "" {
		return 0, nil
	}

	var metadata map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &metadata); err != nil {
		return 0, fmt.Errorf("failed to unmarshal account metadata: %w", err)
	}

	value, ok := metadata[metadataLevelKey]
	if !ok {
		return 0, nil
	}
	var level int
	if err := json.Unmarshal(value, &level); err != nil {
		return 0, fmt.Errorf("invalid %q in account metadata: %w", metadataLevelKey, err)
	}
	return level, nil
}

var _ ports.PrivilegePort = (*NakamaPrivilegeAdapter)(nil)
