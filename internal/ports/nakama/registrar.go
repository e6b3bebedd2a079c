package nakama

import (
	"context"
	"database/sql"

	"killspree/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// RpcFunc is the Nakama RPC handler signature.
type RpcFunc = func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error)

// RpcRegistrar is the slice of runtime.Initializer used to expose commands.
type RpcRegistrar interface {
	RegisterRpc(id string, fn RpcFunc) error
}

// NakamaCommandRegistrar implements ports.CommandRegistrar with Nakama RPCs.
// Calls from a user session are gated on the user's privilege level; server-to-server
// calls (no user in context) are trusted.
type NakamaCommandRegistrar struct {
	rpcs       RpcRegistrar
	privileges ports.PrivilegePort
}

// NewNakamaCommandRegistrar creates a registrar over the module initializer.
func NewNakamaCommandRegistrar(rpcs RpcRegistrar, privileges ports.PrivilegePort) *NakamaCommandRegistrar {
	return &NakamaCommandRegistrar{rpcs: rpcs, privileges: privileges}
}

// RegisterCommand registers handler as the RPC name.
func (r *NakamaCommandRegistrar) RegisterCommand(name string, minLevel func() int, handler ports.CommandHandler) error {
	return r.rpcs.RegisterRpc(name, r.gate(name, minLevel, handler))
}

func (r *NakamaCommandRegistrar) gate(name string, minLevel func() int, handler ports.CommandHandler) RpcFunc {
	return func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
		userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)

		required := 0
		if minLevel != nil {
			required = minLevel()
		}
		if userID != "" && required > 0 {
			level, err := r.privileges.Level(ctx, userID)
			if err != nil {
				logger.Error("Rpc %s [User:%s]: Failed to resolve privilege level: %v", name, userID, err)
				return "", runtime.NewError("could not resolve privilege level", 13)
			}
			if level < required {
				logger.Warn("Rpc %s [User:%s]: Level %d below required %d", name, userID, level, required)
				return "", runtime.NewError("insufficient privilege", 7)
			}
		}

		return handler(ctx, ports.CommandRequest{CallerID: userID, Payload: payload})
	}
}

var _ ports.CommandRegistrar = (*NakamaCommandRegistrar)(nil)
