package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"killspree/internal/app"
	"killspree/internal/config"
	"killspree/internal/ports"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeInitializer records RPC and match registrations. Other methods are not used.
type fakeInitializer struct {
	runtime.Initializer
	rpcs    map[string]RpcFunc
	matches map[string]func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error)
}

func newFakeInitializer() *fakeInitializer {
	return &fakeInitializer{
		rpcs:    make(map[string]RpcFunc),
		matches: make(map[string]func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error)),
	}
}

func (f *fakeInitializer) RegisterRpc(id string, fn func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error)) error {
	f.rpcs[id] = fn
	return nil
}

func (f *fakeInitializer) RegisterMatch(name string, fn func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error)) error {
	f.matches[name] = fn
	return nil
}

// fakeNakama routes match signals to a single in-process match and serves account metadata.
type fakeNakama struct {
	runtime.NakamaModule
	matchID  string
	match    runtime.Match
	state    interface{}
	accounts *mockAccounts
}

func (f *fakeNakama) MatchSignal(ctx context.Context, id string, data string) (string, error) {
	if id != f.matchID || f.match == nil {
		return "", errors.New("match not found")
	}
	state, result := f.match.MatchSignal(ctx, noopLogger{}, nil, f, &mockDispatcher{}, 0, f.state, data)
	f.state = state
	return result, nil
}

func (f *fakeNakama) AccountGetId(ctx context.Context, userID string) (*api.Account, error) {
	return f.accounts.AccountGetId(ctx, userID)
}

func newTestCatalog(t *testing.T, settings *config.Settings) *app.MessageCatalog {
	t.Helper()
	catalog := app.NewMessageCatalog()
	kill, loss := settings.CatalogEntries()
	require.NoError(t, catalog.Load(kill, loss))
	return catalog
}

func writeSettings(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func moduleContext(vars map[string]string) context.Context {
	return context.WithValue(context.Background(), runtime.RUNTIME_CTX_ENV, vars)
}

func TestInitModule_NilInitializer(t *testing.T) {
	err := InitModule(context.Background(), noopLogger{}, nil, nil, nil)
	assert.ErrorIs(t, err, app.ErrNoCommandRegistrar)
}

func TestInitModule_RejectsBadSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spree.yaml")
	writeSettings(t, path, "killingspree_messages:\n  - threshold: 5\n    message: \"no delimiter\"\n")

	initializer := newFakeInitializer()
	err := InitModule(moduleContext(map[string]string{"SPREE_CONFIG_PATH": path}), noopLogger{}, nil, &fakeNakama{}, initializer)
	assert.ErrorContains(t, err, "invalid spree messages")
	assert.Empty(t, initializer.rpcs)
	assert.Empty(t, initializer.matches)

	err = InitModule(moduleContext(map[string]string{"SPREE_CONFIG_PATH": filepath.Join(dir, "missing.yaml")}), noopLogger{}, nil, &fakeNakama{}, initializer)
	assert.ErrorContains(t, err, "failed to read spree settings")
}

func TestInitModule_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spree.yaml")
	writeSettings(t, path, testSettings)

	nk := &fakeNakama{matchID: "match-1", accounts: &mockAccounts{metadata: map[string]string{
		"u1": `{"level": 100}`,
		"u2": `{}`,
	}}}
	initializer := newFakeInitializer()
	ctx := moduleContext(map[string]string{
		"SPREE_CONFIG_PATH":         path,
		"SPREE_MIN_LEVEL_SPREE_CMD": "10",
	})
	require.NoError(t, InitModule(ctx, noopLogger{}, nil, nk, initializer))

	require.Contains(t, initializer.rpcs, RpcSpree)
	require.Contains(t, initializer.rpcs, RpcSpreeReload)
	require.Contains(t, initializer.rpcs, RpcFindMatch)
	require.Contains(t, initializer.matches, MatchNameSpree)

	match, err := initializer.matches[MatchNameSpree](ctx, noopLogger{}, nil, nk)
	require.NoError(t, err)
	state, _, _ := match.MatchInit(ctx, noopLogger{}, nil, nk, nil)
	dispatcher := &mockDispatcher{}
	state = match.MatchJoin(ctx, noopLogger{}, nil, nk, dispatcher, 1, state, []runtime.Presence{alicePresence, bobPresence})
	kill := fakeMatchData{fakePresence: alicePresence, opCode: OpKillReported, data: []byte(`{"attacker":"u1","victim":"u2"}`)}
	state = match.MatchLoop(ctx, noopLogger{}, nil, nk, dispatcher, 2, state, []runtime.MatchData{kill})
	nk.match, nk.state = match, state

	spree := initializer.rpcs[RpcSpree]
	out, err := spree(userContext("u1"), noopLogger{}, nil, nk, `{"match_id":"match-1","target":"bob"}`)
	require.NoError(t, err)
	var resp SpreeResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, SpreeResponse{Text: "Bob has 1 deaths in a row", Target: "u2", Kind: "deaths", Count: 1}, resp)

	_, err = spree(userContext("u2"), noopLogger{}, nil, nk, `{"match_id":"match-1"}`)
	assert.Equal(t, 7, runtimeErrorCode(t, err), "env raised the spree command level")

	_, err = spree(userContext("u1"), noopLogger{}, nil, nk, `{"target":"bob"}`)
	assert.Equal(t, 3, runtimeErrorCode(t, err))
	_, err = spree(userContext("u1"), noopLogger{}, nil, nk, `not json`)
	assert.Equal(t, 3, runtimeErrorCode(t, err))
	_, err = spree(userContext("u1"), noopLogger{}, nil, nk, `{"match_id":"gone"}`)
	assert.Equal(t, 5, runtimeErrorCode(t, err))
}

func TestReloadCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spree.yaml")
	writeSettings(t, path, testSettings)

	env, err := config.ParseEnv(map[string]string{"SPREE_CONFIG_PATH": path})
	require.NoError(t, err)
	catalog := app.NewMessageCatalog()
	settings, err := loadModuleConfig(env, catalog)
	require.NoError(t, err)
	store := config.NewStore(settings)
	reload := reloadCommand(noopLogger{}, env, catalog, store)

	writeSettings(t, path, `settings:
  reset_spree: false
killingspree_messages:
  - threshold: 4
    message: "%player% again#"
`)
	out, err := reload(context.Background(), ports.CommandRequest{CallerID: "admin"})
	require.NoError(t, err)
	var resp ReloadResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, ReloadResponse{KillThresholds: 1, LossThresholds: 0, ResetSpree: false}, resp)
	assert.False(t, store.ResetSpree())
	_, ok := catalog.LookupKill(4)
	assert.True(t, ok)

	writeSettings(t, path, "killingspree_messages:\n  - threshold: 0\n    message: \"a#b\"\n")
	_, err = reload(context.Background(), ports.CommandRequest{CallerID: "admin"})
	assert.Equal(t, 13, runtimeErrorCode(t, err))
	_, ok = catalog.LookupKill(4)
	assert.True(t, ok, "rejected reload keeps the previous catalog")
}
