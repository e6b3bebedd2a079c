package nakama

import (
	"context"
	"database/sql"
	"fmt"

	"killspree/internal/app"
	"killspree/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule loads the spree settings, registers the spree commands and the spree match.
// Any failure aborts module loading.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	if initializer == nil {
		return app.ErrNoCommandRegistrar
	}

	vars, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	env, err := config.ParseEnv(vars)
	if err != nil {
		return err
	}

	catalog := app.NewMessageCatalog()
	settings, err := loadModuleConfig(env, catalog)
	if err != nil {
		return err
	}
	store := config.NewStore(settings)

	registrar := NewNakamaCommandRegistrar(initializer, NewNakamaPrivilegeAdapter(nk))
	if err := app.RegisterCommands(registrar, app.CommandSet{
		Spree:          spreeCommand(logger, nk),
		SpreeMinLevel:  store.MinLevelSpreeCmd,
		Reload:         reloadCommand(logger, env, catalog, store),
		ReloadMinLevel: store.MinLevelReload,
	}); err != nil {
		return err
	}

	if err := initializer.RegisterRpc(RpcFindMatch, rpcFindMatch); err != nil {
		return err
	}

	if err := initializer.RegisterMatch(MatchNameSpree, func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error) {
		return newMatchHandler(catalog, store), nil
	}); err != nil {
		return err
	}

	snap := catalog.Snapshot()
	logger.Info("Spree module loaded: %d killing and %d losing spree messages, reset_spree=%t.", snap.KillThresholds(), snap.LossThresholds(), store.ResetSpree())
	return nil
}

// loadModuleConfig reads the settings file, applies env overrides and publishes the catalog.
func loadModuleConfig(env config.Env, catalog *app.MessageCatalog) (*config.Settings, error) {
	settings, err := config.LoadSettings(env.ConfigPath)
	if err != nil {
		return nil, err
	}
	env.Apply(settings)

	kill, loss := settings.CatalogEntries()
	if err := catalog.Load(kill, loss); err != nil {
		return nil, fmt.Errorf("invalid spree messages in %s: %w", env.ConfigPath, err)
	}
	return settings, nil
}
