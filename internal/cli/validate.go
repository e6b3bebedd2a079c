package cli

import (
	"fmt"

	"killspree/internal/app"
	"killspree/internal/config"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <settings.yaml>",
	Short: "Check a spree settings file",
	Long: `Loads a spree settings file the way the module does at startup.

Every malformed message is reported; the file is accepted only when all of them parse.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	settings, catalog, err := loadCatalog(args[0])
	if err != nil {
		return err
	}

	snap := catalog.Snapshot()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: ok\n", args[0])
	fmt.Fprintf(out, "  killing spree thresholds: %d\n", snap.KillThresholds())
	fmt.Fprintf(out, "  losing spree thresholds:  %d\n", snap.LossThresholds())
	fmt.Fprintf(out, "  reset_spree: %t, min_level_spree_cmd: %d, min_level_reload: %d\n",
		settings.Options.ResetSpree, settings.Options.MinLevelSpreeCmd, settings.Options.MinLevelReload)
	return nil
}

// loadCatalog reads settings from path and builds the message catalog from them.
func loadCatalog(path string) (*config.Settings, *app.MessageCatalog, error) {
	settings, err := config.LoadSettings(path)
	if err != nil {
		return nil, nil, err
	}
	catalog := app.NewMessageCatalog()
	kill, loss := settings.CatalogEntries()
	if err := catalog.Load(kill, loss); err != nil {
		return nil, nil, fmt.Errorf("invalid spree messages in %s:\n%w", path, err)
	}
	return settings, catalog, nil
}
