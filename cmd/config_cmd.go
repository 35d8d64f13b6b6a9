package cmd

import (
	"fmt"
	"time"

	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/cli"
	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/config"
	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/state"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := app.cfg

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Storage]")
	fmt.Printf("    Backend:   %s\n", firstNonEmpty(flagBackend, cfg.Storage.Backend))
	fmt.Printf("    Data dir:  %s\n", firstNonEmpty(flagDataDir, config.DataDir(cfg)))
	fmt.Printf("    Key:       %s\n", firstNonEmpty(cfg.Storage.Key, state.DefaultKey))
	fmt.Printf("    Saved:     %s\n", lastSaved())
	fmt.Println()

	fmt.Println("  [Display]")
	fmt.Printf("    Currency:  %s (e.g. %s)\n", cli.Currency(), cli.FormatMoney(sampleAmount))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme:     %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Logging]")
	fmt.Printf("    Level:     %s\n", cfg.Logging.Level)
	fmt.Printf("    Format:    %s\n", cfg.Logging.Format)
	fmt.Println()

	fmt.Println("  Run `evcost setup` to reconfigure.")
	return nil
}

// lastSaved reports when the state was last written, for backends that
// record it.
func lastSaved() string {
	if _, err := openState(); err != nil {
		return "unavailable (" + err.Error() + ")"
	}
	stamped, ok := app.kv.(interface {
		UpdatedAt(key string) (time.Time, bool, error)
	})
	if !ok {
		return "not tracked by this backend"
	}
	at, found, err := stamped.UpdatedAt(firstNonEmpty(app.cfg.Storage.Key, state.DefaultKey))
	switch {
	case err != nil:
		return "unavailable (" + err.Error() + ")"
	case !found:
		return "never"
	}
	return at.Local().Format(dateTimeLayout)
}
