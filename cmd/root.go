// Package cmd implements the evcost CLI commands.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/cli"
	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/config"
	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/state"
	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/store"
	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/tui/theme"

	"github.com/spf13/cobra"
)

var (
	flagDataDir   string
	flagBackend   string
	flagEphemeral bool
	flagQuiet     bool
	flagLogLevel  string
	flagLogFormat string
)

// app holds what the running command loaded or opened.
var app struct {
	cfg   config.Config
	kv    store.KV
	state *state.Store
}

var rootCmd = &cobra.Command{
	Use:   "evcost",
	Short: "Event budget calculator",
	Long: "Plan what an occasion will cost: pick the event, fill in quantities and prices,\n" +
		"and keep a restore code to pick the plan up anywhere.",
	SilenceUsage:      true,
	PersistentPreRunE: initRuntime,
	RunE:              runRoot,
}

// Execute is the main entry point called from main.go.
func Execute() {
	err := rootCmd.Execute()
	closeState()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Directory for stored state (default from config or XDG data dir)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Storage backend: "+strings.Join(store.Backends, ", "))
	rootCmd.PersistentFlags().BoolVar(&flagEphemeral, "ephemeral", false, "Keep state in memory only")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress notices on stderr")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "Log format: console or json")
}

func initRuntime(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	app.cfg = cfg

	if err := setupLogging(
		firstNonEmpty(flagLogLevel, cfg.Logging.Level, "warn"),
		firstNonEmpty(flagLogFormat, cfg.Logging.Format, "console"),
	); err != nil {
		return err
	}

	cli.SetCurrency(cfg.Display.Currency)
	theme.SetActive(cfg.Appearance.Theme)
	return nil
}

func setupLogging(level, format string) error {
	var slogLevel slog.Level
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "info":
		slogLevel = slog.LevelInfo
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		return fmt.Errorf("invalid log level: %s", level)
	}

	opts := &slog.HandlerOptions{Level: slogLevel}

	var handler slog.Handler
	switch format {
	case "console":
		handler = slog.NewTextHandler(os.Stderr, opts)
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		return fmt.Errorf("invalid log format: %s", format)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

// openState opens the configured storage backend and hydrates the state
// store from it. Repeated calls return the same store.
func openState() (*state.Store, error) {
	if app.state != nil {
		return app.state, nil
	}

	backend := firstNonEmpty(flagBackend, app.cfg.Storage.Backend)
	if flagEphemeral {
		backend = store.BackendMemory
	}
	dir := firstNonEmpty(flagDataDir, config.DataDir(app.cfg))

	kv, err := store.Open(backend, dir)
	if err != nil {
		return nil, fmt.Errorf("opening %s store: %w", backend, err)
	}

	opts := []state.Option{state.WithLogger(slog.Default())}
	if app.cfg.Storage.Key != "" {
		opts = append(opts, state.WithKey(app.cfg.Storage.Key))
	}

	app.kv = kv
	app.state = state.New(kv, opts...)
	slog.Debug("state opened", "backend", backend, "dir", dir, "hydrated", app.state.Hydrated())
	return app.state, nil
}

func closeState() {
	if app.state != nil {
		if n := app.state.PersistFailures(); n > 0 {
			warn("Warning: %d change(s) could not be saved to disk", n)
		}
	}
	if app.kv != nil {
		if err := app.kv.Close(); err != nil {
			slog.Warn("closing store failed", "error", err)
		}
	}
}

// requireEvent opens the state and fails unless there is a current event,
// telling the user how to start one.
func requireEvent() (*state.Store, error) {
	st, err := openState()
	if err != nil {
		return nil, err
	}
	if _, ok := st.Current(); !ok {
		return nil, fmt.Errorf("no event yet; run `evcost new` first")
	}
	return st, nil
}

// notice prints a user-facing line on stderr unless --quiet.
func notice(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, format, args...)
}

// warn prints a highlighted notice line.
func warn(format string, args ...any) {
	notice("  %s\n", cli.Warn(fmt.Sprintf(format, args...)))
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func runRoot(cmd *cobra.Command, args []string) error {
	st, err := openState()
	if err != nil {
		return err
	}
	if st.IsFirstVisit() {
		printWelcome()
		st.SetVisited(true)
		return nil
	}
	if _, ok := st.Current(); !ok {
		fmt.Println("\n  No event yet. Start one with `evcost new`.")
		return nil
	}
	return runShow(cmd, args)
}

func printWelcome() {
	fmt.Println()
	fmt.Println(cli.RenderTitle("evcost · حاسبة تكاليف المناسبات"))
	fmt.Println()
	fmt.Println("  اختر المناسبة، ونجهز لك الأقسام الأساسية.")
	fmt.Println("  اكتب العدد والسعر لكل بند، والإجمالي يتحسب لوحده.")
	fmt.Println()
	fmt.Println("  evcost new         start an event (engagement, wedding, birthday, ...)")
	fmt.Println("  evcost item set    fill in quantities and prices")
	fmt.Println("  evcost save        get a restore code to continue anywhere")
	fmt.Println("  evcost tui         edit interactively")
	fmt.Println()
}
