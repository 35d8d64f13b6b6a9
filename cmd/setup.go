package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/cli"
	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/config"
	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/store"
	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/tui/theme"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var sampleAmount = decimal.NewFromInt(12500)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Choose currency, storage and theme",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)
	cfg := app.cfg

	fmt.Println()
	fmt.Println("  evcost setup")
	fmt.Println()

	// 1. Currency
	fmt.Println("  1. Currency (ISO code)")
	fmt.Printf("     Current: %s, shown as %s\n", cfg.Display.Currency, cli.FormatMoney(sampleAmount))
	fmt.Print("     > ")
	currency, _ := reader.ReadString('\n')
	if currency = strings.ToUpper(strings.TrimSpace(currency)); currency != "" {
		cfg.Display.Currency = currency
		cli.SetCurrency(currency)
		fmt.Printf("     Amounts will look like %s\n", cli.FormatMoney(sampleAmount))
	}
	fmt.Println()

	// 2. Storage backend
	fmt.Println("  2. Where to keep your budget")
	fmt.Println("     (1) SQLite database [default]")
	fmt.Println("     (2) Plain files")
	fmt.Println("     (3) Memory only (nothing is saved)")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "2":
		cfg.Storage.Backend = store.BackendDisk
	case "3":
		cfg.Storage.Backend = store.BackendMemory
	default:
		cfg.Storage.Backend = store.BackendSQLite
	}
	fmt.Println()

	// 3. Theme
	fmt.Println("  3. Color theme")
	for i, t := range theme.All {
		def := ""
		if t.Name == cfg.Appearance.Theme {
			def = " [current]"
		}
		fmt.Printf("     (%d) %s%s\n", i+1, t.Name, def)
	}
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	if n, err := strconv.Atoi(strings.TrimSpace(themeChoice)); err == nil && n >= 1 && n <= len(theme.All) {
		cfg.Appearance.Theme = theme.All[n-1].Name
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `evcost setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
