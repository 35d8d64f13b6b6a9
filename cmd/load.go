package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/cli"

	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load [code|-]",
	Short: "Replace the budget with the one in a restore code",
	Long: "Replace the whole budget with the one held in a restore code from `evcost save`.\n" +
		"Reads the code from stdin when it is omitted or \"-\". A code that cannot be\n" +
		"read leaves the current budget untouched.",
	Args: cobra.MaximumNArgs(1),
	RunE: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)
}

func runLoad(_ *cobra.Command, args []string) error {
	var code string
	if len(args) == 1 && args[0] != "-" {
		code = args[0]
	} else {
		b, err := io.ReadAll(io.LimitReader(os.Stdin, 1<<20))
		if err != nil {
			return fmt.Errorf("reading code from stdin: %w", err)
		}
		code = string(b)
	}
	if strings.TrimSpace(code) == "" {
		return errors.New("no restore code given")
	}

	st, err := openState()
	if err != nil {
		return err
	}
	if !st.LoadEvent(code) {
		return errors.New("not a valid restore code; nothing was changed")
	}

	ev, ok := st.Current()
	if !ok {
		fmt.Println("  Loaded an empty budget.")
		return nil
	}
	checked, all := ev.CheckedCount()
	fmt.Printf("  Loaded %s: %d sections, %s of %s items counted.\n",
		eventTitle(ev), len(ev.Sections), cli.FormatNumber(int64(checked)), cli.FormatNumber(int64(all)))
	return nil
}
