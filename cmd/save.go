package cmd

import (
	"errors"
	"fmt"

	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/codec"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var flagSaveNoCopy bool

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Print a restore code for the whole budget and copy it",
	Long: "Print a restore code holding the current event. Paste it into `evcost load`\n" +
		"on any machine to continue where you left off.",
	Args: cobra.NoArgs,
	RunE: runSave,
}

func init() {
	saveCmd.Flags().BoolVar(&flagSaveNoCopy, "no-copy", false, "Do not copy the code to the clipboard")
	rootCmd.AddCommand(saveCmd)
}

func runSave(_ *cobra.Command, _ []string) error {
	st, err := openState()
	if err != nil {
		return err
	}

	code := st.GenerateSaveCode()
	if code == codec.Unencodable {
		return errors.New("could not produce a restore code; see the log for details")
	}

	// The code alone goes to stdout so it can be piped.
	fmt.Println(code)

	if flagSaveNoCopy {
		return nil
	}
	if err := clipboard.WriteAll(code); err != nil {
		warn("Clipboard unavailable (%v); copy the code above by hand.", err)
		return nil
	}
	notice("  Copied to clipboard.\n")
	return nil
}
