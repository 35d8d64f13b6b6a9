package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagResetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the current event",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&flagResetYes, "yes", "y", false, "Do not ask for confirmation")
	rootCmd.AddCommand(resetCmd)
}

func runReset(_ *cobra.Command, _ []string) error {
	st, err := openState()
	if err != nil {
		return err
	}

	if _, ok := st.Current(); ok && !flagResetYes {
		sure, err := confirm("Discard the current event?",
			"This cannot be undone. Save a restore code first with `evcost save`.")
		if err != nil {
			return err
		}
		if !sure {
			fmt.Println("  Nothing was changed.")
			return nil
		}
	}

	st.ResetApp()
	fmt.Println("  Budget cleared. Start again with `evcost new`.")
	return nil
}
