package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/cli"
	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/report"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export xlsx|md",
	Short: "Export the checked items as a spreadsheet or markdown summary",
	Long: "Export the current event. Only checked items are listed; each section ends\n" +
		"with its subtotal and the report ends with the grand total.\n\n" +
		"xlsx writes event_costs_<ms>.xlsx unless -o is given. md renders to the\n" +
		"terminal unless -o is given; -o - prints the raw markdown.",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"xlsx", "md"},
	RunE:      runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "output", "o", "", "Output file, or - for stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	st, err := requireEvent()
	if err != nil {
		return err
	}
	ev, _ := st.Current()
	r := report.Project(ev, time.Now())

	var ex report.Exporter
	switch args[0] {
	case "xlsx":
		ex = report.XLSX{}
	case "md", "markdown":
		md := report.Markdown{Money: cli.FormatMoney}
		if flagExportOut == "" {
			out, err := report.Render(md.String(r), terminalWidth())
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		}
		ex = md
	default:
		return fmt.Errorf("unknown export format %q (want xlsx or md)", args[0])
	}

	if flagExportOut == "-" {
		return ex.Export(os.Stdout, r)
	}

	path := flagExportOut
	if path == "" {
		path = report.Filename(r, ex)
	}
	if err := writeExport(path, ex, r); err != nil {
		return err
	}
	notice("  Wrote %s (%d sections, total %s)\n", path, len(r.Sections), cli.FormatMoney(r.GrandTotal))
	return nil
}

// writeExport writes r to path. A partly written file is removed.
func writeExport(path string, ex report.Exporter, r report.Report) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644) //nolint:gosec // user-chosen output path
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := ex.Export(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// terminalWidth returns the stdout width, or 80 when it is not a terminal.
func terminalWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return 80
}
