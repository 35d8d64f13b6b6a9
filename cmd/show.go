package cmd

import (
	"fmt"

	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/cli"
	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/model"

	"github.com/spf13/cobra"
)

const dateTimeLayout = "2006-01-02 15:04"

var flagShowIDs bool

var showCmd = &cobra.Command{
	Use:     "show",
	Aliases: []string{"summary"},
	Short:   "Show the current event with section and grand totals",
	Args:    cobra.NoArgs,
	RunE:    runShow,
}

func init() {
	showCmd.Flags().BoolVar(&flagShowIDs, "ids", false, "Show item and section ID prefixes")
	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, _ []string) error {
	st, err := requireEvent()
	if err != nil {
		return err
	}
	ev, _ := st.Current()

	fmt.Println()
	fmt.Println(cli.RenderTitle(eventTitle(ev)))
	fmt.Println(cli.Muted(fmt.Sprintf("  Created %s · last modified %s",
		ev.Created().Format(dateTimeLayout), ev.Modified().Format(dateTimeLayout))))
	fmt.Println()

	for i, s := range ev.Sections {
		fmt.Print(cli.RenderTable(sectionTable(i+1, s)))
		fmt.Println()
	}
	if len(ev.Sections) == 0 {
		fmt.Println("  No sections. Add one with `evcost section add <title>`.")
		fmt.Println()
	}

	printTotals(ev)
	return nil
}

func eventTitle(ev model.Event) string {
	title := ev.DisplayName()
	if ev.CustomName != "" {
		title += " · " + ev.Type.Label()
	}
	if l := ev.Location.Label(); l != "" {
		title += " · " + l
	}
	return title
}

func sectionTable(n int, s model.Section) cli.Table {
	title := fmt.Sprintf("%d. %s", n, s.Title)
	if flagShowIDs {
		title += cli.Muted("  [" + shortID(s.ID) + "]")
	}
	if s.IsCollapsed {
		title += cli.Muted("  (collapsed)")
	}

	t := cli.Table{
		Title:    title,
		Headers:  []string{"#", "", "Item", "Qty", "Price", "Total"},
		LeftCols: 3,
	}
	if flagShowIDs {
		t.Headers = append([]string{"ID"}, t.Headers...)
		t.LeftCols++
	}

	for j, it := range s.Items {
		box := "[x]"
		if !it.IsChecked {
			box = "[ ]"
		}
		total := cli.FormatMoney(it.Total)
		if it.IsManualTotal {
			total += " *"
		}
		r := []string{
			fmt.Sprintf("%d.%d", n, j+1),
			box,
			it.Name,
			cli.FormatQuantity(it.Quantity),
			cli.FormatMoney(it.Price),
			total,
		}
		if flagShowIDs {
			r = append([]string{shortID(it.ID)}, r...)
		}
		t.Rows = append(t.Rows, r)
	}

	subtotal := []string{"", "", "Subtotal", "", "", cli.FormatMoney(s.Total())}
	if flagShowIDs {
		subtotal = append([]string{""}, subtotal...)
	}
	if len(t.Rows) > 0 {
		t.Rows = append(t.Rows, []string{cli.Separator})
	}
	t.Rows = append(t.Rows, subtotal)
	return t
}

func printTotals(ev model.Event) {
	grand := ev.Total()
	checked, all := ev.CheckedCount()

	maxTotal := 0.0
	for _, s := range ev.Sections {
		if f := s.Total().InexactFloat64(); f > maxTotal {
			maxTotal = f
		}
	}

	rows := make([][]string, 0, len(ev.Sections)+2)
	for _, s := range ev.Sections {
		rows = append(rows, []string{
			s.Title,
			cli.FormatMoney(s.Total()),
			cli.FormatPercent(s.Total(), grand),
			cli.RenderShareBar(s.Total().InexactFloat64(), maxTotal, 20),
		})
	}
	rows = append(rows, []string{cli.Separator})
	rows = append(rows, []string{"الإجمالي النهائي", cli.Total(cli.FormatMoney(grand)), "", ""})

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Totals (%s of %s items counted)", cli.FormatNumber(int64(checked)), cli.FormatNumber(int64(all))),
		Headers: []string{"Section", "Total", "Share", ""},
		Rows:    rows,
	}))
	fmt.Println()
	fmt.Println(cli.Muted("  * manual total    [ ] excluded from totals"))
	fmt.Println()
}
