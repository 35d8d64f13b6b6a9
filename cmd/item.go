package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/cli"
	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/model"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	flagItemName  string
	flagItemQty   string
	flagItemPrice string
	flagItemTotal string
	flagItemAuto  bool

	flagAddQty   string
	flagAddPrice string
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Add, edit, include, exclude or remove line items",
	Long: "Items are addressed as <section>.<item> by position (\"2.3\") or by an ID prefix\n" +
		"(see `evcost show --ids`).",
}

var itemAddCmd = &cobra.Command{
	Use:   "add <section> <name>",
	Short: "Append an item to a section",
	Args:  cobra.ExactArgs(2),
	RunE:  runItemAdd,
}

var itemSetCmd = &cobra.Command{
	Use:   "set <item>",
	Short: "Change an item's name, quantity, price or total",
	Long: "Change an item. Setting --qty or --price recomputes the total unless it was\n" +
		"set by hand with --total; --auto goes back to quantity × price.",
	Args: cobra.ExactArgs(1),
	RunE: runItemSet,
}

var itemCheckCmd = &cobra.Command{
	Use:   "check <item>...",
	Short: "Count items in the totals",
	Args:  cobra.MinimumNArgs(1),
	RunE:  func(_ *cobra.Command, args []string) error { return setChecked(args, true) },
}

var itemUncheckCmd = &cobra.Command{
	Use:   "uncheck <item>...",
	Short: "Leave items out of the totals",
	Args:  cobra.MinimumNArgs(1),
	RunE:  func(_ *cobra.Command, args []string) error { return setChecked(args, false) },
}

var itemRemoveCmd = &cobra.Command{
	Use:     "remove <item>",
	Aliases: []string{"rm"},
	Short:   "Remove an item",
	Args:    cobra.ExactArgs(1),
	RunE:    runItemRemove,
}

func init() {
	itemAddCmd.Flags().StringVar(&flagAddQty, "qty", "1", "Quantity")
	itemAddCmd.Flags().StringVar(&flagAddPrice, "price", "0", "Unit price")

	itemSetCmd.Flags().StringVar(&flagItemName, "name", "", "New name")
	itemSetCmd.Flags().StringVar(&flagItemQty, "qty", "", "Quantity")
	itemSetCmd.Flags().StringVar(&flagItemPrice, "price", "", "Unit price")
	itemSetCmd.Flags().StringVar(&flagItemTotal, "total", "", "Fixed total, ignoring quantity × price")
	itemSetCmd.Flags().BoolVar(&flagItemAuto, "auto", false, "Compute the total from quantity × price again")
	itemSetCmd.MarkFlagsMutuallyExclusive("total", "auto")

	itemCmd.AddCommand(itemAddCmd, itemSetCmd, itemCheckCmd, itemUncheckCmd, itemRemoveCmd)
	rootCmd.AddCommand(itemCmd)
}

func runItemAdd(_ *cobra.Command, args []string) error {
	qty, err := cli.ParseAmount(flagAddQty)
	if err != nil {
		return fmt.Errorf("--qty: %w", err)
	}
	price, err := cli.ParseAmount(flagAddPrice)
	if err != nil {
		return fmt.Errorf("--price: %w", err)
	}

	st, err := requireEvent()
	if err != nil {
		return err
	}
	it := model.NewItem(strings.TrimSpace(args[1]), qty, price)
	var sec model.Section
	err = st.Edit(func(e model.Event) (model.Event, error) {
		s, err := resolveSection(e, args[0])
		if err != nil {
			return e, err
		}
		sec = s
		return e.AddItem(s.ID, it)
	})
	if err != nil {
		return err
	}
	fmt.Printf("  Added %q to %s: %s\n", it.Name, sec.Title, cli.FormatMoney(it.Total))
	return nil
}

// itemEdit is the parsed form of the `item set` flags.
type itemEdit struct {
	name  *string
	qty   *decimal.Decimal
	price *decimal.Decimal
	total *decimal.Decimal
	auto  bool
}

func parseItemEdit(cmd *cobra.Command) (itemEdit, error) {
	var ed itemEdit
	flags := cmd.Flags()

	if flags.Changed("name") {
		name := strings.TrimSpace(flagItemName)
		ed.name = &name
	}
	for _, f := range []struct {
		flag string
		val  string
		dst  **decimal.Decimal
	}{
		{"qty", flagItemQty, &ed.qty},
		{"price", flagItemPrice, &ed.price},
		{"total", flagItemTotal, &ed.total},
	} {
		if !flags.Changed(f.flag) {
			continue
		}
		d, err := cli.ParseAmount(f.val)
		if err != nil {
			return ed, fmt.Errorf("--%s: %w", f.flag, err)
		}
		*f.dst = &d
	}
	ed.auto = flagItemAuto

	if ed.name == nil && ed.qty == nil && ed.price == nil && ed.total == nil && !ed.auto {
		return ed, errors.New("nothing to change; pass --name, --qty, --price, --total or --auto")
	}
	return ed, nil
}

// apply changes it in the order quantity, price, then total, so a manual
// total given together with a price wins.
func (ed itemEdit) apply(it *model.CostItem) {
	if ed.name != nil {
		it.Name = *ed.name
	}
	if ed.qty != nil {
		it.SetQuantity(*ed.qty)
	}
	if ed.price != nil {
		it.SetPrice(*ed.price)
	}
	switch {
	case ed.total != nil:
		it.SetManualTotal(*ed.total)
	case ed.auto:
		it.ClearManualTotal()
	}
}

// editItem resolves ref and applies fn to the item in its section.
func editItem(ref string, fn func(*model.CostItem)) (model.CostItem, error) {
	st, err := requireEvent()
	if err != nil {
		return model.CostItem{}, err
	}
	var updated model.CostItem
	err = st.Edit(func(e model.Event) (model.Event, error) {
		s, it, err := resolveItem(e, ref)
		if err != nil {
			return e, err
		}
		e, err = e.UpdateItem(s.ID, it.ID, fn)
		if err != nil {
			return e, err
		}
		_, updated, _ = e.FindItem(it.ID)
		return e, nil
	})
	return updated, err
}

func runItemSet(cmd *cobra.Command, args []string) error {
	ed, err := parseItemEdit(cmd)
	if err != nil {
		return err
	}
	it, err := editItem(args[0], ed.apply)
	if err != nil {
		return err
	}
	manual := ""
	if it.IsManualTotal {
		manual = " (manual)"
	}
	fmt.Printf("  %s: %s × %s = %s%s\n", it.Name,
		cli.FormatQuantity(it.Quantity), cli.FormatMoney(it.Price), cli.FormatMoney(it.Total), manual)
	return nil
}

func setChecked(refs []string, checked bool) error {
	for _, ref := range refs {
		it, err := editItem(ref, func(it *model.CostItem) { it.SetChecked(checked) })
		if err != nil {
			return err
		}
		verb := "Counting"
		if !checked {
			verb = "Excluding"
		}
		fmt.Printf("  %s %s\n", verb, it.Name)
	}
	st, err := openState()
	if err != nil {
		return err
	}
	fmt.Printf("  Grand total: %s\n", cli.FormatMoney(st.Total()))
	return nil
}

func runItemRemove(_ *cobra.Command, args []string) error {
	st, err := requireEvent()
	if err != nil {
		return err
	}
	var removed model.CostItem
	err = st.Edit(func(e model.Event) (model.Event, error) {
		s, it, err := resolveItem(e, args[0])
		if err != nil {
			return e, err
		}
		removed = it
		return e.RemoveItem(s.ID, it.ID)
	})
	if err != nil {
		return err
	}
	fmt.Printf("  Removed %q\n", removed.Name)
	return nil
}
