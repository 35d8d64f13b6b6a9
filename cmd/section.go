package cmd

import (
	"fmt"
	"strings"

	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/model"

	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Add, rename, remove or fold sections of the current event",
}

var sectionAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Append an empty section",
	Args:  cobra.ExactArgs(1),
	RunE:  runSectionAdd,
}

var sectionRenameCmd = &cobra.Command{
	Use:   "rename <section> <title>",
	Short: "Rename a section",
	Args:  cobra.ExactArgs(2),
	RunE:  runSectionRename,
}

var sectionRemoveCmd = &cobra.Command{
	Use:     "remove <section>",
	Aliases: []string{"rm"},
	Short:   "Remove a section and its items",
	Args:    cobra.ExactArgs(1),
	RunE:    runSectionRemove,
}

var sectionToggleCmd = &cobra.Command{
	Use:   "toggle <section>",
	Short: "Collapse or expand a section",
	Args:  cobra.ExactArgs(1),
	RunE:  runSectionToggle,
}

func init() {
	sectionCmd.AddCommand(sectionAddCmd, sectionRenameCmd, sectionRemoveCmd, sectionToggleCmd)
	rootCmd.AddCommand(sectionCmd)
}

func runSectionAdd(_ *cobra.Command, args []string) error {
	st, err := requireEvent()
	if err != nil {
		return err
	}
	var added model.Section
	err = st.Edit(func(e model.Event) (model.Event, error) {
		e, added = e.AddSection(strings.TrimSpace(args[0]))
		return e, nil
	})
	if err != nil {
		return err
	}
	ev, _ := st.Current()
	fmt.Printf("  Added section %d: %s\n", len(ev.Sections), added.Title)
	return nil
}

// editSection resolves ref against the current event and applies fn to it.
func editSection(ref string, fn func(e model.Event, s model.Section) (model.Event, error)) (model.Section, error) {
	st, err := requireEvent()
	if err != nil {
		return model.Section{}, err
	}
	var target model.Section
	err = st.Edit(func(e model.Event) (model.Event, error) {
		s, err := resolveSection(e, ref)
		if err != nil {
			return e, err
		}
		target = s
		return fn(e, s)
	})
	return target, err
}

func runSectionRename(_ *cobra.Command, args []string) error {
	title := strings.TrimSpace(args[1])
	s, err := editSection(args[0], func(e model.Event, s model.Section) (model.Event, error) {
		return e.RenameSection(s.ID, title)
	})
	if err != nil {
		return err
	}
	fmt.Printf("  Renamed %q to %q\n", s.Title, title)
	return nil
}

func runSectionRemove(_ *cobra.Command, args []string) error {
	s, err := editSection(args[0], func(e model.Event, s model.Section) (model.Event, error) {
		return e.RemoveSection(s.ID)
	})
	if err != nil {
		return err
	}
	fmt.Printf("  Removed section %q (%d items)\n", s.Title, len(s.Items))
	return nil
}

func runSectionToggle(_ *cobra.Command, args []string) error {
	s, err := editSection(args[0], func(e model.Event, s model.Section) (model.Event, error) {
		return e.ToggleSection(s.ID)
	})
	if err != nil {
		return err
	}
	state := "collapsed"
	if s.IsCollapsed {
		state = "expanded"
	}
	fmt.Printf("  Section %q %s\n", s.Title, state)
	return nil
}
