package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/model"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	flagNewName     string
	flagNewLocation string
	flagNewYes      bool
)

var newCmd = &cobra.Command{
	Use:   "new [type]",
	Short: "Start a new event from its default template",
	Long: "Start a new event. Without a type an interactive form asks for one.\n" +
		"Types: engagement, marriage, wedding, groom_prep, bride_prep, birthday, baby_shower, custom.\n" +
		"Engagements also need --location home or hall.",
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

func init() {
	newCmd.Flags().StringVarP(&flagNewName, "name", "n", "", "Custom event name")
	newCmd.Flags().StringVarP(&flagNewLocation, "location", "l", "", "Engagement location: home or hall")
	newCmd.Flags().BoolVarP(&flagNewYes, "yes", "y", false, "Replace the current event without asking")
	rootCmd.AddCommand(newCmd)
}

func runNew(_ *cobra.Command, args []string) error {
	st, err := openState()
	if err != nil {
		return err
	}

	var (
		t    model.EventType
		name = strings.TrimSpace(flagNewName)
		loc  model.Location
	)

	if len(args) == 0 {
		t, name, loc, err = askNewEvent(name)
		if err != nil {
			return err
		}
	} else {
		if t, err = model.ParseEventType(args[0]); err != nil {
			return err
		}
		if loc, err = model.ParseLocation(flagNewLocation); err != nil {
			return err
		}
		switch {
		case t == model.Engagement && loc == model.NoLocation:
			return errors.New("an engagement needs --location home or hall")
		case t != model.Engagement && loc != model.NoLocation:
			warn("Ignoring --location: only engagements have one")
			loc = model.NoLocation
		}
	}

	if cur, ok := st.Current(); ok && !flagNewYes {
		replace, err := confirm(
			fmt.Sprintf("Replace the current event (%s)?", cur.DisplayName()),
			"Its sections and prices will be lost. Save a restore code first with `evcost save`.")
		if err != nil {
			return err
		}
		if !replace {
			fmt.Println("  Kept the current event.")
			return nil
		}
	}

	ev := st.StartNewEvent(t, name, loc)
	fmt.Printf("  Started %s with %d sections.\n", eventTitle(ev), len(ev.Sections))
	fmt.Println("  Run `evcost show` to see them, or `evcost tui` to edit.")
	return nil
}

// askNewEvent runs the interactive new-event form.
func askNewEvent(name string) (model.EventType, string, model.Location, error) {
	var typ, location string
	typ = string(model.Engagement)
	location = string(model.Hall)

	opts := make([]huh.Option[string], 0, len(model.EventTypes))
	for _, t := range model.EventTypes {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s (%s)", t.Label(), t), string(t)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Event type").Options(opts...).Value(&typ),
			huh.NewInput().Title("Name (optional)").Value(&name),
		),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Where is the engagement?").
				Options(
					huh.NewOption(model.Hall.Label()+" (hall)", string(model.Hall)),
					huh.NewOption(model.Home.Label()+" (home)", string(model.Home)),
				).
				Value(&location),
		).WithHideFunc(func() bool { return typ != string(model.Engagement) }),
	)
	if err := form.Run(); err != nil {
		return "", "", "", fmt.Errorf("new event form: %w", err)
	}

	t := model.EventType(typ)
	loc := model.NoLocation
	if t == model.Engagement {
		loc = model.Location(location)
	}
	return t, strings.TrimSpace(name), loc, nil
}

// confirm asks a yes/no question, defaulting to no.
func confirm(title, description string) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	if err != nil {
		return false, fmt.Errorf("confirmation: %w", err)
	}
	return ok, nil
}
