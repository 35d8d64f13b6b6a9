package cmd

import (
	"fmt"
	"strings"

	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/catalog"
	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/cli"
	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/model"

	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List event types and the sections each starts with",
	Args:  cobra.NoArgs,
	RunE:  runTypes,
}

func init() {
	rootCmd.AddCommand(typesCmd)
}

func runTypes(_ *cobra.Command, _ []string) error {
	rows := make([][]string, 0, len(model.EventTypes)+1)
	for _, t := range model.EventTypes {
		if t == model.Engagement {
			for _, loc := range []model.Location{model.Hall, model.Home} {
				tpl := catalog.TemplateFor(t, loc)
				rows = append(rows, []string{string(t), t.Label(), string(loc), tpl.Name, sectionTitles(tpl)})
			}
			continue
		}
		tpl := catalog.TemplateFor(t, model.NoLocation)
		rows = append(rows, []string{string(t), t.Label(), "", tpl.Name, sectionTitles(tpl)})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:    "Event types",
		Headers:  []string{"Type", "Label", "Location", "Template", "Sections"},
		Rows:     rows,
		LeftCols: 5,
	}))
	fmt.Println()

	var tplRows [][]string
	for _, tpl := range catalog.Templates() {
		for i, sec := range tpl.Sections {
			name := ""
			if i == 0 {
				name = tpl.Name
			}
			tplRows = append(tplRows, []string{name, sec.Title, templateItems(sec)})
		}
		tplRows = append(tplRows, []string{cli.Separator})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:    "Templates",
		Headers:  []string{"Template", "Section", "Items"},
		Rows:     tplRows[:len(tplRows)-1],
		LeftCols: 3,
	}))
	fmt.Println()
	return nil
}

func templateItems(sec catalog.TemplateSection) string {
	if len(sec.Items) == 0 {
		return cli.Muted("-")
	}
	items := make([]string, len(sec.Items))
	for i, it := range sec.Items {
		items[i] = fmt.Sprintf("%s ×%d", it.Name, it.Quantity)
	}
	return strings.Join(items, "، ")
}

func sectionTitles(tpl catalog.Template) string {
	titles := make([]string, len(tpl.Sections))
	for i, s := range tpl.Sections {
		titles[i] = s.Title
	}
	return strings.Join(titles, "، ")
}
