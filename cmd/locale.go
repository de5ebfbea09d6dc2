package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joescharf/gedref/internal/locale"
	"github.com/joescharf/gedref/internal/output"
)

var localeCmd = &cobra.Command{
	Use:   "locale",
	Short: "Resolve locales and territories",
	RunE: func(cmd *cobra.Command, args []string) error {
		return localeListRun()
	},
}

var localeListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List locales that have their own locale data",
	RunE: func(cmd *cobra.Command, args []string) error {
		return localeListRun()
	},
}

var localeShowCmd = &cobra.Command{
	Use:   "show <code>",
	Short: "Show a locale's language, direction and territory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return localeShowRun(args[0])
	},
}

var localeTerritoryCmd = &cobra.Command{
	Use:   "territory <code>",
	Short: "Show a territory by its two-letter code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return localeTerritoryRun(args[0])
	},
}

func init() {
	localeCmd.AddCommand(localeListCmd)
	localeCmd.AddCommand(localeShowCmd)
	localeCmd.AddCommand(localeTerritoryCmd)
	rootCmd.AddCommand(localeCmd)
}

func localeListRun() error {
	tr, err := getTranslator()
	if err != nil {
		return err
	}

	table := ui.Table([]string{"Locale", "Name", "Territory", "Dir"})
	for _, l := range locale.Known() {
		_ = table.Append([]string{
			output.Cyan(l.Code()),
			l.Endonym(),
			l.Territory().Code() + " " + l.Territory().Name(tr.Tag()),
			output.DirectionColor(string(l.Direction())),
		})
	}
	_ = table.Render()
	return nil
}

func localeShowRun(code string) error {
	tr, err := getTranslator()
	if err != nil {
		return err
	}
	l, err := locale.Parse(code)
	if err != nil {
		return err
	}

	fmt.Fprintf(ui.Out, "  %-12s %s\n", "Locale:", output.Cyan(l.Code()))
	fmt.Fprintf(ui.Out, "  %-12s %s\n", "Name:", l.Endonym())
	fmt.Fprintf(ui.Out, "  %-12s %s\n", "Language:", l.Language())
	fmt.Fprintf(ui.Out, "  %-12s %s\n", "Direction:", l.Direction())
	fmt.Fprintf(ui.Out, "  %-12s %s (%s)\n", "Territory:", l.Territory().Code(), l.Territory().Name(tr.Tag()))
	return nil
}

func localeTerritoryRun(code string) error {
	tr, err := getTranslator()
	if err != nil {
		return err
	}
	t, err := locale.TerritoryByCode(code)
	if err != nil {
		return err
	}
	fmt.Fprintf(ui.Out, "%s\t%s\n", t.Code(), t.Name(tr.Tag()))
	return nil
}
