package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joescharf/gedref/internal/gedcom"
	"github.com/joescharf/gedref/internal/output"
)

var (
	tagPrefix  string
	tagElement string
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Look up GEDCOM tags",
	Long:  "List known GEDCOM tags, translate them to labels, and show fact pick-lists.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return tagListRun(tagPrefix)
	},
}

var tagListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all known tags with their labels",
	RunE: func(cmd *cobra.Command, args []string) error {
		return tagListRun(tagPrefix)
	},
}

var tagLabelCmd = &cobra.Command{
	Use:   "label <tag> [value]",
	Short: "Translate a tag, or render a label/value pair",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		value := ""
		if len(args) > 1 {
			value = args[1]
		}
		return tagLabelRun(args[0], value)
	},
}

var tagPicklistCmd = &cobra.Command{
	Use:   "picklist <record-type>",
	Short: "Show the facts that can be added to a record type",
	Long:  "Show the facts offered by the edit form for INDI, FAM, SOUR, REPO, PLAC or NAME.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return tagPicklistRun(args[0])
	},
}

var tagMediaTypesCmd = &cobra.Command{
	Use:   "media-types",
	Short: "List the values of OBJE:FILE:FORM:TYPE",
	RunE: func(cmd *cobra.Command, args []string) error {
		return tagMediaTypesRun()
	},
}

func init() {
	tagCmd.PersistentFlags().StringVar(&tagPrefix, "prefix", "", "Only list tags starting with this prefix")
	tagLabelCmd.Flags().StringVar(&tagElement, "element", "div", "HTML element wrapping a label/value pair")

	tagCmd.AddCommand(tagListCmd)
	tagCmd.AddCommand(tagLabelCmd)
	tagCmd.AddCommand(tagPicklistCmd)
	tagCmd.AddCommand(tagMediaTypesCmd)
	rootCmd.AddCommand(tagCmd)
}

func tagListRun(prefix string) error {
	reg, err := getRegistry()
	if err != nil {
		return err
	}

	table := ui.Table([]string{"Tag", "Label"})
	n := 0
	for _, t := range gedcom.AllTags() {
		if prefix != "" && !strings.HasPrefix(t, prefix) {
			continue
		}
		_ = table.Append([]string{output.Cyan(t), reg.Label(t)})
		n++
	}
	if n == 0 {
		ui.Info("No tags match %q.", prefix)
		return nil
	}
	_ = table.Render()
	ui.VerboseLog("%d tags", n)
	return nil
}

func tagLabelRun(tag, value string) error {
	reg, err := getRegistry()
	if err != nil {
		return err
	}

	if !reg.IsTag(tag) {
		ui.Warning("%s is not a known tag", tag)
	}
	if value == "" {
		fmt.Fprintln(ui.Out, reg.Label(tag))
		return nil
	}
	fmt.Fprintln(ui.Out, reg.LabelValue(tag, value, tagElement))
	return nil
}

func tagPicklistRun(recordType string) error {
	reg, err := getRegistry()
	if err != nil {
		return err
	}

	facts := reg.PicklistFacts(gedcom.RecordType(strings.ToUpper(recordType)))
	if len(facts) == 0 {
		types := make([]string, 0)
		for _, t := range gedcom.PicklistTypes() {
			types = append(types, string(t))
		}
		return fmt.Errorf("no pick-list for %q (want one of %s)", recordType, strings.Join(types, ", "))
	}

	table := ui.Table([]string{"Tag", "Label"})
	for _, f := range facts {
		_ = table.Append([]string{output.Cyan(f.Tag), f.Label})
	}
	_ = table.Render()
	return nil
}

func tagMediaTypesRun() error {
	reg, err := getRegistry()
	if err != nil {
		return err
	}

	table := ui.Table([]string{"Value", "Label"})
	for _, f := range reg.FileFormTypes() {
		_ = table.Append([]string{output.Cyan(f.Tag), f.Label})
	}
	_ = table.Render()
	return nil
}
