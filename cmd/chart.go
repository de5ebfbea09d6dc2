package cmd

import (
	"context"
	"fmt"
	"html/template"

	"github.com/spf13/cobra"

	"github.com/joescharf/gedref/internal/chart"
	"github.com/joescharf/gedref/internal/i18n"
)

var (
	chartSize      string
	chartColorFrom string
	chartColorTo   string
	chartURLOnly   bool
	chartLimit     int
	chartTotal     int
	chartWith      int
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render statistics charts as HTML",
}

var chartIndividualsCmd = &cobra.Command{
	Use:   "individuals <tree>",
	Short: "Pie chart of individuals with and without sources",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return chartSourcesRun(args[0], false)
	},
}

var chartFamiliesCmd = &cobra.Command{
	Use:   "families <tree>",
	Short: "Pie chart of families with and without sources",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return chartSourcesRun(args[0], true)
	},
}

var chartMediaCmd = &cobra.Command{
	Use:   "media <tree>",
	Short: "Pie chart of the most used media types",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return chartMediaRun(args[0], chartLimit)
	},
}

var chartCountsCmd = &cobra.Command{
	Use:   "sources",
	Short: "Pie chart from explicit counts, without a tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := getTranslator()
		if err != nil {
			return err
		}
		return printSourcesChart(tr, false, chartTotal, chartWith)
	},
}

func init() {
	for _, c := range []*cobra.Command{chartIndividualsCmd, chartFamiliesCmd, chartCountsCmd} {
		c.Flags().BoolVar(&chartURLOnly, "url", false, "Print only the chart image URL")
	}
	chartCmd.PersistentFlags().StringVar(&chartSize, "size", "", "Chart size as WIDTHxHEIGHT (default from config)")
	chartCmd.PersistentFlags().StringVar(&chartColorFrom, "color-from", "", "Colour for the smallest value (default from config)")
	chartCmd.PersistentFlags().StringVar(&chartColorTo, "color-to", "", "Colour for the largest value (default from config)")
	chartMediaCmd.Flags().IntVar(&chartLimit, "limit", 10, "Maximum number of media types (0 for all)")
	chartCountsCmd.Flags().IntVar(&chartTotal, "total", 0, "Total number of records")
	chartCountsCmd.Flags().IntVar(&chartWith, "with", 0, "Number of records with a source")

	chartCmd.AddCommand(chartIndividualsCmd)
	chartCmd.AddCommand(chartFamiliesCmd)
	chartCmd.AddCommand(chartMediaCmd)
	chartCmd.AddCommand(chartCountsCmd)
	rootCmd.AddCommand(chartCmd)
}

func chartOpts() chart.Options {
	return chart.Options{Size: chartSize, ColorFrom: chartColorFrom, ColorTo: chartColorTo}
}

func chartSourcesRun(ref string, families bool) error {
	s, err := getStore()
	if err != nil {
		return err
	}
	tr, err := getTranslator()
	if err != nil {
		return err
	}
	ctx := context.Background()

	t, err := resolveTree(ctx, s, ref)
	if err != nil {
		return err
	}
	st, err := s.Stats(ctx, t.ID)
	if err != nil {
		return err
	}

	total, with := st.Individuals, st.IndividualsWithSources
	if families {
		total, with = st.Families, st.FamiliesWithSources
	}
	return printSourcesChart(tr, families, total, with)
}

func printSourcesChart(tr *i18n.Translator, families bool, total, with int) error {
	r := chart.NewRenderer(tr, chartTheme())
	if chartURLOnly {
		title := tr.Translate("Individuals with sources")
		if families {
			title = tr.Translate("Families with sources")
		}
		c, ok, err := r.SourcesChartData(title, total, with, chartOpts())
		if err != nil {
			return err
		}
		if !ok {
			ui.Info("Nothing to chart: total is 0")
			return nil
		}
		fmt.Fprintln(ui.Out, c.URL)
		return nil
	}

	var html template.HTML
	var err error
	if families {
		html, err = r.FamiliesWithSources(total, with, chartOpts())
	} else {
		html, err = r.IndividualsWithSources(total, with, chartOpts())
	}
	if err != nil {
		return err
	}
	if html == "" {
		ui.Info("Nothing to chart: total is 0")
		return nil
	}
	fmt.Fprintln(ui.Out, html)
	return nil
}

func chartMediaRun(ref string, limit int) error {
	if limit < 0 {
		return fmt.Errorf("limit must not be negative")
	}
	s, err := getStore()
	if err != nil {
		return err
	}
	reg, err := getRegistry()
	if err != nil {
		return err
	}
	tr, err := getTranslator()
	if err != nil {
		return err
	}
	ctx := context.Background()

	t, err := resolveTree(ctx, s, ref)
	if err != nil {
		return err
	}
	counts, err := s.MediaTypeCounts(ctx, t.ID, limit)
	if err != nil {
		return err
	}

	html, err := chart.NewRenderer(tr, chartTheme()).
		MediaTypes(chart.MediaCountsFrom(counts), reg, chartColorFrom, chartColorTo)
	if err != nil {
		return err
	}
	if html == "" {
		ui.Info("Tree %s has no media", t.Name)
		return nil
	}
	fmt.Fprintln(ui.Out, html)
	return nil
}
