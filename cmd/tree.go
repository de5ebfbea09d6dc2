package cmd

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joescharf/gedref/internal/importer"
	"github.com/joescharf/gedref/internal/models"
	"github.com/joescharf/gedref/internal/output"
	"github.com/joescharf/gedref/internal/store"
)

var treeImportName string

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Manage imported family trees",
	Long:  "Import GEDCOM files and inspect the statistics used by the charts.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return treeListRun()
	},
}

var treeImportCmd = &cobra.Command{
	Use:   "import <file.ged>",
	Short: "Import (or re-import) a GEDCOM file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return treeImportRun(args[0], treeImportName)
	},
}

var treeListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List imported trees",
	RunE: func(cmd *cobra.Command, args []string) error {
		return treeListRun()
	},
}

var treeStatsCmd = &cobra.Command{
	Use:   "stats <tree>",
	Short: "Show record counts for a tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return treeStatsRun(args[0])
	},
}

var treeDeleteCmd = &cobra.Command{
	Use:     "delete <tree>",
	Aliases: []string{"rm"},
	Short:   "Delete an imported tree",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return treeDeleteRun(args[0])
	},
}

func init() {
	treeImportCmd.Flags().StringVar(&treeImportName, "name", "", "Tree name (default: file name without extension)")

	treeCmd.AddCommand(treeImportCmd)
	treeCmd.AddCommand(treeListCmd)
	treeCmd.AddCommand(treeStatsCmd)
	treeCmd.AddCommand(treeDeleteCmd)
	rootCmd.AddCommand(treeCmd)
}

// resolveTree finds a tree by name first, then by ID.
func resolveTree(ctx context.Context, s store.Store, ref string) (*models.Tree, error) {
	t, err := s.GetTreeByName(ctx, ref)
	if err == nil {
		return t, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	return s.GetTree(ctx, ref)
}

func treeImportRun(path, name string) error {
	s, err := getStore()
	if err != nil {
		return err
	}

	if dryRun {
		ui.DryRunMsg("Would import %s", path)
		return nil
	}

	res, err := importer.File(context.Background(), s, name, path)
	if err != nil {
		return err
	}

	verb := "Updated"
	if res.Created {
		verb = "Created"
	}
	ui.Success("%s tree %s: %d records", verb, output.Cyan(res.Tree.Name), res.Records)

	types := make([]string, 0, len(res.ByType))
	for t := range res.ByType {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		ui.VerboseLog("%-5s %d", t, res.ByType[t])
	}
	if res.MissingUIDs > 0 {
		ui.Info("%d individuals and families have no _UID (generate with 'gedref uid')", res.MissingUIDs)
	}
	for _, xref := range res.InvalidUIDs {
		ui.Warning("%s: _UID checksum does not match", xref)
	}
	return nil
}

func treeListRun() error {
	s, err := getStore()
	if err != nil {
		return err
	}

	trees, err := s.ListTrees(context.Background())
	if err != nil {
		return err
	}
	if len(trees) == 0 {
		ui.Info("No trees. Use 'gedref tree import <file.ged>' to import one.")
		return nil
	}

	table := ui.Table([]string{"Name", "Title", "Records", "Updated"})
	for _, t := range trees {
		_ = table.Append([]string{
			output.Cyan(t.Name),
			t.Title,
			strconv.Itoa(t.RecordCount),
			t.UpdatedAt.Format("2006-01-02"),
		})
	}
	_ = table.Render()
	return nil
}

func treeStatsRun(ref string) error {
	s, err := getStore()
	if err != nil {
		return err
	}
	tr, err := getTranslator()
	if err != nil {
		return err
	}
	reg, err := getRegistry()
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

	pct := func(n, total int) string {
		if total == 0 {
			return "-"
		}
		f := float64(n) / float64(total)
		return output.CoverageColor(f, tr.Percentage(f, 1))
	}

	table := ui.Table([]string{"Records", "Total", "With sources"})
	_ = table.Append([]string{reg.Label("INDI"), tr.Number(st.Individuals), pct(st.IndividualsWithSources, st.Individuals)})
	_ = table.Append([]string{reg.Label("FAM"), tr.Number(st.Families), pct(st.FamiliesWithSources, st.Families)})
	_ = table.Append([]string{reg.Label("SOUR"), tr.Number(st.Sources), ""})
	_ = table.Append([]string{reg.Label("REPO"), tr.Number(st.Repositories), ""})
	_ = table.Append([]string{reg.Label("NOTE"), tr.Number(st.Notes), ""})
	_ = table.Append([]string{reg.Label("OBJE"), tr.Number(st.Media), ""})
	_ = table.Render()

	if len(st.MediaTypes) > 0 {
		fmt.Fprintln(ui.Out)
		mt := ui.Table([]string{reg.Label("OBJE:FILE:FORM:TYPE"), "Total"})
		for _, c := range st.MediaTypes {
			_ = mt.Append([]string{reg.FileFormTypeValue(c.Type), tr.Number(c.Count)})
		}
		_ = mt.Render()
	}
	return nil
}

func treeDeleteRun(ref string) error {
	s, err := getStore()
	if err != nil {
		return err
	}
	ctx := context.Background()

	t, err := resolveTree(ctx, s, ref)
	if err != nil {
		return err
	}

	if dryRun {
		ui.DryRunMsg("Would delete tree: %s", t.Name)
		return nil
	}

	if err := s.DeleteTree(ctx, t.ID); err != nil {
		return fmt.Errorf("delete tree: %w", err)
	}
	ui.Success("Deleted tree: %s", t.Name)
	return nil
}
