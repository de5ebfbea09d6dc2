package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joescharf/gedref/internal/gedcom"
)

var uidCount int

var uidCmd = &cobra.Command{
	Use:   "uid",
	Short: "Generate or check _UID values",
	Long: `Generate _UID values in the form used by PAF, Legacy and RootsMagic:
32 upper-case hex digits followed by a 4-digit checksum.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return uidNewRun(uidCount)
	},
}

var uidNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Generate new _UID values",
	RunE: func(cmd *cobra.Command, args []string) error {
		return uidNewRun(uidCount)
	},
}

var uidCheckCmd = &cobra.Command{
	Use:   "check <uid>...",
	Short: "Verify the checksum of _UID values",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return uidCheckRun(args)
	},
}

func init() {
	uidCmd.PersistentFlags().IntVarP(&uidCount, "count", "c", 1, "Number of values to generate")
	uidCmd.AddCommand(uidNewCmd)
	uidCmd.AddCommand(uidCheckCmd)
	rootCmd.AddCommand(uidCmd)
}

func uidNewRun(count int) error {
	if count < 1 {
		return fmt.Errorf("count must be at least 1")
	}
	for i := 0; i < count; i++ {
		fmt.Fprintln(ui.Out, gedcom.NewUID())
	}
	return nil
}

func uidCheckRun(uids []string) error {
	bad := 0
	for _, uid := range uids {
		if gedcom.ValidUID(uid) {
			ui.Success("%s", uid)
			continue
		}
		ui.Error("%s: invalid checksum or format", uid)
		bad++
	}
	if bad > 0 {
		return fmt.Errorf("%d of %d values invalid", bad, len(uids))
	}
	return nil
}
