package cmd

import (
	"github.com/spf13/cobra"

	"github.com/joescharf/gedref/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP stdio server",
	Long: `Start an MCP (Model Context Protocol) server on stdio.

This lets an assistant look up GEDCOM labels, pick-lists, locales and
tree statistics. Configure your MCP client with:

  {
    "mcpServers": {
      "gedref": { "command": "gedref", "args": ["mcp"] }
    }
  }

Available tools: gedcom_label, gedcom_picklist, gedcom_new_uid,
locale_territory, tree_stats, tree_sources_chart`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := getStore()
		if err != nil {
			return err
		}
		b, err := getBundle()
		if err != nil {
			return err
		}
		return mcp.NewServer(s, b, chartTheme(), buildVersion).ServeStdio(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
