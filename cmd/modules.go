package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zjrosen/berth/internal/presentation"
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List the learning modules in catalog order",
	Long: `List the learning modules as JSON, in the order the browser shows them.

Modules without content are reported with "placeholder": true.

Examples:
  # List all modules
  berth modules

  # List modules from a custom content directory
  berth modules --content-dir ./my-port

  # Parse specific fields with jq
  berth modules | jq -r '.[].key'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cleanup := initLogging(cmd)
		defer cleanup()

		runCfg, err := loadedConfig()
		if err != nil {
			return err
		}

		reg, err := loadCatalog(contentFS(&runCfg))
		if err != nil {
			return err
		}

		formatter := presentation.NewFormatter(cmd.OutOrStdout())
		return formatter.FormatModules(presentation.FromCatalogEntries(reg.Entries()))
	},
}

func init() {
	rootCmd.AddCommand(modulesCmd)
}
