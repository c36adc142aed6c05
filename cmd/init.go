package cmd

import (
	"github.com/grovetools/wikigen/internal/scaffold"
	"github.com/spf13/cobra"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Scaffold a wiki root",
		Long: `Creates the page template, wikigen.config.yml, an empty mapping file, a sample
item record and one pages/ folder per category under the wiki root.

It will not overwrite an existing template.

Examples:
  wikigen init                      # Scaffold ./CosmicWiki
  wikigen init --root my-wiki       # Scaffold another root`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return scaffold.Init(a.paths, a.logger)
		},
	}
}
