package cmd

import (
	"fmt"

	"github.com/grovetools/wikigen/pkg/schema"
	"github.com/grovetools/wikigen/pkg/writer"
	"github.com/spf13/cobra"
)

func newSchemaCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Manage the item JSON schema",
		Long:  "Provides tools for generating and describing the item record schema.",
	}

	cmd.AddCommand(newSchemaGenerateCmd(a))
	cmd.AddCommand(newSchemaDescribeCmd(a))

	return cmd
}

func newSchemaGenerateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Write the item JSON schema",
		Long: `Reflects the item record type into a JSON schema and writes it to the
configured schema path, replacing any existing file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := schema.Write(writer.NewFile(), a.paths.Schema); err != nil {
				return err
			}
			a.logger.Infof("✅ Wrote item schema: %s", a.paths.Schema)
			return nil
		},
	}
}

func newSchemaDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Print the item schema as an outline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := schema.NewParser(a.paths.Schema)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), p.RenderAsText())
			return nil
		},
	}
}
