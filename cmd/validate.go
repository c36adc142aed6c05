package cmd

import (
	"fmt"
	"os"

	"github.com/grovetools/wikigen/pkg/schema"
	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	var dataFile string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check an item record against the item schema",
		Long: `Validates a record against the item schema at the configured schema path.
Page generation never validates; run this before committing a record.

Run 'wikigen schema generate' first if the schema file does not exist.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := schema.NewValidator(a.paths.Schema)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(dataFile)
			if err != nil {
				return fmt.Errorf("failed to read data file %s: %w", dataFile, err)
			}
			if err := v.Validate(data); err != nil {
				return fmt.Errorf("%s is not a valid item record: %w", dataFile, err)
			}
			a.logger.Infof("✅ %s is a valid item record", dataFile)
			return nil
		},
	}

	cmd.Flags().StringVar(&dataFile, "data", "", "Path to item JSON data file")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}
