package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/grovetools/wikigen/pkg/config"
	"github.com/grovetools/wikigen/pkg/generator"
	"github.com/grovetools/wikigen/pkg/interactive"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// errMissingMode is returned when neither --data nor --interactive is given.
// Its message has already been printed along with the usage.
var errMissingMode = errors.New("provide either --data or --interactive")

// app is the state shared by the command tree.
type app struct {
	v        *viper.Viper
	logger   *logrus.Logger
	paths    config.Paths
	prompter interactive.Prompter
}

func newRootCmd(logger *logrus.Logger, prompter interactive.Prompter) *cobra.Command {
	a := &app{
		v:        viper.New(),
		logger:   logger,
		prompter: prompter,
	}

	var dataFile, output, category string
	var interactiveMode bool

	cmd := &cobra.Command{
		Use:   "wikigen",
		Short: "Generate Cosmic Colony wiki pages from item records.",
		Long: `Fills the wiki page template with the values of an item record and writes
the page under <root>/pages/<category folder>/<id>.md.

Examples:
  wikigen --data CosmicWiki/data/items/stardust_crystal.json
  wikigen --data item.json --output pages/custom.md
  wikigen --interactive`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if category != "" {
				a.logger.Debugf("Ignoring --category %q; the record's cosmic category selects the folder", category)
			}

			gen := generator.New(a.logger, a.paths)
			switch {
			case interactiveMode:
				_, err := interactive.New(a.logger, gen, a.prompter).Run()
				return err
			case dataFile != "":
				_, err := gen.Generate(dataFile, output)
				return err
			default:
				fmt.Fprintln(cmd.ErrOrStderr(), "Error: Provide either --data or --interactive")
				_ = cmd.Usage()
				return errMissingMode
			}
		},
	}

	cmd.Flags().StringVar(&dataFile, "data", "", "Path to item JSON data file")
	cmd.Flags().StringVar(&output, "output", "", "Output markdown file path")
	cmd.Flags().StringVar(&category, "category", "", "Item category (unused; the record decides)")
	cmd.Flags().BoolVar(&interactiveMode, "interactive", false, "Interactive mode")

	cmd.PersistentFlags().String("root", config.DefaultRoot, "Wiki root directory")
	cmd.PersistentFlags().String("config", "", "Config file (default is <root>/"+config.ConfigFileName+")")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	for _, name := range []string{"root", "config", "verbose"} {
		_ = a.v.BindPFlag(name, cmd.PersistentFlags().Lookup(name))
	}
	a.v.SetEnvPrefix("WIKIGEN")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	cmd.AddCommand(newInitCmd(a))
	cmd.AddCommand(newValidateCmd(a))
	cmd.AddCommand(newSchemaCmd(a))
	cmd.AddCommand(newWatchCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setup applies the resolved flags and loads the wiki config.
func (a *app) setup() error {
	if a.v.GetBool("verbose") {
		a.logger.SetLevel(logrus.DebugLevel)
	}

	cfg, paths, err := config.Load(a.v.GetString("root"), a.v.GetString("config"))
	if err != nil {
		return err
	}
	a.paths = paths
	a.logger.WithFields(logrus.Fields{
		"root":     paths.Root,
		"template": cfg.Template,
		"pages":    cfg.PagesDir,
	}).Debug("Resolved wiki paths")
	return nil
}

func Execute() error {
	logger := newLogger(os.Stderr)
	if err := newRootCmd(logger, &interactive.TerminalPrompter{}).Execute(); err != nil {
		if !errors.Is(err, errMissingMode) {
			logger.Errorf("Error: %v", err)
		}
		return err
	}
	return nil
}
