package main

import (
	"context"

	pdfstamp "github.com/tluettje/pdfstamp/pkg"
	"github.com/tluettje/pdfstamp/pkg/config"
	"github.com/tluettje/pdfstamp/pkg/types"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newRootCommand(logger *zerolog.Logger) *cobra.Command {
	flagValues := &types.Settings{}
	var version bool

	rootCommand := &cobra.Command{
		Use:   "pdfstamp [flags] <input_files...>",
		Short: "Stamp a watermark PDF onto every page of the given documents",
		Long: `pdfstamp overlays a one-page watermark PDF onto every page of one or more
input PDFs and writes the renamed results into the output folder. Options can
also come from a pdfstamp.toml next to the executable; command-line flags win
over the file, which wins over the built-in defaults.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if version {
				pdfstamp.PrintVersion()
				return nil
			}
			return runRoot(cmd.Context(), cmd, args, flagValues, logger)
		},
	}

	rootCommand.Flags().SortFlags = false
	rootCommand.Flags().StringVarP(&flagValues.Watermark, "watermark", "w", "", "One-page PDF document used as the watermark")
	rootCommand.Flags().StringVarP(&flagValues.OutputFolder, "output-folder", "o", "", "Folder the stamped documents are written to")
	rootCommand.Flags().StringVarP(
		&flagValues.OutputTemplate,
		"output-template",
		"t",
		"",
		"Naming template for output files; ${stem} and ${suffix} are replaced "+
			"with the input name's parts (quote it to keep the shell off the $)",
	)
	rootCommand.Flags().BoolVarP(&flagValues.GUI, "gui", "g", false, "Select input files interactively instead of passing them as arguments")
	rootCommand.Flags().BoolVarP(&flagValues.DumpDefaultConfig, "dump-default-config", "d", false, "Print the default configuration as TOML and exit")
	rootCommand.Flags().StringVar(&flagValues.Engine, "engine", "", "Stamping engine: 'pdftk' (external binary) or 'pdfcpu' (built in)")
	rootCommand.Flags().BoolVarP(&flagValues.Verbose, "verbose", "v", false, "Verbose output")
	rootCommand.Flags().BoolVar(&version, "version", false, "Print the version and exit")

	return rootCommand
}

func runRoot(ctx context.Context, cmd *cobra.Command, args []string, flagValues *types.Settings, logger *zerolog.Logger) error {
	overrides := overridesFromFlags(cmd.Flags(), flagValues)
	settings, err := config.Resolve(config.DefaultPath(), overrides)
	if err != nil {
		return err
	}
	if settings.Verbose && logger.GetLevel() > zerolog.DebugLevel {
		verboseLogger := logger.Level(zerolog.DebugLevel)
		logger = &verboseLogger
	}

	app := pdfstamp.NewApp(&settings, logger)
	return app.Run(ctx, args)
}

// overridesFromFlags turns the flag set into an Overrides value holding only
// the flags the user actually passed.
func overridesFromFlags(flags *pflag.FlagSet, flagValues *types.Settings) types.Overrides {
	var overrides types.Overrides
	if flags.Changed("watermark") {
		overrides.Watermark = &flagValues.Watermark
	}
	if flags.Changed("output-folder") {
		overrides.OutputFolder = &flagValues.OutputFolder
	}
	if flags.Changed("output-template") {
		overrides.OutputTemplate = &flagValues.OutputTemplate
	}
	if flags.Changed("gui") {
		overrides.GUI = &flagValues.GUI
	}
	if flags.Changed("dump-default-config") {
		overrides.DumpDefaultConfig = &flagValues.DumpDefaultConfig
	}
	if flags.Changed("engine") {
		overrides.Engine = &flagValues.Engine
	}
	if flags.Changed("verbose") {
		overrides.Verbose = &flagValues.Verbose
	}
	return overrides
}
