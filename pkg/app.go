// Package pdfstamp provides the core application logic for the pdfstamp
// watermarking tool.
package pdfstamp

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"
	"github.com/tluettje/pdfstamp/pkg/config"
	"github.com/tluettje/pdfstamp/pkg/naming"
	"github.com/tluettje/pdfstamp/pkg/selector"
	"github.com/tluettje/pdfstamp/pkg/stamper"
	"github.com/tluettje/pdfstamp/pkg/types"
)

// App holds the resolved settings and the collaborators for one run.
// Selector and Stamper may be pre-set (tests do this); Run fills in the
// defaults implied by the settings otherwise.
type App struct {
	Settings *types.Settings
	Logger   *zerolog.Logger
	Selector selector.Selector
	Stamper  stamper.Stamper

	// Stdout receives the dump-default-config output; defaults to os.Stdout.
	Stdout io.Writer
}

// NewApp creates an App with the provided settings and logger.
func NewApp(settings *types.Settings, logger *zerolog.Logger) *App {
	return &App{
		Settings: settings,
		Logger:   logger,
		Stdout:   os.Stdout,
	}
}

// Run executes one batch: resolve the input files, stamp each one with the
// watermark, and report a summary. Dump mode prints the default config and
// does nothing else. A per-file stamping failure never aborts the batch; it
// is collected and surfaced as a BatchError at the end.
func (app *App) Run(ctx context.Context, args []string) error {
	if app.Settings.DumpDefaultConfig {
		return app.dumpDefaultConfig()
	}

	if app.Logger.GetLevel() <= zerolog.DebugLevel {
		app.LogSettings()
	}

	files, err := app.selectFiles(ctx, args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		app.Logger.Info().Msg("No files selected, nothing to do")
		return nil
	}

	if _, err := os.Stat(app.Settings.Watermark); err != nil {
		return fmt.Errorf("watermark document %s: %w", app.Settings.Watermark, err)
	}
	if err := os.MkdirAll(app.Settings.OutputFolder, 0o755); err != nil {
		return fmt.Errorf("cannot create output folder %s: %w", app.Settings.OutputFolder, err)
	}

	if app.Stamper == nil {
		app.Stamper, err = stamper.New(app.Settings.Engine)
		if err != nil {
			return err
		}
	}

	stats := types.RunStats{Total: len(files)}
	var failures []error
	for i, input := range files {
		spec := types.OutputSpec{
			Input:  input,
			Output: naming.OutputPath(app.Settings.OutputFolder, app.Settings.OutputTemplate, input),
		}
		app.Logger.Info().Msgf("[%d/%d] %s -> %s", i+1, stats.Total, spec.Input, spec.Output)

		if err := app.Stamper.Stamp(ctx, spec.Input, app.Settings.Watermark, spec.Output); err != nil {
			stampErr := &types.StampError{Input: spec.Input, Err: err}
			app.Logger.Error().Err(stampErr).Msg("stamping failed")
			failures = append(failures, stampErr)
			stats.Failed++
			continue
		}
		app.Logger.Info().Msgf("Saved to %s", spec.Output)
		stats.Stamped++
	}

	app.Logger.Info().Msgf("Done: %d stamped, %d failed", stats.Stamped, stats.Failed)
	if len(failures) > 0 {
		return &types.BatchError{Errors: failures}
	}
	return nil
}

func (app *App) selectFiles(ctx context.Context, args []string) ([]string, error) {
	if app.Selector == nil {
		sel, err := selector.ForRun(app.Settings, args, app.Logger)
		if err != nil {
			return nil, err
		}
		app.Selector = sel
	}
	return app.Selector.Select(ctx)
}

func (app *App) dumpDefaultConfig() error {
	out, err := config.DumpDefault()
	if err != nil {
		return err
	}
	_, err = app.Stdout.Write(out)
	return err
}

// LogSettings logs the resolved settings as YAML at DEBUG level.
func (app *App) LogSettings() {
	app.Logger.Debug().Msg("Settings:")
	yamlSettings, err := yaml.Marshal(app.Settings)
	if err != nil {
		app.Logger.Panic().Msg(err.Error()) // this should never happen unless we seriously goofed up
	}
	for _, line := range bytes.Split(yamlSettings, []byte("\n")) {
		app.Logger.Debug().Msg("  " + string(line))
	}
}
