// Package config resolves the effective settings for a run from three layers:
// built-in defaults, an optional TOML file next to the executable, and the
// flags the user actually passed. Later layers win.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/pelletier/go-toml/v2"
	"github.com/tluettje/pdfstamp/pkg/types"
)

// ConfigFileName is looked up next to the executable unless PDFSTAMP_CONFIG
// points somewhere else.
const ConfigFileName = "pdfstamp.toml"

// Defaults returns the built-in settings. The watermark and output folder
// paths are the fachschaft share locations the tool has always used.
func Defaults() types.Settings {
	return types.Settings{
		Watermark:      "/vol/fachschaft/share/MBT/watermark_script/fs_watermark.pdf",
		OutputFolder:   "/vol/fachschaft/share/MBT/",
		OutputTemplate: "${stem}_watermark${suffix}",
		GUI:            false,
		Engine:         types.EnginePdftk,
	}
}

// DefaultPath returns the config file location: $PDFSTAMP_CONFIG if set,
// otherwise pdfstamp.toml in the executable's directory.
func DefaultPath() string {
	if p := os.Getenv("PDFSTAMP_CONFIG"); p != "" {
		return p
	}
	exe, err := os.Executable()
	if err != nil {
		return ConfigFileName
	}
	return filepath.Join(filepath.Dir(exe), ConfigFileName)
}

// Resolve merges defaults, the config file at path (if it exists), and the
// CLI overrides into one Settings value. A missing file is treated as empty;
// a malformed one is a *types.ConfigParseError.
func Resolve(path string, overrides types.Overrides) (types.Settings, error) {
	settings := Defaults()

	fileSettings, err := loadFile(path)
	if err != nil {
		return settings, err
	}
	// mergo treats zero values as unset, which matches the "only keys present
	// in the file" contract for strings; `false` booleans cannot lower a
	// `true` default here, but no boolean defaults to true.
	if err := mergo.Merge(&settings, fileSettings, mergo.WithOverride); err != nil {
		return settings, err
	}

	applyOverrides(&settings, overrides)

	if err := validate(&settings); err != nil {
		return settings, err
	}
	return settings, nil
}

// DumpDefault serializes the built-in defaults (not a merged result) in the
// config file format. The output is byte-stable across invocations.
func DumpDefault() ([]byte, error) {
	defaults := Defaults()
	return toml.Marshal(&defaults)
}

func loadFile(path string) (types.Settings, error) {
	var settings types.Settings
	if path == "" {
		return settings, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, &types.ConfigParseError{Path: path, Err: err}
	}
	if err := toml.Unmarshal(raw, &settings); err != nil {
		return settings, &types.ConfigParseError{Path: path, Err: err}
	}
	return settings, nil
}

func applyOverrides(settings *types.Settings, overrides types.Overrides) {
	if overrides.Watermark != nil {
		settings.Watermark = *overrides.Watermark
	}
	if overrides.OutputFolder != nil {
		settings.OutputFolder = *overrides.OutputFolder
	}
	if overrides.OutputTemplate != nil {
		settings.OutputTemplate = *overrides.OutputTemplate
	}
	if overrides.GUI != nil {
		settings.GUI = *overrides.GUI
	}
	if overrides.DumpDefaultConfig != nil {
		settings.DumpDefaultConfig = *overrides.DumpDefaultConfig
	}
	if overrides.Engine != nil {
		settings.Engine = *overrides.Engine
	}
	if overrides.Verbose != nil {
		settings.Verbose = *overrides.Verbose
	}
}

func validate(settings *types.Settings) error {
	switch settings.Engine {
	case types.EnginePdftk, types.EnginePdfcpu:
		return nil
	default:
		return fmt.Errorf("invalid engine %q (use %q or %q)", settings.Engine, types.EnginePdftk, types.EnginePdfcpu)
	}
}
