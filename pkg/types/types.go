// Package types holds the shared settings record and error types for pdfstamp.
package types

// Stamping engines selectable via --engine or the `engine` config key.
const (
	EnginePdftk  = "pdftk"  // Shell out to the pdftk binary (default).
	EnginePdfcpu = "pdfcpu" // Pure-Go stamping via pdfcpu.
)

// Settings is the fully resolved configuration for one run. It is built once
// by config.Resolve from three layers (built-in defaults, optional TOML file,
// CLI flags) and never mutated afterwards.
type Settings struct {
	Watermark         string `toml:"watermark" yaml:"watermark"`
	OutputFolder      string `toml:"output_folder" yaml:"output_folder"`
	OutputTemplate    string `toml:"output_template" yaml:"output_template"`
	GUI               bool   `toml:"gui" yaml:"gui"`
	DumpDefaultConfig bool   `toml:"dump_default_config" yaml:"dump_default_config"`
	Engine            string `toml:"engine" yaml:"engine"`
	Verbose           bool   `toml:"verbose" yaml:"verbose"`
}

// Overrides carries only the values the user explicitly supplied on the
// command line. A nil field means "flag not given", so a flag default can
// never clobber a config-file value.
type Overrides struct {
	Watermark         *string
	OutputFolder      *string
	OutputTemplate    *string
	GUI               *bool
	DumpDefaultConfig *bool
	Engine            *string
	Verbose           *bool
}

// OutputSpec pairs one input file with its computed destination path.
type OutputSpec struct {
	Input  string
	Output string
}

// RunStats aggregates per-file outcomes for the end-of-batch summary.
type RunStats struct {
	Total   int
	Stamped int
	Failed  int
}
