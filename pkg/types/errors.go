package types

// ConfigParseError represents a configuration file that exists but could not
// be parsed. It is fatal and aborts the run before any processing.
type ConfigParseError struct {
	Path string
	Err  error
}

func (e *ConfigParseError) Error() string {
	return "cannot parse config file " + e.Path + ": " + e.Err.Error()
}

func (e *ConfigParseError) Unwrap() error {
	return e.Err
}

// MissingInputError represents a positional input that does not exist or is
// not a readable file. It is fatal: the batch fails fast instead of skipping.
type MissingInputError struct {
	Path string
	Err  error
}

func (e *MissingInputError) Error() string {
	if e.Err != nil {
		return "input file " + e.Path + ": " + e.Err.Error()
	}
	return "input file " + e.Path + " does not exist"
}

func (e *MissingInputError) Unwrap() error {
	return e.Err
}

// NoInputError is returned when neither positional arguments nor gui mode
// can provide any input files.
type NoInputError struct{}

func (e *NoInputError) Error() string {
	return "no input files given (pass file paths or use --gui)"
}

// StampError represents a failed stamping of one specific input file. It is
// non-fatal to the batch: the remaining files are still processed.
type StampError struct {
	Input string
	Err   error
}

func (e *StampError) Error() string {
	return "stamping " + e.Input + " failed: " + e.Err.Error()
}

func (e *StampError) Unwrap() error {
	return e.Err
}

// BatchError aggregates the per-file stamp errors of one run so the process
// can exit non-zero after every input was attempted.
type BatchError struct {
	Errors []error
}

func (e *BatchError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := "batch finished with errors:"
	for _, err := range e.Errors {
		msg += "\n  - " + err.Error()
	}
	return msg
}
