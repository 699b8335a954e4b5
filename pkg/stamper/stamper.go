// Package stamper overlays a one-page watermark PDF onto every page of an
// input PDF. Two engines are available: the external pdftk binary and a
// pure-Go pdfcpu implementation.
package stamper

import (
	"context"
	"fmt"

	"github.com/tluettje/pdfstamp/pkg/types"
)

// Stamper writes a watermarked copy of inputPath to outputPath.
type Stamper interface {
	Stamp(ctx context.Context, inputPath, watermarkPath, outputPath string) error
}

// New returns the stamper for the given engine name.
func New(engine string) (Stamper, error) {
	switch engine {
	case types.EnginePdftk:
		return NewPdftk()
	case types.EnginePdfcpu:
		return &Pdfcpu{}, nil
	default:
		return nil, fmt.Errorf("unknown stamping engine %q", engine)
	}
}
