package stamper

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"al.essio.dev/pkg/shellescape"
)

// Pdftk stamps by shelling out to `pdftk <in> stamp <wm> output <out>`,
// one process per input file.
type Pdftk struct {
	// Path is the resolved pdftk binary.
	Path string
}

// NewPdftk locates the pdftk binary up front so a missing installation is a
// fatal error before any file is processed.
func NewPdftk() (*Pdftk, error) {
	path, err := exec.LookPath("pdftk")
	if err != nil {
		return nil, fmt.Errorf("pdftk is required for stamping but was not found: %w", err)
	}
	return &Pdftk{Path: path}, nil
}

func (p *Pdftk) Stamp(ctx context.Context, inputPath, watermarkPath, outputPath string) error {
	args := []string{p.Path, inputPath, "stamp", watermarkPath, "output", outputPath}
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	// pdftk is not consistent about exit codes, but on success its stderr is
	// empty, so keep it for the error message.
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return fmt.Errorf("%s: %w: %s", shellescape.QuoteCommand(args), err, msg)
		}
		return fmt.Errorf("%s: %w", shellescape.QuoteCommand(args), err)
	}
	return nil
}
