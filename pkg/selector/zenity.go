package selector

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
)

// Zenity asks the user for input files through a zenity multi-selection
// dialog. Cancelling the dialog yields an empty selection, not an error.
type Zenity struct {
	Logger *zerolog.Logger

	// Binary overrides the zenity executable, for tests.
	Binary string
}

func (z *Zenity) Select(ctx context.Context) ([]string, error) {
	binary := z.Binary
	if binary == "" {
		binary = "zenity"
	}
	path, err := exec.LookPath(binary)
	if err != nil {
		return nil, fmt.Errorf("gui mode needs zenity, which is not installed: %w", err)
	}

	cmd := exec.CommandContext(ctx, path,
		"--file-selection",
		"--multiple",
		"--file-filter=*.pdf",
		"--title=Select the PDF documents to stamp",
	)
	out, err := cmd.Output()
	if err != nil {
		// zenity exits 1 when the user cancels the dialog
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			if z.Logger != nil {
				z.Logger.Info().Msg("file selection cancelled")
			}
			return nil, nil
		}
		return nil, fmt.Errorf("zenity file selection failed: %w", err)
	}

	// zenity joins multi-selections with | and ends with a newline
	raw := strings.TrimRight(string(out), "\n")
	if raw == "" {
		return nil, nil
	}
	files := strings.Split(raw, "|")
	if z.Logger != nil {
		z.Logger.Debug().Msgf("selected %d file(s) via zenity", len(files))
	}
	return files, nil
}
