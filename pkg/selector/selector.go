// Package selector produces the ordered list of input files for a run,
// either from positional arguments or from an interactive zenity dialog.
package selector

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/tluettje/pdfstamp/pkg/types"
)

// Selector yields the input files for one run. An empty result with a nil
// error means "nothing to do" (only the interactive selector produces that).
type Selector interface {
	Select(ctx context.Context) ([]string, error)
}

// ForRun picks the selector implied by the resolved settings: the zenity
// dialog in gui mode, the positional arguments otherwise. With neither
// available there is no input source at all.
func ForRun(settings *types.Settings, args []string, logger *zerolog.Logger) (Selector, error) {
	if settings.GUI {
		return &Zenity{Logger: logger}, nil
	}
	if len(args) == 0 {
		return nil, &types.NoInputError{}
	}
	return &Args{Paths: args}, nil
}

// Args selects the positional file arguments in the order given. Entries
// containing glob metacharacters are expanded with doublestar; every literal
// entry must name an existing regular file.
type Args struct {
	Paths []string
}

func (a *Args) Select(_ context.Context) ([]string, error) {
	var files []string
	for _, arg := range a.Paths {
		if isPattern(arg) {
			matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
			if err != nil {
				return nil, &types.MissingInputError{Path: arg, Err: err}
			}
			if len(matches) == 0 {
				return nil, &types.MissingInputError{Path: arg}
			}
			files = append(files, matches...)
			continue
		}
		info, err := os.Stat(arg)
		if err != nil {
			return nil, &types.MissingInputError{Path: arg, Err: err}
		}
		if info.IsDir() {
			return nil, &types.MissingInputError{Path: arg, Err: errIsDirectory}
		}
		files = append(files, arg)
	}
	return files, nil
}

func isPattern(arg string) bool {
	return strings.ContainsAny(arg, "*?[{")
}

var errIsDirectory = errors.New("is a directory, not a file")
