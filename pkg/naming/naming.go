// Package naming derives output file names from input names and a template
// with ${stem} and ${suffix} placeholders.
package naming

import (
	"path/filepath"
	"strings"
)

// DefaultTemplate turns exam.pdf into exam_watermark.pdf.
const DefaultTemplate = "${stem}_watermark${suffix}"

// Split breaks the base name of path at the rightmost dot. The suffix keeps
// its leading dot; a name without a dot has an empty suffix. The split is
// literal, so a leading-dot name like .profile yields an empty stem.
func Split(path string) (stem, suffix string) {
	base := filepath.Base(path)
	i := strings.LastIndex(base, ".")
	if i < 0 {
		return base, ""
	}
	return base[:i], base[i:]
}

// Render interpolates exactly the ${stem} and ${suffix} placeholders of
// template with the parts of inputPath's base name. Anything else, including
// unrecognized ${...} tokens, passes through unchanged.
func Render(template, inputPath string) string {
	stem, suffix := Split(inputPath)
	out := strings.ReplaceAll(template, "${stem}", stem)
	return strings.ReplaceAll(out, "${suffix}", suffix)
}

// OutputPath joins the rendered name onto folder. There is no collision
// check: an existing file at the result is overwritten by the stamping step.
func OutputPath(folder, template, inputPath string) string {
	return filepath.Join(folder, Render(template, inputPath))
}
