package naming

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		template string
		input    string
		want     string
	}{
		{"default template", DefaultTemplate, "exam.pdf", "exam_watermark.pdf"},
		{"no suffix", DefaultTemplate, "exam", "exam_watermark"},
		{"multiple dots keep rightmost suffix", DefaultTemplate, "report.final.pdf", "report.final_watermark.pdf"},
		{"leading dot splits literally", DefaultTemplate, ".profile", "_watermark.profile"},
		{"input with directory", DefaultTemplate, "/tmp/exams/exam.pdf", "exam_watermark.pdf"},
		{"unknown placeholder passes through", "${stem}_${unknown}${suffix}", "exam.pdf", "exam_${unknown}.pdf"},
		{"no placeholders", "fixed-name.pdf", "exam.pdf", "fixed-name.pdf"},
		{"suffix only", "${suffix}", "exam.pdf", ".pdf"},
		{"repeated placeholders", "${stem}-${stem}${suffix}", "a.pdf", "a-a.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.template, tt.input))
		})
	}
}

func TestSplit(t *testing.T) {
	stem, suffix := Split("exam.pdf")
	assert.Equal(t, "exam", stem)
	assert.Equal(t, ".pdf", suffix)

	stem, suffix = Split("noext")
	assert.Equal(t, "noext", stem)
	assert.Equal(t, "", suffix)

	stem, suffix = Split("/some/dir/report.final.pdf")
	assert.Equal(t, "report.final", stem)
	assert.Equal(t, ".pdf", suffix)
}

func TestOutputPath(t *testing.T) {
	got := OutputPath("/out", DefaultTemplate, "/in/exam.pdf")
	assert.Equal(t, filepath.Join("/out", "exam_watermark.pdf"), got)
}
