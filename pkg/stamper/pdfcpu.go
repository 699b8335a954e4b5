package stamper

import (
	"context"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdftypes "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// watermarkDesc renders the watermark page at its natural size on top of
// every page, matching what pdftk's stamp operation does.
const watermarkDesc = "scalefactor:1 abs, opacity:1, rotation:0"

// Pdfcpu stamps in-process with the pdfcpu library, so no external binary is
// needed.
type Pdfcpu struct{}

func (Pdfcpu) Stamp(_ context.Context, inputPath, watermarkPath, outputPath string) error {
	wm, err := api.PDFWatermark(watermarkPath, watermarkDesc, true, false, pdftypes.POINTS)
	if err != nil {
		return fmt.Errorf("cannot read watermark %s: %w", watermarkPath, err)
	}
	if err := api.AddWatermarksFile(inputPath, outputPath, nil, wm, nil); err != nil {
		return fmt.Errorf("cannot apply watermark: %w", err)
	}
	return nil
}
