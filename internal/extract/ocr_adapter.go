package extract

import (
	"context"

	"github.com/joseph-ayodele/receipts-extractor/internal/ocr"
)

// OCRAdapter exposes an ocr.Extractor through the TextAcquirer seam.
type OCRAdapter struct {
	e *ocr.Extractor
}

func NewOCRAdapter(e *ocr.Extractor) *OCRAdapter {
	return &OCRAdapter{e: e}
}

func (a *OCRAdapter) AcquireText(ctx context.Context, path string) (AcquisitionResult, error) {
	r, err := a.e.Extract(ctx, path)
	return AcquisitionResult{
		Pages:    r.Pages,
		Format:   r.Format,
		Method:   r.Method,
		Duration: r.Duration,
		Warnings: r.Warnings,
	}, err
}
