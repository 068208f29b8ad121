package extract

import (
	"context"
	"time"
)

// TextAcquirer is the text-acquisition collaborator: document path -> ordered
// per-page text. Implementations are expected to try multiple segmentation
// strategies per page and keep the best (longest) result.
type TextAcquirer interface {
	AcquireText(ctx context.Context, path string) (AcquisitionResult, error)
}

type AcquisitionResult struct {
	Pages    []string
	Format   string // constants.PDF | constants.IMAGE
	Method   string // "pdf-text" | "pdf-ocr" | "image-ocr"
	Duration time.Duration
	Warnings []string
}

// Chars returns the total number of characters recovered across all pages.
func (r AcquisitionResult) Chars() int {
	n := 0
	for _, p := range r.Pages {
		n += len(p)
	}
	return n
}
