package ocr

import (
	"context"
	"fmt"

	"github.com/joseph-ayodele/receipts-extractor/constants"
	"github.com/joseph-ayodele/receipts-extractor/internal/common"
)

func (e *Extractor) extractImage(ctx context.Context, path string) (ExtractionResult, error) {
	txt, warns := e.bestPageText(ctx, path)
	if txt == "" && len(warns) == len(e.cfg.SegmentationModes) {
		// every segmentation mode failed outright
		return ExtractionResult{Format: constants.IMAGE, Warnings: warns},
			common.NewExtractionError("image ocr failed", fmt.Errorf("all segmentation modes failed"))
	}
	return ExtractionResult{
		Pages:    []string{txt},
		Format:   constants.IMAGE,
		Method:   "image-ocr",
		Warnings: warns,
	}, nil
}

// bestPageText OCRs one page image once per configured segmentation mode and
// keeps the longest output. Mode failures become warnings, not errors, as long
// as at least one mode produces text.
func (e *Extractor) bestPageText(ctx context.Context, imgPath string) (string, []string) {
	var best string
	var warns []string
	for _, psm := range e.cfg.SegmentationModes {
		args := []string{imgPath, "stdout", "-l", e.cfg.TesseractLang, "--psm", fmt.Sprintf("%d", psm)}
		if e.cfg.TessdataDir != "" {
			args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
		}
		out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
		if err != nil {
			warns = append(warns, fmt.Sprintf("tesseract --psm %d: %v: %s", psm, err, truncate(string(errb), 512)))
			continue
		}
		if len(out) > len(best) {
			best = string(out)
		}
	}
	return best, warns
}
