package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joseph-ayodele/receipts-extractor/constants"
	"github.com/joseph-ayodele/receipts-extractor/internal/common"
)

// extractPDF tries the embedded text layer first; a PDF that yields nothing
// there is a scan and goes through rasterization plus OCR.
func (e *Extractor) extractPDF(ctx context.Context, path string) (ExtractionResult, error) {
	pages, warns, err := e.pdfToText(ctx, path)
	if err == nil && totalChars(pages) > 0 {
		return ExtractionResult{
			Pages:    pages,
			Format:   constants.PDF,
			Method:   "pdf-text",
			Warnings: warns,
		}, nil
	}
	if err != nil {
		warns = append(warns, fmt.Sprintf("pdftotext: %v", err))
	}

	ocrPages, ocrWarns, err := e.pdfToOCR(ctx, path)
	warns = append(warns, ocrWarns...)
	if err != nil {
		return ExtractionResult{Format: constants.PDF, Warnings: warns},
			common.NewExtractionError("pdf ocr failed", err)
	}
	return ExtractionResult{
		Pages:    ocrPages,
		Format:   constants.PDF,
		Method:   "pdf-ocr",
		Warnings: warns,
	}, nil
}

func (e *Extractor) pdfToText(ctx context.Context, path string) ([]string, []string, error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return nil, []string{string(errb)}, err
	}
	// A form-feed is the page separator by default.
	pages := strings.Split(string(out), "\f")
	for i := range pages {
		pages[i] = strings.TrimRight(pages[i], "\n")
	}
	if e.cfg.MaxPages > 0 && len(pages) > e.cfg.MaxPages {
		pages = pages[:e.cfg.MaxPages]
	}
	return pages, nil, nil
}

func (e *Extractor) pdfToOCR(ctx context.Context, path string) ([]string, []string, error) {
	tmpDir, err := os.MkdirTemp("", "rx-pp-*")
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		if rerr := os.RemoveAll(tmpDir); rerr != nil {
			e.logger.Warn("ocr.tmpdir.remove_failed", "dir", tmpDir, "error", rerr)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 300 -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return nil, []string{string(errb)}, err
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return nil, []string{"pdftoppm produced no images"}, fmt.Errorf("no pages rendered")
	}

	var pages []string
	var warns []string
	for _, img := range matches {
		txt, w := e.bestPageText(ctx, img)
		warns = append(warns, w...)
		pages = append(pages, txt)
	}
	return pages, warns, nil
}

func totalChars(pages []string) int {
	n := 0
	for _, p := range pages {
		n += len(strings.TrimSpace(p))
	}
	return n
}
