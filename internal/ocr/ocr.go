// Package ocr acquires per-page text from receipt documents by driving the
// poppler and tesseract command line tools. Text PDFs go through pdftotext;
// scanned PDFs are rasterized with pdftoppm and OCRed page by page; images go
// straight to tesseract. Each OCRed page is read with several tesseract page
// segmentation modes and the longest output wins.
package ocr

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/joseph-ayodele/receipts-extractor/constants"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng"
	TessdataDir   string
	DPI           int // rasterization DPI for scanned PDFs, default 300
	MaxPages      int // 0 = no limit

	// Tesseract page segmentation modes to try per page, best output wins.
	// Default: 4 (vertical text), 6 (uniform block), 3 (fully automatic).
	SegmentationModes []int
}

type ExtractionResult struct {
	Pages    []string
	Format   string // constants.PDF | constants.IMAGE
	Method   string // "pdf-text" | "pdf-ocr" | "image-ocr"
	Duration time.Duration
	Warnings []string
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	if len(cfg.SegmentationModes) == 0 {
		cfg.SegmentationModes = []int{4, 6, 3}
	}
	return &Extractor{cfg: cfg, runner: execRunner{logger: logger}, logger: logger}
}

// Extract validates the document and picks a strategy based on its extension.
func (e *Extractor) Extract(ctx context.Context, path string) (ExtractionResult, error) {
	start := time.Now()

	format, err := e.validateDocument(path)
	if err != nil {
		return ExtractionResult{}, err
	}

	ext := constants.NormalizeExt(filepath.Ext(path))
	e.logger.Debug("ocr.extract.start", "path", path, "ext", ext, "format", format)

	var res ExtractionResult
	switch format {
	case constants.PDF:
		res, err = e.extractPDF(ctx, path)
	default:
		res, err = e.extractImage(ctx, path)
	}
	res.Duration = time.Since(start)
	return res, err
}
