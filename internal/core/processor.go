// Package core orchestrates one receipt processing call: acquire text,
// normalize it, run the field extractors, synthesize and reconcile, and hand
// back the final record. Extractor misses degrade to safe defaults; only
// acquisition failures and empty documents are fatal.
package core

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/receipts-extractor/internal/common"
	"github.com/joseph-ayodele/receipts-extractor/internal/entity"
	"github.com/joseph-ayodele/receipts-extractor/internal/extract"
	"github.com/joseph-ayodele/receipts-extractor/internal/fields"
	"github.com/joseph-ayodele/receipts-extractor/internal/heuristics"
)

// Processor runs the extraction pipeline. Stateless across calls; safe for
// concurrent use.
type Processor struct {
	logger   *slog.Logger
	acquirer extract.TextAcquirer
	vocab    *heuristics.Config
	now      func() time.Time
}

func NewProcessor(logger *slog.Logger, acquirer extract.TextAcquirer, vocab *heuristics.Config) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if vocab == nil {
		vocab = heuristics.Default()
	}
	return &Processor{
		logger:   logger,
		acquirer: acquirer,
		vocab:    vocab,
		now:      time.Now,
	}
}

// Process extracts a structured ReceiptRecord from the document at path.
// Fails with a ValidationError for a bad input document and an
// ExtractionError for acquisition or unexpected internal faults; every other
// condition degrades to defaults with a logged warning.
func (p *Processor) Process(ctx context.Context, path string) (entity.ReceiptRecord, error) {
	jobID := uuid.New()
	start := time.Now()
	log := p.logger.With("job_id", jobID, "path", path)

	res, err := p.acquirer.AcquireText(ctx, path)
	if err != nil {
		log.Error("process.acquire.failed", "error", err)
		return entity.ReceiptRecord{}, classify(err)
	}
	if res.Chars() == 0 {
		log.Error("process.acquire.empty", "pages", len(res.Pages), "method", res.Method)
		return entity.ReceiptRecord{}, common.NewExtractionError("no text recovered from document", nil)
	}
	log.Debug("process.acquire.ok",
		"pages", len(res.Pages), "method", res.Method,
		"chars", res.Chars(), "warnings", len(res.Warnings),
	)

	text := fields.Normalize(p.vocab, res.Pages)
	if strings.TrimSpace(text) == "" {
		log.Error("process.normalize.empty")
		return entity.ReceiptRecord{}, common.NewExtractionError("no text recovered from document", nil)
	}

	// The extractors are independent: each reads only the normalized text.
	date, ok := fields.ExtractDate(p.vocab, text)
	if !ok {
		date = p.now()
		log.Warn("process.date.miss", "default", date)
	}
	merchant, ok := fields.ExtractMerchant(p.vocab, text)
	if !ok {
		merchant = entity.UnknownMerchant
	}
	total, _ := fields.ExtractTotal(text)
	items := fields.ExtractItems(p.vocab, text)

	items = synthesizeItems(text, total, items)
	total = reconcileTotal(items, total, p.vocab.ReconcileTolerance)

	if total <= 0 {
		log.Warn("process.total.unresolved")
	}
	if len(items) == 0 {
		log.Warn("process.items.empty")
	}
	if merchant == entity.UnknownMerchant {
		log.Warn("process.merchant.unknown")
	}

	rec := entity.ReceiptRecord{
		PurchasedAt:  date,
		MerchantName: merchant,
		TotalAmount:  total,
		Items:        items,
	}
	if err := entity.ValidateRecord(rec); err != nil {
		log.Warn("process.record.schema_mismatch", "error", err)
	}

	log.Info("process.ok",
		"merchant", rec.MerchantName,
		"date", rec.PurchasedAt.Format("2006-01-02"),
		"total", rec.TotalAmount,
		"items", len(rec.Items),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return rec, nil
}

// classify keeps the two recognized error kinds untouched and wraps anything
// else, so callers only ever observe ValidationError or ExtractionError.
func classify(err error) error {
	if common.IsValidationError(err) || common.IsExtractionError(err) {
		return err
	}
	return common.NewExtractionError("receipt processing failed", err)
}
