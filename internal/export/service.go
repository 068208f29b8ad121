// Package export renders processed receipt records as an XLSX workbook, one
// row per line item.
package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/receipts-extractor/internal/entity"
)

// Row pairs an extracted record with the document it came from.
type Row struct {
	SourcePath string
	Record     entity.ReceiptRecord
}

// Service produces XLSX bytes for batches of extracted records.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// ExportXLSX returns an XLSX workbook (as bytes) with one row per line item.
func (s *Service) ExportXLSX(rows []Row) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Receipts"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Purchased At",
		"Merchant",
		"Item",
		"Quantity",
		"Unit Price",
		"Line Total",
		"Receipt Total",
		"Source File",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	rowIdx := 2
	itemCount := 0
	for _, r := range rows {
		rec := r.Record
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, rowIdx)
			_ = f.SetCellValue(sheet, cell, v)
		}

		items := rec.Items
		if len(items) == 0 {
			// keep the receipt visible even without items
			items = []entity.LineItem{{Name: "(no items)"}}
		}
		for _, it := range items {
			write(1, rec.PurchasedAt.Format("2006-01-02"))
			write(2, rec.MerchantName)
			write(3, it.Name)
			write(4, it.Quantity)
			write(5, fmt.Sprintf("%.2f", it.UnitPrice))
			write(6, fmt.Sprintf("%.2f", it.TotalPrice))
			write(7, fmt.Sprintf("%.2f", rec.TotalAmount))
			write(8, r.SourcePath)
			rowIdx++
			itemCount++
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 14) // date
	_ = f.SetColWidth(sheet, "B", "B", 28) // merchant
	_ = f.SetColWidth(sheet, "C", "C", 32) // item
	_ = f.SetColWidth(sheet, "D", "G", 14) // numbers
	_ = f.SetColWidth(sheet, "H", "H", 60) // path

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"receipts", len(rows),
		"rows", itemCount,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
