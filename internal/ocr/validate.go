package ocr

import (
	"os"
	"path/filepath"

	"github.com/joseph-ayodele/receipts-extractor/constants"
	"github.com/joseph-ayodele/receipts-extractor/internal/common"
)

// validateDocument checks the input document before any tool runs. Failures
// here are the caller's fault and surface as ValidationError.
func (e *Extractor) validateDocument(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", common.NewValidationErrorf("document not found: %s", path)
	}
	if info.IsDir() {
		return "", common.NewValidationErrorf("document is a directory: %s", path)
	}
	format := constants.MapExtToFormat(filepath.Ext(path))
	if format == "" {
		return "", common.NewValidationErrorf("unsupported document type: %q", filepath.Ext(path))
	}
	if info.Size() == 0 {
		return "", common.NewValidationErrorf("document is empty: %s", path)
	}
	return format, nil
}
