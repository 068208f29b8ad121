// Package fields turns normalized OCR text into the individual receipt fields:
// purchase date, merchant name, total amount, and line items. Every extractor
// reads the same normalized text, only consults the shared vocabularies, and
// returns a value plus an ok flag; substituting defaults on a miss is the
// caller's job.
package fields

import (
	"regexp"
	"strings"

	"github.com/joseph-ayodele/receipts-extractor/internal/heuristics"
)

var (
	// Runs of rule characters left behind by receipt separators.
	rePunctRuns = regexp.MustCompile(`[-=_*]{2,}`)
	// Everything outside the noise allow-list.
	reNoise = regexp.MustCompile(`[^\w\s@$.,\-()/\\:&'"]`)
	// A span mixing digits with characters tesseract commonly confuses for them.
	reConfusableSpan = regexp.MustCompile(`[0-9|\[\]lIiOoSBGZ]+`)
	reWhitespaceRun  = regexp.MustCompile(`\s+`)
)

// digitConfusions maps OCR-confusable characters to the digit they usually are.
var digitConfusions = map[rune]rune{
	'|': '1', '[': '1', ']': '1', 'l': '1', 'I': '1', 'i': '1',
	'O': '0', 'o': '0',
	'S': '5',
	'B': '8',
	'G': '6',
	'Z': '2',
}

// Normalize cleans raw per-page OCR text into newline-delimited trimmed lines.
// It is pure and idempotent: normalizing its own output returns identical text.
func Normalize(cfg *heuristics.Config, pages []string) string {
	raw := strings.Join(pages, "\n")
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		line = rePunctRuns.ReplaceAllString(line, " ")
		line = reNoise.ReplaceAllString(line, "")
		line = repairDigitConfusions(line)
		line = cfg.RepairSplitWords(line)
		line = strings.TrimSpace(reWhitespaceRun.ReplaceAllString(line, " "))
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// repairDigitConfusions rewrites confusable characters to digits, but only
// inside spans that already contain at least one real digit. "Bill" stays a
// word; "4S.2O" becomes "45.20".
func repairDigitConfusions(line string) string {
	return reConfusableSpan.ReplaceAllStringFunc(line, func(span string) string {
		if !strings.ContainsAny(span, "0123456789") {
			return span
		}
		mapped := []rune(span)
		for i, r := range mapped {
			if d, ok := digitConfusions[r]; ok {
				mapped[i] = d
			}
		}
		return string(mapped)
	})
}
