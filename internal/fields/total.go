package fields

import (
	"regexp"
	"strconv"
	"strings"
)

// Total amount patterns, matched against lowercased trimmed lines.
var totalPatterns = []*regexp.Regexp{
	// Keyword before the amount: "total $23.45", "amount due: 23.45".
	regexp.MustCompile(`(?:total|amount|sum|due)\s*\$?\s*(\d+\.\d{2})`),
	// A bare amount alone on its line.
	regexp.MustCompile(`^\s*\$?\s*(\d+\.\d{2})\s*$`),
	// Keyword after the amount: "23.45 total".
	regexp.MustCompile(`\$?\s*(\d+\.\d{2})\s*(?:total|amount|sum|due)`),
}

var reAmountToken = regexp.MustCompile(`\$?\s*(\d+\.\d{2})`)

// ExtractTotal finds the transaction total. Lines are scanned bottom-up since
// totals sit near the end of a receipt; the first qualifying match wins. When
// no keyworded or standalone amount exists anywhere, the largest positive
// amount-shaped token in the document is used instead. Returns false when the
// text contains no usable amount at all.
func ExtractTotal(text string) (float64, bool) {
	lines := strings.Split(text, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.ToLower(strings.TrimSpace(lines[i]))
		if line == "" {
			continue
		}
		for _, pat := range totalPatterns {
			m := pat.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			amount, err := strconv.ParseFloat(m[1], 64)
			if err == nil && amount > 0 {
				return amount, true
			}
		}
	}

	// Fallback: the largest positive amount anywhere in the document.
	max := 0.0
	for _, m := range reAmountToken.FindAllStringSubmatch(text, -1) {
		amount, err := strconv.ParseFloat(m[1], 64)
		if err == nil && amount > max {
			max = amount
		}
	}
	return max, max > 0
}
