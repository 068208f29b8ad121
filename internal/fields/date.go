package fields

import (
	"regexp"
	"time"

	"github.com/joseph-ayodele/receipts-extractor/internal/heuristics"
)

// Date token patterns in order of specificity. First successful parse wins
// across both the pattern list and the layout list.
var datePatterns = []*regexp.Regexp{
	// Labelled: "Date: 04/12/2023", "Ordered 4-12-23", "Transaction: 04.12.2023".
	regexp.MustCompile(`(?i)(?:date|ordered|transaction)[^a-zA-Z0-9]*(\d{1,2}[-/.]\d{1,2}[-/.]\d{2,4})`),
	// Date immediately followed by a time token: "04/12/2023 11:38 AM".
	regexp.MustCompile(`(\d{1,2}[-/.]\d{1,2}[-/.]\d{2,4})\s*\d{1,2}:\d{2}(?:\s*[AaPp][Mm])?`),
	// Any bare numeric date token.
	regexp.MustCompile(`(\d{1,2}[-/.]\d{1,2}[-/.]\d{2,4})`),
}

// ExtractDate finds the purchase timestamp in normalized text. Returns false
// when no pattern/layout pair produces a date within the plausible year window;
// the caller substitutes the processing time.
func ExtractDate(cfg *heuristics.Config, text string) (time.Time, bool) {
	for _, pat := range datePatterns {
		for _, m := range pat.FindAllStringSubmatch(text, -1) {
			token := m[1]
			for _, layout := range cfg.DateLayouts {
				t, err := time.Parse(layout, token)
				if err != nil {
					continue
				}
				if t.Year() >= cfg.MinYear && t.Year() <= cfg.MaxYear {
					return t, true
				}
			}
		}
	}
	return time.Time{}, false
}
