package fields

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/joseph-ayodele/receipts-extractor/internal/entity"
	"github.com/joseph-ayodele/receipts-extractor/internal/heuristics"
)

// itemPattern pairs a line shape with its capture extractor. The table is
// tried in priority order per line; the first shape that yields a usable
// (quantity, name, total) wins.
type itemPattern struct {
	re      *regexp.Regexp
	extract func(m []string) (qty float64, name string, total float64, ok bool)
}

var itemPatterns = []itemPattern{
	{
		// Quantity-prefixed: "2 Coffee $3.50", "3 pcs Spring Rolls 7.95".
		re: regexp.MustCompile(`^(\d+)\s*(?:pcs?|pieces?|ea|each)?\s*(.*?)\s*\$?\s*(\d+\.\d{2})\s*$`),
		extract: func(m []string) (float64, string, float64, bool) {
			qty, err1 := strconv.ParseFloat(m[1], 64)
			total, err2 := strconv.ParseFloat(m[3], 64)
			return qty, m[2], total, err1 == nil && err2 == nil
		},
	},
	{
		// Unit-priced: "Widget 2 @ $5.00 = $10.00".
		re: regexp.MustCompile(`(.*?)\s*(\d+)\s*@\s*\$?\s*(\d+\.\d{2})\s*=?\s*\$?\s*(\d+\.\d{2})`),
		extract: func(m []string) (float64, string, float64, bool) {
			qty, err1 := strconv.ParseFloat(m[2], 64)
			total, err2 := strconv.ParseFloat(m[4], 64)
			return qty, m[1], total, err1 == nil && err2 == nil
		},
	},
	{
		// Bare name and price, quantity defaults to one: "House Salad 8.25".
		re: regexp.MustCompile(`([^$\d][^$]*?)\s*\$?\s*(\d+\.\d{2})\s*$`),
		extract: func(m []string) (float64, string, float64, bool) {
			total, err := strconv.ParseFloat(m[2], 64)
			return 1, m[1], total, err == nil
		},
	},
	{
		// Admission and ticket lines keep their full wording.
		re: regexp.MustCompile(`(?i)(.*?admission.*?|.*?ticket.*?)\s*\$?\s*(\d+\.\d{2})\s*$`),
		extract: func(m []string) (float64, string, float64, bool) {
			total, err := strconv.ParseFloat(m[2], 64)
			return 1, m[1], total, err == nil
		},
	},
}

var (
	reFiveDigits   = regexp.MustCompile(`\d{5}`)
	reNameTrim     = regexp.MustCompile(`^[^a-zA-Z0-9]+|[^a-zA-Z0-9]+$`)
	reNameCollapse = regexp.MustCompile(`\s+`)
)

// ExtractItems segments the item listing region and parses one LineItem per
// qualifying line. Never fails: a line that matches no shape, or whose
// captures do not survive the sanity checks, is simply skipped.
func ExtractItems(cfg *heuristics.Config, text string) []entity.LineItem {
	lines := strings.Split(text, "\n")

	start := 0
	for i, line := range lines {
		if heuristics.ContainsAny(line, cfg.ItemSectionHeaders) {
			start = i + 1
			break
		}
	}

	var items []entity.LineItem
	for _, line := range lines[start:] {
		line = strings.TrimSpace(line)
		if line == "" || heuristics.ContainsAny(line, cfg.NonItemIndicators) {
			continue
		}
		if item, ok := parseItemLine(line); ok {
			items = append(items, item)
		}
	}
	return items
}

func parseItemLine(line string) (entity.LineItem, bool) {
	for _, pat := range itemPatterns {
		m := pat.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		qty, name, total, ok := pat.extract(m)
		if !ok {
			continue
		}
		if len(name) <= 1 || reFiveDigits.MatchString(name) {
			continue // a code or zip fragment, not an item name
		}

		name = reNameCollapse.ReplaceAllString(name, " ")
		name = strings.TrimSpace(reNameTrim.ReplaceAllString(name, ""))
		if name == "" {
			continue
		}
		if strings.Contains(strings.ToLower(name), "tip") {
			continue // tips are not item-level purchases
		}

		unit := total
		if qty != 0 {
			unit = total / qty
		}
		return entity.LineItem{Name: name, Quantity: qty, UnitPrice: unit, TotalPrice: total}, true
	}
	return entity.LineItem{}, false
}
