package core

import (
	"math"
	"strconv"
	"strings"

	"github.com/joseph-ayodele/receipts-extractor/internal/entity"
)

// Words that disqualify a nearby line from serving as a synthesized item name.
var synthesisExclusions = []string{"total", "subtotal", "tax", "amount"}

// synthesizeItems fills in a single line item when extraction found none but a
// positive total exists. It looks for a plausible description within the three
// lines above the first line mentioning the total, and falls back to a generic
// "Purchase" entry.
func synthesizeItems(text string, total float64, items []entity.LineItem) []entity.LineItem {
	if len(items) > 0 || total <= 0 {
		return items
	}

	name := "Purchase"
	totalStr := strconv.FormatFloat(total, 'f', 2, 64)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !strings.Contains(line, totalStr) {
			continue
		}
		for j := max(0, i-3); j < i; j++ {
			candidate := strings.TrimSpace(lines[j])
			if len(candidate) > 3 && !containsAnyFold(candidate, synthesisExclusions) {
				name = candidate
				break
			}
		}
		break
	}

	return []entity.LineItem{{
		Name:       name,
		Quantity:   1,
		UnitPrice:  total,
		TotalPrice: total,
	}}
}

// reconcileTotal prefers the item sum over the detected total once the two
// agree within tolerance: item level data wins over a possibly misread header
// digit when they are that close.
func reconcileTotal(items []entity.LineItem, total, tolerance float64) float64 {
	var sum float64
	for _, it := range items {
		sum += it.TotalPrice
	}
	if sum > 0 && math.Abs(sum-total) < tolerance {
		return sum
	}
	return total
}

func containsAnyFold(s string, words []string) bool {
	lower := strings.ToLower(s)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
