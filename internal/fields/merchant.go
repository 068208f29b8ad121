package fields

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/joseph-ayodele/receipts-extractor/internal/heuristics"
)

// Header scan windows for the merchant heuristics.
const (
	merchantHeaderLines = 6 // lines considered by the header heuristic
	merchantNameLines   = 3 // lines eligible for the letters-only acceptance
	merchantCapsLines   = 5 // lines considered by the capitalization fallback
)

var (
	rePhoneNumber  = regexp.MustCompile(`\d{3}[-.]?\d{3}[-.]?\d{4}`)
	reZipCode      = regexp.MustCompile(`\d{5}`)
	reWebOrEmail   = regexp.MustCompile(`@|\.com|www\.`)
	reLeadingRule  = regexp.MustCompile(`^[-=]+\s*`)
	reTrailingRule = regexp.MustCompile(`\s*[-=]+$`)
	reCopyMarker   = regexp.MustCompile(`(?i)\s*copy$`)
	reLettersOnly  = regexp.MustCompile(`^[A-Za-z\s&\-']+$`)
	rePunctOnly    = regexp.MustCompile(`[^\w\s]`)
)

// merchantStrategy inspects the normalized text (pre-split into lines) and
// returns a merchant name if its tier applies.
type merchantStrategy func(cfg *heuristics.Config, text string, lines []string) (string, bool)

// Ordered tiers, first success wins.
var merchantStrategies = []merchantStrategy{
	knownMerchantOverride,
	headerHeuristic,
	capsDensityFallback,
}

// ExtractMerchant identifies the business name from the document header.
// Returns false when no tier matches; the caller substitutes the sentinel.
func ExtractMerchant(cfg *heuristics.Config, text string) (string, bool) {
	lines := strings.Split(text, "\n")
	for _, strategy := range merchantStrategies {
		if name, ok := strategy(cfg, text, lines); ok {
			return name, true
		}
	}
	return "", false
}

// Tier 1: exact brand normalization anywhere in the text.
func knownMerchantOverride(cfg *heuristics.Config, text string, _ []string) (string, bool) {
	return cfg.MatchKnownMerchant(text)
}

// skipHeaderLine filters lines that cannot be a merchant name: indicator
// vocabulary hits, phone numbers, zip codes, and web addresses.
func skipHeaderLine(cfg *heuristics.Config, line string) bool {
	return heuristics.ContainsAny(line, cfg.NonMerchantIndicators) ||
		rePhoneNumber.MatchString(line) ||
		reZipCode.MatchString(line) ||
		reWebOrEmail.MatchString(line)
}

// Tier 2: business-name shapes in the first header lines.
func headerHeuristic(cfg *heuristics.Config, _ string, lines []string) (string, bool) {
	for i, line := range lines {
		if i >= merchantHeaderLines {
			break
		}
		line = strings.TrimSpace(line)
		if len(line) < 3 || skipHeaderLine(cfg, line) {
			continue
		}

		line = reLeadingRule.ReplaceAllString(line, "")
		line = reTrailingRule.ReplaceAllString(line, "")
		line = reCopyMarker.ReplaceAllString(line, "")

		if heuristics.HasSuffixAny(line, cfg.MerchantSuffixes) {
			return line, true
		}
		if heuristics.ContainsAny(line, cfg.MerchantSuffixes) {
			return line, true
		}
		if i < merchantNameLines && reLettersOnly.MatchString(line) {
			if line == strings.ToUpper(line) {
				line = titleCase(line)
			}
			return line, true
		}
	}
	return "", false
}

// Tier 3: the longest mostly-uppercase header line.
func capsDensityFallback(cfg *heuristics.Config, _ string, lines []string) (string, bool) {
	best := ""
	bestLen := -1
	for i, line := range lines {
		if i >= merchantCapsLines {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" || skipHeaderLine(cfg, line) {
			continue
		}
		if uppercaseRatio(line) <= 0.5 {
			continue
		}
		// Rank by content length with punctuation stripped.
		if n := len(rePunctOnly.ReplaceAllString(line, "")); n > bestLen {
			best, bestLen = line, n
		}
	}
	return best, best != ""
}

func uppercaseRatio(line string) float64 {
	upper := 0
	total := 0
	for _, r := range line {
		total++
		if unicode.IsUpper(r) {
			upper++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(upper) / float64(total)
}

// titleCase uppercases the first letter of each word and lowercases the rest.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		for j, r := range runes {
			if unicode.IsLetter(r) {
				runes[j] = unicode.ToUpper(r)
				break
			}
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
