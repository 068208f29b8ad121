// Package heuristics holds the read-only vocabularies and tuning constants the
// extraction pipeline matches against. Everything is loaded once from the
// embedded defaults and is safe to share across concurrent processing calls.
package heuristics

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// KnownMerchant maps a case-insensitive name pattern to a canonical display name.
type KnownMerchant struct {
	Pattern string `yaml:"pattern"`
	Name    string `yaml:"name"`

	re *regexp.Regexp
}

// SplitWordRepair fixes a word the OCR engine broke with a stray space.
type SplitWordRepair struct {
	Broken   string `yaml:"broken"`
	Repaired string `yaml:"repaired"`

	re *regexp.Regexp
}

// Config is the full vocabulary set. Immutable after Load.
type Config struct {
	MerchantSuffixes      []string          `yaml:"merchant_suffixes"`
	NonMerchantIndicators []string          `yaml:"non_merchant_indicators"`
	KnownMerchants        []KnownMerchant   `yaml:"known_merchants"`
	ItemSectionHeaders    []string          `yaml:"item_section_headers"`
	NonItemIndicators     []string          `yaml:"non_item_indicators"`
	SplitWordRepairs      []SplitWordRepair `yaml:"split_word_repairs"`
	DateLayouts           []string          `yaml:"date_layouts"`
	MinYear               int               `yaml:"min_year"`
	MaxYear               int               `yaml:"max_year"`
	ReconcileTolerance    float64           `yaml:"reconcile_tolerance"`
}

var (
	defaultOnce sync.Once
	defaultCfg  *Config
	defaultErr  error
)

// Default returns the process-wide vocabulary set from the embedded defaults.
// Panics on a broken embed; that is a build defect, not a runtime condition.
func Default() *Config {
	defaultOnce.Do(func() {
		defaultCfg, defaultErr = Load(defaultsYAML)
	})
	if defaultErr != nil {
		panic(fmt.Sprintf("heuristics: embedded defaults are invalid: %v", defaultErr))
	}
	return defaultCfg
}

// Load parses a vocabulary config and compiles its patterns.
func Load(raw []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("decode heuristics config: %w", err)
	}
	if err := cfg.compile(); err != nil {
		return nil, err
	}
	if cfg.MinYear == 0 {
		cfg.MinYear = 2000
	}
	if cfg.MaxYear == 0 {
		cfg.MaxYear = 2100
	}
	if cfg.ReconcileTolerance <= 0 {
		cfg.ReconcileTolerance = 0.01
	}
	return &cfg, nil
}

func (c *Config) compile() error {
	for i := range c.KnownMerchants {
		re, err := regexp.Compile(c.KnownMerchants[i].Pattern)
		if err != nil {
			return fmt.Errorf("known merchant pattern %q: %w", c.KnownMerchants[i].Pattern, err)
		}
		c.KnownMerchants[i].re = re
	}
	for i := range c.SplitWordRepairs {
		re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(c.SplitWordRepairs[i].Broken))
		if err != nil {
			return fmt.Errorf("split word repair %q: %w", c.SplitWordRepairs[i].Broken, err)
		}
		c.SplitWordRepairs[i].re = re
	}
	return nil
}

// MatchKnownMerchant returns the canonical name for the first known-merchant
// pattern found anywhere in text.
func (c *Config) MatchKnownMerchant(text string) (string, bool) {
	for i := range c.KnownMerchants {
		if c.KnownMerchants[i].re.MatchString(text) {
			return c.KnownMerchants[i].Name, true
		}
	}
	return "", false
}

// RepairSplitWords applies every known split-word repair to line.
func (c *Config) RepairSplitWords(line string) string {
	for i := range c.SplitWordRepairs {
		line = c.SplitWordRepairs[i].re.ReplaceAllString(line, c.SplitWordRepairs[i].Repaired)
	}
	return line
}

// ContainsAny reports whether the lowercase form of line contains any of the
// vocabulary words.
func ContainsAny(line string, words []string) bool {
	lower := strings.ToLower(line)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// HasSuffixAny reports whether the lowercase form of line ends with any of the
// vocabulary words.
func HasSuffixAny(line string, words []string) bool {
	lower := strings.ToLower(line)
	for _, w := range words {
		if strings.HasSuffix(lower, w) {
			return true
		}
	}
	return false
}
