package model

import (
	"fmt"
	"strings"
)

// Rule binds a set of lowercase keyword triggers to a category with an
// authorial base confidence. Rules are immutable configuration data; several
// rules may target the same category, each acting as an independent signal.
type Rule struct {
	Category   string   `yaml:"category" json:"category"`
	Keywords   []string `yaml:"keywords" json:"keywords"`
	Confidence float64  `yaml:"confidence" json:"confidence"`
}

// Validate ensures the rule is usable by the matcher.
func (r *Rule) Validate() error {
	if r.Category == "" {
		return fmt.Errorf("rule category is required")
	}

	if len(r.Keywords) == 0 {
		return fmt.Errorf("rule %q has no keywords", r.Category)
	}

	for _, kw := range r.Keywords {
		if strings.TrimSpace(kw) == "" {
			return fmt.Errorf("rule %q contains an empty keyword", r.Category)
		}
	}

	if r.Confidence <= 0 || r.Confidence > 1 {
		return fmt.Errorf("rule %q confidence must be in (0, 1], got %.2f", r.Category, r.Confidence)
	}

	return nil
}
