package rules

import (
	"fmt"
	"os"
	"strings"

	"github.com/centsible/centsible/internal/common"
	"github.com/centsible/centsible/internal/model"
	"gopkg.in/yaml.v3"
)

// ruleFile is the on-disk shape of a custom rule table.
type ruleFile struct {
	Rules []model.Rule `yaml:"rules"`
}

// Load reads a rule table from a YAML file. Keywords are lowercased so the
// matcher can compare them directly against normalized descriptions. The
// file's rule order is preserved; it drives tie-breaking in the matcher.
func Load(path string) ([]model.Rule, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from user flags
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates a YAML rule table.
func Parse(data []byte) ([]model.Rule, error) {
	var f ruleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse rules file: %w", err)
	}

	if len(f.Rules) == 0 {
		return nil, common.ErrNoRules
	}

	for i := range f.Rules {
		rule := &f.Rules[i]
		for j, kw := range rule.Keywords {
			rule.Keywords[j] = strings.ToLower(strings.TrimSpace(kw))
		}
		if err := rule.Validate(); err != nil {
			return nil, fmt.Errorf("%w: rule %d: %v", common.ErrInvalidRule, i, err)
		}
	}

	return f.Rules, nil
}
