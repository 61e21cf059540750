package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_AllRulesValid(t *testing.T) {
	table := Default()

	require.Len(t, table, 18)
	for i := range table {
		assert.NoError(t, table[i].Validate(), "rule %d (%s)", i, table[i].Category)
	}
}

func TestDefault_KeywordsAreLowercase(t *testing.T) {
	for _, rule := range Default() {
		for _, kw := range rule.Keywords {
			assert.Equal(t, strings.ToLower(kw), kw,
				"keyword %q in rule %s must be lowercase", kw, rule.Category)
		}
	}
}

func TestDefault_ReturnsFreshCopies(t *testing.T) {
	first := Default()
	first[0].Category = "mangled"
	first[0].Keywords[0] = "mangled"

	second := Default()
	assert.Equal(t, "food", second[0].Category)
	assert.Equal(t, "restaurant", second[0].Keywords[0])
}

func TestDefault_CoffeeRuleIsSpecializedOverFood(t *testing.T) {
	// Both the food and coffee rules claim "starbucks"; keeping both lets
	// the matcher surface the specialized category alongside the broad one.
	var foodHasStarbucks, coffeeHasStarbucks bool
	for _, rule := range Default() {
		for _, kw := range rule.Keywords {
			if kw != "starbucks" {
				continue
			}
			switch rule.Category {
			case "food":
				foodHasStarbucks = true
			case "coffee":
				coffeeHasStarbucks = true
			}
		}
	}
	assert.True(t, foodHasStarbucks)
	assert.True(t, coffeeHasStarbucks)
}
