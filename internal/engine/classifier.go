// Package engine implements the rule-based transaction categorization engine:
// keyword matching against the rule table, amount heuristics, and batch
// suggestion generation. Every operation is a pure function of its inputs
// and the table handed to the constructor.
package engine

import (
	"math"
	"sort"
	"strings"

	"github.com/centsible/centsible/internal/model"
)

// Fallback result when no rule matches at all.
const (
	FallbackCategory   = "shopping"
	FallbackConfidence = 0.1
)

const (
	// keywordFloor guarantees a single keyword hit still yields a usable
	// confidence instead of a near-zero fraction.
	keywordFloor = 0.3

	// Amount heuristic cutoffs.
	smallAmountLimit = 10.0
	largeAmountLimit = 1000.0
	heuristicBoost   = 0.1

	// Categories targeted by the amount heuristics.
	categoryCoffee  = "coffee"
	categoryHousing = "housing"

	suggestionLimit = 3
)

// Classifier scores free-text descriptions against a fixed rule table.
// It holds no mutable state; a single instance is safe for concurrent use.
type Classifier struct {
	rules []model.Rule
}

// New creates a classifier over the given rule table. Table order is
// significant: equal-confidence candidates keep first-defined-rule priority.
func New(rules []model.Rule) *Classifier {
	owned := make([]model.Rule, len(rules))
	copy(owned, rules)
	return &Classifier{rules: owned}
}

// Categorize scores the description against every rule and returns the
// top-ranked category with up to three alternatives. amount is optional;
// pass nil when the caller has no amount. The function is total: empty or
// unmatched descriptions degrade to the fallback category, never an error.
func (c *Classifier) Categorize(description string, amount *float64) model.Result {
	normalized := strings.ToLower(strings.TrimSpace(description))

	candidates := c.matchRules(normalized)
	sortByConfidence(candidates)

	applyAmountHeuristics(candidates, normalized, amount)
	sortByConfidence(candidates)

	if len(candidates) == 0 {
		return model.Result{
			Category:            FallbackCategory,
			Confidence:          FallbackConfidence,
			SuggestedCategories: []model.CategorySuggestion{},
		}
	}

	limit := suggestionLimit
	if limit > len(candidates) {
		limit = len(candidates)
	}
	suggested := make([]model.CategorySuggestion, 0, limit)
	for _, cand := range candidates[:limit] {
		if cand.Category == "" {
			continue
		}
		suggested = append(suggested, model.CategorySuggestion{
			Category:   cand.Category,
			Confidence: cand.Confidence,
		})
	}

	return model.Result{
		Category:            candidates[0].Category,
		Confidence:          candidates[0].Confidence,
		SuggestedCategories: suggested,
	}
}

// matchRules collects one candidate per rule with at least one keyword hit.
// Rules sharing a category deliberately produce separate candidates.
func (c *Classifier) matchRules(normalized string) []model.Candidate {
	var candidates []model.Candidate

	for _, rule := range c.rules {
		hits := 0
		for _, keyword := range rule.Keywords {
			if strings.Contains(normalized, strings.ToLower(keyword)) {
				hits++
			}
		}

		if hits == 0 {
			continue
		}

		keywordConfidence := math.Min(float64(hits)/float64(len(rule.Keywords))+keywordFloor, 1)

		candidates = append(candidates, model.Candidate{
			Category:   rule.Category,
			Confidence: rule.Confidence * keywordConfidence,
			MatchCount: hits,
		})
	}

	return candidates
}

// applyAmountHeuristics mutates candidate confidences in place. Both rules
// may fire on the same call. Confidence is intentionally not clamped to 1
// afterwards. A nil, NaN, or zero amount disables the pass.
func applyAmountHeuristics(candidates []model.Candidate, normalized string, amount *float64) {
	if amount == nil {
		return
	}
	amt := *amount
	if amt == 0 || math.IsNaN(amt) {
		return
	}

	// Small amounts mentioning coffee favor the coffee micro-spend category.
	if amt < smallAmountLimit && strings.Contains(normalized, categoryCoffee) {
		if i := findCategory(candidates, categoryCoffee); i >= 0 {
			candidates[i].Confidence += heuristicBoost
		}
	}

	// Large amounts favor recurring fixed costs.
	if amt > largeAmountLimit {
		if i := findCategory(candidates, categoryHousing); i >= 0 {
			candidates[i].Confidence += heuristicBoost
		}
	}
}

// findCategory returns the index of the first candidate for the category in
// the current ranking order, or -1.
func findCategory(candidates []model.Candidate, category string) int {
	for i := range candidates {
		if candidates[i].Category == category {
			return i
		}
	}
	return -1
}

// sortByConfidence orders candidates best first. The sort must be stable so
// equal-confidence candidates keep rule-table order.
func sortByConfidence(candidates []model.Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Confidence > candidates[j].Confidence
	})
}
