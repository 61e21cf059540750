package engine

import (
	"sort"

	"github.com/centsible/centsible/internal/model"
)

// SuggestionThreshold is the strict minimum confidence for a batch
// suggestion; a result at exactly the threshold is excluded.
const SuggestionThreshold = 0.6

// SuggestBatch reviews existing transactions and reports those whose stored
// category disagrees with the classifier's suggestion above the threshold.
// Output is ordered by confidence descending; ties keep input order.
func (c *Classifier) SuggestBatch(transactions []model.Transaction) []model.BatchSuggestion {
	suggestions := make([]model.BatchSuggestion, 0, len(transactions))

	for _, txn := range transactions {
		amount := txn.Amount
		result := c.Categorize(txn.Description, &amount)

		if result.Category == txn.Category || result.Confidence <= SuggestionThreshold {
			continue
		}

		suggestions = append(suggestions, model.BatchSuggestion{
			ID:                txn.ID,
			OriginalCategory:  txn.Category,
			SuggestedCategory: result.Category,
			Confidence:        result.Confidence,
			Description:       txn.Description,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Confidence > suggestions[j].Confidence
	})

	return suggestions
}
