package model

// BatchSuggestion reports a stored transaction whose current category
// disagrees with the classifier's suggestion above the batch threshold.
type BatchSuggestion struct {
	ID                string  `json:"id"`
	OriginalCategory  string  `json:"originalCategory"`
	SuggestedCategory string  `json:"suggestedCategory"`
	Description       string  `json:"description"`
	Confidence        float64 `json:"confidence"`
}
