package model

// Candidate is an ephemeral (category, confidence) pair produced by matching
// one rule against one description. MatchCount records how many of the
// rule's keywords hit and only feeds confidence derivation.
type Candidate struct {
	Category   string
	Confidence float64
	MatchCount int
}

// CategorySuggestion is one entry of a result's ranked alternatives.
type CategorySuggestion struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// Result is the outcome of categorizing a single description.
type Result struct {
	Category            string               `json:"category"`
	Confidence          float64              `json:"confidence"`
	SuggestedCategories []CategorySuggestion `json:"suggestedCategories"`
}
