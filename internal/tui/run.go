package tui

import (
	"fmt"

	"github.com/centsible/centsible/internal/model"
	tea "github.com/charmbracelet/bubbletea"
)

// RunReview runs the interactive review over the suggestions and returns
// the user's decisions once the screen exits.
func RunReview(suggestions []model.BatchSuggestion) ([]Decision, error) {
	program := tea.NewProgram(NewReviewModel(suggestions))

	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("review UI failed: %w", err)
	}

	reviewModel, ok := final.(ReviewModel)
	if !ok {
		return nil, fmt.Errorf("unexpected final model type %T", final)
	}

	return reviewModel.Decisions(), nil
}
