package main

import (
	"context"
	"fmt"
	"os"

	"github.com/centsible/centsible/internal/cli"
	"github.com/centsible/centsible/internal/common"
	"github.com/centsible/centsible/internal/engine"
	"github.com/centsible/centsible/internal/model"
	"github.com/centsible/centsible/internal/storage"
	"github.com/centsible/centsible/internal/tui"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func suggestCmd() *cobra.Command {
	var (
		review    bool
		apply     bool
		threshold float64
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Review stored transactions whose category looks wrong",
		Long: `Runs the categorization engine across every stored transaction and
reports those whose current category disagrees with the suggestion at
high confidence. Use --review for an interactive pass, or --apply to
accept everything.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			classifier, err := newClassifier()
			if err != nil {
				return err
			}

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			transactions, err := store.ListTransactions(ctx)
			if err != nil {
				return err
			}

			suggestions := classifier.SuggestBatch(transactions)
			if threshold > engine.SuggestionThreshold {
				kept := suggestions[:0]
				for _, s := range suggestions {
					if s.Confidence > threshold {
						kept = append(kept, s)
					}
				}
				suggestions = kept
			}
			if len(suggestions) == 0 {
				fmt.Println(cli.FormatSuccess("all categories look right"))
				return nil
			}

			switch {
			case review:
				decisions, reviewErr := tui.RunReview(suggestions)
				if reviewErr != nil {
					return reviewErr
				}
				return applyDecisions(ctx, store, decisions)

			case apply:
				decisions := make([]tui.Decision, len(suggestions))
				for i, s := range suggestions {
					decisions[i] = tui.Decision{ID: s.ID, Category: s.SuggestedCategory, Accepted: true}
				}
				return applyDecisions(ctx, store, decisions)

			default:
				printSuggestions(suggestions)
				return nil
			}
		},
	}

	cmd.Flags().BoolVar(&review, "review", false, "review suggestions interactively")
	cmd.Flags().BoolVar(&apply, "apply", false, "apply every suggestion without review")
	cmd.Flags().Float64Var(&threshold, "threshold", engine.SuggestionThreshold, "minimum confidence for a suggestion (strict)")
	cmd.MarkFlagsMutuallyExclusive("review", "apply")

	return cmd
}

func printSuggestions(suggestions []model.BatchSuggestion) {
	fmt.Println(cli.FormatTitle(fmt.Sprintf("%d category suggestions", len(suggestions))))
	for _, s := range suggestions {
		fmt.Printf("  %s  %s → %s  (%.0f%%)\n",
			clip(s.Description, 36),
			cli.SubtleStyle.Render(s.OriginalCategory),
			cli.BoldStyle.Render(s.SuggestedCategory),
			s.Confidence*100)
	}
	fmt.Println(cli.SubtleStyle.Render("\nre-run with --review or --apply to update the store"))
}

// applyDecisions writes accepted category changes back to the store.
func applyDecisions(ctx context.Context, store *storage.SQLiteStorage, decisions []tui.Decision) error {
	accepted := 0
	for _, d := range decisions {
		if d.Accepted {
			accepted++
		}
	}
	if accepted == 0 {
		fmt.Println(cli.FormatInfo("no changes accepted"))
		return nil
	}

	bar := progressbar.NewOptions(accepted,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan]Updating categories...[reset]"),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)

	updated := 0
	for _, d := range decisions {
		if !d.Accepted {
			continue
		}
		if err := store.UpdateTransactionCategory(ctx, d.ID, d.Category); err != nil {
			common.LogError(err, "Failed to update category", common.Fields{
				"transaction_id": d.ID,
				"category":       d.Category,
			})
			continue
		}
		updated++
		_ = bar.Add(1)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("updated %d of %d transactions", updated, accepted)))
	return nil
}
