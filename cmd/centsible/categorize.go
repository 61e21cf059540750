package main

import (
	"fmt"

	"github.com/centsible/centsible/internal/cli"
	"github.com/spf13/cobra"
)

func categorizeCmd() *cobra.Command {
	var amountFlag float64

	cmd := &cobra.Command{
		Use:   "categorize <description>",
		Short: "Suggest a category for a transaction description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			classifier, err := newClassifier()
			if err != nil {
				return err
			}

			var amount *float64
			if cmd.Flags().Changed("amount") {
				amount = &amountFlag
			}

			result := classifier.Categorize(args[0], amount)

			fmt.Println(cli.FormatTitle("Categorization"))
			fmt.Printf("  %s %s (%.0f%% confident)\n",
				cli.BoldStyle.Render(result.Category),
				cli.SubtleStyle.Render("←"),
				result.Confidence*100)

			if len(result.SuggestedCategories) > 1 {
				fmt.Println(cli.SubtleStyle.Render("  alternatives:"))
				for _, alt := range result.SuggestedCategories[1:] {
					fmt.Printf("    %s (%.0f%%)\n", alt.Category, alt.Confidence*100)
				}
			}

			return nil
		},
	}

	cmd.Flags().Float64Var(&amountFlag, "amount", 0, "transaction amount, used by heuristics")

	return cmd
}
