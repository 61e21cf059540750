package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/centsible/centsible/internal/cli"
	"github.com/centsible/centsible/internal/common"
	"github.com/centsible/centsible/internal/insight"
	"github.com/centsible/centsible/internal/model"
	"github.com/spf13/cobra"
)

func insightsCmd() *cobra.Command {
	var (
		heatmapDays int
		monthFlag   string
	)

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Show spending insights, trends, and budget alerts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			now := time.Now()
			if monthFlag != "" {
				parsed, parseErr := time.Parse("2006-01", monthFlag)
				if parseErr != nil {
					return common.NewUserError(fmt.Sprintf("invalid month %q, want YYYY-MM", monthFlag), parseErr)
				}
				// Anchor trend and heatmap at the end of the requested month.
				now = parsed.AddDate(0, 1, -1)
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
			budgets, err := store.ListBudgets(ctx)
			if err != nil {
				return err
			}

			scope := transactions
			if monthFlag != "" {
				scope, err = store.ListTransactionsByMonth(ctx, monthFlag)
				if err != nil {
					return err
				}
			}

			insights := insight.Compute(scope)
			insights = append(insights, insight.MonthOverMonth(transactions, now)...)

			fmt.Println(cli.FormatTitle("Spending insights"))
			if len(insights) == 0 {
				fmt.Println(cli.SubtleStyle.Render("  nothing noteworthy yet"))
			}
			for _, ins := range insights {
				fmt.Printf("  %s %s\n", insightIcon(ins.Type), cli.BoldStyle.Render(ins.Title))
				fmt.Printf("    %s\n", ins.Description)
			}

			statuses := insight.EvaluateBudgets(budgets, transactions, now.Format("2006-01"))
			breaches := insight.Breaches(statuses)
			if len(statuses) > 0 {
				fmt.Println()
				fmt.Println(cli.FormatTitle("Budgets"))
				if len(breaches) == 0 {
					fmt.Println(cli.FormatSuccess("all spending within budget limits"))
				}
				for _, status := range breaches {
					line := fmt.Sprintf("%s: spent $%.2f of $%.2f (%.0f%%), $%.2f remaining",
						status.Category, status.Spent, status.Limit, status.Percentage, status.Remaining)
					if status.Level == insight.LevelDanger {
						fmt.Println("  " + cli.FormatError(line))
					} else {
						fmt.Println("  " + cli.FormatWarning(line))
					}
				}
			}

			cells := insight.DailyIntensity(transactions, now, heatmapDays)
			fmt.Println()
			fmt.Println(cli.FormatTitle(fmt.Sprintf("Last %d days", heatmapDays)))
			fmt.Println("  " + renderHeatmapRow(cells))

			return nil
		},
	}

	cmd.Flags().IntVar(&heatmapDays, "days", 30, "heatmap window in days")
	cmd.Flags().StringVar(&monthFlag, "month", "", "restrict insights to YYYY-MM (default: all time)")

	return cmd
}

func insightIcon(t model.InsightType) string {
	switch t {
	case model.InsightPattern:
		return cli.ChartIcon
	case model.InsightAnomaly:
		return cli.AlertIcon
	case model.InsightTrend:
		return cli.BulbIcon
	}
	return cli.InfoIcon
}

// renderHeatmapRow draws one shaded block per day, darkest = busiest.
func renderHeatmapRow(cells []insight.DayCell) string {
	shades := []string{"·", "░", "▒", "▓", "█"}

	var b strings.Builder
	for _, cell := range cells {
		idx := int(cell.Intensity * float64(len(shades)-1))
		if idx >= len(shades) {
			idx = len(shades) - 1
		}
		b.WriteString(shades[idx])
	}
	return b.String()
}
