package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/centsible/centsible/internal/cli"
	"github.com/centsible/centsible/internal/common"
	"github.com/centsible/centsible/internal/insight"
	"github.com/centsible/centsible/internal/model"
	"github.com/spf13/cobra"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage monthly category budgets",
	}

	cmd.AddCommand(budgetSetCmd())
	cmd.AddCommand(budgetListCmd())
	cmd.AddCommand(budgetRemoveCmd())

	return cmd
}

func budgetSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <category> <amount>",
		Short: "Set the monthly budget for a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return common.NewUserError(fmt.Sprintf("invalid amount %q", args[1]), err)
			}

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			budget := model.Budget{Category: args[0], Amount: amount}
			if err := store.UpsertBudget(ctx, budget); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("budget for %s set to $%.2f/month", budget.Category, budget.Amount)))
			return nil
		},
	}
}

func budgetListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List budgets with current-month status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			budgets, err := store.ListBudgets(ctx)
			if err != nil {
				return err
			}
			if len(budgets) == 0 {
				fmt.Println(cli.FormatInfo("no budgets configured"))
				return nil
			}

			transactions, err := store.ListTransactions(ctx)
			if err != nil {
				return err
			}

			month := time.Now().Format("2006-01")
			statuses := insight.EvaluateBudgets(budgets, transactions, month)

			header := fmt.Sprintf("%-16s %10s %10s %10s %6s", "CATEGORY", "LIMIT", "SPENT", "LEFT", "USED")
			fmt.Println(cli.TableHeaderStyle.Render(header))
			for _, status := range statuses {
				line := fmt.Sprintf("%-16s %10.2f %10.2f %10.2f %5.0f%%",
					status.Category, status.Limit, status.Spent, status.Remaining, status.Percentage)
				switch status.Level {
				case insight.LevelDanger:
					fmt.Println(cli.ErrorStyle.Render(line))
				case insight.LevelWarning:
					fmt.Println(cli.WarningStyle.Render(line))
				default:
					fmt.Println(line)
				}
			}

			return nil
		},
	}
}

func budgetRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <category>",
		Short: "Remove the budget for a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteBudget(ctx, args[0]); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("removed budget for %s", args[0])))
			return nil
		},
	}
}
