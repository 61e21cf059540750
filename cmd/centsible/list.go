package main

import (
	"fmt"

	"github.com/centsible/centsible/internal/cli"
	"github.com/centsible/centsible/internal/model"
	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			var transactions []model.Transaction
			if month != "" {
				transactions, err = store.ListTransactionsByMonth(ctx, month)
			} else {
				transactions, err = store.ListTransactions(ctx)
			}
			if err != nil {
				return err
			}

			if len(transactions) == 0 {
				fmt.Println(cli.FormatInfo("no transactions recorded"))
				return nil
			}

			header := fmt.Sprintf("%-12s %-38s %-14s %10s", "DATE", "DESCRIPTION", "CATEGORY", "AMOUNT")
			fmt.Println(cli.TableHeaderStyle.Render(header))

			var income, expenses float64
			for _, txn := range transactions {
				amount := fmt.Sprintf("$%.2f", txn.Amount)
				if txn.Type == model.TypeExpense {
					expenses += txn.Amount
					amount = "-" + amount
				} else {
					income += txn.Amount
				}
				fmt.Printf("%-12s %-38s %-14s %10s\n",
					txn.Date, clip(txn.Description, 38), txn.Category, amount)
			}

			fmt.Println()
			fmt.Printf("%s income $%.2f · expenses $%.2f · net $%.2f\n",
				cli.SubtleStyle.Render(fmt.Sprintf("%d transactions:", len(transactions))),
				income, expenses, income-expenses)

			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "only show transactions in YYYY-MM")

	return cmd
}

func clip(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit-1] + "…"
}
