package main

import (
	"fmt"
	"time"

	"github.com/centsible/centsible/internal/cli"
	"github.com/centsible/centsible/internal/common"
	"github.com/centsible/centsible/internal/model"
	"github.com/spf13/cobra"
)

func addCmd() *cobra.Command {
	var (
		description string
		amount      float64
		date        string
		category    string
		txnType     string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction, auto-categorizing it when no category is given",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if txnType != string(model.TypeExpense) && txnType != string(model.TypeIncome) {
				return common.NewUserError(fmt.Sprintf("invalid type %q, want income or expense", txnType), nil)
			}

			if date == "" {
				date = time.Now().Format(model.DateLayout)
			}
			if _, err := time.Parse(model.DateLayout, date); err != nil {
				return common.NewUserError(fmt.Sprintf("invalid date %q, want YYYY-MM-DD", date), err)
			}

			if category == "" {
				classifier, err := newClassifier()
				if err != nil {
					return err
				}
				result := classifier.Categorize(description, &amount)
				category = result.Category
				fmt.Println(cli.FormatInfo(fmt.Sprintf("auto-categorized as %s (%.0f%% confident)",
					category, result.Confidence*100)))
			}

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			txn := model.Transaction{
				Date:        date,
				Description: description,
				Amount:      amount,
				Category:    category,
				Type:        model.TransactionType(txnType),
			}
			txn.ID = txn.GenerateID()

			saved, err := store.SaveTransactions(ctx, []model.Transaction{txn})
			if err != nil {
				return err
			}
			if saved == 0 {
				fmt.Println(cli.FormatWarning("transaction already recorded"))
				return nil
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("recorded %s $%.2f as %s", date, amount, category)))
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "transaction description (required)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "transaction amount (required)")
	cmd.Flags().StringVar(&date, "date", "", "transaction date YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&category, "category", "", "category (default: auto-categorize)")
	cmd.Flags().StringVar(&txnType, "type", string(model.TypeExpense), "income or expense")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
