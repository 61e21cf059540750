package main

import (
	"fmt"
	"os"

	"github.com/centsible/centsible/internal/cli"
	"github.com/centsible/centsible/internal/common"
	"github.com/centsible/centsible/internal/config"
	"github.com/centsible/centsible/internal/ofx"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.ofx>",
		Short: "Import an OFX/QFX statement, auto-categorizing each transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			path := config.ExpandPath(args[0])
			file, err := os.Open(path) // #nosec G304 -- user-supplied import path
			if err != nil {
				return common.NewUserError(fmt.Sprintf("cannot open %s", path), err)
			}
			defer func() { _ = file.Close() }()

			parser := ofx.NewParser()
			transactions, err := parser.ParseFile(ctx, file)
			if err != nil {
				return err
			}
			if len(transactions) == 0 {
				return common.ErrNoTransactions
			}

			classifier, err := newClassifier()
			if err != nil {
				return err
			}

			bar := progressbar.NewOptions(len(transactions),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("[cyan]Categorizing transactions...[reset]"),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(os.Stderr)
				}),
			)

			for i := range transactions {
				amount := transactions[i].Amount
				result := classifier.Categorize(transactions[i].Description, &amount)
				transactions[i].Category = result.Category
				_ = bar.Add(1)
			}

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			saved, err := store.SaveTransactions(ctx, transactions)
			if err != nil {
				return err
			}

			skipped := len(transactions) - saved
			msg := fmt.Sprintf("imported %d transactions", saved)
			if skipped > 0 {
				msg += fmt.Sprintf(" (%d already present)", skipped)
			}
			fmt.Println(cli.FormatSuccess(msg))

			return nil
		},
	}

	return cmd
}
