package main

import (
	"fmt"
	"strings"

	"github.com/centsible/centsible/internal/cli"
	"github.com/spf13/cobra"
)

func rulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Show the active categorization rule table",
		RunE: func(_ *cobra.Command, _ []string) error {
			table, err := loadRuleTable()
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("%d rules", len(table))))
			header := fmt.Sprintf("%-16s %6s  %s", "CATEGORY", "WEIGHT", "KEYWORDS")
			fmt.Println(cli.TableHeaderStyle.Render(header))

			for _, rule := range table {
				keywords := strings.Join(rule.Keywords, ", ")
				fmt.Printf("%-16s %6.2f  %s\n", rule.Category, rule.Confidence, clip(keywords, 60))
			}

			return nil
		},
	}
}
