package main

import (
	"fmt"

	"github.com/centsible/centsible/internal/cli"
	"github.com/spf13/cobra"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Read and write raw settings in the local store",
	}

	var def string
	getCmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Read a setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			value, err := store.GetSetting(ctx, args[0], def)
			if err != nil {
				return err
			}

			fmt.Println(value)
			return nil
		},
	}
	getCmd.Flags().StringVar(&def, "default", "", "value to return when the key is unset")

	setCmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Write a setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.PutSetting(ctx, args[0], args[1]); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s = %s", args[0], args[1])))
			return nil
		},
	}

	cmd.AddCommand(getCmd)
	cmd.AddCommand(setCmd)

	return cmd
}
