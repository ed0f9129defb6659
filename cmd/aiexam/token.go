package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/nguyencmc/app-exam-test-online-sub002/client"
)

func newTokenCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage the stored bearer token",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <token>",
		Short: "Store the bearer token sent with every request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tok := strings.TrimSpace(args[0])
			if tok == "" {
				return errors.New("token must not be empty")
			}
			store, err := opts.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()
			if err := store.Set(cmd.Context(), client.DefaultTokenKey, tok); err != nil {
				return err
			}
			log.Debug().Str("token_db", opts.tokenDB).Msg("token stored")
			fmt.Fprintln(cmd.OutOrStdout(), "token saved")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the stored bearer token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()
			tok, ok, err := store.Get(cmd.Context(), client.DefaultTokenKey)
			if err != nil {
				return err
			}
			if !ok || tok == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "no token stored")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove the stored bearer token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()
			if err := store.Delete(cmd.Context(), client.DefaultTokenKey); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "token cleared")
			return nil
		},
	})

	return cmd
}
