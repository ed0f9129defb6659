package main

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/nguyencmc/app-exam-test-online-sub002/client"
)

func newHealthCmd(opts *rootOptions) *cobra.Command {
	var (
		wait     time.Duration
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check that the API is up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd.Context(), func(ctx context.Context, c *client.Client) error {
				var h *client.Health
				check := func() error {
					var err error
					h, err = c.Health(ctx)
					if err != nil {
						log.Debug().Err(err).Msg("health check failed")
					}
					return err
				}

				var err error
				if wait <= 0 {
					err = check()
				} else {
					err = waitHealthy(ctx, check, interval, wait)
				}
				if err != nil {
					return fmt.Errorf("api not healthy: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), h.Status)
				return nil
			})
		},
	}

	cmd.Flags().DurationVar(&wait, "wait", 0, "Keep polling until healthy or this much time has passed")
	cmd.Flags().DurationVar(&interval, "interval", 200*time.Millisecond, "Initial delay between polls when --wait is set")
	return cmd
}

// waitHealthy retries check with exponential backoff until it succeeds, ctx is
// done, or maxElapsed has passed.
func waitHealthy(ctx context.Context, check func() error, initial, maxElapsed time.Duration) error {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = initial
	exp.MaxInterval = 5 * time.Second
	exp.MaxElapsedTime = maxElapsed

	notify := func(err error, next time.Duration) {
		log.Info().Err(err).Dur("retry_in", next).Msg("waiting for api")
	}
	return backoff.RetryNotify(check, backoff.WithContext(exp, ctx), notify)
}
