package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/nguyencmc/app-exam-test-online-sub002/client"
	"github.com/nguyencmc/app-exam-test-online-sub002/internal/config"
	"github.com/nguyencmc/app-exam-test-online-sub002/internal/localstore"
)

// rootOptions holds the persistent flags shared by every sub-command.
type rootOptions struct {
	apiURL  string
	tokenDB string
	timeout time.Duration
	debug   bool
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	cfg, err := config.Load()
	if err != nil {
		// fall back to built-in defaults; the error is reported once logging is up
		cfg = &config.Config{APIURL: client.DefaultBaseURL, LogLevel: zerolog.InfoLevel}
	}
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "aiexam",
		Short:         "Command-line client for the AI-Exam API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// flags win over the environment
			cfg.APIURL = opts.apiURL
			cfg.TokenDB = opts.tokenDB
			cfg.HTTPTimeout = opts.timeout
			cfg.Debug = opts.debug
			cfg.Init(cmd.ErrOrStderr())
			if err != nil {
				log.Warn().Err(err).Msg("configuration not loaded, using defaults")
			}
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.apiURL, "api-url", cfg.APIURL, "Base URL of the AI-Exam API")
	pf.StringVar(&opts.tokenDB, "token-db", cfg.TokenDB, "Path of the local token store")
	pf.DurationVar(&opts.timeout, "timeout", cfg.HTTPTimeout, "Overall HTTP timeout per request (0 = none)")
	pf.BoolVarP(&opts.debug, "debug", "d", cfg.Debug, "Enable verbose debug output")

	rootCmd.AddCommand(newRawCmd(opts, "get"))
	rootCmd.AddCommand(newRawCmd(opts, "post"))
	rootCmd.AddCommand(newRawCmd(opts, "put"))
	rootCmd.AddCommand(newRawCmd(opts, "delete"))
	rootCmd.AddCommand(newTokenCmd(opts))
	rootCmd.AddCommand(newCoursesCmd(opts))
	rootCmd.AddCommand(newExamsCmd(opts))
	rootCmd.AddCommand(newExamCmd(opts))
	rootCmd.AddCommand(newHealthCmd(opts))

	return rootCmd
}

// openStore opens the token store named by --token-db.
func (o *rootOptions) openStore() (localstore.Store, error) {
	if o.tokenDB == "" {
		return nil, errors.New("--token-db is required")
	}
	return localstore.OpenSQLite(o.tokenDB)
}

// newClient builds an SDK client reading its token from the local store.
// The returned closer releases the store.
func (o *rootOptions) newClient() (*client.Client, io.Closer, error) {
	store, err := o.openStore()
	if err != nil {
		return nil, nil, fmt.Errorf("open token store: %w", err)
	}

	clientOpts := []client.Option{
		client.WithTokenProvider(client.StoreTokenProvider(store, client.DefaultTokenKey)),
		client.WithDebugLogging(o.debug),
	}
	if o.timeout > 0 {
		clientOpts = append(clientOpts, client.WithHTTPTimeout(o.timeout))
	}

	c, err := client.New(o.apiURL, clientOpts...)
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	return c, store, nil
}

// withClient runs fn with a fresh client and always closes the store.
func (o *rootOptions) withClient(ctx context.Context, fn func(context.Context, *client.Client) error) error {
	c, closer, err := o.newClient()
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()
	return fn(ctx, c)
}
