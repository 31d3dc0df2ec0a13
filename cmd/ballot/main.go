package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/aussiebroadwan/ballot/internal/voting/app"
	"github.com/aussiebroadwan/ballot/pkg/votingsdk"
	"github.com/spf13/cobra"
)

var errLedgerInvalid = errors.New("ledger verification failed")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		envFile string
		dbPath  string
	)

	rootCmd := &cobra.Command{
		Use:           "ballot",
		Short:         "Voter registration and ballot ledger service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.LoadEnvFile(envFile)
		},
	}

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load (default: .env if present)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database file (overrides BALLOT_DATABASE_FILE)")

	loadConfig := func() app.Config {
		cfg := app.LoadConfig()
		if dbPath != "" {
			cfg.DatabaseFile = dbPath
		}
		return cfg
	}

	rootCmd.AddCommand(
		newServeCmd(loadConfig),
		newAuditCmd(loadConfig),
		newVerifyReceiptCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func newServeCmd(loadConfig func() app.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, err := app.New(loadConfig())
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			return application.Run()
		},
	}
}

func newAuditCmd(loadConfig func() app.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Verify the ballot ledger once and print the report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			ok, err := app.Audit(ctx, loadConfig(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if !ok {
				return errLedgerInvalid
			}
			return nil
		},
	}
}

func newVerifyReceiptCmd() *cobra.Command {
	var host string

	cmd := &cobra.Command{
		Use:   "verify-receipt RECEIPT",
		Short: "Check a vote receipt against a running service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := votingsdk.NewSDKClient(host).VerifyReceipt(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "receipt valid: ballot %s at seq %d (%s)\n", res.BallotID, res.Seq, res.EntryHash)
			return nil
		},
	}
	cmd.Flags().StringVar(&host, "host", "http://localhost:8080", "ballot service URL")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "ballot %s\n", app.BuildVersion)
			return nil
		},
	}
}
