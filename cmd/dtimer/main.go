package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"dtimer/internal/bootstrap"
	"dtimer/internal/modules/account/dto"
	"dtimer/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootFlags struct {
	configPath string
	overrides  config.Overrides
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "dtimer",
		Short:         "D-timer: local login and stopwatch",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), flags)
		},
	}
	root.PersistentFlags().StringVar(&flags.overrides.DBPath, "db", "", "account database file (default "+config.DefaultDBPath+")")
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&flags.overrides.LogFile, "log-file", "", "append logs to this file")

	root.AddCommand(newTUICmd(flags))
	root.AddCommand(newAccountCmd(flags))
	return root
}

func loadApp(ctx context.Context, flags *rootFlags) (*bootstrap.App, error) {
	cfg, err := config.Load(flags.configPath, flags.overrides)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(ctx, cfg)
}

func runTUI(ctx context.Context, flags *rootFlags) error {
	app, err := loadApp(ctx, flags)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()
	return bootstrap.RunTUI(app)
}

func newTUICmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the D-timer terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), flags)
		},
	}
}

func newAccountCmd(flags *rootFlags) *cobra.Command {
	account := &cobra.Command{Use: "account", Short: "Manage local accounts"}

	account.AddCommand(&cobra.Command{
		Use:   "create <username> <password>",
		Short: "Create a local account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			notice, err := app.AccountCLI.CreateAccount(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return printNotice(cmd.OutOrStdout(), notice)
		},
	})

	account.AddCommand(&cobra.Command{
		Use:   "check <username> <password>",
		Short: "Check credentials without opening the UI",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			notice, err := app.AccountCLI.Check(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return printNotice(cmd.OutOrStdout(), notice)
		},
	})
	return account
}

// printNotice writes the dialog text; error notices become the command error
// so the exit status reflects them.
func printNotice(w io.Writer, n dto.Notice) error {
	if n.Kind == dto.NoticeError {
		return fmt.Errorf("%s: %s", n.Title, n.Message)
	}
	_, _ = fmt.Fprintf(w, "%s: %s\n", n.Title, n.Message)
	return nil
}
