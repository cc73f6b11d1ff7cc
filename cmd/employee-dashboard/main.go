package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/openkcm/common-sdk/pkg/utils"
	"github.com/spf13/cobra"

	slogctx "github.com/veqryn/slog-context"

	"github.com/openkcm/employee-dashboard/cmd/employee-dashboard/apiserver"
	"github.com/openkcm/employee-dashboard/cmd/employee-dashboard/export"
	"github.com/openkcm/employee-dashboard/cmd/employee-dashboard/migrate"
)

// BuildInfo will be set by the build system
var BuildInfo = "{}"

// serviceAnnotation marks commands that keep running until a signal arrives.
// Only those wait for the drain period after their context is done.
const serviceAnnotation = "service"

func versionCmd(buildInfo string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			value, err := utils.ExtractFromComplexValue(buildInfo)
			if err != nil {
				return fmt.Errorf("reading build info: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}
}

func rootCmd(buildInfo string) *cobra.Command {
	var drain time.Duration

	cmd := &cobra.Command{
		Use:           "employee-dashboard",
		Short:         "Employee Dashboard",
		Long:          "Employee Dashboard serves a login gated view over the remote employee table: search, details, salary chart, city map and CSV export.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if _, ok := cmd.Annotations[serviceAnnotation]; !ok || drain <= 0 {
				return
			}

			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Graceful shutdown in %s\n", drain)
			time.Sleep(drain)
		},
	}

	cmd.PersistentFlags().DurationVar(&drain, "graceful-shutdown", time.Second, "time to wait after a service stopped")

	server := apiserver.Cmd(buildInfo)
	server.Annotations = map[string]string{serviceAnnotation: "true"}

	cmd.AddCommand(
		versionCmd(buildInfo),
		server,
		migrate.Cmd(buildInfo),
		export.Cmd(buildInfo),
	)

	return cmd
}

func execute(ctx context.Context, args []string) error {
	cmd := rootCmd(BuildInfo)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		slogctx.Error(ctx, "Employee dashboard failed", "error", err)
		_, _ = fmt.Fprintln(os.Stderr, err)

		return err
	}

	return nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := execute(ctx, os.Args[1:]); err != nil {
		cancel()
		os.Exit(1)
	}
}
