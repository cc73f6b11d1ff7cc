package export

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/openkcm/employee-dashboard/internal/business"
	"github.com/openkcm/employee-dashboard/internal/cmdutils"
	"github.com/openkcm/employee-dashboard/internal/config"
	"github.com/openkcm/employee-dashboard/internal/views"
)

func Cmd(buildInfo string) *cobra.Command {
	var output string

	cmd := cmdutils.CobraCommand(
		"export",
		"Export employees as CSV",
		"Fetches the employee table once and writes it as CSV",
		buildInfo,
		cmdutils.RunAsJob,
		func(ctx context.Context, cfg *config.Config) error {
			return business.ExportMain(output)(ctx, cfg)
		},
	)

	cmd.Flags().StringVarP(&output, "output", "o", views.CSVFileName, "file to write")

	return cmd
}
