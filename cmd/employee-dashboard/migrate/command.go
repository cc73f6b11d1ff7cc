package migrate

import (
	"github.com/spf13/cobra"

	"github.com/openkcm/employee-dashboard/internal/business"
	"github.com/openkcm/employee-dashboard/internal/cmdutils"
)

func Cmd(buildInfo string) *cobra.Command {
	return cmdutils.CobraCommand(
		"migrate",
		"Employee Dashboard migrations",
		"Applies the schema of the postgres storage backend",
		buildInfo,
		cmdutils.RunAsJob,
		business.MigrateMain,
	)
}
