package apiserver

import (
	"github.com/spf13/cobra"

	"github.com/openkcm/employee-dashboard/internal/business"
	"github.com/openkcm/employee-dashboard/internal/cmdutils"
)

func Cmd(buildInfo string) *cobra.Command {
	return cmdutils.CobraCommand(
		"api-server",
		"Employee Dashboard API server",
		"Employee Dashboard API server hosts the JSON API of one dashboard instance",
		buildInfo,
		cmdutils.RunAsService,
		business.Main,
	)
}
