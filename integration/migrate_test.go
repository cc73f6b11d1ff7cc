//go:build integration

package integration_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMigrate(t *testing.T) {
	const cmdName = "migrate"

	istat := initInfra(t, cmdName)
	istat.PreparePostgres(t)
	istat.PrepareConfig(t)

	ctx, cancel := context.WithTimeout(t.Context(), time.Minute)
	defer cancel()

	require.NoError(t, istat.Command(t, ctx, cmdName).Run(), "process exited abnormally")
}
