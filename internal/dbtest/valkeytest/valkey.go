// Package valkeytest runs a throwaway ValKey container for backend tests.
package valkeytest

import (
	"context"
	"net"
	"testing"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/require"
	"github.com/valkey-io/valkey-go"

	valkeycontainer "github.com/testcontainers/testcontainers-go/modules/valkey"
	slogctx "github.com/veqryn/slog-context"
)

const image = "valkey/valkey:8-alpine"

// Start launches a ValKey container and returns a connected client. The
// container and the client are released when the test finishes.
func Start(t testing.TB) valkey.Client {
	t.Helper()

	ctx := context.Background()

	valkeyContainer, err := valkeycontainer.Run(ctx, image)
	require.NoError(t, err, "starting ValKey container")

	t.Cleanup(func() {
		if err := valkeyContainer.Terminate(ctx); err != nil {
			slogctx.Error(ctx, "Failed to terminate ValKey container", "error", err)
		}
	})

	port, err := valkeyContainer.MappedPort(ctx, nat.Port("6379"))
	require.NoError(t, err, "mapping ValKey port")

	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress: []string{net.JoinHostPort("localhost", port.Port())},
	})
	require.NoError(t, err, "creating ValKey client")
	t.Cleanup(client.Close)

	return client
}
