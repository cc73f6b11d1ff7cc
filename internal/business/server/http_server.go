package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/samber/oops"

	slogctx "github.com/veqryn/slog-context"

	"github.com/openkcm/employee-dashboard/internal/config"
	"github.com/openkcm/employee-dashboard/internal/dashboard"
	"github.com/openkcm/employee-dashboard/internal/middleware/responsewriter"
	"github.com/openkcm/employee-dashboard/internal/openapi"
)

// newHandler builds the API handler. Every operation is traced and served
// by the dashboard instance of the calling client.
func newHandler(cfg *config.Config, c *clients, m *meters) http.Handler {
	strictHandler := openapi.NewStrictHandlerWithOptions(
		newOpenAPIServer(),
		[]openapi.StrictMiddlewareFunc{
			newTraceMiddleware(cfg, m),
		},
		openapi.StrictHTTPServerOptions{
			RequestErrorHandlerFunc:  requestErrorHandler,
			ResponseErrorHandlerFunc: responseErrorHandler,
		},
	)

	handler := openapi.HandlerWithOptions(strictHandler, openapi.StdHTTPServerOptions{
		ErrorHandlerFunc: requestErrorHandler,
	})
	handler = c.middleware(handler)

	return responsewriter.Middleware(handler)
}

// requestErrorHandler answers requests whose parameters or body could not
// be decoded.
func requestErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	slogctx.Debug(r.Context(), "Rejecting malformed request", "path", r.URL.Path, "error", err)

	body, status := newBadRequest(err.Error())
	writeErrorModel(r.Context(), w, body, status)
}

func responseErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	slogctx.Error(r.Context(), "Failed to write response", "path", r.URL.Path, "error", err)
	writeError(r.Context(), w, err)
}

// createHTTPServer creates an API http server using the given config
func createHTTPServer(ctx context.Context, cfg *config.Config, registry *dashboard.Registry) (*http.Server, error) {
	m, err := newMeters(ctx, cfg)
	if err != nil {
		return nil, err
	}

	csrfSecret, err := config.CSRFSecret(cfg.Clients)
	if err != nil {
		return nil, oops.In("HTTP Server").
			WithContext(ctx).
			Wrapf(err, "Failed to load the csrf secret")
	}

	return &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: newHandler(cfg, newClients(registry, cfg.Clients, csrfSecret), m),
	}, nil
}

// StartHTTPServer starts the HTTP server using the given config and blocks
// until ctx is done.
func StartHTTPServer(ctx context.Context, cfg *config.Config, registry *dashboard.Registry) error {
	server, err := createHTTPServer(ctx, cfg, registry)
	if err != nil {
		return err
	}

	slogctx.Info(ctx, "Starting a listener", "address", server.Addr)

	network, address := splitListenAddress(server.Addr)

	listener, err := new(net.ListenConfig).Listen(ctx, network, address)
	if err != nil {
		return oops.In("HTTP Server").
			WithContext(ctx).
			Wrapf(err, "Failed to create a listener")
	}

	slogctx.Info(ctx, "A listener started", "address", listener.Addr().String())

	go func() {
		slogctx.Info(ctx, "Serving an HTTP server", "address", listener.Addr().String())
		err := server.Serve(listener)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogctx.Error(ctx, "Failed to serve an HTTP server", "error", err)
		}

		slogctx.Info(ctx, "Stopped an HTTP server")
	}()

	<-ctx.Done()

	shutdownCtx, shutdownRelease := context.WithTimeout(context.WithoutCancel(ctx), cfg.HTTP.ShutdownTimeout)
	defer shutdownRelease()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return oops.In("HTTP Server").
			WithContext(ctx).
			Wrapf(err, "Failed shutting down HTTP server")
	}

	slogctx.Info(ctx, "Completed graceful shutdown of HTTP server")

	return nil
}

// splitListenAddress reads addresses in the form network://address, e.g.
// unix:///tmp/api.sock. Plain addresses listen on tcp.
func splitListenAddress(addr string) (network, address string) {
	if network, address, ok := strings.Cut(addr, "://"); ok && network != "" && address != "" {
		return network, address
	}

	return "tcp", addr
}
