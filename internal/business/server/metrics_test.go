package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openkcm/common-sdk/pkg/commoncfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openkcm/employee-dashboard/internal/config"
	"github.com/openkcm/employee-dashboard/internal/openapi"
	"github.com/openkcm/employee-dashboard/internal/serviceerr"
)

func metricsConfig() *config.Config {
	return &config.Config{
		BaseConfig: commoncfg.BaseConfig{
			Application: commoncfg.Application{Name: "employee-dashboard", Environment: "test"},
		},
	}
}

func TestNewMeters(t *testing.T) {
	m, err := newMeters(t.Context(), metricsConfig())
	require.NoError(t, err)
	assert.NotNil(t, m.requests)
	assert.NotNil(t, m.duration)
}

func TestMeters_NilRecordsNothing(t *testing.T) {
	var m *meters
	assert.NotPanics(t, func() { m.record(t.Context(), 0) })
}

func TestTraceMiddleware(t *testing.T) {
	cfg := metricsConfig()
	m, err := newMeters(t.Context(), cfg)
	require.NoError(t, err)

	session := openapi.GetSession200JSONResponse{Authenticated: true}

	tests := []struct {
		name      string
		meters    *meters
		handler   openapi.StrictHandlerFunc
		header    map[string]string
		wantResp  any
		assertErr assert.ErrorAssertionFunc
	}{
		{
			name:   "Success",
			meters: m,
			handler: func(context.Context, http.ResponseWriter, *http.Request, any) (any, error) {
				return session, nil
			},
			wantResp:  session,
			assertErr: assert.NoError,
		},
		{
			name:   "Error response",
			meters: m,
			handler: func(context.Context, http.ResponseWriter, *http.Request, any) (any, error) {
				body, status := toErrorModel(serviceerr.ErrUnauthorized)
				return openapi.GetSessiondefaultJSONResponse{Body: body, StatusCode: status}, nil
			},
			wantResp: openapi.GetSessiondefaultJSONResponse{
				Body:       openapi.ErrorModel{Error: "unauthorized", ErrorDescription: optional("authentication required")},
				StatusCode: http.StatusUnauthorized,
			},
			assertErr: assert.NoError,
		},
		{
			name:   "Handler error",
			meters: m,
			handler: func(context.Context, http.ResponseWriter, *http.Request, any) (any, error) {
				return nil, assert.AnError
			},
			assertErr: func(t assert.TestingT, err error, _ ...any) bool {
				return assert.ErrorIs(t, err, assert.AnError)
			},
		},
		{
			name:   "Without meters",
			meters: nil,
			handler: func(context.Context, http.ResponseWriter, *http.Request, any) (any, error) {
				return session, nil
			},
			wantResp:  session,
			assertErr: assert.NoError,
		},
		{
			name:   "Parent trace context",
			meters: m,
			header: map[string]string{"Traceparent": "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"},
			handler: func(context.Context, http.ResponseWriter, *http.Request, any) (any, error) {
				return session, nil
			},
			wantResp:  session,
			assertErr: assert.NoError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := newTraceMiddleware(cfg, tt.meters)(tt.handler, "GetSession")

			req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()

			resp, err := wrapped(t.Context(), w, req, openapi.GetSessionRequestObject{})

			tt.assertErr(t, err)
			assert.Equal(t, tt.wantResp, resp)
			assert.NotEmpty(t, w.Header().Get(headerRequestID))
		})
	}
}

func TestTraceMiddleware_RequestID(t *testing.T) {
	wrapped := newTraceMiddleware(metricsConfig(), nil)(func(context.Context, http.ResponseWriter, *http.Request, any) (any, error) {
		return openapi.GetSession200JSONResponse{}, nil
	}, "GetSession")

	t.Run("Reuses the caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
		req.Header.Set(headerRequestID, "req-42")
		w := httptest.NewRecorder()

		_, err := wrapped(t.Context(), w, req, nil)
		require.NoError(t, err)
		assert.Equal(t, "req-42", w.Header().Get(headerRequestID))
	})

	t.Run("Generates a fresh id per request", func(t *testing.T) {
		ids := map[string]bool{}
		for range 3 {
			w := httptest.NewRecorder()
			_, err := wrapped(t.Context(), w, httptest.NewRequest(http.MethodGet, "/api/session", nil), nil)
			require.NoError(t, err)
			ids[w.Header().Get(headerRequestID)] = true
		}
		assert.Len(t, ids, 3)
	})
}

func TestResponseStatus(t *testing.T) {
	tests := []struct {
		name     string
		response any
		err      error
		want     int
	}{
		{name: "JSON response", response: openapi.GetTheme200JSONResponse{Theme: "dark"}, want: http.StatusOK},
		{name: "Slice response", response: openapi.GetNotifications200JSONResponse{}, want: http.StatusOK},
		{name: "No content", response: openapi.ExportEmployees204Response{}, want: http.StatusNoContent},
		{
			name:     "Default response",
			response: openapi.GetChartdefaultJSONResponse{StatusCode: http.StatusBadGateway},
			want:     http.StatusBadGateway,
		},
		{name: "Service error", err: serviceerr.ErrNotFound, want: http.StatusNotFound},
		{name: "Other error", err: assert.AnError, want: http.StatusInternalServerError},
		{name: "Nil response", want: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, responseStatus(tt.response, tt.err))
		})
	}
}
