package server

import (
	"context"
	"net/http"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/openkcm/common-sdk/pkg/commoncfg"
	"github.com/openkcm/common-sdk/pkg/otlp"
	"github.com/samber/oops"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	slogctx "github.com/veqryn/slog-context"

	"github.com/openkcm/employee-dashboard/internal/config"
	"github.com/openkcm/employee-dashboard/internal/openapi"
)

const headerRequestID = "X-Request-Id"

// meters are the request instruments of the API. A nil *meters records
// nothing.
type meters struct {
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

func newMeters(ctx context.Context, cfg *config.Config) (*meters, error) {
	meter := otel.Meter(
		"employee-dashboard/"+cfg.Application.Name,
		metric.WithInstrumentationVersion(otel.Version()),
		metric.WithInstrumentationAttributes(otlp.CreateAttributesFrom(cfg.Application)...),
	)

	requests, err := meter.Int64Counter(
		"dashboard.api.requests",
		metric.WithDescription("Dashboard API requests by operation and status"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, oops.In("HTTP Server").WithContext(ctx).Wrapf(err, "creating request counter")
	}

	duration, err := meter.Float64Histogram(
		"dashboard.api.duration",
		metric.WithDescription("Dashboard API request duration"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, oops.In("HTTP Server").WithContext(ctx).Wrapf(err, "creating duration histogram")
	}

	return &meters{requests: requests, duration: duration}, nil
}

func (m *meters) record(ctx context.Context, elapsed time.Duration, attrs ...attribute.KeyValue) {
	if m == nil {
		return
	}

	opt := metric.WithAttributes(attrs...)
	m.requests.Add(ctx, 1, opt)
	m.duration.Record(ctx, float64(elapsed.Microseconds())/1000, opt)
}

// requestID reuses the id sent by the caller so that logs of a proxy and
// the dashboard can be joined.
func requestID(r *http.Request) string {
	if id := r.Header.Get(headerRequestID); id != "" {
		return id
	}

	return uuid.NewString()
}

// newTraceMiddleware covers the openapi.StrictServerInterface with a span,
// a request id, request logs and request metrics.
func newTraceMiddleware(cfg *config.Config, m *meters) openapi.StrictMiddlewareFunc {
	return func(f openapi.StrictHandlerFunc, operationID string) openapi.StrictHandlerFunc {
		opAttr := attribute.String(commoncfg.AttrOperation, operationID)
		traceAttrs := otlp.CreateAttributesFrom(cfg.Application, opAttr)
		tracer := otel.Tracer(operationID, trace.WithInstrumentationAttributes(traceAttrs...))

		return func(ctx context.Context, w http.ResponseWriter, r *http.Request, request any) (any, error) {
			id := requestID(r)
			w.Header().Set(headerRequestID, id)

			ctx = slogctx.With(ctx,
				commoncfg.AttrRequestID, id,
				commoncfg.AttrOperation, operationID,
			)

			ctx = otel.GetTextMapPropagator().Extract(ctx, propagation.HeaderCarrier(r.Header))
			ctx, span := tracer.Start(ctx, operationID, trace.WithAttributes(traceAttrs...))
			defer span.End()

			start := time.Now()
			slogctx.Debug(ctx, "Processing request", "method", r.Method, "path", r.URL.Path)

			response, err := f(ctx, w, r, request)

			status := responseStatus(response, err)
			if err != nil {
				span.RecordError(err)
			}
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}
			span.SetAttributes(attribute.Int("http.response.status_code", status))

			elapsed := time.Since(start)
			m.record(ctx, elapsed,
				opAttr,
				attribute.Int("http.response.status_code", status),
				attribute.String("user_agent.original", r.UserAgent()),
			)
			slogctx.Info(ctx, "Finished request", "status", status, "duration", elapsed)

			return response, err
		}
	}
}

// responseStatus reads the status a strict response is going to be
// written with. Error responses carry it in their StatusCode field; the
// remaining responses have the status fixed by their type.
func responseStatus(response any, err error) int {
	if err != nil {
		_, status := toErrorModel(err)
		return status
	}

	if _, ok := response.(openapi.ExportEmployees204Response); ok {
		return http.StatusNoContent
	}

	v := reflect.ValueOf(response)
	if v.Kind() == reflect.Struct {
		if code := v.FieldByName("StatusCode"); code.IsValid() && code.Kind() == reflect.Int {
			return int(code.Int())
		}
	}

	return http.StatusOK
}
