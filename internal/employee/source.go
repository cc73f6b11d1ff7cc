package employee

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	slogctx "github.com/veqryn/slog-context"
)

// ErrFetch is the only error a Source reports. The underlying cause is
// logged and never returned to callers.
var ErrFetch = errors.New("Failed to fetch employees") //nolint:staticcheck

var errInvalidPayload = errors.New("invalid API response format")

// Source yields the full employee collection in one call.
type Source interface {
	Fetch(ctx context.Context) (Collection, error)
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tableResponse struct {
	TableData *struct {
		Data []any `json:"data"`
	} `json:"TABLE_DATA"`
}

// HTTPSource reads the employee table from the remote table endpoint.
type HTTPSource struct {
	client   *http.Client
	endpoint string
	creds    Credentials
	tracer   trace.Tracer
}

var _ = Source(&HTTPSource{})

func NewHTTPSource(client *http.Client, endpoint string, creds Credentials) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}

	return &HTTPSource{
		client:   client,
		endpoint: endpoint,
		creds:    creds,
		tracer:   otel.Tracer("employee-source"),
	}
}

func (s *HTTPSource) Fetch(ctx context.Context) (Collection, error) {
	ctx, span := s.tracer.Start(ctx, "fetch-employees", trace.WithAttributes(
		attribute.String("endpoint", s.endpoint),
	))
	defer span.End()

	records, err := s.fetch(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, ErrFetch.Error())
		slogctx.Warn(ctx, "Failed to fetch employees", "endpoint", s.endpoint, "error", err)

		return nil, ErrFetch
	}

	span.SetAttributes(attribute.Int("records", len(records)))
	slogctx.Debug(ctx, "Fetched employees", "records", len(records))

	return records, nil
}

func (s *HTTPSource) fetch(ctx context.Context) (Collection, error) {
	body, err := json.Marshal(s.creds)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("table endpoint returned status: %d", resp.StatusCode)
	}

	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()

	var payload tableResponse
	if err := decoder.Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if payload.TableData == nil || payload.TableData.Data == nil {
		return nil, errInvalidPayload
	}

	return Normalize(payload.TableData.Data), nil
}
