package employeemock

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/openkcm/employee-dashboard/internal/employee"
)

type SourceOption func(*Source)

// Source is a scripted employee.Source. Each Fetch consumes the next
// scripted result; the last one repeats once the script is exhausted.
type Source struct {
	mu      sync.Mutex
	results []result
	gate    chan struct{}
	calls   atomic.Int32
}

type result struct {
	records employee.Collection
	err     error
}

func WithRecords(records ...employee.Record) SourceOption {
	return func(s *Source) { s.results = append(s.results, result{records: records}) }
}

func WithError(err error) SourceOption {
	return func(s *Source) { s.results = append(s.results, result{err: err}) }
}

// WithGate blocks every Fetch until the gate is closed.
func WithGate(gate chan struct{}) SourceOption {
	return func(s *Source) { s.gate = gate }
}

var _ = employee.Source(&Source{})

func NewSource(opts ...SourceOption) *Source {
	s := &Source{}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *Source) Fetch(ctx context.Context) (employee.Collection, error) {
	s.calls.Add(1)

	if s.gate != nil {
		select {
		case <-s.gate:
		case <-ctx.Done():
			return nil, employee.ErrFetch
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.results) == 0 {
		return employee.Collection{}, nil
	}

	next := s.results[0]
	if len(s.results) > 1 {
		s.results = s.results[1:]
	}

	return next.records, next.err
}

// Calls reports how many fetches were started.
func (s *Source) Calls() int {
	return int(s.calls.Load())
}
