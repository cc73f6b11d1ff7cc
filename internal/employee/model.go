// Package employee owns the employee records: fetching them from the remote
// table endpoint, normalizing raw rows and caching the collection that every
// dashboard view reads from.
package employee

// Record is one normalized employee row. Records are values and are never
// modified after normalization.
type Record struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	City   string  `json:"city"`
	Salary float64 `json:"salary"`
	Age    int     `json:"age"`
}

// Collection keeps the source order. Holders of a Collection must treat it
// as read-only; it is shared by every view.
type Collection []Record

type FetchState int

const (
	StateIdle FetchState = iota
	StateLoading
	StateReady
	StateFailed
)

func (s FetchState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
