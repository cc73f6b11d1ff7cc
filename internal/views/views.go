// Package views derives read models from an employee collection. Every
// function is pure and recomputed on each call; none of them mutates its
// input.
package views

import (
	"strings"

	"github.com/openkcm/employee-dashboard/internal/employee"
)

// Filter keeps the records whose name or city contains the query,
// ignoring case. A blank query returns records itself.
func Filter(records employee.Collection, query string) employee.Collection {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return records
	}

	matches := make(employee.Collection, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Name), q) || strings.Contains(strings.ToLower(r.City), q) {
			matches = append(matches, r)
		}
	}

	return matches
}

// FindByID returns the first record with the given id.
func FindByID(records employee.Collection, id string) (employee.Record, bool) {
	for _, r := range records {
		if r.ID == id {
			return r, true
		}
	}

	return employee.Record{}, false
}
