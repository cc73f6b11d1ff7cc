package views

import (
	"math"
	"strings"
	"unicode"

	"github.com/openkcm/employee-dashboard/internal/employee"
)

const (
	DefaultChartLimit = 10

	maxLabelRunes   = 12
	truncatedRunes  = 11
	labelEllipsis   = "…"
	unknownEmployee = "Unknown"
)

type SalaryBar struct {
	Name   string  `json:"name"`
	Salary float64 `json:"salary"`
}

// TopSalaries charts the first n records in collection order. The records
// are not ranked by salary.
func TopSalaries(records employee.Collection, n int) []SalaryBar {
	if n <= 0 {
		return []SalaryBar{}
	}

	head := records[:min(n, len(records))]
	bars := make([]SalaryBar, 0, len(head))
	for _, r := range head {
		if math.IsNaN(r.Salary) || math.IsInf(r.Salary, 0) {
			continue
		}
		bars = append(bars, SalaryBar{Name: chartLabel(r.Name), Salary: r.Salary})
	}

	return bars
}

func chartLabel(name string) string {
	runes := []rune(name)
	if len(runes) > maxLabelRunes {
		name = strings.TrimRightFunc(string(runes[:truncatedRunes]), unicode.IsSpace) + labelEllipsis
	}
	if name == "" {
		return unknownEmployee
	}

	return name
}
