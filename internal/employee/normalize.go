package employee

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	minRowFields = 6

	nameField   = 0
	cityField   = 2
	idField     = 3
	salaryField = 5

	minAge   = 22
	ageRange = 35
)

var salaryReplacer = strings.NewReplacer("$", "", ",", "")

// Normalize converts the raw table rows into records, dropping rows that are
// not arrays, are too short, or lack a name or an id.
func Normalize(rows []any) Collection {
	records := make(Collection, 0, len(rows))
	for _, row := range rows {
		record, ok := NormalizeRow(row)
		if !ok {
			continue
		}
		records = append(records, record)
	}

	return records
}

func NormalizeRow(row any) (Record, bool) {
	fields, ok := row.([]any)
	if !ok || len(fields) < minRowFields {
		return Record{}, false
	}

	name := strings.TrimSpace(fieldString(fields[nameField]))
	city := strings.TrimSpace(fieldString(fields[cityField]))
	id := strings.TrimSpace(fieldString(fields[idField]))

	if name == "" || id == "" {
		return Record{}, false
	}

	return Record{
		ID:     id,
		Name:   name,
		City:   city,
		Salary: ParseSalary(fields[salaryField]),
		Age:    DeriveAge(id),
	}, true
}

// ParseSalary reads amounts such as "$320,800". Only text cells carry a
// salary: numeric cells and anything else that does not yield a finite
// number become 0.
func ParseSalary(value any) float64 {
	raw, ok := value.(string)
	if !ok {
		return 0
	}

	cleaned := strings.TrimSpace(salaryReplacer.Replace(raw))
	if cleaned == "" {
		return 0
	}

	salary, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(salary) || math.IsInf(salary, 0) {
		return 0
	}

	return salary
}

// DeriveAge maps an id onto [22, 56] using only the digits of the id.
// The remainder is computed digit by digit so ids longer than any integer
// type still produce a stable value.
func DeriveAge(id string) int {
	rem := 0
	for _, r := range id {
		if r < '0' || r > '9' {
			continue
		}
		rem = (rem*10 + int(r-'0')) % ageRange
	}

	return minAge + rem
}

func fieldString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
