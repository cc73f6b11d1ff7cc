package views

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/openkcm/employee-dashboard/internal/employee"
)

const (
	CSVFileName = "employees.csv"

	csvLineBreak = "\r\n"
)

var csvHeader = []string{"ID", "Name", "Salary", "City", "Age"}

// WriteCSV writes the header and one row per record. Rows are separated by
// CRLF and the last row has no terminator. Fields are quoted by
// encoding/csv, which besides commas, quotes and line breaks also quotes a
// field that starts with a space. An empty collection writes nothing at all.
func WriteCSV(w io.Writer, records employee.Collection) error {
	if len(records) == 0 {
		return nil
	}

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	cw.UseCRLF = true

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write(csvRow(r)); err != nil {
			return fmt.Errorf("writing csv row %q: %w", r.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}

	if _, err := w.Write(bytes.TrimSuffix(buf.Bytes(), []byte(csvLineBreak))); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}

	return nil
}

func csvRow(r employee.Record) []string {
	salary := ""
	if !math.IsNaN(r.Salary) && !math.IsInf(r.Salary, 0) {
		salary = strconv.FormatFloat(r.Salary, 'f', -1, 64)
	}

	return []string{r.ID, r.Name, salary, r.City, strconv.Itoa(r.Age)}
}
