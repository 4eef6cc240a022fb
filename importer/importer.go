// Package importer maps tabular CSV input onto stakeholder role fields
// and turns rows into candidate records. The input format is the bare
// one the dashboard accepts: first line comma-separated headers, each
// further line values aligned positionally. There is no quoting or
// embedded-comma support.
package importer

import (
	"strings"

	"github.com/mwalls/impactboard/model"
)

// FieldMapping binds one role field to one CSV column. Column is empty
// while the slot is unmapped.
type FieldMapping struct {
	Field  string `json:"field"`
	Column string `json:"column"`
}

// ParseHeader splits the first line of raw CSV text into trimmed column
// names. Input with no header row fails with EmptyImportFileError.
func ParseHeader(rawText string) ([]string, error) {
	line, _, _ := strings.Cut(rawText, "\n")
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, model.EmptyImportFileError{}
	}

	tokens := strings.Split(line, ",")
	columns := make([]string, len(tokens))
	for i, tok := range tokens {
		columns[i] = strings.TrimSpace(tok)
	}
	return columns, nil
}

// ParseRows returns the data rows following the header, skipping blank
// lines. Values are trimmed the same way headers are.
func ParseRows(rawText string) [][]string {
	lines := strings.Split(rawText, "\n")
	rows := [][]string{}
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		tokens := strings.Split(line, ",")
		row := make([]string, len(tokens))
		for i, tok := range tokens {
			row[i] = strings.TrimSpace(tok)
		}
		rows = append(rows, row)
	}
	return rows
}

// BuildMapping produces one unmapped slot per role field, in field
// order.
func BuildMapping(role model.Role) []FieldMapping {
	mapping := make([]FieldMapping, len(role.Fields))
	for i, f := range role.Fields {
		mapping[i] = FieldMapping{Field: f.Name}
	}
	return mapping
}

// SetMapping assigns a CSV column to the slot for fieldName. Unknown
// fields are ignored.
func SetMapping(mapping []FieldMapping, fieldName, columnName string) []FieldMapping {
	for i := range mapping {
		if mapping[i].Field == fieldName {
			mapping[i].Column = columnName
		}
	}
	return mapping
}

// IsMappingComplete reports whether every required field of the role
// has a column assigned. Optional fields may stay unmapped.
func IsMappingComplete(mapping []FieldMapping, role model.Role) bool {
	assigned := map[string]string{}
	for _, m := range mapping {
		assigned[m.Field] = m.Column
	}
	for _, f := range role.Fields {
		if f.Required && assigned[f.Name] == "" {
			return false
		}
	}
	return true
}

// RowError describes one row that failed validation. Row is the
// 1-based index into the data rows, not counting the header.
type RowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// Report is the outcome of a bulk import: the data of every valid row
// in input order, plus an error entry for every row that failed
// validation. Failing rows are reported, never silently dropped.
type Report struct {
	Valid  []map[string]string `json:"-"`
	Errors []RowError          `json:"errors"`
}

// Run maps each data row through the column mapping and validates the
// resulting candidate record against the role schema. Zero rows yield
// an empty report.
func Run(role model.Role, columns []string, mapping []FieldMapping, rows [][]string) Report {
	columnIndex := map[string]int{}
	for i, c := range columns {
		columnIndex[c] = i
	}

	report := Report{Valid: []map[string]string{}, Errors: []RowError{}}
	for n, row := range rows {
		data := map[string]string{}
		for _, m := range mapping {
			if m.Column == "" {
				continue
			}
			i, ok := columnIndex[m.Column]
			if !ok || i >= len(row) {
				continue
			}
			data[m.Field] = row[i]
		}

		if err := role.Validate(data); err != nil {
			report.Errors = append(report.Errors, RowError{Row: n + 1, Reason: err.Error()})
			continue
		}
		report.Valid = append(report.Valid, data)
	}
	return report
}
