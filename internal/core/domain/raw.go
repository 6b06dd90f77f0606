package domain

import (
	"sort"
	"strings"
)

// RawRecord is one ingested CSV row before normalisation.
// Column names and values are kept as parsed; nothing is validated.
type RawRecord struct {
	// Line is the 1-based line number in the source file (0 if unknown).
	Line int

	fields map[string]string
}

// NewRawRecord creates a record from a column → value mapping.
// Column names are trimmed so that stray header whitespace does not hide a field.
func NewRawRecord(line int, fields map[string]string) RawRecord {
	cleaned := make(map[string]string, len(fields))
	for k, v := range fields {
		cleaned[strings.TrimSpace(k)] = v
	}
	return RawRecord{Line: line, fields: cleaned}
}

// Has reports whether the record carries the given column.
func (r RawRecord) Has(column string) bool {
	_, ok := r.fields[column]
	return ok
}

// HasAny reports whether the record carries at least one of the columns.
func (r RawRecord) HasAny(columns ...string) bool {
	for _, c := range columns {
		if r.Has(c) {
			return true
		}
	}
	return false
}

// Get returns the trimmed value of a column, or "" when missing.
func (r RawRecord) Get(column string) string {
	return strings.TrimSpace(r.fields[column])
}

// Columns returns the record's column names in sorted order.
func (r RawRecord) Columns() []string {
	cols := make([]string, 0, len(r.fields))
	for k := range r.fields {
		cols = append(cols, k)
	}
	sort.Strings(cols)
	return cols
}

// IsBlank reports whether every value in the record is empty.
func (r RawRecord) IsBlank() bool {
	for _, v := range r.fields {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
