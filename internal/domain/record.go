package domain

import "strings"

// Record represents one CSV row keyed by header name
type Record map[string]string

// Get returns the trimmed value of a column, empty string when absent
func (r Record) Get(col string) string {
	return strings.TrimSpace(r[col])
}

// Table represents an ordered CSV dataset: header plus rows in encounter order
type Table struct {
	Header []string
	Rows   []Record
}

// NewTable creates an empty table with the given header
func NewTable(header []string) *Table {
	return &Table{
		Header: header,
		Rows:   make([]Record, 0),
	}
}

// Append adds a row at the end of the table
func (t *Table) Append(r Record) {
	t.Rows = append(t.Rows, r)
}

// Len returns the number of data rows (header excluded)
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether the header contains the given column
func (t *Table) HasColumn(col string) bool {
	for _, h := range t.Header {
		if h == col {
			return true
		}
	}
	return false
}

// EmptyRecord returns a record with every header column set to the empty string
func (t *Table) EmptyRecord() Record {
	rec := make(Record, len(t.Header))
	for _, col := range t.Header {
		rec[col] = ""
	}
	return rec
}
