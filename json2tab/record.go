package json2tab

import (
	"fmt"
	"math"
	"strconv"
)

// Record is one flat row produced by the flattener. Keys keep their
// first-seen order so that generated columns follow the order of the
// source document rather than map iteration order.
type Record struct {
	keys   []string
	fields map[string]any
}

type RecordSet []*Record

func NewRecord() *Record {
	return &Record{fields: make(map[string]any)}
}

// Set adds or overwrites a field. A key keeps the position of its first
// insertion.
func (r *Record) Set(key string, value any) {
	if _, ok := r.fields[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.fields[key] = value
}

func (r *Record) Get(key string) (any, bool) {
	v, ok := r.fields[key]
	return v, ok
}

func (r *Record) Has(key string) bool {
	_, ok := r.fields[key]
	return ok
}

func (r *Record) Keys() []string {
	return r.keys
}

func (r *Record) Len() int {
	return len(r.keys)
}

func (r *Record) Clone() *Record {
	clone := &Record{
		keys:   append([]string(nil), r.keys...),
		fields: make(map[string]any, len(r.fields)),
	}
	for k, v := range r.fields {
		clone.fields[k] = v
	}
	return clone
}

// Format selects the generator applied to a record set.
type Format string

const (
	FormatSQL Format = "sql"
	FormatCSV Format = "csv"
)

// Generate dispatches to the generator for the requested format.
func Generate(records RecordSet, format Format, tableName string) (string, error) {
	switch format {
	case FormatSQL:
		return GenerateSQL(records, tableName), nil
	case FormatCSV:
		return GenerateCSV(records), nil
	default:
		return "", fmt.Errorf("unsupported output format %q", format)
	}
}

// collectColumns returns the union of column names across all records in
// first-seen order.
func collectColumns(records RecordSet) []string {
	var columns []string
	seen := make(map[string]bool)
	for _, rec := range records {
		for _, key := range rec.Keys() {
			if !seen[key] {
				seen[key] = true
				columns = append(columns, key)
			}
		}
	}
	return columns
}

// formatNumber renders a float in plain decimal form, never exponent
// notation, so SQL and CSV output stay loadable.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func isFiniteInteger(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f == math.Trunc(f)
}
