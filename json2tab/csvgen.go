package json2tab

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// GenerateCSV renders a record set as a header row followed by one row
// per record, newline joined with no trailing newline. Header order is
// first-seen column order across the record set; a record missing a
// column emits an empty field. An empty record set yields empty text.
func GenerateCSV(records RecordSet) string {
	if len(records) == 0 {
		return ""
	}

	columns := collectColumns(records)
	rows := make([]string, 0, len(records)+1)

	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = csvField(col)
	}
	rows = append(rows, strings.Join(header, ","))

	for _, rec := range records {
		fields := make([]string, len(columns))
		for i, col := range columns {
			v, ok := rec.Get(col)
			if !ok || v == nil {
				fields[i] = ""
				continue
			}
			fields[i] = csvField(csvString(v))
		}
		rows = append(rows, strings.Join(fields, ","))
	}

	return strings.Join(rows, "\n")
}

func csvString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return formatNumber(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		// Residual containers serialize to their canonical JSON text.
		if text, err := json.Marshal(v); err == nil {
			return string(text)
		}
		return fmt.Sprint(v)
	}
}

// csvField quotes a field when it contains a comma, double quote or line
// break, or when it starts with a character a spreadsheet application
// would treat as a formula.
func csvField(s string) string {
	if !needsQuoting(s) {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func needsQuoting(s string) bool {
	if strings.ContainsAny(s, ",\"\n\r") {
		return true
	}
	if len(s) == 0 {
		return false
	}
	switch s[0] {
	case '=', '+', '-', '@':
		return true
	}
	return false
}
