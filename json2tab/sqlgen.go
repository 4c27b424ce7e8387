package json2tab

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const MAX_VARCHAR_SIZE = 255

var tableNamePattern = regexp.MustCompile(`[^A-Za-z0-9_]`)

// columnProfile summarises the value kinds observed in one column.
// Recomputed per generation call, never persisted.
type columnProfile struct {
	sawBool     bool
	sawNumber   bool
	sawString   bool
	allIntegers bool
	maxLength   int
}

// sqlType infers the column type with priority boolean, numeric, string.
// A column with no non-null values defaults to TEXT.
func (p columnProfile) sqlType() string {
	switch {
	case !p.sawBool && !p.sawNumber && !p.sawString:
		return "TEXT"
	case p.sawBool && !p.sawNumber && !p.sawString:
		return "BOOLEAN"
	case p.sawNumber && !p.sawString:
		if p.allIntegers {
			return "BIGINT"
		}
		return "DOUBLE PRECISION"
	default:
		if p.maxLength <= MAX_VARCHAR_SIZE {
			return "VARCHAR(" + strconv.Itoa(MAX_VARCHAR_SIZE) + ")"
		}
		return "TEXT"
	}
}

func (p *columnProfile) observe(value any) {
	switch v := value.(type) {
	case nil:
	case bool:
		p.sawBool = true
	case float64:
		p.sawNumber = true
		if !isFiniteInteger(v) {
			p.allIntegers = false
		}
	case int:
		p.sawNumber = true
	case int64:
		p.sawNumber = true
	case string:
		p.sawString = true
		if len(v) > p.maxLength {
			p.maxLength = len(v)
		}
	default:
		// Residual containers count as their serialized string form.
		p.sawString = true
		if text, err := json.Marshal(v); err == nil && len(text) > p.maxLength {
			p.maxLength = len(text)
		}
	}
}

// GenerateSQL renders a record set as one CREATE TABLE statement followed
// by one INSERT per record. Column order is first-seen order across the
// record set. An empty record set yields a placeholder comment rather
// than an error.
//
// Values are escaped as SQL literals (single quotes doubled), not bound
// as prepared-statement parameters; the output is a script, not a query
// plan.
func GenerateSQL(records RecordSet, tableName string) string {
	table := sanitizeTableName(tableName)
	if len(records) == 0 {
		return "-- No records to generate for table " + table
	}

	columns := collectColumns(records)
	profiles := make(map[string]*columnProfile, len(columns))
	for _, col := range columns {
		profiles[col] = &columnProfile{allIntegers: true}
	}
	for _, rec := range records {
		for _, col := range columns {
			if v, ok := rec.Get(col); ok {
				profiles[col].observe(v)
			}
		}
	}

	defs := make([]string, len(columns))
	quoted := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = quoteIdentifier(col)
		defs[i] = quoted[i] + " " + profiles[col].sqlType()
	}
	columnList := strings.Join(quoted, ", ")

	var b strings.Builder
	b.WriteString("-- Generated by jsonconv on " + time.Now().UTC().Format(time.RFC3339) + "\n")
	b.WriteString("-- Table: " + table + "\n")
	b.WriteString("-- Records: " + strconv.Itoa(len(records)) + "\n")
	b.WriteString("\n")
	b.WriteString("CREATE TABLE " + quoteIdentifier(table) + " (" + strings.Join(defs, ", ") + ");")
	b.WriteString("\n\n")

	inserts := make([]string, len(records))
	for i, rec := range records {
		values := make([]string, len(columns))
		for j, col := range columns {
			v, ok := rec.Get(col)
			if !ok {
				values[j] = "NULL"
				continue
			}
			values[j] = sqlLiteral(v)
		}
		inserts[i] = "INSERT INTO " + quoteIdentifier(table) + " (" + columnList + ") VALUES (" + strings.Join(values, ", ") + ");"
	}
	b.WriteString(strings.Join(inserts, "\n"))

	return b.String()
}

// sanitizeTableName replaces every character outside [A-Za-z0-9_] with an
// underscore. Names that collide after sanitization are not detected.
func sanitizeTableName(name string) string {
	return tableNamePattern.ReplaceAllString(name, "_")
}

func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func sqlLiteral(value any) string {
	switch v := value.(type) {
	case nil:
		return "NULL"
	case bool:
		if v {
			return "TRUE"
		}
		return "FALSE"
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return "NULL"
		}
		return formatNumber(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case string:
		return quoteStringLiteral(v)
	default:
		if text, err := json.Marshal(v); err == nil {
			return quoteStringLiteral(string(text))
		}
		return quoteStringLiteral(fmt.Sprint(v))
	}
}

func quoteStringLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
