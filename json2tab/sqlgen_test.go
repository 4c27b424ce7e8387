package json2tab

import (
	"math"
	"strings"
	"testing"
)

func TestColumnProfileSqlType(t *testing.T) {
	tests := []struct {
		name   string
		values []any
		want   string
	}{
		{name: "AllIntegers", values: []any{float64(1), float64(2), float64(3)}, want: "BIGINT"},
		{name: "MixedNumbers", values: []any{float64(1), float64(2.5)}, want: "DOUBLE PRECISION"},
		{name: "NonFiniteNumber", values: []any{float64(1), math.NaN()}, want: "DOUBLE PRECISION"},
		{name: "Booleans", values: []any{true, false}, want: "BOOLEAN"},
		{name: "ShortStrings", values: []any{"a", "b"}, want: "VARCHAR(255)"},
		{name: "LongString", values: []any{strings.Repeat("x", 256)}, want: "TEXT"},
		{name: "StringAndNumber", values: []any{"a", float64(1)}, want: "VARCHAR(255)"},
		{name: "StringAndBool", values: []any{"a", true}, want: "VARCHAR(255)"},
		{name: "OnlyNulls", values: []any{nil, nil}, want: "TEXT"},
		{name: "NullsAndIntegers", values: []any{nil, float64(7)}, want: "BIGINT"},
		{name: "NativeInts", values: []any{0, 1, 2}, want: "BIGINT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := columnProfile{allIntegers: true}
			for _, v := range tt.values {
				p.observe(v)
			}
			if got := p.sqlType(); got != tt.want {
				t.Errorf("columnProfile.sqlType() = %v, want %v", got, tt.want)
			}
		})
	}
}

// sqlStatements strips the timestamped header comment so tests can
// compare the generated statements exactly.
func sqlStatements(t *testing.T, text string) []string {
	t.Helper()
	lines := strings.Split(text, "\n")
	if len(lines) < 5 {
		t.Fatalf("unexpected SQL layout:\n%s", text)
	}
	var out []string
	for _, line := range lines[3:] {
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

func TestGenerateSQL(t *testing.T) {
	tests := []struct {
		name      string
		records   RecordSet
		tableName string
		want      []string
	}{
		{
			name: "TypedColumns",
			records: RecordSet{
				makeRecord("id", float64(1), "name", "Acme", "active", true),
				makeRecord("id", float64(2), "name", "Zenith", "active", false),
			},
			tableName: "companies",
			want: []string{
				`CREATE TABLE "companies" ("id" BIGINT, "name" VARCHAR(255), "active" BOOLEAN);`,
				`INSERT INTO "companies" ("id", "name", "active") VALUES (1, 'Acme', TRUE);`,
				`INSERT INTO "companies" ("id", "name", "active") VALUES (2, 'Zenith', FALSE);`,
			},
		},
		{
			name: "MissingColumnsRenderNull",
			records: RecordSet{
				makeRecord("a", float64(1)),
				makeRecord("b", "x"),
			},
			tableName: "t",
			want: []string{
				`CREATE TABLE "t" ("a" BIGINT, "b" VARCHAR(255));`,
				`INSERT INTO "t" ("a", "b") VALUES (1, NULL);`,
				`INSERT INTO "t" ("a", "b") VALUES (NULL, 'x');`,
			},
		},
		{
			name: "QuoteEscaping",
			records: RecordSet{
				makeRecord("note", "it's fine"),
			},
			tableName: "my table!",
			want: []string{
				`CREATE TABLE "my_table_" ("note" VARCHAR(255));`,
				`INSERT INTO "my_table_" ("note") VALUES ('it''s fine');`,
			},
		},
		{
			name: "NonFiniteValuesRenderNull",
			records: RecordSet{
				makeRecord("v", math.Inf(1)),
				makeRecord("v", float64(2.5)),
			},
			tableName: "t",
			want: []string{
				`CREATE TABLE "t" ("v" DOUBLE PRECISION);`,
				`INSERT INTO "t" ("v") VALUES (NULL);`,
				`INSERT INTO "t" ("v") VALUES (2.5);`,
			},
		},
		{
			name: "FirstSeenColumnOrder",
			records: RecordSet{
				makeRecord("zulu", float64(1)),
				makeRecord("zulu", float64(2), "alpha", "x"),
			},
			tableName: "t",
			want: []string{
				`CREATE TABLE "t" ("zulu" BIGINT, "alpha" VARCHAR(255));`,
				`INSERT INTO "t" ("zulu", "alpha") VALUES (1, NULL);`,
				`INSERT INTO "t" ("zulu", "alpha") VALUES (2, 'x');`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sqlStatements(t, GenerateSQL(tt.records, tt.tableName))
			if len(got) != len(tt.want) {
				t.Fatalf("GenerateSQL() = %v statements, want %v:\n%v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("GenerateSQL() statement %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestGenerateSQLEmptyRecordSet(t *testing.T) {
	got := GenerateSQL(RecordSet{}, "events")
	if !strings.HasPrefix(got, "--") {
		t.Errorf("GenerateSQL() on empty set = %q, want placeholder comment", got)
	}
	if !strings.Contains(got, "events") {
		t.Errorf("GenerateSQL() placeholder %q does not mention the table name", got)
	}
}

func TestGenerateSQLHeaderComment(t *testing.T) {
	got := GenerateSQL(RecordSet{makeRecord("a", float64(1))}, "t")
	lines := strings.Split(got, "\n")
	if !strings.HasPrefix(lines[0], "-- Generated by jsonconv on ") {
		t.Errorf("header line = %q", lines[0])
	}
	if lines[1] != "-- Table: t" {
		t.Errorf("table line = %q", lines[1])
	}
	if lines[2] != "-- Records: 1" {
		t.Errorf("record count line = %q", lines[2])
	}
}

func TestSanitizeTableName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Clean", input: "my_table1", want: "my_table1"},
		{name: "SpacesAndPunctuation", input: "my table; drop", want: "my_table__drop"},
		{name: "Unicode", input: "tablé", want: "tabl_"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeTableName(tt.input); got != tt.want {
				t.Errorf("sanitizeTableName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
