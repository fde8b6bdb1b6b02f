package output

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/yndnr/tabsample/pkg/table"
)

type fixtureRow struct {
	Shape   string        `json:"shape"`
	Size    int           `json:"size"`
	Mean    time.Duration `json:"mean"`
	RunID   string        `json:"run_id" table:"wide"`
	private string
	Skipped string `table:"-"`
}

func render(t *testing.T, f *TableFormatter, data any) string {
	t.Helper()
	var buf bytes.Buffer
	if err := f.Format(&buf, data); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	return buf.String()
}

func TestTableFormatter_Format_Table(t *testing.T) {
	tbl := &Table{Headers: []string{"SHAPE", "VERDICT"}}
	tbl.AddRow("dense", "dense(100)")
	tbl.AddRow("strings", "sparse")

	out := render(t, &TableFormatter{}, tbl)
	want := "SHAPE    VERDICT\ndense    dense(100)\nstrings  sparse\n"
	if out != want {
		t.Errorf("Format() =\n%q\nwant\n%q", out, want)
	}

	// Value receiver renders the same way.
	if out2 := render(t, &TableFormatter{}, *tbl); out2 != want {
		t.Errorf("Format(Table) = %q, want %q", out2, want)
	}
}

func TestTableFormatter_Format_NoHeaders(t *testing.T) {
	tbl := &Table{Headers: []string{"A"}}
	tbl.AddRow("x")

	out := render(t, &TableFormatter{NoHeaders: true}, tbl)
	if out != "x\n" {
		t.Errorf("Format() = %q, want %q", out, "x\n")
	}
}

func TestTableFormatter_Format_Nil(t *testing.T) {
	if out := render(t, &TableFormatter{}, nil); out != "" {
		t.Errorf("Format(nil) = %q, want empty", out)
	}
}

func TestTableFormatter_Format_Slice(t *testing.T) {
	rows := []fixtureRow{
		{Shape: "dense", Size: 100, Mean: 150 * time.Nanosecond, RunID: "01J", private: "p", Skipped: "s"},
		{Shape: "holey", Size: 10, Mean: 2 * time.Microsecond},
	}

	out := render(t, &TableFormatter{}, rows)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("Format() lines = %d, want 3:\n%s", len(lines), out)
	}
	if got := strings.Fields(lines[0]); !reflect.DeepEqual(got, []string{"SHAPE", "SIZE", "MEAN"}) {
		t.Errorf("headers = %v", got)
	}
	if got := strings.Fields(lines[1]); !reflect.DeepEqual(got, []string{"dense", "100", "150ns"}) {
		t.Errorf("row 1 = %v", got)
	}
	if got := strings.Fields(lines[2]); !reflect.DeepEqual(got, []string{"holey", "10", "2µs"}) {
		t.Errorf("row 2 = %v", got)
	}
}

func TestTableFormatter_Format_SliceWide(t *testing.T) {
	rows := []*fixtureRow{{Shape: "dense", Size: 1, RunID: "01JABC"}, nil}

	out := render(t, &TableFormatter{Wide: true}, rows)
	if !strings.Contains(out, "RUN_ID") || !strings.Contains(out, "01JABC") {
		t.Errorf("wide output missing run_id column:\n%s", out)
	}
	if strings.Contains(out, "SKIPPED") || strings.Contains(out, "PRIVATE") {
		t.Errorf("hidden fields rendered:\n%s", out)
	}
	if n := strings.Count(out, "\n"); n != 2 {
		t.Errorf("nil elements should be skipped, got %d lines", n)
	}
}

func TestTableFormatter_Format_EmptySlice(t *testing.T) {
	out := render(t, &TableFormatter{}, []fixtureRow{})
	if strings.TrimSpace(out) != "SHAPE  SIZE  MEAN" {
		t.Errorf("Format(empty) = %q", out)
	}
}

func TestTableFormatter_Format_ScalarSlice(t *testing.T) {
	out := render(t, &TableFormatter{}, []any{"a", 2, nil})
	want := "VALUE\na\n2\nnull\n"
	if out != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestTableFormatter_Format_Map(t *testing.T) {
	out := render(t, &TableFormatter{}, map[string]int{"iterations": 10})
	if !strings.Contains(out, "KEY") || !strings.Contains(out, "iterations") || !strings.Contains(out, "10") {
		t.Errorf("Format(map) =\n%s", out)
	}
}

func TestTableFormatter_Format_SingleStruct(t *testing.T) {
	out := render(t, &TableFormatter{}, &fixtureRow{Shape: "mixed", Size: 4})
	for _, want := range []string{"FIELD", "shape", "mixed", "size", "4"} {
		if !strings.Contains(out, want) {
			t.Errorf("Format(struct) missing %q:\n%s", want, out)
		}
	}
}

func TestTableFormatter_Format_FallbackToJSON(t *testing.T) {
	out := render(t, &TableFormatter{}, 42)
	if strings.TrimSpace(out) != "42" {
		t.Errorf("Format(42) = %q, want JSON 42", out)
	}
}

func TestTable_RenderWithOptions_NoRows(t *testing.T) {
	tbl := &Table{}
	tbl.SetHeaders("A", "B")

	var buf bytes.Buffer
	if err := tbl.Render(&buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if buf.String() != "A  B\n" {
		t.Errorf("Render() = %q", buf.String())
	}
}

func TestFormatValue(t *testing.T) {
	var nilPtr *int
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "x", "x"},
		{"empty string", "", "-"},
		{"int", -3, "-3"},
		{"uint", uint8(7), "7"},
		{"float", 2.5, "2.5"},
		{"bool", true, "true"},
		{"duration", 1500 * time.Millisecond, "1.5s"},
		{"stringer key", table.StringKey("k"), `"k"`},
		{"int key", table.IntKey(3), "3"},
		{"slice", []int{1, 2}, "[1,2]"},
		{"map", map[string]int{"a": 1}, `{"a":1}`},
		{"nil pointer", nilPtr, "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatValue(reflect.ValueOf(tt.in)); got != tt.want {
				t.Errorf("formatValue(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatValue_Time(t *testing.T) {
	tm := time.Date(2024, 6, 15, 14, 30, 5, 0, time.UTC)
	if got := formatValue(reflect.ValueOf(tm)); got != "2024-06-15 14:30:05" {
		t.Errorf("formatValue(time) = %q", got)
	}
	if got := formatValue(reflect.ValueOf(time.Time{})); got != "-" {
		t.Errorf("formatValue(zero time) = %q, want -", got)
	}
}

func TestFormatValue_Invalid(t *testing.T) {
	if got := formatValue(reflect.Value{}); got != "" {
		t.Errorf("formatValue(invalid) = %q, want empty", got)
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"Shape":      "Shape",
		"RunID":      "Run_I_D",
		"run_id":     "run_id",
		"LargeValue": "Large_Value",
	}
	for in, want := range tests {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
