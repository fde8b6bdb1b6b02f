package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		maxLen int
		want   string
	}{
		{"short", "abc", 10, "abc"},
		{"exact", "abcde", 5, "abcde"},
		{"long", "abcdefghij", 4, "abcd...(10 bytes)"},
		{"disabled", "abcdefghij", 0, "abcdefghij"},
		{"rune boundary", "héllo", 2, "h...(6 bytes)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.in, tt.maxLen); got != tt.want {
				t.Errorf("Clamp(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestClampAttr_Group(t *testing.T) {
	a := slog.Group("entry",
		slog.String("key", "k"),
		slog.String("value", strings.Repeat("x", 20)),
		slog.Int("n", 3),
	)

	got := clampAttr(a, 8)
	attrs := got.Value.Group()
	if attrs[0].Value.String() != "k" {
		t.Errorf("short attr changed: %q", attrs[0].Value.String())
	}
	if attrs[1].Value.String() != "xxxxxxxx...(20 bytes)" {
		t.Errorf("long attr = %q", attrs[1].Value.String())
	}
	if attrs[2].Value.Int64() != 3 {
		t.Errorf("int attr changed: %v", attrs[2].Value)
	}
}

func TestLogger_ClampsValues(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{
		Level:       "info",
		Format:      "json",
		Output:      &buf,
		MaxValueLen: 16,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	l.Info("sampled", "value", strings.Repeat("v", 100))

	var logEntry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}

	v, _ := logEntry["value"].(string)
	if !strings.HasSuffix(v, "...(100 bytes)") || len(v) > 40 {
		t.Errorf("value not clamped: %q", v)
	}
}

func TestClampAttr_SampledValues(t *testing.T) {
	row := make([]any, 50)
	for i := range row {
		row[i] = "cell"
	}

	tests := []struct {
		name    string
		attr    slog.Attr
		clamped bool
	}{
		{"slice value", slog.Any("value", row), true},
		{"map value", slog.Any("value", map[string]any{"body": strings.Repeat("b", 64)}), true},
		{"short map", slog.Any("value", map[string]any{"a": 1}), false},
		{"error", slog.Any("error", errors.New("boom")), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clampAttr(tt.attr, 32)
			if !tt.clamped {
				if got.Value.Kind() != slog.KindAny {
					t.Errorf("short value rewritten to %v", got.Value.Kind())
				}
				return
			}
			s := got.Value.String()
			if got.Value.Kind() != slog.KindString || !strings.Contains(s, "...(") {
				t.Errorf("value not clamped: %q", s)
			}
		})
	}
}

func TestLogger_ClampsCompositeValuesInJSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "debug", Format: "json", Output: &buf, MaxValueLen: 24})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	l.Debug("drew entry", "draw", 1, "value", []string{strings.Repeat("a", 30), strings.Repeat("b", 30)})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	v, ok := entry["value"].(string)
	if !ok || !strings.HasSuffix(v, "bytes)") || strings.Contains(v, "bbbb") {
		t.Errorf("value = %#v", entry["value"])
	}
	if entry["draw"] != float64(1) {
		t.Errorf("draw = %v", entry["draw"])
	}
}
