// ABOUTME: Tests for table rendering and styled helpers.
// ABOUTME: Runs with color disabled so output is plain text.
package output

import (
	"bytes"
	"strings"
	"testing"
)

func init() {
	SetNoColor(true)
}

func TestTableAlignsColumns(t *testing.T) {
	tbl := NewTable("DAY", "AVG", "NOTE")
	tbl.AddRow("Jan 2", "180.5", "first")
	tbl.AddRow("Jan 10", "9", "")
	tbl.AddRow("Jan 11")

	lines := strings.Split(strings.TrimRight(tbl.Render(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), tbl.Render())
	}
	if lines[0] != "DAY     AVG    NOTE" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[2] != "Jan 2   180.5  first" {
		t.Errorf("row = %q", lines[2])
	}
	if lines[3] != "Jan 10  9      " {
		t.Errorf("row = %q", lines[3])
	}
	if tbl.Len() != 3 {
		t.Errorf("Len() = %d, want 3", tbl.Len())
	}
}

func TestTableStyledCellsMeasuredVisually(t *testing.T) {
	tbl := NewTable("A", "B")
	tbl.AddRow("\x1b[1mbold\x1b[0m", "x")
	tbl.AddRow("plain", "y")

	lines := strings.Split(tbl.Render(), "\n")
	if !strings.HasPrefix(lines[3], "plain  y") {
		t.Errorf("row = %q", lines[3])
	}
	if !strings.HasSuffix(lines[2], "bold\x1b[0m   x") {
		t.Errorf("styled row = %q", lines[2])
	}
}

func TestEmptyTable(t *testing.T) {
	if got := NewTable().Render(); got != "" {
		t.Errorf("Render() = %q, want empty", got)
	}
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable("ID")
	tbl.AddRow("abc")
	tbl.Fprint(&buf)
	if !strings.Contains(buf.String(), "abc") {
		t.Errorf("Fprint output = %q", buf.String())
	}
}

func TestChange(t *testing.T) {
	tests := []struct {
		delta float64
		want  string
	}{
		{1.31, "▲ +1.3"},
		{-0.5, "▼ -0.5"},
		{0, "─ 0.0"},
	}
	for _, tt := range tests {
		if got := Change(tt.delta); got != tt.want {
			t.Errorf("Change(%v) = %q, want %q", tt.delta, got, tt.want)
		}
	}
}

func TestMetric(t *testing.T) {
	got := Metric("Current", "180.0")
	if got != "Current           180.0" {
		t.Errorf("Metric() = %q", got)
	}
}
