package export

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestCSV(t *testing.T) {
	var buf bytes.Buffer

	columns := []string{"category", "name", "planned"}
	rows := [][]string{
		{"venue", "Main hall", "4500.00"},
		{"food", "Catering, per head", "2000.00"},
		{"misc", `Favors "deluxe"`, "150.00"},
	}

	err := CSV(&buf, columns, rows)
	if err != nil {
		t.Fatalf("CSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4: %q", len(lines), buf.String())
	}
	if lines[0] != "category,name,planned" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[2] != `food,"Catering, per head",2000.00` {
		t.Errorf("comma value not quoted: %q", lines[2])
	}
	if lines[3] != `misc,"Favors ""deluxe""",150.00` {
		t.Errorf("quote not escaped: %q", lines[3])
	}
}

func TestCSVNoData(t *testing.T) {
	var buf bytes.Buffer

	err := CSV(&buf, []string{"a", "b"}, nil)
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("CSV() error = %v, want ErrNoData", err)
	}
	if buf.Len() != 0 {
		t.Errorf("no output expected, got %q", buf.String())
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer

	err := JSON(&buf, map[string]int{"total": 3})
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}

	want := "{\n  \"total\": 3\n}\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}
