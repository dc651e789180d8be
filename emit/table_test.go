package emit

import (
	"bytes"
	"strings"
	"testing"
)

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	err := Table(&buf, params(t, `{"all": [
		{"id": 2, "name": "B", "description": "second"},
		{"id": 1, "name": "A", "description": "first",
		 "representation": "integer", "minimum": 0, "maximum": 100,
		 "access": {"dry": {"read": true, "write": true}, "wet": {"read": true}},
		 "optional": {"persist": true}}
	]}`))
	if err != nil {
		t.Fatalf("Table() error = %v", err)
	}
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header + separator + 2 rows:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "| ID ") || !strings.Contains(lines[0], "| Optionals ") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "|--") {
		t.Errorf("separator = %q", lines[1])
	}

	// Sorted input order: A before B.
	if !strings.Contains(lines[2], "| A ") || !strings.Contains(lines[3], "| B ") {
		t.Errorf("rows out of order:\n%s", out)
	}
	if !strings.Contains(lines[2], "R: true, W: true") || !strings.Contains(lines[2], "R: true, W: —") {
		t.Errorf("access summary wrong: %q", lines[2])
	}
	if !strings.Contains(lines[2], "Persist: true") {
		t.Errorf("optionals missing: %q", lines[2])
	}

	// B carries none of the optional fields.
	if !strings.Contains(lines[3], "—") {
		t.Errorf("absent fields not dashed: %q", lines[3])
	}
	if !strings.Contains(lines[3], "R: —, W: —") {
		t.Errorf("absent access not dashed: %q", lines[3])
	}
}

func TestTable_ValueListsCommaSpaceJoined(t *testing.T) {
	var buf bytes.Buffer
	err := Table(&buf, params(t, `{"all": [
		{"id": 1, "name": "A", "description": "d",
		 "valid integers": [1, 2, 3], "valid strings": ["x", "y"]}
	]}`))
	if err != nil {
		t.Fatalf("Table() error = %v", err)
	}

	// Both enumeration columns read as prose lists; the bare-comma join
	// belongs to the CSV only.
	out := buf.String()
	if !strings.Contains(out, "| 1, 2, 3 ") {
		t.Errorf("valid integers not comma-space joined:\n%s", out)
	}
	if !strings.Contains(out, "| x, y ") {
		t.Errorf("valid strings not comma-space joined:\n%s", out)
	}
}
