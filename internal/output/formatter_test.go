package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"markdown", FormatMarkdown},
		{"md", FormatMarkdown},
		{"toon", FormatTOON},
		{"text", FormatText},
		{"", FormatText},
		{"bogus", FormatText},
	}

	for _, tt := range tests {
		if got := ParseFormat(tt.in); got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func sampleTable() *Table {
	return NewTable(
		"Quality Metrics",
		[]string{"File", "LOC"},
		[][]string{
			{"a.js", "10"},
			{"b.js", "20"},
		},
		[]string{"2 files", "30"},
		nil,
	)
}

func TestTableRenderMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := sampleTable().RenderMarkdown(&buf); err != nil {
		t.Fatalf("RenderMarkdown failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"## Quality Metrics",
		"| File | LOC |",
		"| --- | --- |",
		"| a.js | 10 |",
		"| 2 files | 30 |",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q:\n%s", want, out)
		}
	}
}

func TestTableRenderText(t *testing.T) {
	var buf bytes.Buffer
	if err := sampleTable().RenderText(&buf, false); err != nil {
		t.Fatalf("RenderText failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Quality Metrics", "a.js", "b.js", "30"} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestTableRenderDataFromRows(t *testing.T) {
	data := sampleTable().RenderData()
	rows, ok := data.([]map[string]string)
	if !ok {
		t.Fatalf("RenderData type = %T, want []map[string]string", data)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[0]["File"] != "a.js" || rows[0]["LOC"] != "10" {
		t.Errorf("rows[0] = %v", rows[0])
	}
}

func TestTableRenderDataPrefersPayload(t *testing.T) {
	payload := map[string]int{"total": 3}
	table := NewTable("t", nil, nil, nil, payload)
	if got := table.RenderData(); got == nil {
		t.Fatal("RenderData returned nil")
	} else if _, ok := got.(map[string]int); !ok {
		t.Errorf("RenderData type = %T, want the wrapped payload", got)
	}
}

func TestFormatterJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	f, err := NewFormatter(FormatJSON, path, true)
	if err != nil {
		t.Fatalf("NewFormatter failed: %v", err)
	}

	if err := f.Output(sampleTable()); err != nil {
		t.Fatalf("Output failed: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	var rows []map[string]string
	if err := json.Unmarshal(data, &rows); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, data)
	}
	if len(rows) != 2 {
		t.Errorf("len(rows) = %d, want 2", len(rows))
	}
}

func TestFormatterTOON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.toon")
	f, err := NewFormatter(FormatTOON, path, false)
	if err != nil {
		t.Fatalf("NewFormatter failed: %v", err)
	}

	if err := f.Output(map[string]any{"total": 3}); err != nil {
		t.Fatalf("Output failed: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "total") {
		t.Errorf("toon output missing field: %s", data)
	}
}
