package diagfmt

import (
	"encoding/json"
	"strings"
	"testing"

	"ucfix/internal/detect"
	"ucfix/internal/source"
)

func scanVirtual(t *testing.T, name, doc string) (*source.FileSet, source.FileID, []FileIssues) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, []byte(doc))
	issues := detect.Scan(doc, detect.Options{Mode: detect.ModeExtended})
	return fs, id, []FileIssues{{ID: id, Issues: issues}}
}

func TestPretty(t *testing.T) {
	fs, id, entries := scanVirtual(t, "Test.uc", "var int Count\n")

	var buf strings.Builder
	Pretty(&buf, fs, id, entries[0].Issues, PrettyOpts{
		PathMode:    PathModeBasename,
		ShowContext: true,
		ShowRepairs: true,
	})
	out := buf.String()

	if !strings.Contains(out, "Test.uc:1:1: WARNING semicolon-missing: Likely missing ';' at line 1.") {
		t.Errorf("missing header line in:\n%s", out)
	}
	if !strings.Contains(out, "    var int Count") {
		t.Errorf("missing source context in:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("missing caret in:\n%s", out)
	}
	if !strings.Contains(out, "repair: append-to-line") {
		t.Errorf("missing repair line in:\n%s", out)
	}
}

func TestPrettyInformationalIssue(t *testing.T) {
	fs, id, entries := scanVirtual(t, "Test.uc", "foo)\n")

	var buf strings.Builder
	Pretty(&buf, fs, id, entries[0].Issues, PrettyOpts{
		PathMode:    PathModeBasename,
		ShowRepairs: true,
	})
	out := buf.String()

	if !strings.Contains(out, "Unbalanced parentheses: More ')' than '('.") {
		t.Errorf("missing paren-balance message in:\n%s", out)
	}
	if !strings.Contains(out, "repair: none (manual review)") {
		t.Errorf("informational issue must say no repair exists:\n%s", out)
	}
}

func TestShort(t *testing.T) {
	fs, id, entries := scanVirtual(t, "Test.uc", "var int Count\n")

	var buf strings.Builder
	Short(&buf, fs, id, entries[0].Issues, PathModeBasename)
	got := buf.String()

	want := "WARNING semicolon-missing Test.uc:1:1 Likely missing ';' at line 1.\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestJSON(t *testing.T) {
	fs, id, entries := scanVirtual(t, "Test.uc", "var int Count\n")

	var buf strings.Builder
	err := JSON(&buf, fs, id, entries[0].Issues, JSONOpts{
		PathMode:       PathModeBasename,
		IncludeSpans:   true,
		IncludeRepairs: true,
	})
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var decoded struct {
		Path   string `json:"path"`
		Issues []struct {
			Kind string `json:"kind"`
			Line uint32 `json:"line"`
			Span *struct {
				Start uint32 `json:"start"`
				End   uint32 `json:"end"`
			} `json:"span"`
			Repair *struct {
				Op string `json:"op"`
			} `json:"repair"`
		} `json:"issues"`
	}
	if err := json.Unmarshal([]byte(buf.String()), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Path != "Test.uc" || len(decoded.Issues) != 1 {
		t.Fatalf("decoded = %+v", decoded)
	}
	issue := decoded.Issues[0]
	if issue.Kind != "semicolon-missing" || issue.Line != 1 {
		t.Errorf("issue = %+v", issue)
	}
	if issue.Span == nil || issue.Repair == nil {
		t.Errorf("expected span and repair to be present: %+v", issue)
	}
}

func TestJSONMany(t *testing.T) {
	fs := source.NewFileSet()
	a := fs.AddVirtual("A.uc", []byte("var int A\n"))
	b := fs.AddVirtual("B.uc", []byte("var int B;\n"))
	entries := []FileIssues{
		{ID: a, Issues: detect.Scan("var int A\n", detect.Options{})},
		{ID: b, Issues: detect.Scan("var int B;\n", detect.Options{})},
	}

	var buf strings.Builder
	if err := JSONMany(&buf, fs, entries, JSONOpts{PathMode: PathModeBasename}); err != nil {
		t.Fatalf("JSONMany: %v", err)
	}

	var decoded []struct {
		Path   string            `json:"path"`
		Issues []json.RawMessage `json:"issues"`
	}
	if err := json.Unmarshal([]byte(buf.String()), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("expected 2 file entries, got %d", len(decoded))
	}
	if len(decoded[0].Issues) != 1 || len(decoded[1].Issues) != 0 {
		t.Errorf("issue counts = %d, %d", len(decoded[0].Issues), len(decoded[1].Issues))
	}
}
