package diagfmt

import (
	"encoding/json"
	"io"

	"ucfix/internal/diag"
	"ucfix/internal/source"
)

type jsonSpan struct {
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}

type jsonRepair struct {
	Op   string `json:"op"`
	Line uint32 `json:"line,omitempty"`
}

type jsonIssue struct {
	Kind     string      `json:"kind"`
	Severity string      `json:"severity"`
	Message  string      `json:"message"`
	Line     uint32      `json:"line"`
	Col      uint32      `json:"col"`
	Span     *jsonSpan   `json:"span,omitempty"`
	Repair   *jsonRepair `json:"repair,omitempty"`
}

type jsonFile struct {
	Path   string      `json:"path"`
	Issues []jsonIssue `json:"issues"`
}

// FileIssues pairs a scanned file with its issue list for multi-file
// output.
type FileIssues struct {
	ID     source.FileID
	Issues []diag.Issue
}

// JSON encodes issues for one file as a single JSON object.
func JSON(w io.Writer, fs *source.FileSet, id source.FileID, issues []diag.Issue, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonFileFor(fs, id, issues, opts))
}

// JSONMany encodes issue lists for several files as a JSON array in the
// given order.
func JSONMany(w io.Writer, fs *source.FileSet, entries []FileIssues, opts JSONOpts) error {
	out := make([]jsonFile, 0, len(entries))
	for _, entry := range entries {
		out = append(out, jsonFileFor(fs, entry.ID, entry.Issues, opts))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func jsonFileFor(fs *source.FileSet, id source.FileID, issues []diag.Issue, opts JSONOpts) jsonFile {
	file := fs.Get(id)
	out := jsonFile{
		Path:   file.FormatPath(string(opts.PathMode), fs.BaseDir()),
		Issues: make([]jsonIssue, 0, len(issues)),
	}

	for _, issue := range issues {
		loc := fs.Resolve(id, issue.Span.Start)
		ji := jsonIssue{
			Kind:     issue.Kind.String(),
			Severity: issue.Severity.String(),
			Message:  issue.Message,
			Line:     issue.Line,
			Col:      loc.Col,
		}
		if opts.IncludeSpans {
			ji.Span = &jsonSpan{Start: issue.Span.Start, End: issue.Span.End}
		}
		if opts.IncludeRepairs && issue.Repair != nil {
			ji.Repair = &jsonRepair{Op: issue.Repair.Op.String(), Line: issue.Repair.Line}
		}
		out.Issues = append(out.Issues, ji)
	}
	return out
}
