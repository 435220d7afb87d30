package diagfmt

import (
	"fmt"
	"io"

	"ucfix/internal/diag"
	"ucfix/internal/source"
)

// Short renders issues into a stable single-line-per-entry representation:
//
//	SEV kind path:line:col message
//
// The format is deterministic and diff-friendly, suitable for golden
// files and scripting.
func Short(w io.Writer, fs *source.FileSet, id source.FileID, issues []diag.Issue, pathMode PathMode) {
	file := fs.Get(id)
	path := file.FormatPath(string(pathMode), fs.BaseDir())

	for _, issue := range issues {
		loc := fs.Resolve(id, issue.Span.Start)
		fmt.Fprintf(w, "%s %s %s:%d:%d %s\n",
			issue.Severity, issue.Kind, path, loc.Line, loc.Col, issue.Message)
	}
}
