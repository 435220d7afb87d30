package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"ucfix/internal/diag"
	"ucfix/internal/source"
)

var (
	infoColor    = color.New(color.FgCyan)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	kindColor    = color.New(color.FgMagenta)
	caretColor   = color.New(color.FgRed, color.Bold)
)

// Pretty renders issues one block at a time:
//
//	<path>:<line>:<col>: <SEV> <kind>: <message>
//	    <source line>
//	    ^~~~
//
// followed by an optional repair description. Spans are resolved against
// the exact file the scan ran on.
func Pretty(w io.Writer, fs *source.FileSet, id source.FileID, issues []diag.Issue, opts PrettyOpts) {
	file := fs.Get(id)
	path := file.FormatPath(string(opts.PathMode), fs.BaseDir())

	for _, issue := range issues {
		loc := fs.Resolve(id, issue.Span.Start)
		sev := issue.Severity.String()
		kind := issue.Kind.String()
		if opts.Color {
			sev = severityColor(issue.Severity).Sprint(sev)
			kind = kindColor.Sprint(kind)
		}
		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", path, loc.Line, loc.Col, sev, kind, issue.Message)

		if opts.ShowContext {
			srcLine := file.GetLine(issue.Line)
			if srcLine != "" {
				fmt.Fprintf(w, "    %s\n", srcLine)
				caret := caretFor(srcLine, issue, loc)
				if opts.Color {
					caret = caretColor.Sprint(caret)
				}
				fmt.Fprintf(w, "    %s\n", caret)
			}
		}
		if opts.ShowRepairs {
			if issue.Repair != nil {
				fmt.Fprintf(w, "    repair: %s\n", issue.Repair.Op)
			} else {
				fmt.Fprintf(w, "    repair: none (manual review)\n")
			}
		}
	}
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevWarning:
		return warningColor
	case diag.SevError:
		return errorColor
	default:
		return infoColor
	}
}

// caretFor underlines the span portion that falls on the anchor line;
// whole-document issues get a single caret at the line start.
func caretFor(srcLine string, issue diag.Issue, loc source.LineCol) string {
	width := int(issue.Span.Len())
	if width <= 0 || width > len(srcLine) {
		width = 1
	}
	col := int(loc.Col)
	if col < 1 {
		col = 1
	}
	if col > len(srcLine)+1 {
		col = 1
	}
	pad := strings.Repeat(" ", col-1)
	if width == 1 {
		return pad + "^"
	}
	return pad + "^" + strings.Repeat("~", width-1)
}
