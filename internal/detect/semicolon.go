package detect

import (
	"fmt"
	"strings"

	"ucfix/internal/diag"
	"ucfix/internal/rules"
)

// SemicolonMissing flags var declaration lines and simple assignment lines
// that do not end in ';'. Blank lines, pure comment lines, and lines
// ending a brace are skipped. The repair appends ';' to the exact line,
// before any trailing // comment, and re-checks the line at apply time.
func SemicolonMissing(doc string) []diag.Issue {
	var issues []diag.Issue

	forEachLine(doc, func(lineNo uint32, off int, line string) {
		stripped := strings.TrimSpace(line)
		if stripped == "" ||
			strings.HasPrefix(stripped, "//") ||
			strings.HasPrefix(stripped, "/*") ||
			strings.HasSuffix(stripped, "{") ||
			strings.HasSuffix(stripped, "}") {
			return
		}

		if !rules.VarDecl.MatchString(stripped) && !rules.Assign.MatchString(stripped) {
			return
		}
		if strings.HasSuffix(stripped, ";") {
			return
		}

		issue := diag.New(
			diag.KindSemicolonMissing,
			lineNo,
			diag.Span{Start: uint32(off), End: uint32(off + len(line))},
			fmt.Sprintf("Likely missing ';' at line %d.", lineNo),
		)
		issues = append(issues, issue.WithRepair(diag.Repair{
			Op:    diag.RepairAppendToLine,
			Guard: diag.GuardLineEndsWithSemicolon,
			Line:  lineNo,
			Text:  ";",
		}))
	})
	return issues
}
