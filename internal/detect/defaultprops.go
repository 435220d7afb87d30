package detect

import (
	"fmt"
	"strings"

	"ucfix/internal/diag"
	"ucfix/internal/rules"
)

// DefaultpropsBrace flags every defaultproperties keyword not followed
// (after only whitespace) by '{'. The repair inserts an empty well-formed
// block right after the keyword rather than guessing its contents.
func DefaultpropsBrace(doc string) []diag.Issue {
	var issues []diag.Issue

	for _, loc := range rules.DefaultpropertiesWord.FindAllStringIndex(doc, -1) {
		tail := doc[loc[1]:]
		if rules.LeadingBrace.MatchString(tail) {
			continue
		}

		start := loc[0] - 5
		if start < 0 {
			start = 0
		}
		end := loc[1] + 5
		if end > len(doc) {
			end = len(doc)
		}
		lineNo := uint32(strings.Count(doc[:loc[0]], "\n") + 1)

		// keep the block closer on its own line; when the keyword already
		// ends its line the following newline serves that job
		text := " {\n}"
		if loc[1] >= len(doc) || doc[loc[1]] != '\n' {
			text = " {\n}\n"
		}

		issue := diag.New(
			diag.KindDefaultpropsBrace,
			lineNo,
			diag.Span{Start: uint32(start), End: uint32(end)},
			fmt.Sprintf("'defaultproperties' at line %d should be followed by '{...}'.", lineNo),
		)
		issues = append(issues, issue.WithRepair(diag.Repair{
			Op:     diag.RepairInsertAt,
			Guard:  diag.GuardBraceFollows,
			Offset: uint32(loc[1]),
			Text:   text,
		}))
	}
	return issues
}
