package detect

import (
	"fmt"
	"strings"

	"ucfix/internal/diag"
	"ucfix/internal/rules"
)

// StructEnumClose walks each struct/enum header that opens its block on
// the header line and counts nested braces forward (raw counting, not
// comment/string-aware, matching the crude brace family). A block that
// never returns to depth zero gets a repair inserting '}' before the next
// top-level construct keyword after the unmatched point, or at end of
// document.
func StructEnumClose(doc string) []diag.Issue {
	var issues []diag.Issue

	for _, m := range rules.StructEnumHeader.FindAllStringSubmatchIndex(doc, -1) {
		count := 1
		pos := m[1] // just past the opening '{'
		for {
			loc := rules.BraceToken.FindStringIndex(doc[pos:])
			if loc == nil {
				break
			}
			c := doc[pos+loc[0]]
			pos += loc[0] + 1
			if c == '{' {
				count++
			} else {
				count--
			}
			if count == 0 {
				break
			}
		}
		if count == 0 {
			continue
		}

		insertAt := len(doc)
		if tl := rules.TopLevelToken.FindStringIndex(doc[pos:]); tl != nil {
			insertAt = pos + tl[0]
		}
		lineNo := uint32(strings.Count(doc[:m[0]], "\n") + 1)
		keyword := doc[m[2]:m[3]]

		issue := diag.New(
			diag.KindStructEnumClose,
			lineNo,
			diag.Span{Start: uint32(m[0]), End: uint32(m[1])},
			fmt.Sprintf("Missing '}' to close %s block starting at line %d.", keyword, lineNo),
		)
		issues = append(issues, issue.WithRepair(diag.Repair{
			Op:     diag.RepairInsertAt,
			Offset: uint32(insertAt),
			Text:   "}\n",
		}))
	}
	return issues
}
