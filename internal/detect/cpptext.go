package detect

import (
	"fmt"
	"strings"

	"ucfix/internal/diag"
	"ucfix/internal/rules"
)

// CpptextBrace flags a cpptext keyword whose block opener is missing: no
// '{' on the keyword line and the next non-blank, non-comment line does
// not start with one. The repair inserts a '{' line right after the
// keyword line.
func CpptextBrace(doc string) []diag.Issue {
	var issues []diag.Issue
	lines := splitKeepEnds(doc)

	off := 0
	for i, line := range lines {
		if !rules.CpptextWord.MatchString(line) || strings.Contains(line, "{") {
			off += len(line)
			continue
		}

		j := i + 1
		for j < len(lines) && rules.BlankOrComment.MatchString(strings.TrimSuffix(lines[j], "\n")) {
			j++
		}
		next := ""
		if j < len(lines) {
			next = lines[j]
		}
		if !rules.LeadingBrace.MatchString(next) {
			lineNo := uint32(i + 1)
			issue := diag.New(
				diag.KindCpptextBrace,
				lineNo,
				diag.Span{Start: uint32(off), End: uint32(off + len(line))},
				fmt.Sprintf("Missing '{' after 'cpptext' at line %d.", lineNo),
			)
			issues = append(issues, issue.WithRepair(diag.Repair{
				Op:    diag.RepairInsertLineAfter,
				Guard: diag.GuardNextLineBrace,
				Line:  lineNo,
				Text:  "{",
			}))
		}
		off += len(line)
	}
	return issues
}

func splitKeepEnds(doc string) []string {
	if doc == "" {
		return nil
	}
	lines := strings.SplitAfter(doc, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
