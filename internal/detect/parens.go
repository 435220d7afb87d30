package detect

import (
	"fmt"
	"strings"

	"ucfix/internal/diag"
	"ucfix/internal/lexical"
	"ucfix/internal/rules"
)

// ParenBalance is the informational whole-document parenthesis count. It
// never carries a repair; its purpose is to surface imbalance the targeted
// paren detectors might not fully resolve.
func ParenBalance(doc string) []diag.Issue {
	opens := strings.Count(doc, "(")
	closes := strings.Count(doc, ")")
	if opens == closes {
		return nil
	}

	direction := "More ')' than '('."
	if opens > closes {
		direction = "More '(' than ')'."
	}
	return []diag.Issue{diag.New(
		diag.KindParenBalance,
		1,
		headSpan(doc),
		fmt.Sprintf("Unbalanced parentheses: %s", direction),
	)}
}

// ParenControlClose flags single-line if/while/for headers whose '(' count
// exceeds ')' by exactly one. The repair appends ')' to that line, before
// any trailing // comment.
func ParenControlClose(doc string) []diag.Issue {
	var issues []diag.Issue

	forEachLine(doc, func(lineNo uint32, off int, line string) {
		if !rules.ControlLine.MatchString(line) {
			return
		}
		opens := strings.Count(line, "(")
		closes := strings.Count(line, ")")
		if opens-closes != 1 {
			return
		}

		issue := diag.New(
			diag.KindParenControlClose,
			lineNo,
			diag.Span{Start: uint32(off), End: uint32(off + len(line))},
			fmt.Sprintf("Control statement may be missing a ')' at line %d.", lineNo),
		)
		issues = append(issues, issue.WithRepair(diag.Repair{
			Op:   diag.RepairAppendToLine,
			Line: lineNo,
			Text: ")",
		}))
	})
	return issues
}

// ParenExtraClose scans the whole document with the lexical skipper so
// parens inside comments and strings never count, tracking open depth.
// The first ')' seen at depth zero is the first truly unmatched closer;
// exactly one issue is emitted and the scan stops there. Re-scanning after
// the fix is the documented way to find the next one.
func ParenExtraClose(doc string) []diag.Issue {
	cursor := lexical.NewCursor(doc)
	depth := 0

	for !cursor.EOF() {
		if cursor.Skip() {
			continue
		}
		pos := cursor.Pos()
		line := uint32(cursor.Line())
		switch cursor.Bump() {
		case '(':
			depth++
		case ')':
			if depth == 0 {
				issue := diag.New(
					diag.KindParenExtraClose,
					line,
					diag.Span{Start: uint32(pos), End: uint32(pos + 1)},
					fmt.Sprintf("Unmatched ')' at line %d.", line),
				)
				return []diag.Issue{issue.WithRepair(diag.Repair{
					Op:     diag.RepairDeleteAt,
					Guard:  diag.GuardOldByte,
					Offset: uint32(pos),
					Old:    ')',
				})}
			}
			depth--
		}
	}
	return nil
}

// ParenExtraOpen is the symmetric comment/string-aware scan keeping a
// position stack of open parens. When openers remain at end of document
// the most recent (rightmost) one is reported: a stray opener is usually
// typed late in the expression, so deleting the latest is the least
// destructive guess. Single-shot per scan, controlled by its own toggle.
func ParenExtraOpen(doc string) []diag.Issue {
	type open struct {
		pos  int
		line uint32
	}
	cursor := lexical.NewCursor(doc)
	var stack []open

	for !cursor.EOF() {
		if cursor.Skip() {
			continue
		}
		pos := cursor.Pos()
		line := uint32(cursor.Line())
		switch cursor.Bump() {
		case '(':
			stack = append(stack, open{pos: pos, line: line})
		case ')':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if len(stack) == 0 {
		return nil
	}

	last := stack[len(stack)-1]
	issue := diag.New(
		diag.KindParenExtraOpen,
		last.line,
		diag.Span{Start: uint32(last.pos), End: uint32(last.pos + 1)},
		fmt.Sprintf("Unmatched '(' at line %d.", last.line),
	)
	return []diag.Issue{issue.WithRepair(diag.Repair{
		Op:     diag.RepairDeleteAt,
		Guard:  diag.GuardOldByte,
		Offset: uint32(last.pos),
		Old:    '(',
	})}
}
