// Package fix interprets repair descriptors against document text and
// applies batches of repairs from one scan in order.
package fix

import (
	"strings"

	"ucfix/internal/diag"
	"ucfix/internal/rules"
)

// Apply interprets a single repair against the current document text.
// It returns the new text and whether anything changed. A repair whose
// guard re-detects that the defect is gone, or whose anchor no longer
// exists in the text, returns the input unchanged; that is expected
// self-healing, not an error.
func Apply(doc string, r diag.Repair) (string, bool) {
	switch r.Op {
	case diag.RepairInsertLineAfter:
		return insertLineAfter(doc, r)
	case diag.RepairAppendToLine:
		return appendToLine(doc, r)
	case diag.RepairInsertAt:
		return insertAt(doc, r)
	case diag.RepairDeleteAt:
		return deleteAt(doc, r)
	case diag.RepairCloseBrace:
		return closeBrace(doc)
	}
	return doc, false
}

// splitLines splits keeping line terminators, mirroring how anchor lines
// were counted at detection time.
func splitLines(doc string) []string {
	if doc == "" {
		return nil
	}
	lines := strings.SplitAfter(doc, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func insertLineAfter(doc string, r diag.Repair) (string, bool) {
	lines := splitLines(doc)
	idx := int(r.Line) - 1
	if idx < 0 || idx >= len(lines) {
		return doc, false
	}

	if r.Guard == diag.GuardNextLineBrace {
		j := idx + 1
		for j < len(lines) && rules.BlankOrComment.MatchString(strings.TrimSuffix(lines[j], "\n")) {
			j++
		}
		if j < len(lines) && rules.LeadingBrace.MatchString(lines[j]) {
			return doc, false
		}
	}

	var b strings.Builder
	b.Grow(len(doc) + len(r.Text) + 1)
	for i, line := range lines {
		b.WriteString(line)
		if i == idx {
			if !strings.HasSuffix(line, "\n") {
				b.WriteByte('\n')
			}
			b.WriteString(r.Text)
			b.WriteByte('\n')
		}
	}
	return b.String(), true
}

func appendToLine(doc string, r diag.Repair) (string, bool) {
	lines := splitLines(doc)
	idx := int(r.Line) - 1
	if idx < 0 || idx >= len(lines) {
		return doc, false
	}

	line := strings.TrimSuffix(lines[idx], "\n")
	hadNewline := strings.HasSuffix(lines[idx], "\n")

	if r.Guard == diag.GuardLineEndsWithSemicolon && strings.HasSuffix(strings.TrimRight(line, " \t"), ";") {
		return doc, false
	}

	// the edit lands before any trailing // comment, never after it
	code, comment := line, ""
	if ci := strings.Index(line, "//"); ci >= 0 {
		code, comment = line[:ci], line[ci:]
	}
	code = strings.TrimRight(code, " \t") + r.Text
	if comment != "" {
		code += " " + comment
	}
	lines[idx] = code
	if hadNewline {
		lines[idx] += "\n"
	}
	return strings.Join(lines, ""), true
}

func insertAt(doc string, r diag.Repair) (string, bool) {
	off := int(r.Offset)
	if off < 0 || off > len(doc) {
		return doc, false
	}
	if r.Guard == diag.GuardBraceFollows && rules.LeadingBrace.MatchString(doc[off:]) {
		return doc, false
	}
	return doc[:off] + r.Text + doc[off:], true
}

func deleteAt(doc string, r diag.Repair) (string, bool) {
	off := int(r.Offset)
	if off < 0 || off >= len(doc) {
		return doc, false
	}
	if r.Guard == diag.GuardOldByte && doc[off] != r.Old {
		return doc, false
	}
	return doc[:off] + doc[off+1:], true
}

// closeBrace recomputes its insertion point from the text it is given:
// right before the first top-level construct keyword, or at end of
// document when none exists. It no-ops once braces are balanced.
func closeBrace(doc string) (string, bool) {
	opens, closes := 0, 0
	for i := 0; i < len(doc); i++ {
		switch doc[i] {
		case '{':
			opens++
		case '}':
			closes++
		}
	}
	if opens <= closes {
		return doc, false
	}

	insertAt := len(doc)
	if loc := rules.TopLevelToken.FindStringIndex(doc); loc != nil {
		insertAt = loc[0]
	}
	return doc[:insertAt] + "}\n" + doc[insertAt:], true
}
