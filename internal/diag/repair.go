package diag

// RepairOp is the closed set of single-point edits a repair can describe.
type RepairOp uint8

const (
	RepairNone RepairOp = iota
	// RepairInsertLineAfter inserts Text as its own line after line Line.
	RepairInsertLineAfter
	// RepairAppendToLine appends Text at the end of line Line, placed
	// before any trailing // comment on that line.
	RepairAppendToLine
	// RepairInsertAt inserts Text at byte Offset.
	RepairInsertAt
	// RepairDeleteAt deletes the single byte at Offset; Old is the byte
	// expected there and acts as an apply-time guard.
	RepairDeleteAt
	// RepairCloseBrace inserts "}\n" before the first top-level construct
	// keyword of the current text, or at end of document. The insertion
	// point is recomputed at apply time, never captured at detection time.
	RepairCloseBrace
)

func (op RepairOp) String() string {
	switch op {
	case RepairInsertLineAfter:
		return "insert-line-after"
	case RepairAppendToLine:
		return "append-to-line"
	case RepairInsertAt:
		return "insert-at"
	case RepairDeleteAt:
		return "delete-at"
	case RepairCloseBrace:
		return "close-brace"
	}
	return "none"
}

// Guard is an apply-time re-check that turns a repair whose defect is
// already gone into a no-op.
type Guard uint8

const (
	// GuardNone applies unconditionally (within bounds).
	GuardNone Guard = iota
	// GuardLineEndsWithSemicolon skips when the target line already ends
	// in ';' at apply time.
	GuardLineEndsWithSemicolon
	// GuardBraceFollows skips when the text after Offset already starts
	// (after whitespace) with '{'.
	GuardBraceFollows
	// GuardNextLineBrace skips when the first non-blank, non-comment line
	// after the anchor line already starts with '{'.
	GuardNextLineBrace
	// GuardOldByte skips unless the byte at Offset equals Old.
	GuardOldByte
	// GuardBracesOpen skips unless '{' still outnumber '}' in the whole
	// text.
	GuardBracesOpen
)

// Repair describes one deterministic, safe, single-point text edit. It is
// pure data; internal/fix interprets it against the current document text.
//
// Anchors are fixed at detection time: Line for line-oriented ops, Offset
// for byte-oriented ones. Guards compensate for text that moved under an
// earlier repair from the same scan.
type Repair struct {
	Op     RepairOp
	Guard  Guard
	Line   uint32 // 1-based, line-anchored ops
	Offset uint32 // byte-anchored ops
	Text   string // inserted/appended text
	Old    byte   // expected byte for GuardOldByte
}
