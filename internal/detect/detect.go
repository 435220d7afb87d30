// Package detect implements the structural-defect heuristics and the scan
// orchestrator that composes them according to the active mode.
//
// Every detector is a pure function of the document text: no retained
// state, no side effects, identical output for identical input. Detectors
// never fail on malformed UnrealScript; that is exactly the content they
// exist to flag.
package detect

import (
	"strings"

	"ucfix/internal/diag"
)

// Mode selects which detector groups run.
type Mode uint8

const (
	// ModeStrict runs only the safe, always-on detectors.
	ModeStrict Mode = iota
	// ModeExtended adds the conservative best-effort detectors.
	ModeExtended
)

func (m Mode) String() string {
	if m == ModeExtended {
		return "extended"
	}
	return "strict"
}

// ParseMode resolves a mode name; unknown names fall back to strict.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(s) {
	case "strict", "":
		return ModeStrict, true
	case "extended":
		return ModeExtended, true
	}
	return ModeStrict, false
}

// DefaultMaxIssues bounds one scan's issue list.
const DefaultMaxIssues = 100

// Options configures a scan. The unmatched-open toggle is independent of
// the mode: it composes with either strict or extended.
type Options struct {
	Mode          Mode
	UnmatchedOpen bool
	MaxIssues     int // 0 means DefaultMaxIssues
}

// Max returns the effective issue limit.
func (o Options) Max() int {
	if o.MaxIssues <= 0 {
		return DefaultMaxIssues
	}
	return o.MaxIssues
}

// Scan runs the detector set selected by opts over doc and returns the
// deduplicated issue list in first-occurrence order. It is the sole entry
// point for the surrounding layer; calling it twice on the same inputs
// yields identical output.
func Scan(doc string, opts Options) []diag.Issue {
	bag := diag.NewBag(opts.Max())

	collect := func(issues []diag.Issue) {
		for _, issue := range issues {
			bag.Add(issue)
		}
	}

	collect(CpptextBrace(doc))
	collect(BraceBalance(doc))
	collect(DefaultpropsBrace(doc))
	collect(SemicolonMissing(doc))
	collect(ParenBalance(doc))

	if opts.Mode == ModeExtended {
		collect(ParenControlClose(doc))
		collect(StructEnumClose(doc))
		collect(ParenExtraClose(doc))
	}
	if opts.UnmatchedOpen {
		collect(ParenExtraOpen(doc))
	}

	return append([]diag.Issue(nil), bag.Items()...)
}

// forEachLine walks doc line by line keeping terminators, passing the
// 1-based line number and the byte offset of each line start.
func forEachLine(doc string, fn func(lineNo uint32, off int, line string)) {
	off := 0
	lineNo := uint32(1)
	for off < len(doc) {
		end := strings.IndexByte(doc[off:], '\n')
		var line string
		if end < 0 {
			line = doc[off:]
		} else {
			line = doc[off : off+end+1]
		}
		fn(lineNo, off, line)
		off += len(line)
		lineNo++
	}
}

// headSpan is the conventional span for whole-document findings: the first
// 50 bytes, or the whole document when shorter.
func headSpan(doc string) diag.Span {
	end := len(doc)
	if end > 50 {
		end = 50
	}
	return diag.Span{Start: 0, End: uint32(end)}
}
