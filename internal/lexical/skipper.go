// Package lexical implements the comment/string-aware skipper shared by the
// delimiter-matching detectors. It classifies what starts at a cursor
// position and can step past the whole construct, so a brace or parenthesis
// inside a comment or string literal is never counted as structure.
//
// Unterminated constructs never fail: an open block comment or string
// extends to the end of the document.
package lexical

// Class identifies the lexical construct starting at a position.
type Class uint8

const (
	// ClassNone means the position starts live code.
	ClassNone Class = iota
	// ClassLineComment is "//" up to (not including) the newline.
	ClassLineComment
	// ClassBlockComment is "/* ... */", not nested.
	ClassBlockComment
	// ClassString is a single- or double-quoted literal with backslash
	// escapes. UnrealScript uses '...' for names and "..." for strings;
	// both shield their contents the same way.
	ClassString
)

// Classify reports what starts at the current cursor position without
// moving the cursor.
func (c *Cursor) Classify() Class {
	if c.EOF() {
		return ClassNone
	}
	switch c.doc[c.off] {
	case '/':
		if b0, b1, ok := c.Peek2(); ok && b0 == '/' {
			if b1 == '/' {
				return ClassLineComment
			}
			if b1 == '*' {
				return ClassBlockComment
			}
		}
	case '\'', '"':
		return ClassString
	}
	return ClassNone
}

// Step advances the cursor past the construct starting at its position.
// The caller must have observed Classify() != ClassNone; stepping at a live
// code position consumes a single byte.
func (c *Cursor) Step() {
	switch c.Classify() {
	case ClassLineComment:
		c.Bump() // '/'
		c.Bump() // '/'
		for !c.EOF() && c.Peek() != '\n' {
			c.Bump()
		}
	case ClassBlockComment:
		c.Bump() // '/'
		c.Bump() // '*'
		for !c.EOF() {
			if b0, b1, ok := c.Peek2(); ok && b0 == '*' && b1 == '/' {
				c.Bump()
				c.Bump()
				return
			}
			c.Bump()
		}
	case ClassString:
		quote := c.Bump()
		for !c.EOF() {
			b := c.Bump()
			if b == '\\' {
				c.Bump() // escaped byte, whatever it is
				continue
			}
			if b == quote {
				return
			}
		}
	default:
		c.Bump()
	}
}

// Skip steps past a comment or string if one starts at the cursor and
// reports whether it moved.
func (c *Cursor) Skip() bool {
	if c.Classify() == ClassNone {
		return false
	}
	c.Step()
	return true
}

// ClassifyAt is a convenience for callers without a cursor: it reports what
// starts at byte offset i in doc.
func ClassifyAt(doc string, i int) Class {
	if i < 0 || i >= len(doc) {
		return ClassNone
	}
	c := Cursor{doc: doc, off: i, line: 1}
	return c.Classify()
}
