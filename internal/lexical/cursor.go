package lexical

// Cursor is a byte position in a document with 1-based line tracking.
// All stepping goes through Bump so newline accounting lives in one place.
type Cursor struct {
	doc  string
	off  int
	line int
}

// NewCursor creates a cursor at the start of doc.
func NewCursor(doc string) *Cursor {
	return &Cursor{doc: doc, line: 1}
}

// EOF reports whether the cursor has reached the end of the document.
func (c *Cursor) EOF() bool {
	return c.off >= len(c.doc)
}

// Pos returns the current byte offset.
func (c *Cursor) Pos() int {
	return c.off
}

// Line returns the 1-based line number of the current position.
func (c *Cursor) Line() int {
	return c.line
}

// Peek reads the current byte without advancing; 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.doc[c.off]
}

// Peek2 reads the current and next byte; ok is false near EOF.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.off+1 >= len(c.doc) {
		return 0, 0, false
	}
	return c.doc[c.off], c.doc[c.off+1], true
}

// Bump advances one byte and returns it; 0 at EOF.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.doc[c.off]
	c.off++
	if b == '\n' {
		c.line++
	}
	return b
}
