// SPDX-License-Identifier: MIT
package lexer

import "fmt"

type (
	// Char is a character that may be absent, the absence marking the end of the input.
	Char struct {
		b  byte
		ok bool
	}

	// Position is a cursor over the source text.
	//
	// Line & Column are 0-based, Index is the byte offset into Text.
	Position struct {
		Index  int
		Line   int
		Column int

		// Filename is a diagnostic label, the file is never opened.
		Filename string

		// Text is retained for error reproduction.
		Text string
	}
)

// None is the absent Char.
var None = Char{}

// Some wraps a byte in a Char.
func Some(b byte) Char { return Char{b: b, ok: true} }

// Byte obtains the Char's byte & whether it is present.
func (c Char) Byte() (b byte, ok bool) { return c.b, c.ok }

// Present reports whether the Char holds a byte.
func (c Char) Present() bool { return c.ok }

// Is reports whether the Char holds the byte b.
func (c Char) Is(b byte) bool { return c.ok && c.b == b }

// NewPosition instantiates a Position placed before the first character of text.
func NewPosition(filename, text string) *Position {
	return &Position{
		Index:    -1,
		Column:   -1,
		Filename: filename,
		Text:     text,
	}
}

// Advance moves the cursor past c.
//
// The line is incremented & the column reset once a newline is passed.
func (p *Position) Advance(c Char) *Position {
	p.Index++
	p.Column++

	if c.Is('\n') {
		p.Line++
		p.Column = 0
	}

	return p
}

// Copy snapshots the Position.
func (p Position) Copy() Position { return p }

// String renders the Position as filename:line:column, with a 1-based line & column.
func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line+1, p.Column+1)
}
