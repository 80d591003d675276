// SPDX-License-Identifier: MIT
package lexer

import (
	"errors"
	"fmt"
	"strconv"
)

type (
	// ErrorKind identifies the class of a lexical Error.
	ErrorKind int

	// Error is a fatal lexical error.
	//
	// Start & End bracket the offending text.
	Error struct {
		Kind    ErrorKind
		Details string
		Start   Position
		End     Position
	}
)

const (
	_                ErrorKind = iota // Consume 0 to start actual numbering at 1.
	IllegalCharacter                  // A character that starts no lexeme.
)

// Lexing errors.
var (
	ErrIllegalCharacter = errors.New("illegal character")

	ErrLexerUsed = errors.New("lexer already used")
)

var errorKindNames = [...]string{
	IllegalCharacter: "Illegal Character",
}

var errorKindSentinels = [...]error{
	IllegalCharacter: ErrIllegalCharacter,
}

// String is the fmt.Stringer implementation for ErrorKind.
func (k ErrorKind) String() string {
	if k < 1 || int(k) >= len(errorKindNames) {
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}

	return errorKindNames[k]
}

// NewIllegalCharError instantiates an IllegalCharacter Error for the quoted character c.
func NewIllegalCharError(start, end Position, c string) *Error {
	return &Error{
		Kind:    IllegalCharacter,
		Details: "'" + c + "'",
		Start:   start,
		End:     end,
	}
}

// Name obtains the fixed name of the Error's kind.
func (e *Error) Name() string { return e.Kind.String() }

// AsString renders the Error with the file & 1-based line it occurred on.
func (e *Error) AsString() string {
	return fmt.Sprintf("%s: %s\nFile %s, line %d", e.Name(), e.Details, e.Start.Filename, e.Start.Line+1)
}

// Error is the error interface implementation for Error.
func (e *Error) Error() string { return e.AsString() }

// Unwrap obtains the sentinel error for the Error's kind.
func (e *Error) Unwrap() error {
	if e.Kind < 1 || int(e.Kind) >= len(errorKindSentinels) {
		return nil
	}

	return errorKindSentinels[e.Kind]
}
