// SPDX-License-Identifier: MIT
package lexer

// REF: https://go.dev/talks/2011/lex.slide (state functions)

import (
	"math/big"
	"strconv"
	"unicode/utf8"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
)

type (
	// stateFn is a scanning state, returning the next state or nil to stop.
	stateFn func(*Lexer) stateFn

	// Lexer converts expression source text into Tokens.
	//
	// A Lexer performs a single scan & is not safe for concurrent use.
	Lexer struct {
		debug  bool
		logger logrus.FieldLogger

		text string

		// pos is the cursor on current.
		pos *Position
		// current is None once the text is exhausted.
		current Char

		tokens Tokens
		err    *Error

		used bool
	}
)

// Improves on performance compared to ORs.
var (
	spaces = [256]bool{
		' ':  true,
		'\t': true,
	}

	digits = [256]bool{
		'0': true, '1': true, '2': true, '3': true, '4': true,
		'5': true, '6': true, '7': true, '8': true, '9': true,
	}
)

// New creates a Lexer for text, filename only labels diagnostics.
func New(filename, text string, opts ...Option) *Lexer {
	l := &Lexer{
		logger: logrus.New(),
		text:   text,
		pos:    NewPosition(filename, text),
		tokens: make(Tokens, 0),
	}

	for _, opt := range opts {
		opt(l)
	}

	l.advance()

	return l
}

// Logger obtains the logger.
func (l *Lexer) Logger() logrus.FieldLogger { return l.logger }

// Position obtains a snapshot of the cursor.
func (l *Lexer) Position() Position { return l.pos.Copy() }

// Current obtains the character under the cursor.
func (l *Lexer) Current() Char { return l.current }

// MakeTokens scans the whole text.
//
// Scanning stops at the first lexical error, in which case no Tokens are returned & err holds
// an [*Error].
func (l *Lexer) MakeTokens() (tokens Tokens, err error) {
	if l.used {
		err = ErrLexerUsed
		return
	}
	l.used = true

	for state := lexText; state != nil; {
		state = state(l)
	}

	if l.err != nil {
		if l.debug {
			l.logger.Debugf("lexer failed at %s: %s", l.err.Start, spew.Sprint(l.pos))
		}
		err = l.err

		return
	}

	tokens = l.tokens

	return
}

// advance moves the cursor one byte forward, refreshing current.
func (l *Lexer) advance() {
	l.pos.Advance(l.current)

	if l.pos.Index < len(l.text) {
		l.current = Some(l.text[l.pos.Index])
		return
	}
	l.current = None
}

// emit appends a Token to the scan output.
func (l *Lexer) emit(t Token) {
	if l.debug {
		// Debug operation makes this operation un-inlinable.
		l.logger.Debug("lexer emit: ", t)
	}

	l.tokens = append(l.tokens, t)
}

// fail terminates the scan, discarding the Tokens lexed so far.
func (l *Lexer) fail(e *Error) stateFn {
	l.err = e
	l.tokens = nil

	return nil
}

// lexText classifies the current character.
func lexText(l *Lexer) stateFn {
	b, ok := l.current.Byte()

	switch {
	case !ok:
		return nil
	case isSpace(b):
		// Discard instead of emit.
		l.advance()

		return lexText
	case isDigit(b):
		return lexNumber
	case symbols[b] != KindInvalid:
		l.emit(NewSymbol(symbols[b]))
		l.advance()

		return lexText
	default:
		return lexIllegal
	}
}

// lexNumber consumes digits & at most one decimal point.
//
// A second decimal point is left for lexText.
func lexNumber(l *Lexer) stateFn {
	start := l.pos.Copy()

	dots := 0
	for {
		b, ok := l.current.Byte()
		if !ok || !(isDigit(b) || b == '.') {
			break
		}

		if b == '.' {
			if dots == 1 {
				break
			}
			dots++
		}
		l.advance()
	}

	lexeme := l.text[start.Index:l.pos.Index]

	if dots == 0 {
		if v, err := strconv.ParseInt(lexeme, 10, 64); err == nil {
			l.emit(NewInt(v))
			return lexText
		}

		// Only strconv.ErrRange is possible for a digit string.
		v, _ := new(big.Int).SetString(lexeme, 10)
		l.emit(NewBigInt(v))

		return lexText
	}

	// Only strconv.ErrRange is possible, v then holds ±Inf (or 0 on underflow).
	v, _ := strconv.ParseFloat(lexeme, 64)
	l.emit(NewFloat(v))

	return lexText
}

// lexIllegal reports the current character.
//
// A multi-byte UTF-8 character is reported whole.
func lexIllegal(l *Lexer) stateFn {
	start := l.pos.Copy()

	_, size := utf8.DecodeRuneInString(l.text[start.Index:])
	char := l.text[start.Index : start.Index+size]

	for ; size > 0; size-- {
		l.advance()
	}

	return l.fail(NewIllegalCharError(start, l.pos.Copy(), char))
}

// isSpace return true for space or tab.
func isSpace(b byte) bool { return spaces[b] }

// isDigit return true for an ASCII digit.
func isDigit(b byte) bool { return digits[b] }
