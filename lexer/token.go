// SPDX-License-Identifier: MIT
package lexer

import (
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

type (
	// Kind identifies the class of a Token.
	Kind int

	// Token is a lexed unit of the expression language.
	//
	// Only INT & FLOAT tokens carry a value.
	Token struct {
		kind     Kind
		intVal   int64
		floatVal float64

		// bigVal holds INT values beyond int64.
		bigVal *big.Int
	}

	// Tokens is a type wrapper for []Token.
	Tokens []Token
)

// iota is used to define an incrementing number sequence for const
// declarations
const (
	KindInvalid Kind = iota // Zero value, never emitted.
	KindInt                 // Integer literal.
	KindFloat               // Floating-point literal.
	KindPlus                // '+'.
	KindMinus               // '-'.
	KindMul                 // '*'.
	KindDiv                 // '/'.
	KindLParen              // '('.
	KindRParen              // ')'.
)

var kindNames = [...]string{
	KindInvalid: "INVALID",
	KindInt:     "INT",
	KindFloat:   "FLOAT",
	KindPlus:    "PLUS",
	KindMinus:   "MINUS",
	KindMul:     "MUL",
	KindDiv:     "DIV",
	KindLParen:  "LPAREN",
	KindRParen:  "RPAREN",
}

// symbols maps single-character lexemes to their Kind.
var symbols = [256]Kind{
	'+': KindPlus,
	'-': KindMinus,
	'*': KindMul,
	'/': KindDiv,
	'(': KindLParen,
	')': KindRParen,
}

// String is the fmt.Stringer implementation for Kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}

	return kindNames[k]
}

// IsNumeric reports whether tokens of the Kind carry a value.
func (k Kind) IsNumeric() bool { return k == KindInt || k == KindFloat }

// IsSymbol reports whether the Kind is an operator or parenthesis.
func (k Kind) IsSymbol() bool { return k >= KindPlus && k <= KindRParen }

// NewInt instantiates an INT Token.
func NewInt(v int64) Token { return Token{kind: KindInt, intVal: v} }

// NewBigInt instantiates an INT Token of arbitrary size.
func NewBigInt(v *big.Int) Token {
	if v.IsInt64() {
		return NewInt(v.Int64())
	}

	return Token{kind: KindInt, bigVal: new(big.Int).Set(v)}
}

// NewFloat instantiates a FLOAT Token.
func NewFloat(v float64) Token { return Token{kind: KindFloat, floatVal: v} }

// NewSymbol instantiates an operator or parenthesis Token.
//
// A non-symbol Kind yields the invalid Token.
func NewSymbol(k Kind) Token {
	if !k.IsSymbol() {
		return Token{}
	}

	return Token{kind: k}
}

// Kind obtains the Token's Kind.
func (t Token) Kind() Kind { return t.kind }

// HasValue reports whether the Token carries a value.
func (t Token) HasValue() bool { return t.kind.IsNumeric() }

// Int obtains the value of an INT Token that fits an int64.
func (t Token) Int() (v int64, ok bool) {
	if t.kind != KindInt || t.bigVal != nil {
		return
	}

	return t.intVal, true
}

// BigInt obtains the value of any INT Token.
func (t Token) BigInt() (v *big.Int, ok bool) {
	switch {
	case t.kind != KindInt:
		return
	case t.bigVal != nil:
		return new(big.Int).Set(t.bigVal), true
	default:
		return big.NewInt(t.intVal), true
	}
}

// Float obtains the value of a FLOAT Token.
func (t Token) Float() (v float64, ok bool) {
	if t.kind != KindFloat {
		return
	}

	return t.floatVal, true
}

// Value obtains the Token's value as an int64, *big.Int or float64.
func (t Token) Value() (v any, ok bool) {
	switch {
	case t.bigVal != nil:
		return new(big.Int).Set(t.bigVal), true
	case t.kind == KindInt:
		return t.intVal, true
	case t.kind == KindFloat:
		return t.floatVal, true
	default:
		return
	}
}

// Number converts the value of a numeric Token to T.
//
// INT values beyond int64 convert through a float64.
func Number[T constraints.Integer | constraints.Float](t Token) (v T, ok bool) {
	switch {
	case t.bigVal != nil:
		f, _ := new(big.Float).SetInt(t.bigVal).Float64()
		return T(f), true
	case t.kind == KindInt:
		return T(t.intVal), true
	case t.kind == KindFloat:
		return T(t.floatVal), true
	default:
		return
	}
}

// String is the fmt.Stringer implementation for Token.
func (t Token) String() string {
	switch {
	case t.bigVal != nil:
		return t.kind.String() + ":" + t.bigVal.String()
	case t.kind == KindInt:
		return t.kind.String() + ":" + strconv.FormatInt(t.intVal, 10)
	case t.kind == KindFloat:
		return t.kind.String() + ":" + formatFloat(t.floatVal)
	default:
		return t.kind.String()
	}
}

// formatFloat renders whole floats with a trailing ".0" to tell them apart from INTs.
func formatFloat(v float64) (s string) {
	if s = strconv.FormatFloat(v, 'g', -1, 64); !strings.ContainsAny(s, ".eIN") {
		s += ".0"
	}

	return
}

// Kinds lists the Kind of each Token.
func (ts Tokens) Kinds() (kinds []Kind) {
	kinds = make([]Kind, len(ts))
	for index := range ts {
		kinds[index] = ts[index].kind
	}

	return
}

// String is the fmt.Stringer implementation for Tokens.
func (ts Tokens) String() string {
	buffer := strings.Builder{}
	buffer.WriteByte('[')
	for index := range ts {
		if index > 0 {
			buffer.WriteString(", ")
		}
		buffer.WriteString(ts[index].String())
	}
	buffer.WriteByte(']')

	return buffer.String()
}
