// SPDX-License-Identifier: MIT
package lexer

import (
	"github.com/sirupsen/logrus"
)

type (
	// Option defines the Lexer functional option type.
	Option func(*Lexer)
)

// WithDebug configures the debug option.
//
// Debug messages are only emitted at the logger's debug level.
func WithDebug(debug bool) Option { return func(l *Lexer) { l.debug = debug } }

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(l *Lexer) {
		if logger != nil {
			l.logger = logger
		}
	}
}
