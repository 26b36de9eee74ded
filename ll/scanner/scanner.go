/*
Package scanner defines an interface for scanners to be used with the LL(1)
parser of package ll1.

A default scanner implementation is provided by sub-package `lexmach`, an
adapter for lexmachine which creates a tokenizer from the terminals of a grammar.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"text/scanner"

	"github.com/npillmayer/predict"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'predict.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("predict.scanner")
}

// EOF is identical to text/scanner.EOF. Illegal flags input which does not
// match any terminal of the grammar.
const (
	EOF     predict.TokType = scanner.EOF
	Illegal predict.TokType = EOF - 1
)

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() predict.Token
	SetErrorHandler(func(error))
}

// LogError is the default error reporting function for scanners.
func LogError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// LexMachine scanner.
type DefaultToken struct {
	kind   predict.TokType
	lexeme string
	Val    interface{}
	span   predict.Span
}

// MakeDefaultToken creates a token without a value.
func MakeDefaultToken(typ predict.TokType, lexeme string, span predict.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() predict.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() predict.Span {
	return t.span
}

func (t DefaultToken) String() string {
	switch t.kind {
	case EOF:
		return "<EOF>"
	case Illegal:
		return fmt.Sprintf("<illegal %q>", t.lexeme)
	}
	return fmt.Sprintf("<%d|%s>", t.kind, t.lexeme)
}

// --- Token slices ----------------------------------------------------------

// TokenSlice is a tokenizer over a pre-scanned list of tokens. After the
// last token it returns EOF forever.
type TokenSlice struct {
	tokens []predict.Token
	pos    int
}

var _ Tokenizer = (*TokenSlice)(nil)

// FromTokens creates a tokenizer for a list of tokens.
func FromTokens(tokens ...predict.Token) *TokenSlice {
	return &TokenSlice{tokens: tokens}
}

// NextToken is part of the Tokenizer interface.
func (ts *TokenSlice) NextToken() predict.Token {
	if ts.pos >= len(ts.tokens) {
		var at uint64
		if len(ts.tokens) > 0 {
			at = ts.tokens[len(ts.tokens)-1].Span().To()
		}
		return MakeDefaultToken(EOF, "", predict.Span{at, at})
	}
	t := ts.tokens[ts.pos]
	ts.pos++
	return t
}

// SetErrorHandler is part of the Tokenizer interface. A token slice never
// reports errors.
func (ts *TokenSlice) SetErrorHandler(func(error)) {}
