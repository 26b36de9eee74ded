/*
Package ll1 provides a table-driven LL(1)-parser. Clients have to use the
tools of package ll to prepare the parse table. The parser utilizes this
table to recognize a leftmost derivation for a given input, provided through
a scanner interface.

The parser is a recognizer: it answers whether the input is a sentence of the
grammar, and does not construct a parse tree.

Usage

Clients construct a grammar, either from a raw grammar in character notation
or by using a grammar builder:

	raw := ll.NewRawGrammar("G").Rule("S", "aBb").Rule("B", "+C").Rule("C", "(D)").Rule("D", "id")
	ga, err := ll.BuildAnalysis(raw)
	if err != nil { ... }  // malformed grammar or grammar not LL(1)

Finally parse some input:

	accepted, err := ll1.ParseString("a+(id)b", ga)

or, with a custom scanner:

	p := ll1.NewParser(ga)
	accepted, err := p.Parse(scan)

An analysis is read-only, so any number of parsers may share it. Every call to
Parse uses a stack of its own.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll1

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/predict"
	"github.com/npillmayer/predict/ll"
	"github.com/npillmayer/predict/ll/scanner"
	"github.com/npillmayer/predict/ll/scanner/lexmach"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'predict.ll1'.
func tracer() tracing.Trace {
	return tracing.Select("predict.ll1")
}

// ErrNotInitialized is returned for parsers without a parse table.
var ErrNotInitialized = errors.New("LL(1)-parser not initialized")

// Parser is an LL(1)-parser type. Create and initialize one with ll1.NewParser(...)
type Parser struct {
	ga        *ll.Analysis
	terminals []*ll.Symbol // token type -> terminal
}

// NewParser creates an LL(1) parser for an analysed grammar.
func NewParser(ga *ll.Analysis) *Parser {
	p := &Parser{ga: ga}
	if ga != nil {
		p.terminals = ga.Terminals()
	}
	return p
}

// Parse starts a new parse, given a scanner tokenizing the input.
// Token types are expected to be the column of the terminal in the parse
// table (as produced by package lexmach), with scanner.EOF marking the end of
// input. Tokens of any other type never match.
//
// The parser returns true if the input string has been accepted. Rejecting an
// input is not an error; errors are returned for uninitialized parsers only.
func (p *Parser) Parse(scan scanner.Tokenizer) (bool, error) {
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	if p == nil || p.ga == nil || p.ga.Table() == nil {
		tracer().Errorf("LL(1)-parser not initialized")
		return false, ErrNotInitialized
	}
	if scan == nil {
		return false, fmt.Errorf("%w: no scanner", ErrNotInitialized)
	}
	table := p.ga.Table()
	stack := arraystack.New()
	stack.Push(ll.EOF)
	stack.Push(p.ga.Grammar().Start())
	token := scan.NextToken()
	a := p.terminal(token)
	for {
		top, _ := stack.Peek()
		X := top.(*ll.Symbol)
		tracer().Debugf("stack = %v, lookahead = %v", stack.Values(), a)
		switch {
		case X.Is(ll.EOF):
			if a.Is(ll.EOF) {
				tracer().Infof("input accepted")
				return true, nil
			}
			return p.reject(X, token)
		case X.IsNonTerminal():
			if a == nil {
				return p.reject(X, token)
			}
			alpha, ok := table.Lookup(X, a)
			if !ok {
				return p.reject(X, token)
			}
			tracer().Debugf("expand %s ➞ %v", X, alpha)
			stack.Pop()
			for i := len(alpha) - 1; i >= 0; i-- { // leftmost symbol on top
				if !alpha[i].IsEpsilon() {
					stack.Push(alpha[i])
				}
			}
		case a != nil && X == a:
			tracer().Debugf("match %s", X)
			stack.Pop()
			token = scan.NextToken()
			a = p.terminal(token)
		default:
			return p.reject(X, token)
		}
	}
}

// terminal maps a token to the terminal it represents, or to nil.
func (p *Parser) terminal(token predict.Token) *ll.Symbol {
	if token == nil {
		return ll.EOF
	}
	t := token.TokType()
	if t == scanner.EOF {
		return ll.EOF
	}
	if t >= 0 && int(t) < len(p.terminals) {
		return p.terminals[t]
	}
	return nil
}

func (p *Parser) reject(X *ll.Symbol, token predict.Token) (bool, error) {
	if token == nil {
		tracer().Infof("input rejected: no move for %s at end of input", X)
	} else {
		tracer().Infof("input rejected: no move for %s with token %q at %v", X,
			token.Lexeme(), token.Span())
	}
	return false, nil
}

// ParseString tokenizes an input string with a scanner created from the
// terminals of ga and parses it. See Parser.Parse.
func ParseString(input string, ga *ll.Analysis) (bool, error) {
	if ga == nil {
		return false, ErrNotInitialized
	}
	lm, err := lexmach.ForGrammar(ga.Terminals())
	if err != nil {
		return false, err
	}
	scan, err := lm.Scanner(input)
	if err != nil {
		return false, err
	}
	scan.SetErrorHandler(func(e error) {
		tracer().Debugf("scanner: %v", e)
	})
	return NewParser(ga).Parse(scan)
}
