package lexmach

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/npillmayer/predict"
	"github.com/npillmayer/predict/ll"
	"github.com/npillmayer/predict/ll/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// tracer traces with key 'predict.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("predict.scanner")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals ('[', ';', …), a list of keywords ("if", "for", …) and a
// map for translating token strings to their values.
// init is called before literals and keywords are added, fallback (if
// non-nil) is called afterwards. As lexmachine prefers earlier patterns for
// matches of equal length, fallback is the place for catch-all patterns.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, keywords []string,
	tokenIds map[string]int, fallback func(*lexmachine.Lexer)) (*LMAdapter, error) {
	//
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	if init != nil {
		init(adapter.Lexer)
	}
	for _, lit := range literals {
		adapter.Lexer.Add(literalPattern(lit), MakeToken(lit, tokenIds[lit]))
	}
	for _, name := range keywords {
		adapter.Lexer.Add([]byte(name), MakeToken(name, tokenIds[name]))
	}
	if fallback != nil {
		fallback(adapter.Lexer)
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// ForGrammar creates a lexmachine adapter matching the terminals of a
// grammar. Every token type is the index of its terminal within terminals,
// i.e. the column of the terminal in the parse table if terminals is taken
// from there. The end-of-input marker '$' is not matched by any pattern, but
// rather produced by the scanner at the end of the input.
//
// Terminals consisting of letters and digits only (such as "id") are matched
// as keywords, all others are matched literally. White space is skipped, any
// other input character is returned as a token of type scanner.Illegal.
func ForGrammar(terminals []*ll.Symbol) (*LMAdapter, error) {
	var literals, keywords []string
	tokenIds := make(map[string]int, len(terminals))
	for i, t := range terminals {
		if t == nil || t.Is(ll.EOF) {
			continue
		}
		if !t.IsTerminal() {
			return nil, fmt.Errorf("cannot create token pattern for non-terminal %s", t)
		}
		tokenIds[t.Name] = i
		if isKeyword(t.Name) {
			keywords = append(keywords, t.Name)
		} else {
			literals = append(literals, t.Name)
		}
	}
	tracer().Debugf("tokenizer for literals %v and keywords %v", literals, keywords)
	skipWhitespace := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
	}
	catchAll := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`.`), MakeToken("illegal", int(scanner.Illegal)))
	}
	return NewLMAdapter(skipWhitespace, literals, keywords, tokenIds, catchAll)
}

func isKeyword(name string) bool {
	for _, r := range name {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return false
		}
	}
	return name != ""
}

func literalPattern(lit string) []byte {
	return []byte("\\" + strings.Join(strings.Split(lit, ""), "\\"))
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, end: uint64(len(input)), Error: scanner.LogError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	end     uint64
	Error   func(error)
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = scanner.LogError
		return
	}
	lms.Error = h
}

// NextToken is part of the Tokenizer interface. Input which cannot be
// consumed by the DFA is reported to the error handler and returned as a
// token of type scanner.Illegal.
func (lms *LMScanner) NextToken() predict.Token {
	if lms.scanner == nil {
		return scanner.MakeDefaultToken(scanner.EOF, "", predict.Span{})
	}
	tok, err, eof := lms.scanner.Next()
	if err != nil {
		lms.Error(err)
		from := lms.scanner.TC
		if ui, is := err.(*machines.UnconsumedInput); is {
			from = ui.StartTC
			lms.scanner.TC = ui.FailTC
		}
		if lms.scanner.TC <= from { // make progress
			lms.scanner.TC = from + 1
		}
		if uint64(lms.scanner.TC) > lms.end {
			lms.scanner.TC = int(lms.end)
		}
		to := lms.scanner.TC
		if from > to {
			from = to
		}
		text := string(lms.scanner.Text[from:to])
		return scanner.MakeDefaultToken(scanner.Illegal, text, predict.Span{uint64(from), uint64(to)})
	}
	if eof {
		return scanner.MakeDefaultToken(scanner.EOF, "", predict.Span{lms.end, lms.end})
	}
	token := tok.(*lexmachine.Token)
	tracer().Debugf("token %d | %q @%d", token.Type, token.Lexeme, token.TC)
	return scanner.MakeDefaultToken(
		predict.TokType(token.Type),
		string(token.Lexeme),
		predict.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	)
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
