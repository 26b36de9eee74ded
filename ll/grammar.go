package ll

import (
	"fmt"
	"strings"
)

// Production is a right-hand side of a rule, i.e. a sequence of symbols.
// A production of exactly [ε] derives the empty string.
type Production []*Symbol

// IsEpsilon is true for the empty derivation [ε].
func (p Production) IsEpsilon() bool {
	return len(p) == 1 && p[0].IsEpsilon()
}

// Equals compares two productions symbol by symbol.
func (p Production) Equals(other Production) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if !p[i].Is(other[i]) {
			return false
		}
	}
	return true
}

func (p Production) String() string {
	names := make([]string, len(p))
	for i, A := range p {
		names[i] = A.Name
	}
	return strings.Join(names, " ")
}

// Rule is a non-terminal together with its alternatives. Rules built from
// raw grammars always have a single alternative.
type Rule struct {
	LHS          *Symbol
	Alternatives []Production
}

func (r *Rule) String() string {
	alts := make([]string, len(r.Alternatives))
	for i, p := range r.Alternatives {
		alts[i] = p.String()
	}
	return fmt.Sprintf("%s ➞ %s", r.LHS, strings.Join(alts, " | "))
}

// Grammar is a set of rules, ordered by the insertion of their left-hand
// sides. The first rule's left-hand side is the start symbol.
// Grammars are immutable after being built.
type Grammar struct {
	Name      string
	rules     []*Rule
	rulemap   map[*Symbol]*Rule
	symbols   *symbolTable
	terminals []*Symbol // first-occurence order, without EOF
}

// newGrammar creates a grammar from a list of rules. Symbols in the rules are
// re-used.
func newGrammar(name string, rules []*Rule) *Grammar {
	g := &Grammar{
		Name:    name,
		rules:   rules,
		rulemap: make(map[*Symbol]*Rule, len(rules)),
		symbols: newSymbolTable(),
	}
	for _, r := range rules {
		g.rulemap[r.LHS] = r
		g.symbols.insert(r.LHS)
	}
	seen := make(map[*Symbol]bool)
	for _, r := range rules {
		for _, p := range r.Alternatives {
			for _, A := range p {
				if A.IsEpsilon() || seen[A] {
					continue
				}
				seen[A] = true
				g.symbols.insert(A)
				if A.IsTerminal() {
					g.terminals = append(g.terminals, A)
				}
			}
		}
	}
	return g
}

// Start returns the start symbol, i.e. the LHS of the first rule.
func (g *Grammar) Start() *Symbol {
	if len(g.rules) == 0 {
		return nil
	}
	return g.rules[0].LHS
}

// Rules returns the rules in declaration order.
func (g *Grammar) Rules() []*Rule {
	return g.rules
}

// Rule returns the rule for non-terminal A, or nil.
func (g *Grammar) Rule(A *Symbol) *Rule {
	return g.rulemap[A]
}

// Size returns the number of rules.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// SymbolByName returns the grammar symbol with a given name, or nil.
// "$" is the end-of-input marker of every grammar.
func (g *Grammar) SymbolByName(name string) *Symbol {
	if name == EOF.Name {
		return EOF
	}
	return g.symbols.resolve(name)
}

// NonTerminals returns the left-hand sides in order of insertion, start symbol first.
func (g *Grammar) NonTerminals() []*Symbol {
	nts := make([]*Symbol, len(g.rules))
	for i, r := range g.rules {
		nts[i] = r.LHS
	}
	return nts
}

// Terminals returns every terminal of a right-hand side in order of first
// occurence, followed by the end-of-input marker "$".
func (g *Grammar) Terminals() []*Symbol {
	ts := make([]*Symbol, len(g.terminals), len(g.terminals)+1)
	copy(ts, g.terminals)
	return append(ts, EOF)
}

// EachNonTerminal iterates over all non-terminals of the grammar,
// calling a mapper function for each.
// Returns the results of the mapper calls.
func (g *Grammar) EachNonTerminal(mapper func(A *Symbol) interface{}) []interface{} {
	var r []interface{}
	for _, A := range g.NonTerminals() {
		r = append(r, mapper(A))
	}
	return r
}

// Validate checks that every non-terminal referenced on a right-hand side
// has a rule, and that no alternative is empty.
func (g *Grammar) Validate() error {
	if len(g.rules) == 0 {
		return fmt.Errorf("%w: grammar %q has no rules", ErrMalformedGrammar, g.Name)
	}
	for _, r := range g.rules {
		for _, p := range r.Alternatives {
			if len(p) == 0 {
				return fmt.Errorf("%w: empty production for %s", ErrMalformedGrammar, r.LHS)
			}
			for _, A := range p {
				if A.IsNonTerminal() && g.rulemap[A] == nil {
					return fmt.Errorf("%w: non-terminal %s referenced in rule for %s is not defined",
						ErrMalformedGrammar, A, r.LHS)
				}
				if A.IsEpsilon() && len(p) > 1 {
					return fmt.Errorf("%w: epsilon inside production %v of %s",
						ErrMalformedGrammar, p, r.LHS)
				}
			}
		}
	}
	return nil
}

// Dump is a debugging helper, tracing all rules at debug level.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %s -----------------------", g.Name)
	for i, r := range g.rules {
		tracer().Debugf("%3d: %v", i, r)
	}
	tracer().Debugf("----------------------------------------")
}

// === Grammar Builder =======================================================

// GrammarBuilder is a builder type for grammars. Use it as
//
//    b := NewGrammarBuilder("G")
//    b.LHS("S").N("A").T("a").End()   // S  ->  A a
//    b.LHS("A").T("b").End()          // A  ->  b
//    b.LHS("A").Epsilon()             // A  ->  ε
//    g, err := b.Grammar()
//
// Errors are collected and reported by Grammar().
type GrammarBuilder struct {
	name    string
	symbols *symbolTable
	rules   []*Rule
	rulemap map[*Symbol]*Rule
	err     error
}

// RuleBuilder collects the right-hand side of a single alternative.
type RuleBuilder struct {
	gb  *GrammarBuilder
	lhs *Symbol
	rhs Production
}

// NewGrammarBuilder creates a builder for a grammar with a given name.
func NewGrammarBuilder(name string) *GrammarBuilder {
	return &GrammarBuilder{
		name:    name,
		symbols: newSymbolTable(),
		rulemap: make(map[*Symbol]*Rule),
	}
}

func (gb *GrammarBuilder) fail(err error) {
	if gb.err == nil {
		gb.err = err
	}
}

// LHS starts a new alternative for non-terminal name.
// The first LHS of a grammar will be its start symbol.
func (gb *GrammarBuilder) LHS(name string) *RuleBuilder {
	A, err := gb.symbols.resolveOrDefine(name, NonTerminal)
	if err != nil {
		gb.fail(err)
		A = &Symbol{Name: name, Kind: NonTerminal}
	}
	return &RuleBuilder{gb: gb, lhs: A}
}

// N appends a non-terminal to the right-hand side.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	return rb.appendSymbol(name, NonTerminal)
}

// T appends a terminal to the right-hand side.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	return rb.appendSymbol(name, Terminal)
}

func (rb *RuleBuilder) appendSymbol(name string, kind SymbolKind) *RuleBuilder {
	A, err := rb.gb.symbols.resolveOrDefine(name, kind)
	if err != nil {
		rb.gb.fail(err)
		return rb
	}
	rb.rhs = append(rb.rhs, A)
	return rb
}

// End closes the alternative. An empty right-hand side is an error; use
// Epsilon() for empty derivations.
func (rb *RuleBuilder) End() *GrammarBuilder {
	if len(rb.rhs) == 0 {
		rb.gb.fail(fmt.Errorf("%w: empty production for %s", ErrMalformedGrammar, rb.lhs))
		return rb.gb
	}
	rb.gb.addAlternative(rb.lhs, rb.rhs)
	return rb.gb
}

// Epsilon closes the alternative as an empty derivation.
func (rb *RuleBuilder) Epsilon() *GrammarBuilder {
	if len(rb.rhs) > 0 {
		rb.gb.fail(fmt.Errorf("%w: epsilon after symbols in production for %s",
			ErrMalformedGrammar, rb.lhs))
		return rb.gb
	}
	rb.gb.addAlternative(rb.lhs, Production{Epsilon})
	return rb.gb
}

func (gb *GrammarBuilder) addAlternative(A *Symbol, rhs Production) {
	r := gb.rulemap[A]
	if r == nil {
		r = &Rule{LHS: A}
		gb.rulemap[A] = r
		gb.rules = append(gb.rules, r)
	}
	r.Alternatives = append(r.Alternatives, rhs)
}

// Grammar returns the grammar, or the first error found during building.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if gb.err != nil {
		return nil, gb.err
	}
	if len(gb.rules) == 0 {
		return nil, fmt.Errorf("%w: grammar %q has no rules", ErrMalformedGrammar, gb.name)
	}
	rules := make([]*Rule, len(gb.rules))
	for i, r := range gb.rules {
		rules[i] = &Rule{LHS: r.LHS, Alternatives: append([]Production(nil), r.Alternatives...)}
	}
	return newGrammar(gb.name, rules), nil
}
