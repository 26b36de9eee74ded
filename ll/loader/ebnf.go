package loader

import (
	"fmt"
	"io"
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/predict/ll"
	"golang.org/x/exp/ebnf"
)

// ReadEBNF reads a grammar in EBNF notation. filename is used for error
// messages only. The grammar is verified against the start symbol, i.e. every
// production has to be reachable from start and every name has to be defined.
// If start is empty, the first production of the input is the start symbol.
func ReadEBNF(filename string, r io.Reader, start string) (*ll.Grammar, error) {
	g, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ll.ErrMalformedGrammar, err)
	}
	prods := inSourceOrder(g)
	if len(prods) == 0 {
		return nil, fmt.Errorf("%w: %s contains no productions", ll.ErrMalformedGrammar, filename)
	}
	if start == "" {
		start = prods[0].Name.String
	}
	if isLexical(start) {
		return nil, fmt.Errorf("%w: start symbol %s is a lexical production", ll.ErrMalformedGrammar, start)
	}
	if err = ebnf.Verify(g, start); err != nil {
		return nil, fmt.Errorf("%w: %v", ll.ErrMalformedGrammar, err)
	}
	tr := &translator{counter: make(map[string]int)}
	tr.production(start, g[start].Expr)
	for _, p := range prods {
		if name := p.Name.String; name != start && !isLexical(name) {
			tr.production(name, p.Expr)
		}
	}
	if tr.err != nil {
		return nil, tr.err
	}
	b := ll.NewGrammarBuilder(filename)
	for _, def := range tr.defs {
		for _, alt := range def.alts {
			rb := b.LHS(def.lhs)
			if len(alt) == 0 {
				rb.Epsilon()
				continue
			}
			for _, ref := range alt {
				if ref.terminal {
					rb.T(ref.name)
				} else {
					rb.N(ref.name)
				}
			}
			rb.End()
		}
	}
	tracer().Debugf("translated %d EBNF productions into %d rules", len(prods), len(tr.defs))
	return b.Grammar()
}

func inSourceOrder(g ebnf.Grammar) []*ebnf.Production {
	prods := make([]*ebnf.Production, 0, len(g))
	for _, p := range g {
		prods = append(prods, p)
	}
	sort.Slice(prods, func(i, j int) bool {
		return prods[i].Pos().Offset < prods[j].Pos().Offset
	})
	return prods
}

// isLexical is true for production names which do not start with an upper
// case letter.
func isLexical(name string) bool {
	ch, _ := utf8.DecodeRuneInString(name)
	return !unicode.IsUpper(ch)
}

// --- Translation -----------------------------------------------------------

type symbolRef struct {
	name     string
	terminal bool
}

// ruleDef collects the alternatives for a non-terminal. An empty alternative
// derives ε.
type ruleDef struct {
	lhs  string
	alts [][]symbolRef
}

type translator struct {
	defs    []*ruleDef
	counter map[string]int
	err     error
}

func (tr *translator) production(lhs string, expr ebnf.Expression) {
	def := &ruleDef{lhs: lhs}
	tr.defs = append(tr.defs, def)
	switch x := expr.(type) {
	case nil:
		def.alts = [][]symbolRef{nil}
	case *ebnf.Option: // A = [ β ]  ⇒  A ➞ β | ε
		def.alts = append(tr.alternatives(lhs, x.Body), nil)
	case *ebnf.Repetition: // A = { β }  ⇒  A ➞ β A | ε
		for _, alt := range tr.alternatives(lhs, x.Body) {
			def.alts = append(def.alts, append(alt, symbolRef{name: lhs}))
		}
		def.alts = append(def.alts, nil)
	default:
		def.alts = tr.alternatives(lhs, expr)
	}
}

func (tr *translator) alternatives(lhs string, expr ebnf.Expression) [][]symbolRef {
	if alt, ok := expr.(ebnf.Alternative); ok {
		alts := make([][]symbolRef, 0, len(alt))
		for _, e := range alt {
			alts = append(alts, tr.sequence(lhs, e))
		}
		return alts
	}
	return [][]symbolRef{tr.sequence(lhs, expr)}
}

func (tr *translator) sequence(lhs string, expr ebnf.Expression) []symbolRef {
	seq, ok := expr.(ebnf.Sequence)
	if !ok {
		seq = ebnf.Sequence{expr}
	}
	refs := make([]symbolRef, 0, len(seq))
	for _, e := range seq {
		if ref, ok := tr.term(lhs, e); ok {
			refs = append(refs, ref)
		}
	}
	return refs
}

func (tr *translator) term(lhs string, expr ebnf.Expression) (symbolRef, bool) {
	switch x := expr.(type) {
	case *ebnf.Name:
		return symbolRef{name: x.String, terminal: isLexical(x.String)}, true
	case *ebnf.Token:
		return symbolRef{name: x.String, terminal: true}, true
	case *ebnf.Group:
		name := tr.synthetic(lhs)
		tr.production(name, x.Body)
		return symbolRef{name: name}, true
	case *ebnf.Option, *ebnf.Repetition:
		name := tr.synthetic(lhs)
		tr.production(name, x)
		return symbolRef{name: name}, true
	case nil:
		return symbolRef{}, false
	}
	if tr.err == nil {
		tr.err = fmt.Errorf("%w: unsupported EBNF expression %T in production %s",
			ll.ErrMalformedGrammar, expr, lhs)
	}
	return symbolRef{}, false
}

// synthetic creates a name for a helper non-terminal. EBNF names never
// contain '#', thus synthetic names cannot clash with names of the input.
func (tr *translator) synthetic(lhs string) string {
	tr.counter[lhs]++
	return fmt.Sprintf("%s#%d", lhs, tr.counter[lhs])
}
