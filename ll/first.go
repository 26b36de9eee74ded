package ll

import "fmt"

// FirstSets holds FIRST(A) for every non-terminal A of a grammar.
// FIRST(A) is the set of terminals which may begin a derivation from A,
// including ε if A derives the empty string.
type FirstSets struct {
	g    *Grammar
	sets map[*Symbol]*TerminalSet
}

type visitState int8

const (
	unvisited visitState = iota
	inProgress
	finished
)

// Firsts computes the FIRST sets of a grammar. FIRST(A) is the union over
// the alternatives of A. Leading non-terminals are followed depth-first; a
// non-terminal re-entered while its own FIRST set is still under construction
// means that the chain of leading non-terminals never reaches a terminal. This
// is reported as a *CycleError.
//
// For grammars with a single, epsilon-free alternative per non-terminal every
// FIRST set consists of exactly one terminal.
func Firsts(g *Grammar) (*FirstSets, error) {
	fs := &FirstSets{
		g:    g,
		sets: make(map[*Symbol]*TerminalSet, len(g.rules)),
	}
	state := make(map[*Symbol]visitState, len(g.rules))
	for _, r := range g.rules {
		if _, err := fs.first(r.LHS, state, nil); err != nil {
			return nil, err
		}
	}
	return fs, nil
}

func (fs *FirstSets) first(A *Symbol, state map[*Symbol]visitState, chain []*Symbol) (*TerminalSet, error) {
	switch state[A] {
	case finished:
		return fs.sets[A], nil
	case inProgress:
		return nil, &CycleError{Chain: cycleOf(append(chain, A))}
	}
	r := fs.g.Rule(A)
	if r == nil {
		return nil, fmt.Errorf("%w: non-terminal %s has no rule", ErrMalformedGrammar, A)
	}
	state[A] = inProgress
	chain = append(chain, A)
	F := newTerminalSet()
	for _, p := range r.Alternatives {
		if len(p) == 0 {
			return nil, fmt.Errorf("%w: empty production for %s", ErrMalformedGrammar, A)
		}
		nullable := true
		for _, X := range p {
			if X.IsEpsilon() {
				break
			}
			if X.IsTerminal() {
				F.add(X)
				nullable = false
				break
			}
			FX, err := fs.first(X, state, chain)
			if err != nil {
				return nil, err
			}
			F.union(FX, true)
			if !FX.HasEpsilon() {
				nullable = false
				break
			}
		}
		if nullable {
			F.add(Epsilon)
		}
	}
	fs.sets[A] = F
	state[A] = finished
	tracer().Debugf("FIRST(%s) = %v", A, F)
	return F, nil
}

// cycleOf cuts the prefix of a chain up to the first occurence of its last element.
func cycleOf(chain []*Symbol) []*Symbol {
	last := chain[len(chain)-1]
	for i, A := range chain {
		if A == last {
			return append([]*Symbol(nil), chain[i:]...)
		}
	}
	return chain
}

// Of returns FIRST(A). For terminals T, FIRST(T) = { T }.
func (fs *FirstSets) Of(A *Symbol) *TerminalSet {
	if A.IsTerminal() || A.IsEpsilon() {
		T := newTerminalSet()
		T.add(A)
		return T
	}
	return fs.sets[A]
}

// OfSequence returns FIRST(β) for a string of symbols β. FIRST of the empty
// sequence is { ε }.
func (fs *FirstSets) OfSequence(beta []*Symbol) *TerminalSet {
	F := newTerminalSet()
	for _, X := range beta {
		if X.IsEpsilon() {
			continue
		}
		FX := fs.Of(X)
		F.union(FX, true)
		if !FX.HasEpsilon() {
			return F
		}
	}
	F.add(Epsilon)
	return F
}
