package ll

import "fmt"

// Correct eliminates every non-terminal which derives nothing but the empty
// string. Occurences of such a non-terminal are deleted from all other
// right-hand sides (substituted by nothing), then its rule is dropped.
//
// An alternative which becomes empty by deletion is turned into [ε]. This may
// leave further non-terminals deriving only ε, thus correction is repeated
// until no more non-terminals vanish. If the start symbol vanishes, the
// grammar derives the empty string only, which is reported as malformed.
//
// Correct returns a new grammar and leaves g untouched. For grammars without
// epsilon-only non-terminals the result equals g.
func Correct(g *Grammar) (*Grammar, error) {
	vanishing := make(map[*Symbol]bool)
	for changed := true; changed; {
		changed = false
		for _, r := range g.rules {
			if !vanishing[r.LHS] && derivesOnlyEpsilon(r, vanishing) {
				tracer().Debugf("correction: %s derives ε only", r.LHS)
				vanishing[r.LHS] = true
				changed = true
			}
		}
	}
	if len(vanishing) == 0 {
		return g, nil
	}
	if vanishing[g.Start()] {
		return nil, fmt.Errorf("%w: start symbol %s derives the empty string only",
			ErrMalformedGrammar, g.Start())
	}
	rules := make([]*Rule, 0, len(g.rules)-len(vanishing))
	for _, r := range g.rules {
		if vanishing[r.LHS] {
			continue
		}
		corrected := &Rule{LHS: r.LHS}
		for _, p := range r.Alternatives {
			var q Production
			for _, A := range p {
				if !vanishing[A] {
					q = append(q, A)
				}
			}
			if len(q) == 0 {
				q = Production{Epsilon}
			}
			if !containsProduction(corrected.Alternatives, q) {
				corrected.Alternatives = append(corrected.Alternatives, q)
			}
		}
		rules = append(rules, corrected)
	}
	return newGrammar(g.Name, rules), nil
}

// derivesOnlyEpsilon is true if every alternative of r consists of ε or of
// vanishing non-terminals only.
func derivesOnlyEpsilon(r *Rule, vanishing map[*Symbol]bool) bool {
	for _, p := range r.Alternatives {
		for _, A := range p {
			if !A.IsEpsilon() && !vanishing[A] {
				return false
			}
		}
	}
	return true
}

func containsProduction(alts []Production, p Production) bool {
	for _, q := range alts {
		if q.Equals(p) {
			return true
		}
	}
	return false
}
