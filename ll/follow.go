package ll

// FollowSets holds FOLLOW(A) for every non-terminal A of a grammar, i.e. the
// terminals which may immediately follow A in a sentential form.
type FollowSets struct {
	sets map[*Symbol]*TerminalSet
}

// trailing records that FOLLOW(from) ⊆ FOLLOW(to), because 'to' occurs at the
// end of a production of 'from' (or is followed by nullable symbols only).
type trailing struct {
	from, to *Symbol
}

// Follows computes the FOLLOW sets of a grammar.
//
// (2) For every occurence of a non-terminal N within a right-hand side, the
// terminals of FIRST of the remaining symbols are added to FOLLOW(N).
// Occurences are visited one by one, in declaration order.
//
// (3) For A → α N β with β deriving ε (in particular, with N being the last
// symbol), FOLLOW(A) is propagated to FOLLOW(N). Propagation is iterated until
// no FOLLOW set changes any more, thus the result does not depend on the
// order of rules.
//
// (1) Finally, the end-of-input marker is appended to every FOLLOW set.
//
// Terminals are recorded in order of discovery, '$' is always the last one.
func Follows(g *Grammar, first *FirstSets) *FollowSets {
	fs := &FollowSets{sets: make(map[*Symbol]*TerminalSet, len(g.rules))}
	for _, r := range g.rules {
		fs.sets[r.LHS] = newTerminalSet()
	}
	var edges []trailing
	for _, r := range g.rules { // rule 2
		for _, p := range r.Alternatives {
			for i, N := range p {
				if !N.IsNonTerminal() {
					continue
				}
				FN := fs.sets[N]
				if FN == nil { // undefined non-terminal, reported by validation
					continue
				}
				rest := first.OfSequence(p[i+1:])
				FN.union(rest, true)
				if rest.HasEpsilon() && N != r.LHS {
					edges = append(edges, trailing{from: r.LHS, to: N})
				}
			}
		}
	}
	for changed, round := true, 1; changed; round++ { // rule 3
		changed = false
		for _, e := range edges {
			if fs.sets[e.to].union(fs.sets[e.from], true) {
				changed = true
			}
		}
		tracer().Debugf("FOLLOW propagation round %d, changed = %v", round, changed)
	}
	for _, r := range g.rules { // rule 1
		fs.sets[r.LHS].add(EOF)
		tracer().Debugf("FOLLOW(%s) = %v", r.LHS, fs.sets[r.LHS])
	}
	return fs
}

// Of returns FOLLOW(A), or nil if A is not a non-terminal of the grammar.
func (fs *FollowSets) Of(A *Symbol) *TerminalSet {
	return fs.sets[A]
}
