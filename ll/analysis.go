package ll

import (
	"fmt"

	"github.com/cnf/structhash"
)

// Analysis bundles the results of static grammar analysis: the corrected
// grammar, FIRST and FOLLOW sets, and the parse table.
// An analysis is read-only and may be shared between parsers.
type Analysis struct {
	g      *Grammar
	first  *FirstSets
	follow *FollowSets
	table  *ParseTable
}

// BuildAnalysis decodes a raw grammar and analyses it. See Analyse.
func BuildAnalysis(raw *RawGrammar) (*Analysis, error) {
	g, err := DecodeRaw(raw)
	if err != nil {
		return nil, err
	}
	return Analyse(g)
}

// Analyse corrects a grammar, then computes FIRST and FOLLOW sets and
// constructs the parse table. Either all of these steps succeed, or an
// error is returned and no analysis is produced. Errors wrap one of
// ErrMalformedGrammar, ErrCyclicFirstChain and ErrLL1Conflict.
func Analyse(g *Grammar) (*Analysis, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: no grammar", ErrMalformedGrammar)
	}
	corrected, err := Correct(g)
	if err != nil {
		return nil, err
	}
	if err = corrected.Validate(); err != nil {
		return nil, err
	}
	corrected.Dump()
	ga := &Analysis{g: corrected}
	if ga.first, err = Firsts(corrected); err != nil {
		return nil, err
	}
	ga.follow = Follows(corrected, ga.first)
	if ga.table, err = BuildTable(corrected, ga.first, ga.follow); err != nil {
		return nil, err
	}
	ga.table.Dump()
	tracer().Infof("grammar %q analysed: %d non-terminals, %d terminals, %d table entries",
		corrected.Name, len(ga.NonTerminals()), len(ga.Terminals()), ga.table.EntryCount())
	return ga, nil
}

// Grammar returns the corrected grammar.
func (ga *Analysis) Grammar() *Grammar {
	return ga.g
}

// First returns FIRST(A).
func (ga *Analysis) First(A *Symbol) *TerminalSet {
	return ga.first.Of(A)
}

// FirstSets returns the FIRST sets of all non-terminals.
func (ga *Analysis) FirstSets() *FirstSets {
	return ga.first
}

// Follow returns FOLLOW(A).
func (ga *Analysis) Follow(A *Symbol) *TerminalSet {
	return ga.follow.Of(A)
}

// Table returns the LL(1) parse table.
func (ga *Analysis) Table() *ParseTable {
	return ga.table
}

// NonTerminals returns the non-terminals of the corrected grammar, start symbol first.
func (ga *Analysis) NonTerminals() []*Symbol {
	return ga.g.NonTerminals()
}

// Terminals returns the terminals of the corrected grammar, '$' last.
func (ga *Analysis) Terminals() []*Symbol {
	return ga.g.Terminals()
}

// --- Fingerprint -----------------------------------------------------------

// snapshot is a plain-data copy of an analysis, suitable for hashing.
type snapshot struct {
	Name         string
	Rules        []string
	NonTerminals []string
	Terminals    []string
	First        map[string][]string
	Follow       map[string][]string
	Table        map[string]map[string]string
}

func (ga *Analysis) snapshot() snapshot {
	s := snapshot{
		Name:   ga.g.Name,
		First:  make(map[string][]string),
		Follow: make(map[string][]string),
		Table:  make(map[string]map[string]string),
	}
	for _, r := range ga.g.Rules() {
		s.Rules = append(s.Rules, r.String())
	}
	for _, t := range ga.Terminals() {
		s.Terminals = append(s.Terminals, t.Name)
	}
	for _, A := range ga.NonTerminals() {
		s.NonTerminals = append(s.NonTerminals, A.Name)
		s.First[A.Name] = ga.First(A).Names()
		s.Follow[A.Name] = ga.Follow(A).Names()
		row := make(map[string]string)
		for _, t := range ga.Terminals() {
			if p, ok := ga.table.Lookup(A, t); ok {
				row[t.Name] = p.String()
			}
		}
		s.Table[A.Name] = row
	}
	return s
}

// Fingerprint returns a hash over the corrected grammar, FIRST and FOLLOW sets
// and the table. Analyses of the same grammar have identical fingerprints.
func (ga *Analysis) Fingerprint() (string, error) {
	return structhash.Hash(ga.snapshot(), 1)
}
