package ll

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/linkedhashset"
)

// SymbolKind tells terminals from non-terminals and from the two special
// symbols epsilon and end-of-input.
type SymbolKind int8

// Kinds of grammar symbols.
const (
	NonTerminal SymbolKind = iota
	Terminal
	EpsilonKind
	EndOfInputKind
)

func (k SymbolKind) String() string {
	switch k {
	case NonTerminal:
		return "non-terminal"
	case Terminal:
		return "terminal"
	case EpsilonKind:
		return "epsilon"
	}
	return "end-of-input"
}

// Symbol is a grammar symbol. Symbols are interned per grammar, thus every
// name denotes exactly one symbol within a grammar.
type Symbol struct {
	Name string
	Kind SymbolKind
}

// Epsilon is the empty-string marker. An alternative consisting of Epsilon only
// derives the empty string.
var Epsilon = &Symbol{Name: "ε", Kind: EpsilonKind}

// EOF is the end-of-input marker '$'. It is the last column of every parse table.
var EOF = &Symbol{Name: "$", Kind: EndOfInputKind}

// IsTerminal is true for terminals and for end-of-input.
func (A *Symbol) IsTerminal() bool {
	return A.Kind == Terminal || A.Kind == EndOfInputKind
}

// IsNonTerminal is true for non-terminals.
func (A *Symbol) IsNonTerminal() bool {
	return A.Kind == NonTerminal
}

// IsEpsilon is true for Epsilon.
func (A *Symbol) IsEpsilon() bool {
	return A.Kind == EpsilonKind
}

// Is compares two symbols by name and kind.
func (A *Symbol) Is(B *Symbol) bool {
	if A == nil || B == nil {
		return A == B
	}
	return A.Name == B.Name && A.Kind == B.Kind
}

func (A *Symbol) String() string {
	return A.Name
}

// --- Symbol table ----------------------------------------------------------

// symbolTable interns the symbols of a grammar.
type symbolTable struct {
	table map[string]*Symbol
}

func newSymbolTable() *symbolTable {
	return &symbolTable{table: make(map[string]*Symbol)}
}

// resolve finds a symbol by name. Returns nil if not present.
func (t *symbolTable) resolve(name string) *Symbol {
	return t.table[name]
}

// resolveOrDefine finds a symbol in the table and inserts a new one if not found.
// A name may not denote a terminal and a non-terminal at the same time.
func (t *symbolTable) resolveOrDefine(name string, kind SymbolKind) (*Symbol, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty symbol name", ErrMalformedGrammar)
	}
	if name == EOF.Name || name == Epsilon.Name {
		return nil, fmt.Errorf("%w: symbol name %q is reserved", ErrMalformedGrammar, name)
	}
	if A := t.resolve(name); A != nil {
		if A.Kind != kind {
			return nil, fmt.Errorf("%w: %q used as %s and as %s", ErrMalformedGrammar,
				name, A.Kind, kind)
		}
		return A, nil
	}
	A := &Symbol{Name: name, Kind: kind}
	t.table[name] = A
	return A, nil
}

// insert puts a pre-created symbol into the table, replacing an existing one.
func (t *symbolTable) insert(A *Symbol) {
	t.table[A.Name] = A
}

// --- Terminal sets ---------------------------------------------------------

// TerminalSet is an insertion-ordered set of terminals, which may contain
// Epsilon (for FIRST sets) and EOF (for FOLLOW sets).
// Sets are read-only for clients.
type TerminalSet struct {
	set *linkedhashset.Set
}

func newTerminalSet() *TerminalSet {
	return &TerminalSet{set: linkedhashset.New()}
}

// add adds a terminal and returns true if it has not been contained before.
func (s *TerminalSet) add(T *Symbol) bool {
	if s.set.Contains(T) {
		return false
	}
	s.set.Add(T)
	return true
}

// union adds all terminals of other, except for Epsilon if withoutEpsilon is set.
// Returns true if s changed.
func (s *TerminalSet) union(other *TerminalSet, withoutEpsilon bool) bool {
	changed := false
	for _, T := range other.Symbols() {
		if withoutEpsilon && T.IsEpsilon() {
			continue
		}
		if s.add(T) {
			changed = true
		}
	}
	return changed
}

// Contains checks if T is a member of s.
func (s *TerminalSet) Contains(T *Symbol) bool {
	if s == nil {
		return false
	}
	return s.set.Contains(T)
}

// HasEpsilon is true if s contains Epsilon.
func (s *TerminalSet) HasEpsilon() bool {
	return s.Contains(Epsilon)
}

// Size returns the number of members.
func (s *TerminalSet) Size() int {
	if s == nil {
		return 0
	}
	return s.set.Size()
}

// Symbols returns the members of s in order of insertion.
func (s *TerminalSet) Symbols() []*Symbol {
	if s == nil {
		return nil
	}
	syms := make([]*Symbol, 0, s.set.Size())
	it := s.set.Iterator()
	for it.Next() {
		syms = append(syms, it.Value().(*Symbol))
	}
	return syms
}

// Names returns the names of the members of s in order of insertion.
func (s *TerminalSet) Names() []string {
	syms := s.Symbols()
	names := make([]string, len(syms))
	for i, T := range syms {
		names[i] = T.Name
	}
	return names
}

// String lists the members, separated by commas, e.g. "b,id,$".
func (s *TerminalSet) String() string {
	return strings.Join(s.Names(), ",")
}
