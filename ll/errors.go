package ll

import (
	"errors"
	"fmt"
	"strings"
)

// Errors reported by grammar construction and analysis. Detailed errors wrap
// one of these; test with errors.Is.
var (
	// ErrMalformedGrammar flags an empty production, a reference to a non-terminal
	// without a rule, or a symbol which is not part of the grammar's alphabet.
	ErrMalformedGrammar = errors.New("malformed grammar")

	// ErrCyclicFirstChain flags a chain of leading non-terminals which never
	// reaches a terminal.
	ErrCyclicFirstChain = errors.New("cyclic FIRST chain")

	// ErrLL1Conflict flags a grammar with more than one production for a
	// cell of the parse table.
	ErrLL1Conflict = errors.New("grammar is not LL(1)")
)

// CycleError reports the chain of leading non-terminals which loops, starting
// and ending with the same non-terminal.
type CycleError struct {
	Chain []*Symbol
}

func (e *CycleError) Error() string {
	names := make([]string, len(e.Chain))
	for i, A := range e.Chain {
		names[i] = A.Name
	}
	return fmt.Sprintf("%s: %s", ErrCyclicFirstChain, strings.Join(names, " → "))
}

// Unwrap makes CycleError match ErrCyclicFirstChain.
func (e *CycleError) Unwrap() error {
	return ErrCyclicFirstChain
}

// Conflict is a single table cell claimed by more than one production.
type Conflict struct {
	NonTerminal *Symbol
	Terminal    *Symbol
	Productions []Production
}

func (c Conflict) String() string {
	alts := make([]string, len(c.Productions))
	for i, p := range c.Productions {
		alts[i] = p.String()
	}
	return fmt.Sprintf("M[%s,%s] = { %s }", c.NonTerminal, c.Terminal, strings.Join(alts, " | "))
}

// ConflictError lists all conflicting cells of a parse table, ordered by row and column.
type ConflictError struct {
	Conflicts []Conflict
}

func (e *ConflictError) Error() string {
	cells := make([]string, len(e.Conflicts))
	for i, c := range e.Conflicts {
		cells[i] = c.String()
	}
	return fmt.Sprintf("%s: %s", ErrLL1Conflict, strings.Join(cells, ", "))
}

// Unwrap makes ConflictError match ErrLL1Conflict.
func (e *ConflictError) Unwrap() error {
	return ErrLL1Conflict
}
