package ll

import (
	"fmt"
	"html"
	"io"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/predict/ll/sparse"
)

// ParseTable is the LL(1) decision table M, indexed by (non-terminal, terminal).
// A cell holds the production to expand, or nothing (meaning: reject).
//
// Rows are the non-terminals of the grammar in declaration order, columns
// are its terminals in order of first occurence, with '$' being the last column.
// Cells are stored in a sparse matrix as production numbers.
type ParseTable struct {
	nonterminals []*Symbol
	terminals    []*Symbol
	rows         map[*Symbol]int
	cols         map[*Symbol]int
	prods        []Production // numbered productions
	owner        []*Symbol    // LHS for each production number
	matrix       *sparse.IntMatrix
	conflicts    *treemap.Map // cell index -> *Conflict
	HasConflicts bool
}

// BuildTable constructs the parse table M from FIRST and FOLLOW sets.
// For every alternative α of a non-terminal A
//
//   - M[A,t] = α for every terminal t ∈ FIRST(α),
//   - M[A,t] = α for every t ∈ FOLLOW(A), if ε ∈ FIRST(α).
//
// For grammars with a single, epsilon-free alternative per non-terminal this
// means M[A,t] is set exactly if FIRST(A) = t.
//
// If two alternatives claim the same cell, the grammar is not LL(1). BuildTable
// then returns the table (for diagnostic purposes; HasConflicts is set) together
// with a *ConflictError listing all offending cells.
func BuildTable(g *Grammar, first *FirstSets, follow *FollowSets) (*ParseTable, error) {
	nts, ts := g.NonTerminals(), g.Terminals()
	tracer().Infof("parse table of size %d x %d", len(nts), len(ts))
	table := &ParseTable{
		nonterminals: nts,
		terminals:    ts,
		rows:         make(map[*Symbol]int, len(nts)),
		cols:         make(map[*Symbol]int, len(ts)),
		matrix:       sparse.NewIntMatrix(len(nts), len(ts), sparse.DefaultNullValue),
		conflicts:    treemap.NewWithIntComparator(),
	}
	for i, A := range nts {
		table.rows[A] = i
	}
	for j, t := range ts {
		table.cols[t] = j
	}
	for _, r := range g.Rules() {
		for _, alpha := range r.Alternatives {
			n := int32(len(table.prods))
			table.prods = append(table.prods, alpha)
			table.owner = append(table.owner, r.LHS)
			F := first.OfSequence(alpha)
			for _, t := range F.Symbols() {
				if !t.IsEpsilon() {
					table.enter(r.LHS, t, n)
				}
			}
			if F.HasEpsilon() {
				for _, t := range follow.Of(r.LHS).Symbols() {
					table.enter(r.LHS, t, n)
				}
			}
		}
	}
	if table.HasConflicts {
		cerr := &ConflictError{}
		for _, c := range table.conflicts.Values() {
			cerr.Conflicts = append(cerr.Conflicts, *c.(*Conflict))
		}
		tracer().Errorf("%v", cerr)
		return table, cerr
	}
	return table, nil
}

func (table *ParseTable) enter(A, t *Symbol, n int32) {
	i, j := table.rows[A], table.cols[t]
	old := table.matrix.Value(i, j)
	tracer().Debugf("M[%s,%s] = %v", A, t, table.prods[n])
	if !table.matrix.Add(i, j, n) {
		return
	}
	table.HasConflicts = true
	cell := i*table.matrix.N() + j
	c, found := table.conflicts.Get(cell)
	if !found {
		c = &Conflict{
			NonTerminal: A,
			Terminal:    t,
			Productions: []Production{table.prods[old]},
		}
		table.conflicts.Put(cell, c)
	}
	conflict := c.(*Conflict)
	if !containsProduction(conflict.Productions, table.prods[n]) {
		conflict.Productions = append(conflict.Productions, table.prods[n])
	}
	tracer().Debugf("conflict at %v", conflict)
}

// Lookup returns the production in cell M[A,t]. If the cell is empty or A or t
// are not part of the table, Lookup returns false.
func (table *ParseTable) Lookup(A, t *Symbol) (Production, bool) {
	i, ok := table.rows[A]
	if !ok {
		return nil, false
	}
	j, ok := table.cols[t]
	if !ok {
		return nil, false
	}
	v := table.matrix.Value(i, j)
	if v == table.matrix.NullValue() {
		return nil, false
	}
	return table.prods[v], true
}

// NonTerminals returns the row symbols.
func (table *ParseTable) NonTerminals() []*Symbol {
	return table.nonterminals
}

// Terminals returns the column symbols, '$' last.
func (table *ParseTable) Terminals() []*Symbol {
	return table.terminals
}

// Column returns the column index of terminal t, or -1.
func (table *ParseTable) Column(t *Symbol) int {
	if j, ok := table.cols[t]; ok {
		return j
	}
	return -1
}

// EntryCount returns the number of non-empty cells.
func (table *ParseTable) EntryCount() int {
	return table.matrix.ValueCount()
}

// Conflicts returns the conflicting cells, ordered by row and column.
func (table *ParseTable) Conflicts() []Conflict {
	var cs []Conflict
	for _, c := range table.conflicts.Values() {
		cs = append(cs, *c.(*Conflict))
	}
	return cs
}

// Dump is a debugging helper, tracing all non-empty cells.
func (table *ParseTable) Dump() {
	tracer().Debugf("--- parse table -------------------------")
	table.matrix.Each(func(i, j int, a, b int32) {
		if b == table.matrix.NullValue() {
			tracer().Debugf("M[%s,%s] = %s ➞ %v", table.nonterminals[i], table.terminals[j],
				table.owner[a], table.prods[a])
		} else {
			tracer().Debugf("M[%s,%s] = %s ➞ %v / %v", table.nonterminals[i], table.terminals[j],
				table.owner[a], table.prods[a], table.prods[b])
		}
	})
	tracer().Debugf("-----------------------------------------")
}

// TableAsHTML exports a parse table in HTML-format. Cells with conflicts show
// all competing productions.
func TableAsHTML(table *ParseTable, w io.Writer) {
	if table == nil {
		tracer().Errorf("parse table not yet created, cannot export to HTML")
		return
	}
	io.WriteString(w, "<html><body>\n")
	io.WriteString(w, fmt.Sprintf("LL(1) table with %d entries<p>", table.EntryCount()))
	io.WriteString(w, "<table border=1 cellspacing=0 cellpadding=5>\n")
	io.WriteString(w, "<tr bgcolor=#cccccc><td></td>\n")
	for _, t := range table.terminals {
		io.WriteString(w, fmt.Sprintf("<td>%s</td>", html.EscapeString(t.Name)))
	}
	io.WriteString(w, "</tr>\n")
	var td string // table cell
	for i, A := range table.nonterminals {
		io.WriteString(w, fmt.Sprintf("<tr><td>%s</td>\n", html.EscapeString(A.Name)))
		for j := range table.terminals {
			v1, v2 := table.matrix.Values(i, j)
			if v1 == table.matrix.NullValue() {
				td = "&nbsp;"
			} else if v2 == table.matrix.NullValue() {
				td = html.EscapeString(table.prods[v1].String())
			} else {
				td = html.EscapeString(fmt.Sprintf("%v / %v", table.prods[v1], table.prods[v2]))
			}
			io.WriteString(w, "<td>")
			io.WriteString(w, td)
			io.WriteString(w, "</td>\n")
		}
		io.WriteString(w, "</tr>\n")
	}
	io.WriteString(w, "</table></body></html>\n")
}
