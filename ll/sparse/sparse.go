/*
Package sparse implements a simple type for sparse integer matrices.
It is used for LL(1) parse tables, where most of the cells are empty.
Every entry in the table is either a single int32 or a pair (int32,int32);
a second value in a cell marks a conflict.

This implementation uses the COO algorithm (a.k.a. triplet-encoding), with
triplets kept sorted by row and column.

   https://medium.com/@jmaxg3/101-ways-to-store-a-sparse-matrix-c7f2bf15a229


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sparse

import (
	"fmt"
	"sort"
)

// IntMatrix is a type for a sparse matrix of integer values. Construct with
//
//     M := NewIntMatrix(10, 10, -1)  // last parameter is M's null-value
//
// Now
//
//     M.Set(2, 3, 4711)              // set a value
//     v := M.Value(2, 3)             // returns 4711
//     M.Add(2, 3, 123)               // add a second value, returns true
//     cnt := M.ValueCount()          // still returns 1 (one position set)
//     v = M.Value(9, 9)              // returns -1, i.e. the null-value
//
// Positions outside of m x n are rejected with a panic.
type IntMatrix struct {
	cells   []triplet // sorted by (row, col)
	rowcnt  int
	colcnt  int
	nullval int32
}

// DefaultNullValue is the default empty-value for matrices (min int32).
const DefaultNullValue = -2147483648

type triplet struct {
	row, col int
	a, b     int32
}

// NewIntMatrix creates a new matrix for int, size m x n. The 3rd argument is a null-value,
// indicating empty entries (use DefaultNullValue if you haven't any specific
// requirements).
func NewIntMatrix(m, n int, nullValue int32) *IntMatrix {
	return &IntMatrix{
		rowcnt:  m,
		colcnt:  n,
		nullval: nullValue,
	}
}

// M returns the row count.
func (m *IntMatrix) M() int {
	return m.rowcnt
}

// N returns the column count.
func (m *IntMatrix) N() int {
	return m.colcnt
}

// NullValue returns this matrix' null value
func (m *IntMatrix) NullValue() int32 {
	return m.nullval
}

// ValueCount returns the number of occupied positions in the matrix.
func (m *IntMatrix) ValueCount() int {
	return len(m.cells)
}

// search returns the index of the first triplet not stored left of (i,j).
func (m *IntMatrix) search(i, j int) int {
	return sort.Search(len(m.cells), func(k int) bool {
		t := m.cells[k]
		return t.row > i || (t.row == i && t.col >= j)
	})
}

func (m *IntMatrix) find(i, j int) (int, bool) {
	k := m.search(i, j)
	return k, k < len(m.cells) && m.cells[k].row == i && m.cells[k].col == j
}

// Value returns the primary value at position (i,j), or NullValue
func (m *IntMatrix) Value(i, j int) int32 {
	a, _ := m.Values(i, j)
	return a
}

// Values returns the pair of values at position (i,j), or (NullValue, NullValue)
func (m *IntMatrix) Values(i, j int) (int32, int32) {
	if k, ok := m.find(i, j); ok {
		return m.cells[k].a, m.cells[k].b
	}
	return m.nullval, m.nullval
}

// Set a value in the matrix at position (i,j), replacing all previous values.
func (m *IntMatrix) Set(i, j int, value int32) *IntMatrix {
	m.check(i, j)
	k, ok := m.find(i, j)
	if ok {
		m.cells[k].a, m.cells[k].b = value, m.nullval
		return m
	}
	m.insertAt(k, triplet{row: i, col: j, a: value, b: m.nullval})
	return m
}

// Add a value in the matrix at position (i,j). If the position already holds
// a different value, value becomes the second value of the position and Add
// returns true. A third value overwrites the second one.
func (m *IntMatrix) Add(i, j int, value int32) bool {
	m.check(i, j)
	k, ok := m.find(i, j)
	if !ok {
		m.insertAt(k, triplet{row: i, col: j, a: value, b: m.nullval})
		return false
	}
	if m.cells[k].a == value {
		return false
	}
	m.cells[k].b = value
	return true
}

// Each calls f for every occupied position, ordered by row, then column.
func (m *IntMatrix) Each(f func(i, j int, a, b int32)) {
	for _, t := range m.cells {
		f(t.row, t.col, t.a, t.b)
	}
}

func (m *IntMatrix) insertAt(k int, t triplet) {
	m.cells = append(m.cells, triplet{}) // make room
	copy(m.cells[k+1:], m.cells[k:])      // shift remainder one index to the right
	m.cells[k] = t
}

func (m *IntMatrix) check(i, j int) {
	if i < 0 || i >= m.rowcnt || j < 0 || j >= m.colcnt {
		panic(fmt.Sprintf("sparse.IntMatrix: position (%d,%d) outside of %d x %d", i, j,
			m.rowcnt, m.colcnt))
	}
}
