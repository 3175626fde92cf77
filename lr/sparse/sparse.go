/*
Package sparse implements a sparse integer matrix, used as the backing store
for LALR(1) parsing tables (shift, reduce, jump and the partial-reduction
tables). Each cell holds exactly one int32 value; unlike a combined
ACTION-table for an SLR/LALR generator, this runtime never needs to pack a
shift and a reduce value into the same cell — a shift/reduce conflict found
at runtime is reported as an error, not stored.

This implementation uses the COO algorithm (a.k.a. triplet-encoding).

   https://medium.com/@jmaxg3/101-ways-to-store-a-sparse-matrix-c7f2bf15a229
   https://www.coin-or.org/Ipopt/documentation/node38.html

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2024 The lalr1 Authors

*/
package sparse

// IntMatrix is a sparse matrix of int32 values. Construct with
//
//     M := NewIntMatrix(10, 10, -1)  // last parameter is M's null-value
//
// Now
//
//     M.Set(2, 3, 4711)              // set a value
//     v := M.Value(2, 3)             // returns 4711
//     cnt := M.ValueCount()          // returns 1 (one position set)
//     v = M.Value(10, 10)            // returns -1, i.e. the null-value
//
// Values cannot be deleted, but may be overwritten with the null-value. Space
// for null-values is not re-claimed.
type IntMatrix struct {
	values  []triplet
	rowcnt  int
	colcnt  int
	nullval int32
}

// triplet is a single stored (row, col, value) entry.
type triplet struct {
	row, col int
	value    int32
}

// DefaultNullValue is a default empty-value for matrices (min int32).
const DefaultNullValue = -2147483648

// NewIntMatrix creates a new matrix of size m x n. The 3rd argument is a
// null-value, indicating empty entries (use DefaultNullValue if you have no
// specific requirements).
func NewIntMatrix(m, n int, nullValue int32) *IntMatrix {
	return &IntMatrix{
		rowcnt:  m,
		colcnt:  n,
		nullval: nullValue,
	}
}

// FromDense builds a matrix from a dense row-major 2D array, skipping cells
// equal to nullValue. This is how table artifacts (JSON `{"elems": [][]int]}`)
// are loaded into a matrix.
func FromDense(rows [][]int32, nullValue int32) *IntMatrix {
	m := NewIntMatrix(len(rows), 0, nullValue)
	for _, row := range rows {
		if len(row) > m.colcnt {
			m.colcnt = len(row)
		}
	}
	for i, row := range rows {
		for j, v := range row {
			if v != nullValue {
				m.Set(i, j, v)
			}
		}
	}
	return m
}

// M returns the row count.
func (m *IntMatrix) M() int { return m.rowcnt }

// N returns the column count.
func (m *IntMatrix) N() int { return m.colcnt }

// NullValue returns this matrix' null value.
func (m *IntMatrix) NullValue() int32 { return m.nullval }

// ValueCount returns the number of positions set in the matrix, including
// positions that were set (or overwritten) with the null-value.
func (m *IntMatrix) ValueCount() int { return len(m.values) }

// Value returns the value at position (i,j), or NullValue if unset.
func (m *IntMatrix) Value(i, j int) int32 {
	for _, t := range m.values {
		if !t.storedLeftOf(i, j) {
			if t.storedAt(i, j) {
				return t.value
			}
			break
		}
	}
	return m.nullval
}

// Set stores a value in the matrix at position (i,j), overwriting any
// previous value there.
func (m *IntMatrix) Set(i, j int, value int32) *IntMatrix {
	at := 0
	for k, t := range m.values {
		if !t.storedLeftOf(i, j) {
			if t.storedAt(i, j) {
				m.values[k].value = value
				return m
			}
			break
		}
		at++
	}
	tnew := triplet{row: i, col: j, value: value}
	m.values = append(m.values, tnew)
	copy(m.values[at+1:], m.values[at:])
	m.values[at] = tnew
	return m
}

func (t *triplet) storedLeftOf(i, j int) bool {
	return t.row < i || t.row == i && t.col < j
}

func (t *triplet) storedAt(i, j int) bool {
	return t.row == i && t.col == j
}
