package casso

import "testing"

import "github.com/stretchr/testify/require"

func sym(id uint64) Symbol { return newSymbol(External, id) }

func TestRowAddVariablePrunesZero(t *testing.T) {
	r := newRow(1)
	r.addVariable(2, sym(1))
	erased := r.addVariable(-2, sym(1))
	require.True(t, erased)
	require.Equal(t, -1, r.find(sym(1)))
}

func TestRowAddRowCombinesConstants(t *testing.T) {
	a := newRow(3)
	a.addVariable(1, sym(1))
	b := newRow(5)
	b.addVariable(2, sym(1))
	b.addVariable(1, sym(2))

	a.addRow(b, 2)
	require.Equal(t, 13.0, a.constant) // 3 + 2*5
	require.Equal(t, 5.0, a.coeffOf(sym(1))) // 1 + 2*2
	require.Equal(t, 2.0, a.coeffOf(sym(2)))
}

func TestRowNegate(t *testing.T) {
	r := newRow(4)
	r.addVariable(2, sym(1))
	r.negate()
	require.Equal(t, -4.0, r.constant)
	require.Equal(t, -2.0, r.coeffOf(sym(1)))
}

func TestRowSolveFor(t *testing.T) {
	// r represents: 0 = 10 + 2*x  =>  solving for x: x = -5
	r := newRow(10)
	r.addVariable(2, sym(1))
	r.solveFor(sym(1))
	require.Equal(t, -1, r.find(sym(1)))
}

func TestRowSubstitute(t *testing.T) {
	// basic1 = 1 + 2*e, and e = 3 + 1*f  =>  basic1 = 7 + 2*f
	r := newRow(1)
	r.addVariable(2, sym(1))
	replacement := newRow(3)
	replacement.addVariable(1, sym(2))

	ok := r.substitute(sym(1), replacement)
	require.True(t, ok)
	require.Equal(t, 7.0, r.constant)
	require.Equal(t, 2.0, r.coeffOf(sym(2)))
	require.Equal(t, -1, r.find(sym(1)))
}

func TestRowSubstituteAbsentSymbolIsNoop(t *testing.T) {
	r := newRow(1)
	ok := r.substitute(sym(99), newRow(0))
	require.False(t, ok)
}

func TestRowClone(t *testing.T) {
	r := newRow(1)
	r.addVariable(1, sym(1))
	c := r.clone()
	c.addVariable(1, sym(1))
	require.Equal(t, 1.0, r.coeffOf(sym(1)))
	require.Equal(t, 2.0, c.coeffOf(sym(1)))
}
