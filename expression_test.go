package casso

import "testing"

import "github.com/stretchr/testify/require"

func TestExpressionCombinesSameVariable(t *testing.T) {
	x := NewVariable("x")
	e := NewExpression(1, x.T(2), x.T(3))
	require.Len(t, e.Terms(), 1)
	require.Equal(t, 5.0, e.Terms()[0].Coeff())
}

func TestExpressionPlusTermPrunesZeroCoeff(t *testing.T) {
	x := NewVariable("x")
	e := NewExpression(0, x.T(2), x.T(-2))
	require.Len(t, e.Terms(), 0)
}

func TestExpressionPlusMinusTimes(t *testing.T) {
	x := NewVariable("x")
	y := NewVariable("y")
	e := NewExpression(1, x.T(1)).Plus(NewExpression(2, y.T(1)))
	require.Equal(t, 3.0, e.Constant())
	require.Len(t, e.Terms(), 2)

	d := e.Minus(NewExpression(1, x.T(1)))
	require.Equal(t, 2.0, d.Constant())
	require.Len(t, d.Terms(), 1)
	require.Equal(t, y, d.Terms()[0].Variable())

	scaled := NewExpression(2, x.T(3)).Times(2)
	require.Equal(t, 4.0, scaled.Constant())
	require.Equal(t, 6.0, scaled.Terms()[0].Coeff())
}

func TestToExprAcceptsConstants(t *testing.T) {
	require.Equal(t, 5.0, toExpr(5.0).Constant())
	require.Equal(t, 5.0, toExpr(5).Constant())
}

func TestToExprPanicsOnUnsupportedType(t *testing.T) {
	require.Panics(t, func() { toExpr("nope") })
}
