package casso

// Variable is an external entity with a stable identity, an optional
// printable name, and a value written back by whichever Solver it is
// currently bound to. Identity is the pointer itself: a *Variable may be
// referenced by multiple independent solvers, each binding it lazily to
// its own internal Symbol the first time it appears in a constraint.
//
// A Variable's Value is only meaningful immediately after a solver
// operation returns; the solver, not the caller, writes it.
type Variable struct {
	name  string
	value float64
}

// NewVariable creates an unbound variable with an initial value of 0.
func NewVariable(name string) *Variable {
	return &Variable{name: name}
}

// NewVariableValue creates an unbound variable with the given initial
// value, used by stay constraints and as the starting point for edits
// before any solver has touched it.
func NewVariableValue(name string, value float64) *Variable {
	return &Variable{name: name, value: value}
}

// Name returns the variable's printable name.
func (v *Variable) Name() string { return v.name }

// Value returns the variable's current value.
func (v *Variable) Value() float64 { return v.value }

// T builds a Term referencing v with the given coefficient, the
// idiomatic entry point into the expression algebra (e.g. x.T(2) for
// "2x").
func (v *Variable) T(coeff float64) Term { return Term{variable: v, coeff: coeff} }

// toExpression implements Operand.
func (v *Variable) toExpression() Expression { return NewExpression(0, v.T(1)) }
