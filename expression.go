package casso

// Term is a coefficient on a Variable, the atom of the user-facing
// linear expression algebra. Build one via Variable.T, e.g. x.T(2) for
// the term "2x".
type Term struct {
	variable *Variable
	coeff    float64
}

// Variable returns the term's variable.
func (t Term) Variable() *Variable { return t.variable }

// Coeff returns the term's coefficient.
func (t Term) Coeff() float64 { return t.coeff }

func (t Term) toExpression() Expression { return NewExpression(0, t) }

// Expression is a linear combination of variables plus a constant: the
// user-facing counterpart of spec.md's "Row". It is immutable by
// convention: Plus/Minus/Times return a new Expression and never modify
// the receiver or argument.
//
// Expressions reference Variables, not Symbols: they can be built and
// combined before any Solver exists, and only bind to a particular
// Solver's internal symbols when used in a Constraint added to that
// solver (see compileExpression in compiler.go).
type Expression struct {
	constant float64
	terms    []Term
}

// NewExpression builds an expression from a constant and zero or more
// terms. Terms referencing the same variable more than once are summed.
func NewExpression(constant float64, terms ...Term) Expression {
	e := Expression{constant: constant}
	for _, t := range terms {
		e = e.plusTerm(t)
	}
	return e
}

func (e Expression) clone() Expression {
	terms := make([]Term, len(e.terms))
	copy(terms, e.terms)
	return Expression{constant: e.constant, terms: terms}
}

func (e Expression) findVar(v *Variable) int {
	for i := range e.terms {
		if e.terms[i].variable == v {
			return i
		}
	}
	return -1
}

func (e Expression) plusTerm(t Term) Expression {
	r := e.clone()
	if idx := r.findVar(t.variable); idx != -1 {
		r.terms[idx].coeff += t.coeff
		if eqz(r.terms[idx].coeff) {
			r.terms = append(r.terms[:idx], r.terms[idx+1:]...)
		}
	} else if !eqz(t.coeff) {
		r.terms = append(r.terms, t)
	}
	return r
}

// Plus returns e + other.
func (e Expression) Plus(other Expression) Expression {
	r := e.clone()
	r.constant += other.constant
	for _, t := range other.terms {
		r = r.plusTerm(t)
	}
	return r
}

// Minus returns e - other.
func (e Expression) Minus(other Expression) Expression {
	return e.Plus(other.Times(-1))
}

// Times returns e scaled by k.
func (e Expression) Times(k float64) Expression {
	r := e.clone()
	r.constant *= k
	for i := range r.terms {
		r.terms[i].coeff *= k
	}
	return r
}

// Constant returns the expression's constant term.
func (e Expression) Constant() float64 { return e.constant }

// Terms returns the expression's variable terms. The returned slice must
// not be mutated.
func (e Expression) Terms() []Term { return e.terms }

func (e Expression) toExpression() Expression { return e }

// Operand is anything Equation/Inequality/StayConstraint can accept on
// either side: a float64, an int, a *Variable, a Term, or an Expression.
type Operand interface {
	toExpression() Expression
}

type constOperand float64

func (c constOperand) toExpression() Expression { return NewExpression(float64(c)) }

// toOperand adapts a raw value into an Operand, panicking on an
// unsupported type — a programmer error, not a runtime one, much like
// passing the wrong type to fmt.Sprintf's %d.
func toOperand(x interface{}) Operand {
	switch v := x.(type) {
	case Operand:
		return v
	case float64:
		return constOperand(v)
	case int:
		return constOperand(float64(v))
	default:
		panic("casso: unsupported operand type")
	}
}

func toExpr(x interface{}) Expression {
	return toOperand(x).toExpression()
}
