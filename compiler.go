package casso

// constraintRecord is the bookkeeping a live constraint needs so it can
// later be located and removed (spec.md §4.5 / ConstraintRecord).
type constraintRecord struct {
	marker   Symbol
	other    Symbol // invalid (zero) if the constraint introduced no second marker
	strength Strength
	weight   float64
}

var invalidSymbol Symbol // the zero value; never issued by allocSymbol

// AddConstraint compiles c into one or two tableau rows (introducing
// slack, error, or dummy symbols as needed), re-optimizes, and records c
// in the constraint registry so it can later be removed. If c is a
// Required-strength constraint that cannot be satisfied together with
// the existing system, the solver's state is restored to exactly what it
// was before this call and a *RequiredFailure is returned.
func (s *Solver) AddConstraint(c *Constraint) error {
	if c == nil {
		return &EditMisuse{Reason: "AddConstraint: constraint must not be nil"}
	}
	if _, exists := s.constraints[c]; exists {
		return &EditMisuse{Reason: "AddConstraint: constraint is already installed"}
	}

	snap := s.snapshot()

	marker, other, err := s.compile(c)
	if err != nil {
		s.restore(snap)
		return err
	}

	rec := &constraintRecord{marker: marker, other: other, strength: c.strength, weight: c.weight}
	s.constraints[c] = rec
	s.markers[marker] = rec
	if other.Valid() {
		s.markers[other] = rec
	}

	if err := s.optimize(&s.tab.objective); err != nil {
		return err
	}

	s.writebackValues()
	return nil
}

// compile implements spec.md §4.3: it normalizes c's body, introduces
// the appropriate marker/error/dummy symbols, folds non-required error
// weights into the objective, and installs the resulting row (driving an
// artificial variable through phase-1 if no direct subject is found).
func (s *Solver) compile(c *Constraint) (marker, other Symbol, err error) {
	r := s.compileExpression(c.body)

	required := c.strength.IsRequired()
	weight := c.strength.Value() * c.weight

	switch c.op {
	case LEQ, GEQ:
		// c.body is lhs-rhs: LEQ means body<=0, GEQ means body>=0, each
		// directly (no sign flip needed up front). A LEQ row gets a
		// slack with coefficient +1 (slack = -body >= 0 iff body <= 0);
		// GEQ gets coefficient -1 (slack = body >= 0 iff body >= 0).
		coeff := 1.0
		if c.op == GEQ {
			coeff = -1.0
		}
		marker = s.allocSymbol(Slack)
		r.addVariable(coeff, marker)
		if !required {
			other = s.allocSymbol(Error)
			r.addVariable(-coeff, other)
			s.tab.objective.addVariable(weight, other)
		}
	case EQ:
		if required {
			marker = s.allocSymbol(Dummy)
			r.addVariable(1.0, marker)
		} else {
			marker = s.allocSymbol(Error)
			other = s.allocSymbol(Error)
			r.addVariable(-1.0, marker)
			r.addVariable(1.0, other)
			s.tab.objective.addVariable(weight, marker)
			s.tab.objective.addVariable(weight, other)
		}
	}

	if r.constant < 0 {
		r.negate()
	}

	subject, err := s.findSubject(r, marker, other)
	if err != nil {
		return marker, other, err
	}

	if !subject.Valid() {
		if err := s.driveArtificial(r); err != nil {
			return marker, other, err
		}
		return marker, other, nil
	}

	r.solveFor(subject)
	s.substituteOut(subject, r)
	s.tab.addRow(subject, r)
	return marker, other, nil
}

// findSubject implements spec.md §4.3 step 5: it picks a symbol to pivot
// directly into the basis, avoiding a phase-1 artificial variable when
// possible. The zero Symbol means "no subject — drive an artificial
// variable instead".
func (s *Solver) findSubject(r row, marker, other Symbol) (Symbol, error) {
	for _, t := range r.terms {
		if t.symbol.External() {
			return t.symbol, nil
		}
	}

	if marker.Restricted() {
		if idx := r.find(marker); idx != -1 && r.terms[idx].coeff < -s.epsilon {
			return marker, nil
		}
	}
	if other.Restricted() {
		if idx := r.find(other); idx != -1 && r.terms[idx].coeff < -s.epsilon {
			return other, nil
		}
	}

	for _, t := range r.terms {
		if t.symbol.Kind() != Dummy {
			return invalidSymbol, nil
		}
	}

	if !eqz(r.constant) {
		return invalidSymbol, &RequiredFailure{Reason: "constraint reduces to a non-zero constant over dummy variables only"}
	}
	return marker, nil
}

// driveArtificial runs spec.md §4.3 step 5's phase-1: install r under a
// fresh artificial variable, minimize its row via the primal loop, and
// either confirm it can be driven to zero (dropping the artificial
// variable entirely) or report the Required constraint as unsatisfiable.
func (s *Solver) driveArtificial(r row) error {
	a := s.allocSymbol(Slack)
	s.tab.addRow(a, r)
	art := r.clone()
	s.tab.artificial = &art

	if err := s.optimize(s.tab.artificial); err != nil {
		s.tab.artificial = nil
		return err
	}

	success := eqz(s.tab.artificial.constant)
	s.tab.artificial = nil

	if artRow, ok := s.tab.rows[a]; ok {
		s.tab.removeRow(a)
		if len(artRow.terms) > 0 {
			var entry Symbol
			for _, t := range artRow.terms {
				if t.symbol.Restricted() {
					entry = t.symbol
					break
				}
			}
			if !entry.Valid() {
				return &RequiredFailure{Reason: "artificial row is redundant with no restricted symbol to pivot on and is unsatisfiable"}
			}
			artRow.solveForSymbols(a, entry)
			s.substituteOut(entry, artRow)
			s.tab.addRow(entry, artRow)
		}
	}

	s.tab.purgeSymbol(a)

	if !success {
		return &RequiredFailure{Reason: "no combination of the existing constraints satisfies this one"}
	}
	return nil
}

// solverSnapshot is a full copy of every map AddConstraint might mutate,
// used to make a failed Required constraint's compilation atomic (spec.md
// §9's rollback note).
type solverSnapshot struct {
	nextID      uint64
	rows        map[Symbol]row
	columns     map[Symbol]map[Symbol]struct{}
	objective   row
	markers     map[Symbol]*constraintRecord
	constraints map[*Constraint]*constraintRecord
	vars        map[*Variable]Symbol
	symbolVars  map[Symbol]*Variable
}

func (s *Solver) snapshot() solverSnapshot {
	rows := make(map[Symbol]row, len(s.tab.rows))
	for k, v := range s.tab.rows {
		rows[k] = v.clone()
	}
	columns := make(map[Symbol]map[Symbol]struct{}, len(s.tab.columns))
	for k, set := range s.tab.columns {
		cp := make(map[Symbol]struct{}, len(set))
		for x := range set {
			cp[x] = struct{}{}
		}
		columns[k] = cp
	}
	markers := make(map[Symbol]*constraintRecord, len(s.markers))
	for k, v := range s.markers {
		markers[k] = v
	}
	constraints := make(map[*Constraint]*constraintRecord, len(s.constraints))
	for k, v := range s.constraints {
		constraints[k] = v
	}
	vars := make(map[*Variable]Symbol, len(s.vars))
	for k, v := range s.vars {
		vars[k] = v
	}
	symbolVars := make(map[Symbol]*Variable, len(s.symbolVars))
	for k, v := range s.symbolVars {
		symbolVars[k] = v
	}
	return solverSnapshot{
		nextID:      s.nextID,
		rows:        rows,
		columns:     columns,
		objective:   s.tab.objective.clone(),
		markers:     markers,
		constraints: constraints,
		vars:        vars,
		symbolVars:  symbolVars,
	}
}

func (s *Solver) restore(snap solverSnapshot) {
	s.nextID = snap.nextID
	s.tab.rows = snap.rows
	s.tab.columns = snap.columns
	s.tab.objective = snap.objective
	s.tab.artificial = nil
	s.markers = snap.markers
	s.constraints = snap.constraints
	s.vars = snap.vars
	s.symbolVars = snap.symbolVars
}
