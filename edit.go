package casso

// editInfo is the per-edited-variable bookkeeping spec.md §4.6 describes:
// the constraint installed to pin the variable to its suggested value,
// its two error markers, and the most recently suggested value (so
// SuggestValue can compute a delta rather than an absolute move).
type editInfo struct {
	constraint *Constraint
	marker     Symbol // e+
	other      Symbol // e-
	prev       float64
}

// AddStay adds an equality of the given strength pinning v to its current
// value, so the solver prefers to leave v alone when it is otherwise
// under-constrained.
func (s *Solver) AddStay(v *Variable, strength Strength, weight float64) error {
	return s.AddConstraint(StayConstraint(v, strength, weight))
}

// AddEditVar marks v as editable for the current (not yet begun) edit
// group: a constraint pinning v to its current value is installed at the
// given strength, and v is staged into the pending batch that the next
// BeginEdit will turn into a frame. A no-op if v is already being
// edited. Required strength is not editable — it would make suggested
// values indistinguishable from a hard constraint violation.
func (s *Solver) AddEditVar(v *Variable, strength Strength, weight float64) error {
	if strength.IsRequired() {
		return &EditMisuse{Reason: "add_edit_var: Required is not an editable strength"}
	}
	sym := s.bind(v)
	if _, ok := s.edits[sym]; ok {
		return nil
	}

	c := Equation(v, v.Value(), strength, weight)
	if err := s.AddConstraint(c); err != nil {
		return err
	}

	rec := s.constraints[c]
	s.edits[sym] = &editInfo{constraint: c, marker: rec.marker, other: rec.other, prev: v.Value()}
	s.editPending = append(s.editPending, sym)
	return nil
}

// RemoveEditVar drops v from whichever edit frame (or pending batch)
// currently holds it and removes its pinning constraint.
func (s *Solver) RemoveEditVar(v *Variable) error {
	sym, ok := s.vars[v]
	if !ok {
		return &EditMisuse{Reason: "remove_edit_var: variable is not known to this solver"}
	}
	info, ok := s.edits[sym]
	if !ok {
		return &EditMisuse{Reason: "remove_edit_var: variable is not being edited"}
	}
	if !s.unstageEdit(sym) {
		return &EditMisuse{Reason: "remove_edit_var: variable is not present in any open edit frame or pending batch"}
	}
	delete(s.edits, sym)
	return s.RemoveConstraint(info.constraint)
}

// BeginEdit closes off the pending batch of AddEditVar calls as a new
// frame on the edit stack, ready to receive SuggestValue calls.
func (s *Solver) BeginEdit() {
	s.editStack = append(s.editStack, s.editPending)
	s.editPending = nil
}

// EndEdit resolves the system, then removes every edit variable in the
// top edit frame and pops it.
func (s *Solver) EndEdit() error {
	if len(s.editStack) == 0 {
		return &EditMisuse{Reason: "end_edit: no open edit frame"}
	}
	if err := s.Resolve(); err != nil {
		return err
	}

	frame := s.editStack[len(s.editStack)-1]
	s.editStack = s.editStack[:len(s.editStack)-1]

	for _, sym := range frame {
		info, ok := s.edits[sym]
		if !ok {
			continue
		}
		delete(s.edits, sym)
		if err := s.RemoveConstraint(info.constraint); err != nil {
			return err
		}
	}
	return nil
}

// SuggestValue nudges an edit variable toward x: it computes the delta
// from the last suggested (or initial) value and pushes it directly into
// whichever of the pinning constraint's two error markers currently holds
// the basic row (subtracted from the e+ row, added to the e- row; spec.md
// §4.6), or — if neither is basic, because an
// earlier pivot moved both out — walks every row still referencing the
// e+ marker by column and applies the scaled delta there instead. Exactly
// one of these three cases ever applies for a given call; mirrors
// lithdew/casso's Suggest, which checks the e+ marker's row, then the e-
// marker's row, then falls back to an e+-only column scan (the two
// markers are never simultaneously basic, since they were solved as a
// single pair when the pinning constraint was compiled). Finishes by
// re-optimizing via the dual simplex. v must have been added with
// AddEditVar and be inside a frame opened by BeginEdit.
func (s *Solver) SuggestValue(v *Variable, x float64) error {
	sym, ok := s.vars[v]
	if !ok {
		return &EditMisuse{Reason: "suggest_value: variable is not known to this solver"}
	}
	info, ok := s.edits[sym]
	if !ok || !s.inActiveFrame(sym) {
		return &EditMisuse{Reason: "suggest_value: variable has no open edit session"}
	}

	delta := x - info.prev
	info.prev = x

	if r, ok := s.tab.rows[info.marker]; ok {
		s.shiftRowConstant(info.marker, r, -delta)
		return s.dualOptimize()
	}
	if info.other.Valid() {
		if r, ok := s.tab.rows[info.other]; ok {
			s.shiftRowConstant(info.other, r, delta)
			return s.dualOptimize()
		}
	}
	s.applyEditDeltaByColumn(info.marker, delta)
	return s.dualOptimize()
}

// shiftRowConstant adjusts the row basic under sym by delta and, if that
// leaves it negative, queues sym for the next dual optimization pass.
func (s *Solver) shiftRowConstant(sym Symbol, r row, delta float64) {
	r.constant += delta
	s.tab.rows[sym] = r
	if !sym.External() && r.constant < -s.epsilon {
		s.infeasible = append(s.infeasible, sym)
	}
}

// applyEditDeltaByColumn pushes delta through every row that references
// sym as a non-basic column entry, scaled by that row's coefficient on
// sym, queuing any row that goes negative as a result.
func (s *Solver) applyEditDeltaByColumn(sym Symbol, delta float64) {
	for basic := range s.tab.columns[sym] {
		r := s.tab.rows[basic]
		coeff := r.coeffOf(sym)
		if coeff == 0 {
			continue
		}
		r.constant += delta * coeff
		s.tab.rows[basic] = r
		if !basic.External() && r.constant < -s.epsilon {
			s.infeasible = append(s.infeasible, basic)
		}
	}
}

// Resolve re-establishes feasibility (via the dual simplex) after one or
// more SuggestValue calls, then writes the resulting values back onto
// every bound Variable.
func (s *Solver) Resolve() error {
	if err := s.dualOptimize(); err != nil {
		return err
	}
	s.writebackValues()
	return nil
}

func (s *Solver) inActiveFrame(sym Symbol) bool {
	for _, frame := range s.editStack {
		if indexOfSymbol(frame, sym) != -1 {
			return true
		}
	}
	return false
}

// unstageEdit removes sym from wherever it is staged (the pending batch
// or an open frame), reporting whether it was found.
func (s *Solver) unstageEdit(sym Symbol) bool {
	if idx := indexOfSymbol(s.editPending, sym); idx != -1 {
		s.editPending = append(s.editPending[:idx], s.editPending[idx+1:]...)
		return true
	}
	for i, frame := range s.editStack {
		if idx := indexOfSymbol(frame, sym); idx != -1 {
			s.editStack[i] = append(frame[:idx], frame[idx+1:]...)
			return true
		}
	}
	return false
}

func indexOfSymbol(xs []Symbol, x Symbol) int {
	for i, v := range xs {
		if v == x {
			return i
		}
	}
	return -1
}
