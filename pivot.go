package casso

import "math"

// optimize is the primal simplex loop (spec.md §4.4): while some
// non-basic symbol has a strictly negative coefficient in objective, it
// pivots the smallest-id such symbol into the basis, preferring to pivot
// out an internal (non-external) basic row via the minimum-ratio test,
// until the objective is optimal (all non-basic coefficients >= 0).
func (s *Solver) optimize(objective *row) error {
	for {
		entry, ok := s.chooseEntry(objective)
		if !ok {
			return nil
		}
		exit, ok := s.chooseExit(entry)
		if !ok {
			return &InternalError{Reason: "objective is unbounded: no row can leave the basis for entry " + entry.String()}
		}
		s.changeBasis(entry, exit)
	}
}

// chooseEntry picks the smallest-id non-basic, non-dummy symbol with a
// strictly negative coefficient in objective.
func (s *Solver) chooseEntry(objective *row) (Symbol, bool) {
	var entry Symbol
	for _, t := range objective.terms {
		if t.symbol.Kind() == Dummy || t.coeff >= -s.epsilon {
			continue
		}
		if !entry.Valid() || t.symbol.id() < entry.id() {
			entry = t.symbol
		}
	}
	return entry, entry.Valid()
}

// chooseExit picks the basic, non-external row with a strictly negative
// coefficient on entry minimizing the ratio constant/-coeff, tie-broken
// by smallest basic-symbol id.
func (s *Solver) chooseExit(entry Symbol) (Symbol, bool) {
	var exit Symbol
	ratio := math.MaxFloat64
	for basic, r := range s.tab.rows {
		if basic.External() {
			continue
		}
		coeff := r.coeffOf(entry)
		if coeff >= -s.epsilon {
			continue
		}
		candidate := -r.constant / coeff
		if candidate < ratio-s.epsilon || (math.Abs(candidate-ratio) <= s.epsilon && (!exit.Valid() || basic.id() < exit.id())) {
			ratio, exit = candidate, basic
		}
	}
	return exit, exit.Valid()
}

// dualOptimize is the dual simplex loop (spec.md §4.4), run after an
// edit may have pushed a basic row's constant negative. It drains
// s.infeasible, re-verifying each candidate row is still negative (an
// earlier pivot in the same pass may have already fixed it) before
// pivoting in a replacement.
//
// Entry selection: a row r basic under the leaving symbol exit is of the
// form "exit = r.constant + Σ r.coeff[t]*t" (spec.md §3's row
// convention). Since exit and every other non-basic symbol will read 0
// once the pivot replaces exit with a different basic symbol, only a
// term with a strictly *positive* coefficient can raise the new basic
// value off of a negative constant into feasibility — so entry ranges
// over terms with r.coeff[t] > 0, minimizing objective.coeff[t]/r.coeff[t].
func (s *Solver) dualOptimize() error {
	for len(s.infeasible) > 0 {
		exit := s.infeasible[len(s.infeasible)-1]
		s.infeasible = s.infeasible[:len(s.infeasible)-1]

		r, ok := s.tab.rows[exit]
		if !ok || r.constant >= -s.epsilon {
			continue
		}

		entry, ok := s.chooseDualEntry(r)
		if !ok {
			return &InternalError{Reason: "dual optimization found no entering symbol for infeasible row " + exit.String()}
		}
		s.changeBasis(entry, exit)
	}
	return nil
}

func (s *Solver) chooseDualEntry(r row) (Symbol, bool) {
	var entry Symbol
	ratio := math.MaxFloat64
	for _, t := range r.terms {
		if t.symbol.Kind() == Dummy || t.coeff <= s.epsilon {
			continue
		}
		// A symbol absent from the objective contributes nothing to it
		// and is not a valid dual-entry candidate — this mirrors
		// lithdew/casso's optimizeDualObjective, which looks the symbol
		// up in the objective and skips it outright on a miss rather
		// than treating the missing coefficient as zero.
		idx := s.tab.objective.find(t.symbol)
		if idx == -1 {
			continue
		}
		candidate := s.tab.objective.terms[idx].coeff / t.coeff
		if candidate < ratio-s.epsilon || (math.Abs(candidate-ratio) <= s.epsilon && (!entry.Valid() || t.symbol.id() < entry.id())) {
			ratio, entry = candidate, t.symbol
		}
	}
	return entry, entry.Valid()
}
