package casso

import "fmt"

// CheckInvariants reports the first violation of the structural
// properties spec.md §8 calls testable: every basic row is feasible
// (constant >= -epsilon, except rows basic under an unrestricted
// External symbol), the objective has no improving non-dummy entry left
// (optimality), the column index exactly mirrors which rows reference
// which symbol, and every bound Variable's written-back value matches
// what the tableau says its symbol is worth. Returns nil if none are
// violated.
//
// Exported so tests outside this package (solver_scenarios_test.go's
// end-to-end scenarios, in particular) can assert these properties after
// a real AddConstraint/RemoveConstraint/SuggestValue call, not just on a
// freshly constructed Solver.
func (s *Solver) CheckInvariants() error {
	for basic, r := range s.tab.rows {
		if basic.External() {
			continue
		}
		if r.constant < -s.epsilon {
			return fmt.Errorf("casso: row for %s is infeasible: constant %v", basic, r.constant)
		}
	}

	for _, term := range s.tab.objective.terms {
		if term.symbol.Kind() == Dummy {
			continue
		}
		if term.coeff < -s.epsilon {
			return fmt.Errorf("casso: objective is not optimal: %s has improving coefficient %v", term.symbol, term.coeff)
		}
	}

	expectedColumns := make(map[Symbol]map[Symbol]struct{})
	for basic, r := range s.tab.rows {
		for _, term := range r.terms {
			set, ok := expectedColumns[term.symbol]
			if !ok {
				set = make(map[Symbol]struct{})
				expectedColumns[term.symbol] = set
			}
			set[basic] = struct{}{}
		}
	}
	if len(s.tab.columns) != len(expectedColumns) {
		return fmt.Errorf("casso: column index has %d entries, want %d", len(s.tab.columns), len(expectedColumns))
	}
	for sym, want := range expectedColumns {
		got, ok := s.tab.columns[sym]
		if !ok || len(got) != len(want) {
			return fmt.Errorf("casso: column index for %s is %v, want %v", sym, got, want)
		}
		for basic := range want {
			if _, ok := got[basic]; !ok {
				return fmt.Errorf("casso: column index for %s is missing %s", sym, basic)
			}
		}
	}

	for v, sym := range s.vars {
		if got, want := s.valueOf(sym), v.Value(); got != want {
			return fmt.Errorf("casso: variable %q has value %v, tableau says %v", v.Name(), want, got)
		}
	}

	return nil
}
