package casso

import "github.com/davecgh/go-spew/spew"

// Dump renders the solver's internal state — every tableau row, the
// objective, pending infeasibilities, and the edit stack — for use in
// tests and interactive debugging. Not intended to be parsed; the format
// is whatever go-spew produces.
func (s *Solver) Dump() string {
	cfg := spew.ConfigState{Indent: "  ", DisableMethods: true, SortKeys: true}
	return cfg.Sdump(s)
}
