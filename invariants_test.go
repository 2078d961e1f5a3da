package casso

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// checkInvariants is the package-local assertion wrapper around the
// exported CheckInvariants: tests within this package get a t.Helper'd
// require.NoError, while solver_scenarios_test.go (package casso_test)
// calls CheckInvariants directly, since it cannot see this helper.
func checkInvariants(t *testing.T, s *Solver) {
	t.Helper()
	require.NoError(t, s.CheckInvariants())
}

func TestNewSolverSatisfiesInvariants(t *testing.T) {
	checkInvariants(t, NewSolver())
}
