// Package casso implements the Cassowary incremental constraint solving
// algorithm: a simplex-based linear arithmetic solver for systems of
// equalities and inequalities tagged with hierarchical preference
// strengths, with support for efficient incremental edits.
//
// A Solver owns a sparse simplex tableau. Constraints are compiled into
// tableau rows (introducing slack, error or dummy symbols as needed),
// kept basic-feasible and optimal by a primal/dual pivot engine, and can
// be added, removed, and re-suggested without re-solving from scratch.
//
// The package does no I/O and holds no package-level mutable state: all
// solver instances are independent and must not be used concurrently
// from multiple goroutines without external synchronization.
package casso
