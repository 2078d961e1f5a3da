package casso

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying each error kind (spec.md §7). Typed errors
// below wrap one of these via Unwrap so callers can use errors.Is
// without caring about the dynamic reason text, and errors.As when they
// want it.
var (
	// ErrRequiredFailure identifies a RequiredFailure.
	ErrRequiredFailure = errors.New("casso: required constraint is inconsistent with the existing system")
	// ErrUnknownConstraint is returned by RemoveConstraint for a
	// constraint that is not currently installed.
	ErrUnknownConstraint = errors.New("casso: constraint is not installed in this solver")
	// ErrEditMisuse identifies an EditMisuse.
	ErrEditMisuse = errors.New("casso: invalid edit/stay session usage")
	// ErrInternal identifies an InternalError.
	ErrInternal = errors.New("casso: internal solver invariant violated")
)

// RequiredFailure reports that a Required-strength constraint could not
// be satisfied together with the rest of the system. The solver's state
// is left exactly as it was before the failing AddConstraint call.
type RequiredFailure struct {
	Reason string
}

func (e *RequiredFailure) Error() string {
	return fmt.Sprintf("casso: required constraint failed: %s", e.Reason)
}

// Unwrap lets errors.Is(err, ErrRequiredFailure) succeed.
func (e *RequiredFailure) Unwrap() error { return ErrRequiredFailure }

// UnknownConstraint reports that RemoveConstraint was called with a
// constraint this solver does not currently have installed.
type UnknownConstraint struct {
	Reason string
}

func (e *UnknownConstraint) Error() string {
	return fmt.Sprintf("casso: %s", e.Reason)
}

// Unwrap lets errors.Is(err, ErrUnknownConstraint) succeed.
func (e *UnknownConstraint) Unwrap() error { return ErrUnknownConstraint }

// EditMisuse reports invalid use of the edit/stay protocol: adding a
// Required-strength edit variable, suggesting a value outside an edit
// session, ending an edit session with none open, or operating on an
// edit variable not present in the relevant frame.
type EditMisuse struct {
	Reason string
}

func (e *EditMisuse) Error() string {
	return fmt.Sprintf("casso: %s", e.Reason)
}

// Unwrap lets errors.Is(err, ErrEditMisuse) succeed.
func (e *EditMisuse) Unwrap() error { return ErrEditMisuse }

// InternalError reports a violated solver invariant (an unbounded primal
// objective, or a dual optimization with no candidate entering symbol).
// These indicate a bug in the solver itself, never malformed user input.
type InternalError struct {
	Reason string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("casso: internal error: %s", e.Reason)
}

// Unwrap lets errors.Is(err, ErrInternal) succeed.
func (e *InternalError) Unwrap() error { return ErrInternal }
