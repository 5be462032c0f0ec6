package valueobject

import "errors"

// Error taxonomy for the origination domain. Use cases wrap these with
// fmt.Errorf("...: %w", err) so callers can classify failures with errors.Is.
var (
	// ErrValidation marks malformed or out-of-range input rejected before any
	// state mutation (bad loan terms, missing primary holder, empty note).
	ErrValidation = errors.New("validation failed")

	// ErrPreconditionNotMet marks a transition attempted without its required
	// precondition (mandatory documents not uploaded).
	ErrPreconditionNotMet = errors.New("precondition not met")

	// ErrIllegalTransition marks a (status, target, role) combination that is
	// not in the transition table. The attempted action fails with no effect.
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrUpstreamUnavailable marks a failed dependent service call. The action
	// may be safely re-triggered; transitions are idempotent for equal input.
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")

	// ErrNotFound marks a lookup for an unknown aggregate.
	ErrNotFound = errors.New("not found")
)
