package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bribank/origination/internal/domain/event"
	"github.com/bribank/origination/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// MortgageRequest aggregate root
// ---------------------------------------------------------------------------

// MortgageRequest is an immutable aggregate. Every mutation returns a new copy.
// The aggregate is role-agnostic: it encodes which status transitions are
// legal and what precondition gates each, while role gating is the
// service.Lifecycle table's concern.
type MortgageRequest struct {
	id            string
	branchID      string
	officerID     string
	terms         valueobject.LoanTerms
	parties       []Party
	status        valueobject.RequestStatus
	rejectionNote string
	deleted       bool
	version       int
	createdAt     time.Time
	updatedAt     time.Time
	domainEvents  []event.DomainEvent
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewMortgageRequest creates a brand-new request in DRAFT status. Terms and
// party invariants are enforced here, before any state exists.
func NewMortgageRequest(
	branchID, officerID string,
	terms valueobject.LoanTerms,
	parties []Party,
	now time.Time,
) (MortgageRequest, error) {
	if branchID == "" {
		return MortgageRequest{}, fmt.Errorf("%w: branch id is required", valueobject.ErrValidation)
	}
	if officerID == "" {
		return MortgageRequest{}, fmt.Errorf("%w: officer id is required", valueobject.ErrValidation)
	}
	if err := terms.Validate(); err != nil {
		return MortgageRequest{}, err
	}
	if err := ValidateParties(parties); err != nil {
		return MortgageRequest{}, err
	}

	id := uuid.New().String()
	req := MortgageRequest{
		id:        id,
		branchID:  branchID,
		officerID: officerID,
		terms:     terms,
		parties:   copyParties(parties),
		status:    valueobject.RequestStatusDraft,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}

	req.domainEvents = append(req.domainEvents, event.NewMortgageRequestCreated(
		id, branchID, officerID,
		terms.Principal, terms.DurationYears, terms.Cadence.String(), terms.LoanTypeID,
	))
	return req, nil
}

// ReconstructMortgageRequest rebuilds an aggregate from persistence without
// side effects.
func ReconstructMortgageRequest(
	id, branchID, officerID string,
	terms valueobject.LoanTerms,
	parties []Party,
	status valueobject.RequestStatus,
	rejectionNote string,
	deleted bool,
	version int,
	createdAt, updatedAt time.Time,
) MortgageRequest {
	return MortgageRequest{
		id:            id,
		branchID:      branchID,
		officerID:     officerID,
		terms:         terms,
		parties:       copyParties(parties),
		status:        status,
		rejectionNote: rejectionNote,
		deleted:       deleted,
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions (each returns a new copy)
// ---------------------------------------------------------------------------

// UpdateTerms replaces the loan terms while the request is still editable
// (DRAFT or REJECTED). A stored schedule becomes stale and must be dropped
// by the caller.
func (r MortgageRequest) UpdateTerms(terms valueobject.LoanTerms, now time.Time) (MortgageRequest, error) {
	if r.deleted {
		return r, fmt.Errorf("%w: request is deleted", valueobject.ErrIllegalTransition)
	}
	if !r.status.IsEditable() {
		return r, fmt.Errorf("%w: terms are frozen in status %s", valueobject.ErrIllegalTransition, r.status)
	}
	if err := terms.Validate(); err != nil {
		return r, err
	}
	next := r.mutate(now)
	next.terms = terms
	return next, nil
}

// Submit transitions DRAFT -> SUBMITTED. A REJECTED request may be
// resubmitted the same way without losing previously entered terms or
// parties; the rejection note is cleared.
func (r MortgageRequest) Submit(now time.Time) (MortgageRequest, error) {
	if r.deleted {
		return r, fmt.Errorf("%w: request is deleted", valueobject.ErrIllegalTransition)
	}
	if !r.status.Equal(valueobject.RequestStatusDraft) && !r.status.Equal(valueobject.RequestStatusRejected) {
		return r, fmt.Errorf("%w: cannot submit from %s", valueobject.ErrIllegalTransition, r.status)
	}
	next := r.mutate(now)
	next.status = valueobject.RequestStatusSubmitted
	next.rejectionNote = ""
	next.domainEvents = append(next.domainEvents,
		event.NewMortgageRequestSubmitted(r.id, r.branchID, r.officerID))
	return next, nil
}

// ForwardToValidation transitions SUBMITTED -> VALIDATION, gated on every
// mandatory document category being present among uploadedTypeIDs.
func (r MortgageRequest) ForwardToValidation(uploadedTypeIDs []int, now time.Time) (MortgageRequest, error) {
	if r.deleted {
		return r, fmt.Errorf("%w: request is deleted", valueobject.ErrIllegalTransition)
	}
	if !r.status.Equal(valueobject.RequestStatusSubmitted) {
		return r, fmt.Errorf("%w: cannot forward from %s", valueobject.ErrIllegalTransition, r.status)
	}

	uploaded := make(map[int]struct{}, len(uploadedTypeIDs))
	for _, id := range uploadedTypeIDs {
		uploaded[id] = struct{}{}
	}
	var missing []int
	for _, id := range valueobject.MandatoryDocumentTypeIDs() {
		if _, ok := uploaded[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return r, fmt.Errorf("%w: mandatory document categories missing: %v",
			valueobject.ErrPreconditionNotMet, missing)
	}

	next := r.mutate(now)
	next.status = valueobject.RequestStatusValidation
	next.domainEvents = append(next.domainEvents,
		event.NewMortgageRequestForwarded(r.id, r.branchID, uploadedTypeIDs))
	return next, nil
}

// Reject transitions SUBMITTED or VALIDATION -> REJECTED with a mandatory
// note. The request becomes editable again.
func (r MortgageRequest) Reject(note string, now time.Time) (MortgageRequest, error) {
	if r.deleted {
		return r, fmt.Errorf("%w: request is deleted", valueobject.ErrIllegalTransition)
	}
	if !r.status.Equal(valueobject.RequestStatusSubmitted) && !r.status.Equal(valueobject.RequestStatusValidation) {
		return r, fmt.Errorf("%w: cannot reject from %s", valueobject.ErrIllegalTransition, r.status)
	}
	if strings.TrimSpace(note) == "" {
		return r, fmt.Errorf("%w: rejection note must not be empty", valueobject.ErrValidation)
	}

	next := r.mutate(now)
	next.status = valueobject.RequestStatusRejected
	next.rejectionNote = note
	next.domainEvents = append(next.domainEvents,
		event.NewMortgageRequestRejected(r.id, r.branchID, note))
	return next, nil
}

// Validate transitions VALIDATION -> VALIDATED, the terminal state. The
// schedule and document set become archival.
func (r MortgageRequest) Validate(validatorID string, now time.Time) (MortgageRequest, error) {
	if r.deleted {
		return r, fmt.Errorf("%w: request is deleted", valueobject.ErrIllegalTransition)
	}
	if !r.status.Equal(valueobject.RequestStatusValidation) {
		return r, fmt.Errorf("%w: cannot validate from %s", valueobject.ErrIllegalTransition, r.status)
	}
	next := r.mutate(now)
	next.status = valueobject.RequestStatusValidated
	next.domainEvents = append(next.domainEvents,
		event.NewMortgageRequestValidated(r.id, r.branchID, validatorID))
	return next, nil
}

// SoftDelete marks the request deleted. Allowed only from the editable
// states (DRAFT, REJECTED); the status is preserved for restore.
func (r MortgageRequest) SoftDelete(now time.Time) (MortgageRequest, error) {
	if r.deleted {
		return r, fmt.Errorf("%w: request is already deleted", valueobject.ErrIllegalTransition)
	}
	if !r.status.IsEditable() {
		return r, fmt.Errorf("%w: cannot delete in status %s", valueobject.ErrIllegalTransition, r.status)
	}
	next := r.mutate(now)
	next.deleted = true
	next.domainEvents = append(next.domainEvents,
		event.NewMortgageRequestDeleted(r.id, r.branchID))
	return next, nil
}

// Restore clears the deleted flag, returning the request to its exact prior
// status and field values.
func (r MortgageRequest) Restore(now time.Time) (MortgageRequest, error) {
	if !r.deleted {
		return r, fmt.Errorf("%w: request is not deleted", valueobject.ErrIllegalTransition)
	}
	next := r.mutate(now)
	next.deleted = false
	next.domainEvents = append(next.domainEvents,
		event.NewMortgageRequestRestored(r.id, r.branchID, r.status.String()))
	return next, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (r MortgageRequest) ID() string                        { return r.id }
func (r MortgageRequest) BranchID() string                  { return r.branchID }
func (r MortgageRequest) OfficerID() string                 { return r.officerID }
func (r MortgageRequest) Terms() valueobject.LoanTerms      { return r.terms }
func (r MortgageRequest) Parties() []Party                  { return copyParties(r.parties) }
func (r MortgageRequest) Status() valueobject.RequestStatus { return r.status }
func (r MortgageRequest) RejectionNote() string             { return r.rejectionNote }
func (r MortgageRequest) Deleted() bool                     { return r.deleted }
func (r MortgageRequest) Version() int                      { return r.version }
func (r MortgageRequest) CreatedAt() time.Time              { return r.createdAt }
func (r MortgageRequest) UpdatedAt() time.Time              { return r.updatedAt }
func (r MortgageRequest) DomainEvents() []event.DomainEvent { return r.domainEvents }

// ClearEvents returns a copy with an empty event list (call after publishing).
func (r MortgageRequest) ClearEvents() MortgageRequest {
	next := r
	next.domainEvents = nil
	return next
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func (r MortgageRequest) mutate(now time.Time) MortgageRequest {
	next := r
	next.updatedAt = now
	next.parties = copyParties(r.parties)
	next.domainEvents = copyEvents(r.domainEvents)
	return next
}

func copyEvents(src []event.DomainEvent) []event.DomainEvent {
	if len(src) == 0 {
		return nil
	}
	dst := make([]event.DomainEvent, len(src))
	copy(dst, src)
	return dst
}
