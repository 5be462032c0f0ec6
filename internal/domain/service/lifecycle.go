package service

import (
	"fmt"

	"github.com/bribank/origination/internal/domain/valueobject"
)

// Precondition names the gate a transition requires beyond status legality.
type Precondition string

const (
	// PreconditionNone: the transition needs no extra input.
	PreconditionNone Precondition = ""
	// PreconditionMandatoryDocuments: every mandatory document category must
	// be uploaded before the request can move to VALIDATION.
	PreconditionMandatoryDocuments Precondition = "mandatory_documents"
	// PreconditionRejectionNote: a non-empty note must accompany a rejection.
	PreconditionRejectionNote Precondition = "rejection_note"
)

// Transition is one row of the legal-transition table.
type Transition struct {
	From         valueobject.RequestStatus
	To           valueobject.RequestStatus
	Role         valueobject.Role
	Precondition Precondition
}

// transitionTable is the single definition of the legal transition set.
// UI enablement and server-side guards both consult it; the set is never
// duplicated per view.
var transitionTable = []Transition{
	{From: valueobject.RequestStatusDraft, To: valueobject.RequestStatusSubmitted, Role: valueobject.RoleOfficer},
	{From: valueobject.RequestStatusRejected, To: valueobject.RequestStatusSubmitted, Role: valueobject.RoleOfficer},
	{From: valueobject.RequestStatusSubmitted, To: valueobject.RequestStatusValidation, Role: valueobject.RoleOfficer, Precondition: PreconditionMandatoryDocuments},
	{From: valueobject.RequestStatusSubmitted, To: valueobject.RequestStatusRejected, Role: valueobject.RoleOfficer, Precondition: PreconditionRejectionNote},
	{From: valueobject.RequestStatusValidation, To: valueobject.RequestStatusRejected, Role: valueobject.RoleValidator, Precondition: PreconditionRejectionNote},
	{From: valueobject.RequestStatusValidation, To: valueobject.RequestStatusValidated, Role: valueobject.RoleValidator},
}

// Lifecycle encodes which (from, to) status pairs are legal, which role may
// trigger each, and what precondition gates it.
type Lifecycle struct{}

// NewLifecycle returns the request lifecycle state machine.
func NewLifecycle() *Lifecycle {
	return &Lifecycle{}
}

// Authorize checks a transition attempt against the table. It returns the
// precondition the caller must still satisfy, or ErrIllegalTransition when
// the pair is not in the table or the role may not trigger it.
func (l *Lifecycle) Authorize(from, to valueobject.RequestStatus, role valueobject.Role) (Precondition, error) {
	pairExists := false
	for _, t := range transitionTable {
		if !t.From.Equal(from) || !t.To.Equal(to) {
			continue
		}
		pairExists = true
		if t.Role.Equal(role) {
			return t.Precondition, nil
		}
	}
	if pairExists {
		return PreconditionNone, fmt.Errorf("%w: role %s may not move a request from %s to %s",
			valueobject.ErrIllegalTransition, role, from, to)
	}
	return PreconditionNone, fmt.Errorf("%w: %s -> %s", valueobject.ErrIllegalTransition, from, to)
}

// AllowedTargets lists the statuses the given role may move a request to from
// its current status. This feeds UI action enablement.
func (l *Lifecycle) AllowedTargets(from valueobject.RequestStatus, role valueobject.Role) []valueobject.RequestStatus {
	var targets []valueobject.RequestStatus
	for _, t := range transitionTable {
		if t.From.Equal(from) && t.Role.Equal(role) {
			targets = append(targets, t.To)
		}
	}
	return targets
}

// CanSoftDelete reports whether the role may soft-delete a request in the
// given status. Deletion is orthogonal to the status machine and reversible.
func (l *Lifecycle) CanSoftDelete(status valueobject.RequestStatus, role valueobject.Role) bool {
	return status.IsEditable() && role.Equal(valueobject.RoleOfficer)
}
