package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// RequestStatus – immutable value object
// ---------------------------------------------------------------------------

// RequestStatus represents the lifecycle stage of a mortgage request.
// Soft deletion is an orthogonal flag on the aggregate, not a status.
type RequestStatus struct {
	value string
}

const (
	requestStatusDraft      = "DRAFT"
	requestStatusSubmitted  = "SUBMITTED"
	requestStatusValidation = "VALIDATION"
	requestStatusValidated  = "VALIDATED"
	requestStatusRejected   = "REJECTED"
)

var (
	RequestStatusDraft      = RequestStatus{value: requestStatusDraft}
	RequestStatusSubmitted  = RequestStatus{value: requestStatusSubmitted}
	RequestStatusValidation = RequestStatus{value: requestStatusValidation}
	RequestStatusValidated  = RequestStatus{value: requestStatusValidated}
	RequestStatusRejected   = RequestStatus{value: requestStatusRejected}
)

var validRequestStatuses = map[string]RequestStatus{
	requestStatusDraft:      RequestStatusDraft,
	requestStatusSubmitted:  RequestStatusSubmitted,
	requestStatusValidation: RequestStatusValidation,
	requestStatusValidated:  RequestStatusValidated,
	requestStatusRejected:   RequestStatusRejected,
}

// NewRequestStatus creates a RequestStatus from a raw string.
func NewRequestStatus(s string) (RequestStatus, error) {
	v, ok := validRequestStatuses[s]
	if !ok {
		return RequestStatus{}, fmt.Errorf("invalid request status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s RequestStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s RequestStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s RequestStatus) Equal(other RequestStatus) bool { return s.value == other.value }

// IsTerminal reports whether the status admits no further transitions.
func (s RequestStatus) IsTerminal() bool { return s.value == requestStatusValidated }

// IsEditable reports whether loan terms and parties may still be changed.
func (s RequestStatus) IsEditable() bool {
	return s.value == requestStatusDraft || s.value == requestStatusRejected
}
