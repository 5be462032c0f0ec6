package event

import (
	"github.com/shopspring/decimal"

	"github.com/bribank/origination/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

const aggregateMortgageRequest = "MortgageRequest"

// ---------------------------------------------------------------------------
// Mortgage request events
// ---------------------------------------------------------------------------

// MortgageRequestCreated is raised when a new request enters DRAFT.
type MortgageRequestCreated struct {
	events.BaseEvent
	OfficerID     string          `json:"officer_id"`
	Principal     decimal.Decimal `json:"principal"`
	DurationYears int             `json:"duration_years"`
	Cadence       string          `json:"cadence"`
	LoanTypeID    int             `json:"loan_type_id"`
}

func NewMortgageRequestCreated(requestID, branchID, officerID string, principal decimal.Decimal, durationYears int, cadence string, loanTypeID int) MortgageRequestCreated {
	return MortgageRequestCreated{
		BaseEvent:     events.NewBaseEvent("origination.request.created", requestID, aggregateMortgageRequest, branchID),
		OfficerID:     officerID,
		Principal:     principal,
		DurationYears: durationYears,
		Cadence:       cadence,
		LoanTypeID:    loanTypeID,
	}
}

// MortgageRequestSubmitted is raised on DRAFT -> SUBMITTED (and resubmission).
type MortgageRequestSubmitted struct {
	events.BaseEvent
	OfficerID string `json:"officer_id"`
}

func NewMortgageRequestSubmitted(requestID, branchID, officerID string) MortgageRequestSubmitted {
	return MortgageRequestSubmitted{
		BaseEvent: events.NewBaseEvent("origination.request.submitted", requestID, aggregateMortgageRequest, branchID),
		OfficerID: officerID,
	}
}

// MortgageRequestForwarded is raised on SUBMITTED -> VALIDATION once the
// mandatory document set is complete.
type MortgageRequestForwarded struct {
	events.BaseEvent
	DocumentTypeIDs []int `json:"document_type_ids"`
}

func NewMortgageRequestForwarded(requestID, branchID string, documentTypeIDs []int) MortgageRequestForwarded {
	return MortgageRequestForwarded{
		BaseEvent:       events.NewBaseEvent("origination.request.forwarded", requestID, aggregateMortgageRequest, branchID),
		DocumentTypeIDs: documentTypeIDs,
	}
}

// MortgageRequestValidated is raised on the terminal VALIDATION -> VALIDATED.
type MortgageRequestValidated struct {
	events.BaseEvent
	ValidatorID string `json:"validator_id"`
}

func NewMortgageRequestValidated(requestID, branchID, validatorID string) MortgageRequestValidated {
	return MortgageRequestValidated{
		BaseEvent:   events.NewBaseEvent("origination.request.validated", requestID, aggregateMortgageRequest, branchID),
		ValidatorID: validatorID,
	}
}

// MortgageRequestRejected is raised when a request is rejected with a note.
type MortgageRequestRejected struct {
	events.BaseEvent
	Note string `json:"note"`
}

func NewMortgageRequestRejected(requestID, branchID, note string) MortgageRequestRejected {
	return MortgageRequestRejected{
		BaseEvent: events.NewBaseEvent("origination.request.rejected", requestID, aggregateMortgageRequest, branchID),
		Note:      note,
	}
}

// MortgageRequestDeleted is raised on soft deletion.
type MortgageRequestDeleted struct {
	events.BaseEvent
}

func NewMortgageRequestDeleted(requestID, branchID string) MortgageRequestDeleted {
	return MortgageRequestDeleted{
		BaseEvent: events.NewBaseEvent("origination.request.deleted", requestID, aggregateMortgageRequest, branchID),
	}
}

// MortgageRequestRestored is raised when a soft-deleted request is restored.
type MortgageRequestRestored struct {
	events.BaseEvent
	Status string `json:"status"`
}

func NewMortgageRequestRestored(requestID, branchID, status string) MortgageRequestRestored {
	return MortgageRequestRestored{
		BaseEvent: events.NewBaseEvent("origination.request.restored", requestID, aggregateMortgageRequest, branchID),
		Status:    status,
	}
}

// ScheduleGenerated is raised when the authoritative schedule is computed
// and stored for a request.
type ScheduleGenerated struct {
	events.BaseEvent
	Installments int             `json:"installments"`
	Annuity      decimal.Decimal `json:"annuity"`
}

func NewScheduleGenerated(requestID, branchID string, installments int, annuity decimal.Decimal) ScheduleGenerated {
	return ScheduleGenerated{
		BaseEvent:    events.NewBaseEvent("origination.schedule.generated", requestID, aggregateMortgageRequest, branchID),
		Installments: installments,
		Annuity:      annuity,
	}
}

// PersonRegistered is raised when a new person record enters the registry.
type PersonRegistered struct {
	events.BaseEvent
	FiscalCode string `json:"fiscal_code"`
}

func NewPersonRegistered(personID, branchID, fiscalCode string) PersonRegistered {
	return PersonRegistered{
		BaseEvent:  events.NewBaseEvent("origination.person.registered", personID, "Person", branchID),
		FiscalCode: fiscalCode,
	}
}

// DocumentUploaded is raised when a supporting document is stored.
type DocumentUploaded struct {
	events.BaseEvent
	DocumentTypeID int    `json:"document_type_id"`
	FileName       string `json:"file_name"`
}

func NewDocumentUploaded(requestID, branchID string, documentTypeID int, fileName string) DocumentUploaded {
	return DocumentUploaded{
		BaseEvent:      events.NewBaseEvent("origination.document.uploaded", requestID, aggregateMortgageRequest, branchID),
		DocumentTypeID: documentTypeID,
		FileName:       fileName,
	}
}
