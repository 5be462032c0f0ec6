package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bribank/origination/internal/domain/valueobject"
)

// Actor is the session context of the acting user, resolved once at
// authentication time and passed explicitly to every use case.
type Actor struct {
	UserID   string
	BranchID string
	Role     valueobject.Role
}

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

// TermsPayload carries raw loan terms from the wire.
type TermsPayload struct {
	Principal     decimal.Decimal `json:"principal"`
	AnnualRate    decimal.Decimal `json:"annual_rate"`
	DurationYears int             `json:"duration_years"`
	Cadence       string          `json:"cadence"`
	LoanTypeID    int             `json:"loan_type_id"`
	PropertyValue decimal.Decimal `json:"property_value"`
}

// PartyPayload carries one request party from the wire.
type PartyPayload struct {
	PersonID string `json:"person_id"`
	Role     string `json:"role"`
}

// CreateRequestRequest creates a new mortgage request in DRAFT.
type CreateRequestRequest struct {
	Actor   Actor
	Terms   TermsPayload
	Parties []PartyPayload
}

// UpdateTermsRequest replaces the loan terms of an editable request.
type UpdateTermsRequest struct {
	Actor     Actor
	RequestID string
	Terms     TermsPayload
}

// TransitionRequest triggers a plain status transition.
type TransitionRequest struct {
	Actor     Actor
	RequestID string
}

// RejectRequestRequest rejects a request with a mandatory note.
type RejectRequestRequest struct {
	Actor     Actor
	RequestID string
	Note      string
}

// SearchRequestsRequest filters submitted requests with partial matching.
type SearchRequestsRequest struct {
	Actor          Actor
	FirstName      string
	LastName       string
	FiscalCode     string
	RequestID      string
	Status         string
	IncludeDeleted bool
}

// RegisterPersonRequest registers an applicant identity record.
type RegisterPersonRequest struct {
	Actor      Actor
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	FiscalCode string    `json:"fiscal_code"`
	BirthDate  time.Time `json:"birth_date"`
}

// UploadDocumentRequest stores a supporting document for a request.
type UploadDocumentRequest struct {
	Actor       Actor
	RequestID   string
	TypeID      int
	FileName    string
	ContentType string
	Content     []byte
}

// ExportScheduleRequest renders a schedule as a downloadable artifact.
type ExportScheduleRequest struct {
	Actor     Actor
	RequestID string
	Format    string
}

// DownloadDocumentRequest fetches one stored document of a request.
type DownloadDocumentRequest struct {
	Actor      Actor
	RequestID  string
	DocumentID string
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

// PartyResponse describes one request party.
type PartyResponse struct {
	PersonID   string `json:"person_id"`
	FiscalCode string `json:"fiscal_code"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Role       string `json:"role"`
}

// RequestResponse describes a mortgage request.
type RequestResponse struct {
	ID            string          `json:"id"`
	BranchID      string          `json:"branch_id"`
	OfficerID     string          `json:"officer_id"`
	Principal     decimal.Decimal `json:"principal"`
	AnnualRate    decimal.Decimal `json:"annual_rate"`
	DurationYears int             `json:"duration_years"`
	Cadence       string          `json:"cadence"`
	LoanTypeID    int             `json:"loan_type_id"`
	Spread        decimal.Decimal `json:"spread"`
	PropertyValue decimal.Decimal `json:"property_value"`
	Parties       []PartyResponse `json:"parties"`
	Status        string          `json:"status"`
	RejectionNote string          `json:"rejection_note,omitempty"`
	Deleted       bool            `json:"deleted"`
	Version       int             `json:"version"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// InstallmentResponse is one amortization schedule row.
type InstallmentResponse struct {
	Number    int             `json:"number"`
	Interest  decimal.Decimal `json:"interest"`
	Principal decimal.Decimal `json:"principal"`
	Total     decimal.Decimal `json:"total"`
	Remaining decimal.Decimal `json:"remaining"`
}

// ScheduleResponse is the full amortization schedule of a request.
type ScheduleResponse struct {
	RequestID    string                `json:"request_id"`
	Installments []InstallmentResponse `json:"installments"`
}

// PersonResponse describes an applicant identity record.
type PersonResponse struct {
	ID         string    `json:"id"`
	BranchID   string    `json:"branch_id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	FiscalCode string    `json:"fiscal_code"`
	BirthDate  time.Time `json:"birth_date"`
	CreatedAt  time.Time `json:"created_at"`
}

// DocumentResponse describes an uploaded document (metadata only).
type DocumentResponse struct {
	ID         string    `json:"id"`
	RequestID  string    `json:"request_id"`
	TypeID     int       `json:"type_id"`
	FileName   string    `json:"file_name"`
	UploadedBy string    `json:"uploaded_by"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// DocumentChecklistEntry reports upload progress for one document category.
type DocumentChecklistEntry struct {
	TypeID      int    `json:"type_id"`
	Description string `json:"description"`
	Mandatory   bool   `json:"mandatory"`
	Uploaded    bool   `json:"uploaded"`
}

// ExportResponse carries a downloadable artifact (a rendered schedule, a
// stored document or a document archive).
type ExportResponse struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Content     []byte `json:"-"`
}
