package port

import (
	"context"
	"fmt"

	"github.com/bribank/origination/internal/domain/event"
	"github.com/bribank/origination/internal/domain/model"
	"github.com/bribank/origination/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// RequestSearch carries the partial-match search filters for requests.
// Empty fields are ignored.
type RequestSearch struct {
	FirstName  string
	LastName   string
	FiscalCode string
	RequestID  string
	Status     string
	// IncludeDeleted widens the search to soft-deleted requests.
	IncludeDeleted bool
}

// MortgageRequestRepository persists and retrieves mortgage requests.
type MortgageRequestRepository interface {
	Save(ctx context.Context, req model.MortgageRequest) error
	FindByID(ctx context.Context, branchID, id string) (model.MortgageRequest, error)
	Search(ctx context.Context, branchID string, filter RequestSearch) ([]model.MortgageRequest, error)
}

// ScheduleRepository stores the authoritative amortization schedule of a
// request. Schedules are replaced wholesale, never edited row by row.
type ScheduleRepository interface {
	Replace(ctx context.Context, requestID string, schedule []model.Installment) error
	FindByRequestID(ctx context.Context, requestID string) ([]model.Installment, error)
	DeleteByRequestID(ctx context.Context, requestID string) error
}

// PersonRepository persists and retrieves applicant identity records.
type PersonRepository interface {
	Save(ctx context.Context, p model.Person) error
	FindByID(ctx context.Context, branchID, id string) (model.Person, error)
	FindByFiscalCode(ctx context.Context, branchID, fiscalCode string) (model.Person, error)
	Search(ctx context.Context, branchID, name string) ([]model.Person, error)
}

// DocumentStore persists uploaded documents and reports which categories a
// request already has. ListUploadedTypes feeds the VALIDATION precondition.
type DocumentStore interface {
	Save(ctx context.Context, doc model.Document) error
	ListUploadedTypes(ctx context.Context, requestID string) ([]int, error)
	ListByRequestID(ctx context.Context, requestID string) ([]model.Document, error)
	FindByID(ctx context.Context, id string) (model.Document, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

// ---------------------------------------------------------------------------
// Export port
// ---------------------------------------------------------------------------

// ExportFormat tags the requested schedule artifact format.
type ExportFormat string

const (
	ExportFormatPDF   ExportFormat = "pdf"
	ExportFormatExcel ExportFormat = "excel"
)

// ParseExportFormat validates a raw format tag.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch ExportFormat(s) {
	case ExportFormatPDF:
		return ExportFormatPDF, nil
	case ExportFormatExcel:
		return ExportFormatExcel, nil
	}
	return "", fmt.Errorf("%w: unknown export format %q", valueobject.ErrValidation, s)
}

// ScheduleExporter renders an already-computed schedule as a downloadable
// artifact. Currency fields are formatted with two-decimal grouping before
// rendering.
type ScheduleExporter interface {
	Render(requestID string, schedule []model.Installment, format ExportFormat) ([]byte, string, error)
}

// DocumentBundler packs the uploaded documents of a request into a single
// downloadable archive.
type DocumentBundler interface {
	Bundle(requestID string, docs []model.Document) ([]byte, string, error)
}
