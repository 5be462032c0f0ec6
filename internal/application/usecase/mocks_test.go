package usecase_test

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bribank/origination/internal/application/dto"
	"github.com/bribank/origination/internal/domain/event"
	"github.com/bribank/origination/internal/domain/model"
	"github.com/bribank/origination/internal/domain/port"
	"github.com/bribank/origination/internal/domain/valueobject"
)

// --- Mock implementations ---

type mockRequestRepository struct {
	saveFunc      func(ctx context.Context, req model.MortgageRequest) error
	findByIDFunc  func(ctx context.Context, branchID, id string) (model.MortgageRequest, error)
	searchFunc    func(ctx context.Context, branchID string, filter port.RequestSearch) ([]model.MortgageRequest, error)
	savedRequests []model.MortgageRequest
}

func (m *mockRequestRepository) Save(ctx context.Context, req model.MortgageRequest) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, req)
	}
	m.savedRequests = append(m.savedRequests, req)
	return nil
}

func (m *mockRequestRepository) FindByID(ctx context.Context, branchID, id string) (model.MortgageRequest, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, branchID, id)
	}
	return model.MortgageRequest{}, fmt.Errorf("%w: request %s", valueobject.ErrNotFound, id)
}

func (m *mockRequestRepository) Search(ctx context.Context, branchID string, filter port.RequestSearch) ([]model.MortgageRequest, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, branchID, filter)
	}
	return nil, nil
}

type mockScheduleRepository struct {
	replaceFunc  func(ctx context.Context, requestID string, schedule []model.Installment) error
	findFunc     func(ctx context.Context, requestID string) ([]model.Installment, error)
	deleteFunc   func(ctx context.Context, requestID string) error
	stored       map[string][]model.Installment
	deletedIDs   []string
	replacedRows int
}

func newMockScheduleRepository() *mockScheduleRepository {
	return &mockScheduleRepository{stored: make(map[string][]model.Installment)}
}

func (m *mockScheduleRepository) Replace(ctx context.Context, requestID string, schedule []model.Installment) error {
	if m.replaceFunc != nil {
		return m.replaceFunc(ctx, requestID, schedule)
	}
	m.stored[requestID] = schedule
	m.replacedRows = len(schedule)
	return nil
}

func (m *mockScheduleRepository) FindByRequestID(ctx context.Context, requestID string) ([]model.Installment, error) {
	if m.findFunc != nil {
		return m.findFunc(ctx, requestID)
	}
	return m.stored[requestID], nil
}

func (m *mockScheduleRepository) DeleteByRequestID(ctx context.Context, requestID string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, requestID)
	}
	delete(m.stored, requestID)
	m.deletedIDs = append(m.deletedIDs, requestID)
	return nil
}

type mockPersonRepository struct {
	saveFunc             func(ctx context.Context, p model.Person) error
	findByIDFunc         func(ctx context.Context, branchID, id string) (model.Person, error)
	findByFiscalCodeFunc func(ctx context.Context, branchID, fiscalCode string) (model.Person, error)
	searchFunc           func(ctx context.Context, branchID, query string) ([]model.Person, error)
	savedPersons         []model.Person
}

func (m *mockPersonRepository) Save(ctx context.Context, p model.Person) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, p)
	}
	m.savedPersons = append(m.savedPersons, p)
	return nil
}

func (m *mockPersonRepository) FindByID(ctx context.Context, branchID, id string) (model.Person, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, branchID, id)
	}
	return model.Person{}, fmt.Errorf("%w: person %s", valueobject.ErrNotFound, id)
}

func (m *mockPersonRepository) FindByFiscalCode(ctx context.Context, branchID, fiscalCode string) (model.Person, error) {
	if m.findByFiscalCodeFunc != nil {
		return m.findByFiscalCodeFunc(ctx, branchID, fiscalCode)
	}
	return model.Person{}, fmt.Errorf("%w: fiscal code %s", valueobject.ErrNotFound, fiscalCode)
}

func (m *mockPersonRepository) Search(ctx context.Context, branchID, query string) ([]model.Person, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, branchID, query)
	}
	return nil, nil
}

type mockDocumentStore struct {
	saveFunc              func(ctx context.Context, doc model.Document) error
	listUploadedTypesFunc func(ctx context.Context, requestID string) ([]int, error)
	listByRequestIDFunc   func(ctx context.Context, requestID string) ([]model.Document, error)
	findByIDFunc          func(ctx context.Context, id string) (model.Document, error)
	savedDocs             []model.Document
}

func (m *mockDocumentStore) Save(ctx context.Context, doc model.Document) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, doc)
	}
	m.savedDocs = append(m.savedDocs, doc)
	return nil
}

func (m *mockDocumentStore) ListUploadedTypes(ctx context.Context, requestID string) ([]int, error) {
	if m.listUploadedTypesFunc != nil {
		return m.listUploadedTypesFunc(ctx, requestID)
	}
	return nil, nil
}

func (m *mockDocumentStore) ListByRequestID(ctx context.Context, requestID string) ([]model.Document, error) {
	if m.listByRequestIDFunc != nil {
		return m.listByRequestIDFunc(ctx, requestID)
	}
	return nil, nil
}

func (m *mockDocumentStore) FindByID(ctx context.Context, id string) (model.Document, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.Document{}, fmt.Errorf("%w: document %s", valueobject.ErrNotFound, id)
}

type mockEventPublisher struct {
	publishFunc     func(ctx context.Context, events ...event.DomainEvent) error
	publishedEvents []event.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

type mockDocumentBundler struct {
	bundleFunc func(requestID string, docs []model.Document) ([]byte, string, error)
}

func (m *mockDocumentBundler) Bundle(requestID string, docs []model.Document) ([]byte, string, error) {
	if m.bundleFunc != nil {
		return m.bundleFunc(requestID, docs)
	}
	return []byte("archive"), "application/zip", nil
}

type mockScheduleExporter struct {
	renderFunc func(requestID string, schedule []model.Installment, format port.ExportFormat) ([]byte, string, error)
}

func (m *mockScheduleExporter) Render(requestID string, schedule []model.Installment, format port.ExportFormat) ([]byte, string, error) {
	if m.renderFunc != nil {
		return m.renderFunc(requestID, schedule, format)
	}
	return []byte("artifact"), "application/octet-stream", nil
}

// --- Fixtures ---

var (
	officerActor   = dto.Actor{UserID: "officer-01", BranchID: "branch-01", Role: valueobject.RoleOfficer}
	validatorActor = dto.Actor{UserID: "validator-01", BranchID: "branch-01", Role: valueobject.RoleValidator}
)

func fixtureTerms() valueobject.LoanTerms {
	return valueobject.LoanTerms{
		Principal:     decimal.NewFromInt(100_000),
		AnnualRate:    decimal.NewFromFloat(5),
		DurationYears: 20,
		Cadence:       valueobject.CadenceMonthly,
		LoanTypeID:    1,
		PropertyValue: decimal.NewFromInt(180_000),
	}
}

func fixtureParties() []model.Party {
	return []model.Party{{
		PersonID:   "person-001",
		FiscalCode: "RSSMRA80A01H501U",
		FirstName:  "Mario",
		LastName:   "Rossi",
		Role:       valueobject.PartyRoleIntestatario,
	}}
}

func testTime() time.Time {
	return time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
}

func fixtureRequest(status valueobject.RequestStatus) model.MortgageRequest {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return model.ReconstructMortgageRequest(
		"req-001", "branch-01", "officer-01",
		fixtureTerms(), fixtureParties(),
		status, "", false, 1, now, now,
	)
}

func repoReturning(req model.MortgageRequest) *mockRequestRepository {
	return &mockRequestRepository{
		findByIDFunc: func(_ context.Context, _, _ string) (model.MortgageRequest, error) {
			return req, nil
		},
	}
}
