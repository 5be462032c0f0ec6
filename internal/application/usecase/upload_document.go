package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bribank/origination/internal/application/dto"
	"github.com/bribank/origination/internal/domain/event"
	"github.com/bribank/origination/internal/domain/model"
	"github.com/bribank/origination/internal/domain/port"
	"github.com/bribank/origination/internal/domain/valueobject"
)

// UploadDocumentUseCase stores a supporting document against a request.
// Documents may only be attached while the request is still in flight.
type UploadDocumentUseCase struct {
	requestRepo port.MortgageRequestRepository
	documents   port.DocumentStore
	publisher   port.EventPublisher
}

// NewUploadDocumentUseCase wires dependencies.
func NewUploadDocumentUseCase(
	requestRepo port.MortgageRequestRepository,
	documents port.DocumentStore,
	publisher port.EventPublisher,
) *UploadDocumentUseCase {
	return &UploadDocumentUseCase{
		requestRepo: requestRepo,
		documents:   documents,
		publisher:   publisher,
	}
}

// Execute validates and stores the document.
func (uc *UploadDocumentUseCase) Execute(ctx context.Context, req dto.UploadDocumentRequest) (dto.DocumentResponse, error) {
	now := time.Now().UTC()

	request, err := uc.requestRepo.FindByID(ctx, req.Actor.BranchID, req.RequestID)
	if err != nil {
		return dto.DocumentResponse{}, fmt.Errorf("find request: %w", err)
	}
	if request.Status().IsTerminal() {
		return dto.DocumentResponse{}, fmt.Errorf("%w: document set is archival in status %s",
			valueobject.ErrIllegalTransition, request.Status())
	}

	doc, err := model.NewDocument(request.ID(), req.TypeID, req.FileName, req.ContentType, req.Content, req.Actor.UserID, now)
	if err != nil {
		return dto.DocumentResponse{}, err
	}

	if err := uc.documents.Save(ctx, doc); err != nil {
		return dto.DocumentResponse{}, fmt.Errorf("%w: save document: %v",
			valueobject.ErrUpstreamUnavailable, err)
	}

	uploaded := event.NewDocumentUploaded(request.ID(), request.BranchID(), doc.TypeID, doc.FileName)
	if err := uc.publisher.Publish(ctx, uploaded); err != nil {
		return dto.DocumentResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toDocumentResponse(doc), nil
}

// ListDocumentsUseCase reports per-category upload progress plus the metadata
// of every stored document for a request.
type ListDocumentsUseCase struct {
	requestRepo port.MortgageRequestRepository
	documents   port.DocumentStore
}

// NewListDocumentsUseCase wires dependencies.
func NewListDocumentsUseCase(requestRepo port.MortgageRequestRepository, documents port.DocumentStore) *ListDocumentsUseCase {
	return &ListDocumentsUseCase{requestRepo: requestRepo, documents: documents}
}

// Execute returns the checklist and the uploaded document metadata. The
// request must belong to the actor's branch.
func (uc *ListDocumentsUseCase) Execute(ctx context.Context, actor dto.Actor, requestID string) ([]dto.DocumentChecklistEntry, []dto.DocumentResponse, error) {
	request, err := uc.requestRepo.FindByID(ctx, actor.BranchID, requestID)
	if err != nil {
		return nil, nil, fmt.Errorf("find request: %w", err)
	}

	docs, err := uc.documents.ListByRequestID(ctx, request.ID())
	if err != nil {
		return nil, nil, fmt.Errorf("%w: list documents: %v", valueobject.ErrUpstreamUnavailable, err)
	}

	uploadedTypes := make(map[int]bool, len(docs))
	responses := make([]dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		uploadedTypes[d.TypeID] = true
		responses = append(responses, toDocumentResponse(d))
	}

	catalog := valueobject.DocumentTypes()
	checklist := make([]dto.DocumentChecklistEntry, 0, len(catalog))
	for _, dt := range catalog {
		checklist = append(checklist, dto.DocumentChecklistEntry{
			TypeID:      dt.ID,
			Description: dt.Description,
			Mandatory:   dt.Mandatory,
			Uploaded:    uploadedTypes[dt.ID],
		})
	}

	return checklist, responses, nil
}
