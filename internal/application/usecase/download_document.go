package usecase

import (
	"context"
	"fmt"

	"github.com/bribank/origination/internal/application/dto"
	"github.com/bribank/origination/internal/domain/model"
	"github.com/bribank/origination/internal/domain/port"
	"github.com/bribank/origination/internal/domain/valueobject"
)

// DownloadDocumentUseCase streams one stored document back to the caller.
// The document must belong to a request visible from the actor's branch.
type DownloadDocumentUseCase struct {
	requestRepo port.MortgageRequestRepository
	documents   port.DocumentStore
}

// NewDownloadDocumentUseCase wires dependencies.
func NewDownloadDocumentUseCase(
	requestRepo port.MortgageRequestRepository,
	documents port.DocumentStore,
) *DownloadDocumentUseCase {
	return &DownloadDocumentUseCase{requestRepo: requestRepo, documents: documents}
}

// Execute loads the document content for download.
func (uc *DownloadDocumentUseCase) Execute(ctx context.Context, req dto.DownloadDocumentRequest) (dto.ExportResponse, error) {
	request, err := uc.requestRepo.FindByID(ctx, req.Actor.BranchID, req.RequestID)
	if err != nil {
		return dto.ExportResponse{}, fmt.Errorf("find request: %w", err)
	}

	doc, err := uc.documents.FindByID(ctx, req.DocumentID)
	if err != nil {
		return dto.ExportResponse{}, fmt.Errorf("find document: %w", err)
	}
	// A document id of a different request must look like a miss, not leak
	// the other request's file.
	if doc.RequestID != request.ID() {
		return dto.ExportResponse{}, fmt.Errorf("%w: document %s",
			valueobject.ErrNotFound, req.DocumentID)
	}

	contentType := doc.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return dto.ExportResponse{
		FileName:    doc.FileName,
		ContentType: contentType,
		Content:     doc.Content,
	}, nil
}

// DownloadDocumentBundleUseCase packs every uploaded document of a request
// into one archive for download.
type DownloadDocumentBundleUseCase struct {
	requestRepo port.MortgageRequestRepository
	documents   port.DocumentStore
	bundler     port.DocumentBundler
}

// NewDownloadDocumentBundleUseCase wires dependencies.
func NewDownloadDocumentBundleUseCase(
	requestRepo port.MortgageRequestRepository,
	documents port.DocumentStore,
	bundler port.DocumentBundler,
) *DownloadDocumentBundleUseCase {
	return &DownloadDocumentBundleUseCase{
		requestRepo: requestRepo,
		documents:   documents,
		bundler:     bundler,
	}
}

// Execute builds the archive from the full content of every stored document.
func (uc *DownloadDocumentBundleUseCase) Execute(ctx context.Context, actor dto.Actor, requestID string) (dto.ExportResponse, error) {
	request, err := uc.requestRepo.FindByID(ctx, actor.BranchID, requestID)
	if err != nil {
		return dto.ExportResponse{}, fmt.Errorf("find request: %w", err)
	}

	metadata, err := uc.documents.ListByRequestID(ctx, request.ID())
	if err != nil {
		return dto.ExportResponse{}, fmt.Errorf("%w: list documents: %v",
			valueobject.ErrUpstreamUnavailable, err)
	}
	if len(metadata) == 0 {
		return dto.ExportResponse{}, fmt.Errorf("%w: no documents uploaded for request %s",
			valueobject.ErrNotFound, request.ID())
	}

	// The listing omits content, so each document is loaded in full.
	docs := make([]model.Document, 0, len(metadata))
	for _, m := range metadata {
		doc, err := uc.documents.FindByID(ctx, m.ID)
		if err != nil {
			return dto.ExportResponse{}, fmt.Errorf("find document: %w", err)
		}
		docs = append(docs, doc)
	}

	content, contentType, err := uc.bundler.Bundle(request.ID(), docs)
	if err != nil {
		return dto.ExportResponse{}, fmt.Errorf("%w: bundle documents: %v",
			valueobject.ErrUpstreamUnavailable, err)
	}

	return dto.ExportResponse{
		FileName:    fmt.Sprintf("documents_%s.zip", request.ID()),
		ContentType: contentType,
		Content:     content,
	}, nil
}
