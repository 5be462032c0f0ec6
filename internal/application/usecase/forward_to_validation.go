package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bribank/origination/internal/application/dto"
	"github.com/bribank/origination/internal/domain/port"
	"github.com/bribank/origination/internal/domain/service"
	"github.com/bribank/origination/internal/domain/valueobject"
)

// ForwardToValidationUseCase moves a SUBMITTED request to VALIDATION once
// every mandatory document category has been uploaded.
type ForwardToValidationUseCase struct {
	requestRepo port.MortgageRequestRepository
	documents   port.DocumentStore
	lifecycle   *service.Lifecycle
	publisher   port.EventPublisher
}

// NewForwardToValidationUseCase wires dependencies.
func NewForwardToValidationUseCase(
	requestRepo port.MortgageRequestRepository,
	documents port.DocumentStore,
	lifecycle *service.Lifecycle,
	publisher port.EventPublisher,
) *ForwardToValidationUseCase {
	return &ForwardToValidationUseCase{
		requestRepo: requestRepo,
		documents:   documents,
		lifecycle:   lifecycle,
		publisher:   publisher,
	}
}

// Execute forwards the request to the validation stage.
func (uc *ForwardToValidationUseCase) Execute(ctx context.Context, req dto.TransitionRequest) (dto.RequestResponse, error) {
	now := time.Now().UTC()

	request, err := uc.requestRepo.FindByID(ctx, req.Actor.BranchID, req.RequestID)
	if err != nil {
		return dto.RequestResponse{}, fmt.Errorf("find request: %w", err)
	}

	precondition, err := uc.lifecycle.Authorize(request.Status(), valueobject.RequestStatusValidation, req.Actor.Role)
	if err != nil {
		return dto.RequestResponse{}, err
	}

	var uploaded []int
	if precondition == service.PreconditionMandatoryDocuments {
		uploaded, err = uc.documents.ListUploadedTypes(ctx, request.ID())
		if err != nil {
			return dto.RequestResponse{}, fmt.Errorf("%w: list uploaded documents: %v",
				valueobject.ErrUpstreamUnavailable, err)
		}
	}

	request, err = request.ForwardToValidation(uploaded, now)
	if err != nil {
		return dto.RequestResponse{}, err
	}

	if err := uc.requestRepo.Save(ctx, request); err != nil {
		return dto.RequestResponse{}, fmt.Errorf("save request: %w", err)
	}

	if err := uc.publisher.Publish(ctx, request.DomainEvents()...); err != nil {
		return dto.RequestResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toRequestResponse(request), nil
}
