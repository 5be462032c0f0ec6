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

// SubmitRequestUseCase moves a request from DRAFT (or REJECTED, on
// resubmission) to SUBMITTED.
type SubmitRequestUseCase struct {
	requestRepo port.MortgageRequestRepository
	lifecycle   *service.Lifecycle
	publisher   port.EventPublisher
}

// NewSubmitRequestUseCase wires dependencies.
func NewSubmitRequestUseCase(
	requestRepo port.MortgageRequestRepository,
	lifecycle *service.Lifecycle,
	publisher port.EventPublisher,
) *SubmitRequestUseCase {
	return &SubmitRequestUseCase{
		requestRepo: requestRepo,
		lifecycle:   lifecycle,
		publisher:   publisher,
	}
}

// Execute submits the request for branch handling.
func (uc *SubmitRequestUseCase) Execute(ctx context.Context, req dto.TransitionRequest) (dto.RequestResponse, error) {
	now := time.Now().UTC()

	request, err := uc.requestRepo.FindByID(ctx, req.Actor.BranchID, req.RequestID)
	if err != nil {
		return dto.RequestResponse{}, fmt.Errorf("find request: %w", err)
	}

	if _, err := uc.lifecycle.Authorize(request.Status(), valueobject.RequestStatusSubmitted, req.Actor.Role); err != nil {
		return dto.RequestResponse{}, err
	}

	request, err = request.Submit(now)
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
