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

// DeleteRequestUseCase soft-deletes a request; RestoreRequestUseCase undoes
// it. Both preserve the status and field values (round-trip law).
type DeleteRequestUseCase struct {
	requestRepo port.MortgageRequestRepository
	lifecycle   *service.Lifecycle
	publisher   port.EventPublisher
}

// NewDeleteRequestUseCase wires dependencies.
func NewDeleteRequestUseCase(
	requestRepo port.MortgageRequestRepository,
	lifecycle *service.Lifecycle,
	publisher port.EventPublisher,
) *DeleteRequestUseCase {
	return &DeleteRequestUseCase{
		requestRepo: requestRepo,
		lifecycle:   lifecycle,
		publisher:   publisher,
	}
}

// Execute marks the request deleted.
func (uc *DeleteRequestUseCase) Execute(ctx context.Context, req dto.TransitionRequest) (dto.RequestResponse, error) {
	now := time.Now().UTC()

	request, err := uc.requestRepo.FindByID(ctx, req.Actor.BranchID, req.RequestID)
	if err != nil {
		return dto.RequestResponse{}, fmt.Errorf("find request: %w", err)
	}

	if !uc.lifecycle.CanSoftDelete(request.Status(), req.Actor.Role) {
		return dto.RequestResponse{}, fmt.Errorf("%w: role %s may not delete a request in status %s",
			valueobject.ErrIllegalTransition, req.Actor.Role, request.Status())
	}

	request, err = request.SoftDelete(now)
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

// RestoreRequestUseCase reverses a soft deletion.
type RestoreRequestUseCase struct {
	requestRepo port.MortgageRequestRepository
	publisher   port.EventPublisher
}

// NewRestoreRequestUseCase wires dependencies.
func NewRestoreRequestUseCase(
	requestRepo port.MortgageRequestRepository,
	publisher port.EventPublisher,
) *RestoreRequestUseCase {
	return &RestoreRequestUseCase{
		requestRepo: requestRepo,
		publisher:   publisher,
	}
}

// Execute restores a deleted request to its exact prior status.
func (uc *RestoreRequestUseCase) Execute(ctx context.Context, req dto.TransitionRequest) (dto.RequestResponse, error) {
	if !req.Actor.Role.Equal(valueobject.RoleOfficer) {
		return dto.RequestResponse{}, fmt.Errorf("%w: only an officer may restore a request",
			valueobject.ErrIllegalTransition)
	}

	now := time.Now().UTC()

	request, err := uc.requestRepo.FindByID(ctx, req.Actor.BranchID, req.RequestID)
	if err != nil {
		return dto.RequestResponse{}, fmt.Errorf("find request: %w", err)
	}

	request, err = request.Restore(now)
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
