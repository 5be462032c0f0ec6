package usecase

import (
	"context"
	"fmt"

	"github.com/bribank/origination/internal/application/dto"
	"github.com/bribank/origination/internal/domain/port"
)

// GetRequestUseCase retrieves a single mortgage request.
type GetRequestUseCase struct {
	requestRepo port.MortgageRequestRepository
}

// NewGetRequestUseCase wires dependencies.
func NewGetRequestUseCase(requestRepo port.MortgageRequestRepository) *GetRequestUseCase {
	return &GetRequestUseCase{requestRepo: requestRepo}
}

// Execute fetches the request by id within the actor's branch.
func (uc *GetRequestUseCase) Execute(ctx context.Context, req dto.TransitionRequest) (dto.RequestResponse, error) {
	request, err := uc.requestRepo.FindByID(ctx, req.Actor.BranchID, req.RequestID)
	if err != nil {
		return dto.RequestResponse{}, fmt.Errorf("find request: %w", err)
	}
	return toRequestResponse(request), nil
}

// SearchRequestsUseCase searches requests with partial-match filters.
type SearchRequestsUseCase struct {
	requestRepo port.MortgageRequestRepository
}

// NewSearchRequestsUseCase wires dependencies.
func NewSearchRequestsUseCase(requestRepo port.MortgageRequestRepository) *SearchRequestsUseCase {
	return &SearchRequestsUseCase{requestRepo: requestRepo}
}

// Execute runs the filtered search.
func (uc *SearchRequestsUseCase) Execute(ctx context.Context, req dto.SearchRequestsRequest) ([]dto.RequestResponse, error) {
	results, err := uc.requestRepo.Search(ctx, req.Actor.BranchID, port.RequestSearch{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		FiscalCode:     req.FiscalCode,
		RequestID:      req.RequestID,
		Status:         req.Status,
		IncludeDeleted: req.IncludeDeleted,
	})
	if err != nil {
		return nil, fmt.Errorf("search requests: %w", err)
	}

	responses := make([]dto.RequestResponse, 0, len(results))
	for _, r := range results {
		responses = append(responses, toRequestResponse(r))
	}
	return responses, nil
}
