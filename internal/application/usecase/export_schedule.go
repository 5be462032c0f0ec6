package usecase

import (
	"context"
	"fmt"

	"github.com/bribank/origination/internal/application/dto"
	"github.com/bribank/origination/internal/domain/model"
	"github.com/bribank/origination/internal/domain/port"
	"github.com/bribank/origination/internal/domain/valueobject"
)

// ExportScheduleUseCase renders the schedule of a request as a downloadable
// artifact. The stored authoritative schedule is preferred; when none exists
// yet a fresh computation from the current terms is used, which is identical
// by determinism.
type ExportScheduleUseCase struct {
	requestRepo  port.MortgageRequestRepository
	scheduleRepo port.ScheduleRepository
	exporter     port.ScheduleExporter
}

// NewExportScheduleUseCase wires dependencies.
func NewExportScheduleUseCase(
	requestRepo port.MortgageRequestRepository,
	scheduleRepo port.ScheduleRepository,
	exporter port.ScheduleExporter,
) *ExportScheduleUseCase {
	return &ExportScheduleUseCase{
		requestRepo:  requestRepo,
		scheduleRepo: scheduleRepo,
		exporter:     exporter,
	}
}

// Execute renders the schedule in the requested format.
func (uc *ExportScheduleUseCase) Execute(ctx context.Context, req dto.ExportScheduleRequest) (dto.ExportResponse, error) {
	format, err := port.ParseExportFormat(req.Format)
	if err != nil {
		return dto.ExportResponse{}, err
	}

	request, err := uc.requestRepo.FindByID(ctx, req.Actor.BranchID, req.RequestID)
	if err != nil {
		return dto.ExportResponse{}, fmt.Errorf("find request: %w", err)
	}

	schedule, err := uc.scheduleRepo.FindByRequestID(ctx, request.ID())
	if err != nil {
		return dto.ExportResponse{}, fmt.Errorf("%w: load schedule: %v",
			valueobject.ErrUpstreamUnavailable, err)
	}
	if len(schedule) == 0 {
		schedule = model.ComputeSchedule(request.Terms())
	}
	if len(schedule) == 0 {
		return dto.ExportResponse{}, fmt.Errorf("%w: no schedule to export",
			valueobject.ErrValidation)
	}

	content, contentType, err := uc.exporter.Render(request.ID(), schedule, format)
	if err != nil {
		return dto.ExportResponse{}, fmt.Errorf("%w: render schedule: %v",
			valueobject.ErrUpstreamUnavailable, err)
	}

	ext := "pdf"
	if format == port.ExportFormatExcel {
		ext = "xlsx"
	}
	return dto.ExportResponse{
		FileName:    fmt.Sprintf("amortization_schedule_%s.%s", request.ID(), ext),
		ContentType: contentType,
		Content:     content,
	}, nil
}
