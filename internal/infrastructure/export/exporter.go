package export

import (
	"fmt"

	"github.com/bribank/origination/internal/domain/model"
	"github.com/bribank/origination/internal/domain/port"
)

// ScheduleExporter implements port.ScheduleExporter, dispatching to the PDF
// or spreadsheet renderer by format tag.
type ScheduleExporter struct{}

// NewScheduleExporter creates the exporter.
func NewScheduleExporter() *ScheduleExporter {
	return &ScheduleExporter{}
}

// Render produces the artifact bytes and their content type.
func (e *ScheduleExporter) Render(requestID string, schedule []model.Installment, format port.ExportFormat) ([]byte, string, error) {
	switch format {
	case port.ExportFormatPDF:
		content, err := renderPDF(requestID, schedule)
		return content, "application/pdf", err
	case port.ExportFormatExcel:
		content, err := renderExcel(schedule)
		return content, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", err
	}
	return nil, "", fmt.Errorf("unsupported export format %q", format)
}
