package export_test

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/bribank/origination/internal/domain/model"
	"github.com/bribank/origination/internal/domain/port"
	"github.com/bribank/origination/internal/infrastructure/export"
)

func sampleSchedule() []model.Installment {
	return []model.Installment{
		{
			Number:    1,
			Interest:  decimal.NewFromFloat(416.67),
			Principal: decimal.NewFromFloat(243.29),
			Total:     decimal.NewFromFloat(659.96),
			Remaining: decimal.NewFromFloat(99756.71),
		},
		{
			Number:    2,
			Interest:  decimal.NewFromFloat(415.65),
			Principal: decimal.NewFromFloat(244.31),
			Total:     decimal.NewFromFloat(659.96),
			Remaining: decimal.NewFromFloat(99512.40),
		},
	}
}

func TestScheduleExporter_RenderPDF(t *testing.T) {
	exporter := export.NewScheduleExporter()

	content, contentType, err := exporter.Render("req-001", sampleSchedule(), port.ExportFormatPDF)

	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	require.NotEmpty(t, content)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")), "output should start with a PDF header")
}

func TestScheduleExporter_RenderExcel(t *testing.T) {
	exporter := export.NewScheduleExporter()

	content, contentType, err := exporter.Render("req-001", sampleSchedule(), port.ExportFormatExcel)

	require.NoError(t, err)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", contentType)
	require.NotEmpty(t, content)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Schedule")
	require.NoError(t, err)
	// Header plus one row per installment.
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Number", "Installment", "Interest", "Principal", "Remaining"}, rows[0])
	assert.Equal(t, "1", rows[1][0])
}

func TestScheduleExporter_UnknownFormat(t *testing.T) {
	exporter := export.NewScheduleExporter()

	_, _, err := exporter.Render("req-001", sampleSchedule(), port.ExportFormat("csv"))
	require.Error(t, err)
}
