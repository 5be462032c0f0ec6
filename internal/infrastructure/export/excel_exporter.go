package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/bribank/origination/internal/domain/model"
)

const scheduleSheet = "Schedule"

func renderExcel(schedule []model.Installment) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(scheduleSheet)
	if err != nil {
		return nil, fmt.Errorf("render excel: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Number", "Installment", "Interest", "Principal", "Remaining"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(scheduleSheet, cell, h); err != nil {
			return nil, fmt.Errorf("render excel: %w", err)
		}
	}

	for row, inst := range schedule {
		values := []interface{}{
			inst.Number,
			inst.Total.InexactFloat64(),
			inst.Interest.InexactFloat64(),
			inst.Principal.InexactFloat64(),
			inst.Remaining.InexactFloat64(),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(scheduleSheet, cell, v); err != nil {
				return nil, fmt.Errorf("render excel: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render excel: %w", err)
	}
	return buf.Bytes(), nil
}
