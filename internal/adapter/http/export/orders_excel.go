package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/alexferreiraaf/osmaster/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

const (
	SheetName   = "Ordens"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// OrderHeader is the column order of the exported sheet.
var OrderHeader = []string{
	"ID", "Cliente", "Documento", "Contato", "Cidade", "Estado",
	"Serviço", "Prioridade", "Status", "Técnico", "Checklist",
	"Data", "Atualizado por", "Atualizado em",
}

var columnWidths = []float64{20, 28, 20, 18, 20, 8, 28, 12, 14, 20, 10, 18, 20, 18}

// OrdersWorkbook renders the order list as an .xlsx file, one row per order
// in the given order.
func OrdersWorkbook(orders []entities.Order) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, title := range OrderHeader {
		if err := setCell(f, col+1, 1, title); err != nil {
			return nil, err
		}
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(SheetName, name, name, columnWidths[col]); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(OrderHeader), 1)
	if err := f.SetCellStyle(SheetName, "A1", last, headerStyle); err != nil {
		return nil, fmt.Errorf("failed to set header style: %w", err)
	}

	for i, o := range orders {
		row := i + 2
		for col, v := range orderRow(o) {
			if v == "" {
				continue
			}
			if err := setCell(f, col+1, row, v); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("failed to freeze header: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func orderRow(o entities.Order) []any {
	done := 0
	for _, v := range o.Checklist.Map() {
		if v {
			done++
		}
	}
	return []any{
		o.ID,
		o.Client,
		o.Document,
		o.Contact,
		o.City,
		o.State,
		o.Service,
		string(o.Priority),
		string(o.Status),
		o.AssignedTo,
		fmt.Sprintf("%d/%d", done, len(entities.ChecklistKeys)),
		timeCell(o.Date),
		o.LastUpdatedBy,
		timeCell(o.UpdatedAt),
	}
}

// timeCell leaves unset timestamps blank instead of writing year 1.
func timeCell(t time.Time) any {
	if t.IsZero() {
		return ""
	}
	return t
}

func setCell(f *excelize.File, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(SheetName, cell, v); err != nil {
		return fmt.Errorf("failed to set cell %s: %w", cell, err)
	}
	return nil
}
