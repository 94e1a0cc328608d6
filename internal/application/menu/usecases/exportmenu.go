package usecases

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"stayops/internal/domain/menu"
	"stayops/internal/shared/logger"
)

// ExportMenuUseCase renders the active menu as an XLSX workbook, one
// row per variant so every price appears.
type ExportMenuUseCase struct {
	repo   menu.Repository
	logger logger.Interface
}

func NewExportMenuUseCase(repo menu.Repository, log logger.Interface) *ExportMenuUseCase {
	return &ExportMenuUseCase{repo: repo, logger: log}
}

var exportHeader = []string{"Menu Ref", "Menu Name", "Category", "Food Type", "Variant", "Rate", "Addon Count"}

func (uc *ExportMenuUseCase) Execute(ctx context.Context) ([]byte, string, error) {
	items, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Menu"
	f.SetSheetName("Sheet1", sheet)

	for col, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, "", fmt.Errorf("failed to write header: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		last, _ := excelize.CoordinatesToCellName(len(exportHeader), 1)
		f.SetCellStyle(sheet, "A1", last, headerStyle)
	}

	row := 2
	for _, item := range items {
		for _, v := range item.Variants() {
			values := []interface{}{
				item.Ref(),
				item.Name(),
				item.CategoryName(),
				item.FoodType(),
				v.VariantType,
				v.Rate,
				len(item.AddonIDs()),
			}
			for col, value := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row)
				if err := f.SetCellValue(sheet, cell, value); err != nil {
					return nil, "", fmt.Errorf("failed to write row: %w", err)
				}
			}
			row++
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render workbook: %w", err)
	}

	uc.logger.Info("menu exported", "items", len(items), "rows", row-2)

	filename := fmt.Sprintf("menu-export-%d-items.xlsx", len(items))
	filename = strings.ReplaceAll(filename, " ", "-")
	return buf.Bytes(), filename, nil
}
