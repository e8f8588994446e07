// Package workbook persists extracted table grids as an xlsx workbook.
package workbook

import (
	"errors"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/mkenealy/secreports/internal/tables"
)

// ErrNoSheets is returned when there is nothing to write; no file is
// created in that case.
var ErrNoSheets = errors.New("workbook: no grids to write")

// Write saves the grids to path, one sheet per grid named Table_1..Table_N
// in the given order, with no index column. The workbook is assembled in
// memory and written in a single call so a failure never leaves a partial
// file behind.
func Write(path string, grids []tables.Grid) error {
	if len(grids) == 0 {
		return ErrNoSheets
	}
	f := excelize.NewFile()
	defer f.Close()

	for i, grid := range grids {
		name := fmt.Sprintf("Table_%d", i+1)
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("add sheet %s: %w", name, err)
		}
		for ri, row := range grid {
			cells := make([]any, len(row))
			for ci, v := range row {
				cells[ci] = v
			}
			start, err := excelize.CoordinatesToCellName(1, ri+1)
			if err != nil {
				return fmt.Errorf("sheet %s row %d: %w", name, ri+1, err)
			}
			if err := f.SetSheetRow(name, start, &cells); err != nil {
				return fmt.Errorf("sheet %s row %d: %w", name, ri+1, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("encode workbook: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
