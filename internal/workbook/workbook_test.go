package workbook

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/mkenealy/secreports/internal/tables"
)

func TestWrite_OneSheetPerGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	grids := []tables.Grid{
		{{"h1", "h2"}, {"a", "b"}},
		{{"x"}, {"y"}, {"z"}},
	}
	if err := Write(path, grids); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "Table_1" || sheets[1] != "Table_2" {
		t.Fatalf("unexpected sheets: %v", sheets)
	}

	rows, err := f.GetRows("Table_1")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 2 || rows[0][0] != "h1" || rows[1][1] != "b" {
		t.Fatalf("unexpected Table_1 contents: %v", rows)
	}

	rows, err = f.GetRows("Table_2")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 3 || rows[2][0] != "z" {
		t.Fatalf("unexpected Table_2 contents: %v", rows)
	}
}

func TestWrite_NoGridsWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	if err := Write(path, nil); !errors.Is(err, ErrNoSheets) {
		t.Fatalf("expected ErrNoSheets, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("no file should exist for an empty table set")
	}
}

func TestWrite_FailureLeavesNoPartialFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing", "out.xlsx")
	err := Write(path, []tables.Grid{{{"a"}, {"b"}}})
	if err == nil {
		t.Fatalf("expected an error for an unwritable path")
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Fatalf("partial artifact left behind")
	}
}
