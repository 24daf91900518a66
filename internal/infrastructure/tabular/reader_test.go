package tabular

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestRead_CommaCSV(t *testing.T) {
	body := "Symbol,Price,Net Buy\nBBCA.JK,9250,100\nANTM.JK,1500,50\n"

	table, err := Read("Foreign Flow 1 Week.csv", strings.NewReader(body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table.Columns) != 3 || table.Columns[1] != "Price" {
		t.Fatalf("unexpected columns: %v", table.Columns)
	}
	if len(table.Rows) != 2 || table.Cell(0, 0) != "BBCA.JK" {
		t.Fatalf("unexpected rows: %v", table.Rows)
	}
}

func TestRead_SemicolonCSV(t *testing.T) {
	body := "Symbol;Price\nBBCA.JK;9250\n"

	table, err := Read("bandar.csv", strings.NewReader(body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table.Columns) != 2 || table.Columns[1] != "Price" {
		t.Fatalf("semicolon fallback failed, columns: %v", table.Columns)
	}
	if table.Cell(0, 1) != "9250" {
		t.Fatalf("unexpected cell: %q", table.Cell(0, 1))
	}
}

func TestRead_XLSXFirstSheet(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range [][]interface{}{
		{"Symbol", "Price"},
		{"BBCA.JK", 9250},
		{"TLKM.JK", 3000},
	} {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatal(err)
		}
	}

	path := filepath.Join(t.TempDir(), "High Volume.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	table, err := ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.Name != "High Volume.xlsx" {
		t.Errorf("unexpected name: %s", table.Name)
	}
	if len(table.Rows) != 2 || table.Cell(1, 0) != "TLKM.JK" {
		t.Fatalf("unexpected rows: %v", table.Rows)
	}
}

func TestRead_UnsupportedExtension(t *testing.T) {
	if _, err := Read("notes.txt", strings.NewReader("x")); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestRead_EmptyCSV(t *testing.T) {
	if _, err := Read("empty.csv", strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty csv")
	}
}
