package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	domain "idx-smart-screener/internal/domain/tabular"
)

// Read 依檔名副檔名解析上傳內容為表格。
// CSV 支援逗號與分號兩種分隔；XLSX/XLS 取第一個工作表。
func Read(name string, r io.Reader) (domain.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return domain.Table{}, fmt.Errorf("read %s: %w", name, err)
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return readCSV(name, data)
	case ".xlsx", ".xls":
		return readXLSX(name, data)
	default:
		return domain.Table{}, fmt.Errorf("unsupported file type: %s", name)
	}
}

// ReadFile 讀取磁碟上的單一檔案，供 CLI 使用。
func ReadFile(path string) (domain.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Table{}, err
	}
	defer f.Close()
	return Read(filepath.Base(path), f)
}

func readCSV(name string, data []byte) (domain.Table, error) {
	records, err := parseCSV(data, ',')
	// Stockbit 匯出偶爾使用分號分隔；逗號解析失敗或只得到單欄時重試。
	if err != nil || singleColumnWithSemicolon(records) {
		if retried, retryErr := parseCSV(data, ';'); retryErr == nil {
			records, err = retried, nil
		}
	}
	if err != nil {
		return domain.Table{}, fmt.Errorf("parse csv %s: %w", name, err)
	}
	if len(records) == 0 {
		return domain.Table{}, fmt.Errorf("csv %s is empty", name)
	}

	return domain.Table{
		Name:    name,
		Columns: records[0],
		Rows:    records[1:],
	}, nil
}

func parseCSV(data []byte, sep rune) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = sep
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	return r.ReadAll()
}

func singleColumnWithSemicolon(records [][]string) bool {
	if len(records) == 0 || len(records[0]) != 1 {
		return false
	}
	return strings.Contains(records[0][0], ";")
}

func readXLSX(name string, data []byte) (domain.Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return domain.Table{}, fmt.Errorf("open workbook %s: %w", name, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return domain.Table{}, fmt.Errorf("workbook %s has no sheets", name)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return domain.Table{}, fmt.Errorf("read sheet %s of %s: %w", sheets[0], name, err)
	}
	if len(rows) == 0 {
		return domain.Table{}, fmt.Errorf("workbook %s is empty", name)
	}

	return domain.Table{
		Name:    name,
		Columns: rows[0],
		Rows:    rows[1:],
	}, nil
}
