package tabular

// Table 為讀檔層產出的具名欄位表格，儲存原始字串值。
// 欄名保留原樣，由 ingestion 層負責正規化後查找。
type Table struct {
	Name    string // 原始檔名，用於訊號分類
	Columns []string
	Rows    [][]string
}

// Cell 回傳指定列/欄的值，超出範圍回傳空字串。
func (t Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// Empty 判斷表格是否沒有任何資料列。
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}
