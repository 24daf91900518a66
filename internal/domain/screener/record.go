package screener

import "fmt"

// SignalLabel 列舉上傳檔案對應的訊號類別。
type SignalLabel string

const (
	LabelFF1W      SignalLabel = "ff1w"
	LabelFF1M      SignalLabel = "ff1m"
	LabelBandar    SignalLabel = "bandar"
	LabelFrequency SignalLabel = "frequency"
	LabelHVB       SignalLabel = "hvb"
	LabelReversal  SignalLabel = "reversal"
	LabelProt7D    SignalLabel = "prot7d"
	LabelOther     SignalLabel = "other"
)

// PrimaryLabels 回傳計入 signal_count 的六種主要訊號。
// prot7d 與 other 不在其中：prot7d 只影響排序優先權，other 只貢獻價格。
func PrimaryLabels() []SignalLabel {
	return []SignalLabel{LabelFF1W, LabelFF1M, LabelBandar, LabelFrequency, LabelHVB, LabelReversal}
}

// IsPrimary 判斷標籤是否為主要訊號。
func (l SignalLabel) IsPrimary() bool {
	switch l {
	case LabelFF1W, LabelFF1M, LabelBandar, LabelFrequency, LabelHVB, LabelReversal:
		return true
	}
	return false
}

// Category 表示交易分類。
type Category string

const (
	CategoryScalping  Category = "Scalping"
	CategoryIntraday  Category = "Intraday"
	CategorySwing     Category = "Swing"
	CategoryWatchlist Category = "Watchlist"
)

// TickerPrice 為單一表格正規化後的一列：股票代號加上可能缺漏的價格。
type TickerPrice struct {
	Ticker string
	Price  *float64 // nil 表示該列價格無法解析
}

// TickerRecord 為跨所有上傳表格合併後的單一股票彙總。
type TickerRecord struct {
	Ticker string
	Price  *float64 // 所有數值觀測的中位數；從未出現數值則為 nil

	FF1W      bool
	FF1M      bool
	Bandar    bool
	Frequency bool
	HVB       bool
	Reversal  bool

	SignalCount int
	Category    Category
	Prot7D      bool
}

// SetFlag 依標籤設定對應的訊號旗標。非主要訊號不改變任何欄位。
func (r *TickerRecord) SetFlag(label SignalLabel) {
	switch label {
	case LabelFF1W:
		r.FF1W = true
	case LabelFF1M:
		r.FF1M = true
	case LabelBandar:
		r.Bandar = true
	case LabelFrequency:
		r.Frequency = true
	case LabelHVB:
		r.HVB = true
	case LabelReversal:
		r.Reversal = true
	}
}

// HasFlag 回傳指定主要訊號是否命中。
func (r TickerRecord) HasFlag(label SignalLabel) bool {
	switch label {
	case LabelFF1W:
		return r.FF1W
	case LabelFF1M:
		return r.FF1M
	case LabelBandar:
		return r.Bandar
	case LabelFrequency:
		return r.Frequency
	case LabelHVB:
		return r.HVB
	case LabelReversal:
		return r.Reversal
	}
	return false
}

// CountSignals 重新計算六個主要旗標的總和。
func (r TickerRecord) CountSignals() int {
	n := 0
	for _, l := range PrimaryLabels() {
		if r.HasFlag(l) {
			n++
		}
	}
	return n
}

// Validate 基礎必填檢查。
func (r TickerRecord) Validate() error {
	if r.Ticker == "" {
		return fmt.Errorf("ticker is required")
	}
	switch r.Category {
	case CategoryScalping, CategoryIntraday, CategorySwing, CategoryWatchlist, "":
	default:
		return fmt.Errorf("unsupported category: %s", r.Category)
	}
	return nil
}
