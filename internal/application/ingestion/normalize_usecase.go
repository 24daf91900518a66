package ingestion

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"idx-smart-screener/internal/domain/screener"
	"idx-smart-screener/internal/domain/tabular"
)

// ErrNoPriceColumn 表示該表格沒有可用的 price 欄位，整份跳過。
var ErrNoPriceColumn = errors.New("table has no price column")

// TableSignals 為單一表格正規化後的輸出：訊號標籤加上 (ticker, price) 列。
type TableSignals struct {
	Source string
	Label  screener.SignalLabel
	Pairs  []screener.TickerPrice
}

// Normalize 將一份上傳表格轉為 (ticker, price) 列並依檔名分類訊號。
// 純函式：不修改輸入，所有警告交由呼叫端處理。
func Normalize(t tabular.Table) (TableSignals, error) {
	out := TableSignals{
		Source: t.Name,
		Label:  ClassifyFilename(t.Name),
	}

	priceCol := -1
	tickerCol := -1
	for i, c := range t.Columns {
		if normalizeColumn(c) == "price" {
			priceCol = i
			break
		}
	}
	if priceCol < 0 {
		return out, fmt.Errorf("%s: %w", t.Name, ErrNoPriceColumn)
	}
	if len(t.Columns) > 0 {
		// 第一欄視為股票代號，不論其欄名（Symbol/Saham/Kode 等來源各異）。
		tickerCol = 0
	}

	for row := range t.Rows {
		ticker := NormalizeTicker(t.Cell(row, tickerCol))
		if ticker == "" {
			continue
		}
		out.Pairs = append(out.Pairs, screener.TickerPrice{
			Ticker: ticker,
			Price:  ParsePrice(t.Cell(row, priceCol)),
		})
	}

	return out, nil
}

// ClassifyFilename 依檔名子字串判斷訊號類別，規則順序固定、先中先贏。
func ClassifyFilename(name string) screener.SignalLabel {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "1 week") || strings.Contains(n, "1w"):
		return screener.LabelFF1W
	case strings.Contains(n, "1 month") || strings.Contains(n, "1m"):
		return screener.LabelFF1M
	case strings.Contains(n, "bandar"):
		return screener.LabelBandar
	case strings.Contains(n, "frequency") || strings.Contains(n, "freq"):
		return screener.LabelFrequency
	case strings.Contains(n, "high") && strings.Contains(n, "volume"):
		return screener.LabelHVB
	// Stockbit 匯出檔名常見拼錯 "revesal"，一併接受。
	case strings.Contains(n, "reversal") || strings.Contains(n, "revesal"):
		return screener.LabelReversal
	case strings.Contains(n, "7d") || strings.Contains(n, "momentum protection"):
		return screener.LabelProt7D
	default:
		return screener.LabelOther
	}
}

// NormalizeTicker 將代號轉大寫並去除 ".JK" 交易所後綴。已正規化的輸入不變。
func NormalizeTicker(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	return strings.ReplaceAll(s, ".JK", "")
}

// ParsePrice 解析價格字串：去除 Rp/IDR/千分位逗號/.JK 後轉浮點數。
// 無法解析回傳 nil，不視為錯誤。
func ParsePrice(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "Rp", "")
	s = strings.ReplaceAll(s, "IDR", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, ".JK", "")
	s = strings.TrimSpace(s)

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func normalizeColumn(c string) string {
	return strings.ToLower(strings.TrimSpace(c))
}
