package screener

import (
	"sort"

	"idx-smart-screener/internal/application/ingestion"
	domain "idx-smart-screener/internal/domain/screener"
)

// Aggregation 為跨表格的累積狀態：各訊號的 ticker 集合、7D 保護名單
// 與每檔股票的價格樣本。狀態只存在於單次執行，逐表餵入後一次產出結果。
type Aggregation struct {
	signals map[domain.SignalLabel]map[string]struct{}
	prot    map[string]struct{}
	prices  map[string][]float64
	tickers map[string]struct{}
	tables  int
}

// NewAggregation 建立空的累積狀態。
func NewAggregation() *Aggregation {
	signals := make(map[domain.SignalLabel]map[string]struct{})
	for _, l := range domain.PrimaryLabels() {
		signals[l] = make(map[string]struct{})
	}
	return &Aggregation{
		signals: signals,
		prot:    make(map[string]struct{}),
		prices:  make(map[string][]float64),
		tickers: make(map[string]struct{}),
	}
}

// Add 將一份正規化後的表格併入累積狀態。
// 六種主要訊號取聯集；prot7d 獨立累積、不計入 signal_count；
// other 只貢獻價格樣本。所有表格的 (ticker, price) 都進價格池。
func (a *Aggregation) Add(ts ingestion.TableSignals) {
	if len(ts.Pairs) == 0 {
		return
	}
	a.tables++

	for _, p := range ts.Pairs {
		a.tickers[p.Ticker] = struct{}{}
		if p.Price != nil {
			a.prices[p.Ticker] = append(a.prices[p.Ticker], *p.Price)
		}

		switch {
		case ts.Label.IsPrimary():
			a.signals[ts.Label][p.Ticker] = struct{}{}
		case ts.Label == domain.LabelProt7D:
			a.prot[p.Ticker] = struct{}{}
		}
	}
}

// Empty 表示沒有任何表格貢獻過 (ticker, price) 列。
func (a *Aggregation) Empty() bool {
	return a.tables == 0
}

// TableCount 回傳實際貢獻資料的表格數。
func (a *Aggregation) TableCount() int {
	return a.tables
}

// Protected 回傳 7D 保護名單。
func (a *Aggregation) Protected() map[string]bool {
	out := make(map[string]bool, len(a.prot))
	for t := range a.prot {
		out[t] = true
	}
	return out
}

// Records 產出每檔股票的彙總紀錄，依代號排序以確保輸出可重現。
// 價格為所有數值觀測的中位數；沒有任何數值觀測則維持 nil。
func (a *Aggregation) Records() []domain.TickerRecord {
	tickers := make([]string, 0, len(a.tickers))
	for t := range a.tickers {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)

	out := make([]domain.TickerRecord, 0, len(tickers))
	for _, t := range tickers {
		rec := domain.TickerRecord{Ticker: t}
		for _, l := range domain.PrimaryLabels() {
			if _, ok := a.signals[l][t]; ok {
				rec.SetFlag(l)
			}
		}
		rec.SignalCount = rec.CountSignals()
		if samples := a.prices[t]; len(samples) > 0 {
			m := median(samples)
			rec.Price = &m
		}
		out = append(out, rec)
	}
	return out
}

// median 取樣本中位數，偶數個取中間兩值平均。不修改輸入。
func median(samples []float64) float64 {
	s := make([]float64, len(samples))
	copy(s, samples)
	sort.Float64s(s)

	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) / 2
}
