package screener

// EntryPlan 為單一股票依分類計算出的進場/停損/目標價規劃。
// 價格缺漏或為零時所有數值欄位為 nil，EntryType 與 Ladder 為 "N/A"。
type EntryPlan struct {
	EntryLow  *float64
	EntryHigh *float64
	EntryMid  *float64
	Stop      *float64
	Target    *float64
	RR        *float64 // 風險報酬比；風險為零或負時為 nil
	EntryType string
	Ladder    string
}

// HasPrice 回傳規劃是否基於有效價格計算。
func (p EntryPlan) HasPrice() bool {
	return p.EntryLow != nil && p.EntryHigh != nil
}

// RankedCandidate 為進入評分與排序階段的候選股。
type RankedCandidate struct {
	TickerRecord
	Plan     EntryPlan
	ScoreRaw float64
	Score    float64
}
