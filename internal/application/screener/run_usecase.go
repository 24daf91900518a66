package screener

import (
	"context"
	"errors"

	"idx-smart-screener/internal/application/ingestion"
	domain "idx-smart-screener/internal/domain/screener"
	"idx-smart-screener/internal/domain/tabular"
)

// 兩種致命狀況：完全沒有可用輸入、或全數落在 Watchlist。
var (
	ErrNoValidInput = errors.New("no uploaded table has a usable price column")
	ErrNoCandidates = errors.New("no ticker qualified for Scalping/Intraday/Swing")
)

// RunUseCase 串接整條管線：正規化 -> 聚合 -> 分類 -> 規劃 -> 評分排序。
type RunUseCase struct {
	rank RankConfig
}

// NewRunUseCase 建立篩選管線，rank 為零值時採用出廠門檻。
func NewRunUseCase(rank RankConfig) *RunUseCase {
	return &RunUseCase{rank: rank}
}

// RunInput 為一次執行的全部上傳表格。
type RunInput struct {
	Tables []tabular.Table
}

// Warning 記錄單一表格的非致命問題（整份跳過的原因）。
type Warning struct {
	Source string
	Reason string
}

// RunOutput 彙整 Top-N 與完整過濾後名單，以及執行摘要。
type RunOutput struct {
	Top15          []domain.RankedCandidate
	All            []domain.RankedCandidate
	Warnings       []Warning
	TableCount     int // 實際貢獻資料的表格數
	TickerCount    int // 聚合後的股票總數（含 Watchlist）
	CandidateCount int // 通過分類、進入規劃的股票數
	ProtectedCount int // 7D 保護名單命中數（過濾後）
}

// Run 處理一批上傳表格到底。單表失敗只記警告，
// 只有「毫無可用輸入」與「無任何候選」兩種情況會讓整次執行失敗。
func (u *RunUseCase) Run(ctx context.Context, input RunInput) (RunOutput, error) {
	var out RunOutput

	agg := NewAggregation()
	for _, t := range input.Tables {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		ts, err := ingestion.Normalize(t)
		if err != nil {
			out.Warnings = append(out.Warnings, Warning{
				Source: t.Name,
				Reason: err.Error(),
			})
			continue
		}
		agg.Add(ts)
	}

	if agg.Empty() {
		return out, ErrNoValidInput
	}
	out.TableCount = agg.TableCount()

	records := agg.Records()
	out.TickerCount = len(records)

	candidates := make([]domain.RankedCandidate, 0, len(records))
	for _, rec := range records {
		rec.Category = Categorize(rec)
		if rec.Category == domain.CategoryWatchlist {
			continue
		}
		candidates = append(candidates, domain.RankedCandidate{
			TickerRecord: rec,
			Plan:         BuildPlan(rec.Category, rec.Price),
		})
	}
	if len(candidates) == 0 {
		return out, ErrNoCandidates
	}
	out.CandidateCount = len(candidates)

	top, all := Rank(candidates, agg.Protected(), u.rank)
	out.Top15 = top
	out.All = all
	for _, c := range all {
		if c.Prot7D {
			out.ProtectedCount++
		}
	}

	return out, nil
}
