package screener

import (
	"slices"
	"strings"

	domain "idx-smart-screener/internal/domain/screener"
)

// RankConfig 控制硬性過濾門檻與選股數量。原系統將此過濾標註為可調整，
// 預設值即其出廠設定。
type RankConfig struct {
	MinRR           float64
	MinSignals      int
	TopN            int
	ProtectionBonus float64
}

// DefaultRankConfig 回傳出廠門檻：RR >= 1.8、至少 2 個訊號、取前 15、
// 7D 保護加分 0.7。
func DefaultRankConfig() RankConfig {
	return RankConfig{
		MinRR:           1.8,
		MinSignals:      2,
		TopN:            15,
		ProtectionBonus: 0.7,
	}
}

func (c RankConfig) withDefaults() RankConfig {
	def := DefaultRankConfig()
	if c.MinRR == 0 {
		c.MinRR = def.MinRR
	}
	if c.MinSignals == 0 {
		c.MinSignals = def.MinSignals
	}
	if c.TopN <= 0 {
		c.TopN = def.TopN
	}
	if c.ProtectionBonus == 0 {
		c.ProtectionBonus = def.ProtectionBonus
	}
	return c
}

// Rank 標記保護旗標、套用硬性過濾、計分並排序，
// 回傳前 N 名（保護名單優先補滿）與完整過濾後名單。
func Rank(candidates []domain.RankedCandidate, protected map[string]bool, cfg RankConfig) (top, all []domain.RankedCandidate) {
	cfg = cfg.withDefaults()

	all = make([]domain.RankedCandidate, 0, len(candidates))
	for _, c := range candidates {
		c.Prot7D = protected[c.Ticker]

		// RR 缺漏（無價格或零風險）一律視為未達門檻。
		if c.Plan.RR == nil || *c.Plan.RR < cfg.MinRR {
			continue
		}
		if c.SignalCount < cfg.MinSignals {
			continue
		}

		c.ScoreRaw = float64(c.SignalCount) + *c.Plan.RR
		c.Score = c.ScoreRaw
		if c.Prot7D {
			c.Score += cfg.ProtectionBonus
		}
		all = append(all, c)
	}

	slices.SortFunc(all, compareCandidates)

	return selectTop(all, cfg.TopN), all
}

// compareCandidates 依 (prot7d, score, RR) 遞減排序，
// 最後以代號遞增決勝，保證全序與可重現輸出。
func compareCandidates(a, b domain.RankedCandidate) int {
	if a.Prot7D != b.Prot7D {
		if a.Prot7D {
			return -1
		}
		return 1
	}
	if a.Score != b.Score {
		if a.Score > b.Score {
			return -1
		}
		return 1
	}
	ar, br := deref(a.Plan.RR), deref(b.Plan.RR)
	if ar != br {
		if ar > br {
			return -1
		}
		return 1
	}
	return strings.Compare(a.Ticker, b.Ticker)
}

// selectTop 先取保護名單（最多 n 檔），不足再以未保護者依序補滿。
func selectTop(ranked []domain.RankedCandidate, n int) []domain.RankedCandidate {
	top := make([]domain.RankedCandidate, 0, n)
	for _, c := range ranked {
		if len(top) >= n {
			break
		}
		if c.Prot7D {
			top = append(top, c)
		}
	}
	for _, c := range ranked {
		if len(top) >= n {
			break
		}
		if !c.Prot7D {
			top = append(top, c)
		}
	}
	return top
}

func deref(ptr *float64) float64 {
	if ptr == nil {
		return -1e9
	}
	return *ptr
}
