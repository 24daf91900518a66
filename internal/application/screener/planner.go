package screener

import (
	"fmt"
	"math"

	domain "idx-smart-screener/internal/domain/screener"
)

// tick 為最小跳動單位；IDX 整數價位以 1 為粒度進位。
const tick = 1.0

// 各分類的停損比例與風險報酬倍數。
var (
	riskPct = map[domain.Category]float64{
		domain.CategoryScalping: 0.01,
		domain.CategoryIntraday: 0.02,
		domain.CategorySwing:    0.035,
	}
	rrMult = map[domain.Category]float64{
		domain.CategoryScalping: 2.5,
		domain.CategoryIntraday: 2.5,
		domain.CategorySwing:    3.0,
	}
)

// BuildPlan 依分類與中位數價格計算進場區間、停損、目標與風險報酬比。
// 價格缺漏或為零時回傳 N/A 規劃。
func BuildPlan(cat domain.Category, price *float64) domain.EntryPlan {
	if price == nil || *price == 0 {
		return domain.EntryPlan{EntryType: "N/A", Ladder: "N/A"}
	}

	px := *price
	rng := math.Max(px*0.02, 5)

	var low, high, stop float64
	var entryType string

	switch cat {
	case domain.CategoryScalping:
		low = ceilTick(px * 1.01)
		high = ceilTick(px * 1.015)
		entryType = "Breakout Range"
		stop = floorTick(low * (1 - riskPct[cat]))
	case domain.CategoryIntraday:
		low = ceilTick(px * 0.99)
		high = ceilTick(px * 1.01)
		entryType = "Retest Range"
		stop = floorTick(low - 0.3*rng)
	case domain.CategorySwing:
		low = ceilTick(px * 0.98)
		high = ceilTick(px * 0.995)
		entryType = "MA20 Pullback"
		stop = floorTick(low * (1 - riskPct[cat]))
	default:
		// Watchlist 不會進到這裡；其餘未知分類一律視為無規劃。
		return domain.EntryPlan{EntryType: "N/A", Ladder: "N/A"}
	}

	mid := (low + high) / 2
	plan := domain.EntryPlan{
		EntryLow:  &low,
		EntryHigh: &high,
		EntryMid:  &mid,
		Stop:      &stop,
		EntryType: entryType,
		Ladder:    ladder(low, high),
	}

	risk := mid - stop
	if risk <= 0 {
		// 零/負風險時不產生目標價與 RR，候選會在硬性過濾時被剔除。
		return plan
	}

	target := ceilTick(mid + risk*rrMult[cat])
	rr := round2((target - mid) / risk)
	plan.Target = &target
	plan.RR = &rr
	return plan
}

// ladder 產生四段式出場說明，價位無條件捨去為整數顯示。
func ladder(low, high float64) string {
	rng := high - low
	return fmt.Sprintf("40%%@%d | 20%%@%d | 25%%@%d | 15%%@%d",
		int(low),
		int(low+rng*0.33),
		int(low+rng*0.66),
		int(high),
	)
}

func ceilTick(x float64) float64 {
	return math.Ceil(x/tick) * tick
}

func floorTick(x float64) float64 {
	return math.Floor(x/tick) * tick
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
