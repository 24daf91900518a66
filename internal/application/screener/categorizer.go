package screener

import (
	domain "idx-smart-screener/internal/domain/screener"
)

// Categorize derives the trading category from the signal flags.
// Order matters: intraday-style signals (frequency/HVB) take precedence
// over flow/bandar/reversal even when both groups fire.
func Categorize(r domain.TickerRecord) domain.Category {
	switch {
	case r.Frequency && r.HVB:
		return domain.CategoryScalping
	case r.Frequency || r.HVB:
		return domain.CategoryIntraday
	case r.FF1W || r.FF1M || r.Bandar || r.Reversal:
		return domain.CategorySwing
	default:
		return domain.CategoryWatchlist
	}
}
