package screener

import (
	"testing"

	domain "idx-smart-screener/internal/domain/screener"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		rec  domain.TickerRecord
		want domain.Category
	}{
		{"freq+hvb", domain.TickerRecord{Frequency: true, HVB: true}, domain.CategoryScalping},
		{"freq only", domain.TickerRecord{Frequency: true}, domain.CategoryIntraday},
		{"hvb only", domain.TickerRecord{HVB: true}, domain.CategoryIntraday},
		{"ff1w", domain.TickerRecord{FF1W: true}, domain.CategorySwing},
		{"ff1m", domain.TickerRecord{FF1M: true}, domain.CategorySwing},
		{"bandar", domain.TickerRecord{Bandar: true}, domain.CategorySwing},
		{"reversal", domain.TickerRecord{Reversal: true}, domain.CategorySwing},
		{"nothing", domain.TickerRecord{}, domain.CategoryWatchlist},
		// intraday-style signals outrank flow even when both fire
		{"freq+hvb+ff1w", domain.TickerRecord{Frequency: true, HVB: true, FF1W: true}, domain.CategoryScalping},
		{"hvb+bandar", domain.TickerRecord{HVB: true, Bandar: true}, domain.CategoryIntraday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Categorize(tt.rec); got != tt.want {
				t.Errorf("Categorize(%+v) = %s, want %s", tt.rec, got, tt.want)
			}
		})
	}
}
