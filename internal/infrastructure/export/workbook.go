package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	domain "idx-smart-screener/internal/domain/screener"
)

// TimestampLayout 為匯出檔名的時間戳格式（YYYY-MM-DD_HHMM）。
const TimestampLayout = "2006-01-02_1504"

// RR 欄位的條件底色：>=2 綠、>=1.5 黃、其餘（含無法解析）紅。
const (
	fillGreen  = "C6EFCE"
	fillYellow = "FFF2CC"
	fillRed    = "F4CCCC"
)

var top15Columns = []string{
	"ticker", "category", "entry_type",
	"entry_low", "entry_high", "target", "stop",
	"RR", "signal_count", "prot7d", "score",
}

var allColumns = []string{
	"ticker", "category", "entry_type",
	"entry_low", "entry_high", "entry_mid", "target", "stop",
	"RR", "ladder", "signal_count",
	"ff1w", "ff1m", "bandar", "frequency", "hvb", "reversal",
	"prot7d", "score_raw", "score", "price",
}

// BuildTop15 以記憶體組出 Top15 工作簿並套用 RR 底色。
func BuildTop15(candidates []domain.RankedCandidate) (*excelize.File, error) {
	return buildWorkbook("Top15", top15Columns, candidates)
}

// BuildAll 組出完整過濾後名單（All Plan）的工作簿。
func BuildAll(candidates []domain.RankedCandidate) (*excelize.File, error) {
	return buildWorkbook("All", allColumns, candidates)
}

// Filename 依慣例組出匯出檔名，如 Top15_SmartColor_7D_2025-08-29_1530.xlsx。
func Filename(set string, ts time.Time) string {
	return fmt.Sprintf("%s_SmartColor_7D_%s.xlsx", set, ts.Format(TimestampLayout))
}

func buildWorkbook(sheet string, columns []string, candidates []domain.RankedCandidate) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return nil, err
	}

	for i, c := range candidates {
		row := make([]interface{}, len(columns))
		for j, col := range columns {
			row[j] = cellValue(c, col)
		}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return nil, err
		}
	}

	if err := highlightRR(f, sheet, columns, candidates); err != nil {
		return nil, err
	}
	return f, nil
}

func setRow(f *excelize.File, sheet string, rowIdx int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowIdx)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write row %d: %w", rowIdx, err)
	}
	return nil
}

// highlightRR 只對標頭「字面為 RR」的欄位上色；找不到就原樣輸出。
func highlightRR(f *excelize.File, sheet string, columns []string, candidates []domain.RankedCandidate) error {
	rrCol := -1
	for i, c := range columns {
		if c == "RR" {
			rrCol = i + 1
			break
		}
	}
	if rrCol < 0 {
		return nil
	}

	styles := make(map[string]int, 3)
	for _, color := range []string{fillGreen, fillYellow, fillRed} {
		id, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
		})
		if err != nil {
			return fmt.Errorf("register fill style: %w", err)
		}
		styles[color] = id
	}

	for i, c := range candidates {
		color := fillRed
		if rr := c.Plan.RR; rr != nil {
			switch {
			case *rr >= 2:
				color = fillGreen
			case *rr >= 1.5:
				color = fillYellow
			}
		}
		cell, err := excelize.CoordinatesToCellName(rrCol, i+2)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, styles[color]); err != nil {
			return fmt.Errorf("style cell %s: %w", cell, err)
		}
	}
	return nil
}

func cellValue(c domain.RankedCandidate, column string) interface{} {
	switch column {
	case "ticker":
		return c.Ticker
	case "category":
		return string(c.Category)
	case "entry_type":
		return c.Plan.EntryType
	case "entry_low":
		return optional(c.Plan.EntryLow)
	case "entry_high":
		return optional(c.Plan.EntryHigh)
	case "entry_mid":
		return optional(c.Plan.EntryMid)
	case "target":
		return optional(c.Plan.Target)
	case "stop":
		return optional(c.Plan.Stop)
	case "RR":
		return optional(c.Plan.RR)
	case "ladder":
		return c.Plan.Ladder
	case "signal_count":
		return c.SignalCount
	case "ff1w":
		return flag(c.FF1W)
	case "ff1m":
		return flag(c.FF1M)
	case "bandar":
		return flag(c.Bandar)
	case "frequency":
		return flag(c.Frequency)
	case "hvb":
		return flag(c.HVB)
	case "reversal":
		return flag(c.Reversal)
	case "prot7d":
		return flag(c.Prot7D)
	case "score_raw":
		return c.ScoreRaw
	case "score":
		return c.Score
	case "price":
		return optional(c.Price)
	default:
		return ""
	}
}

func optional(v *float64) interface{} {
	if v == nil {
		return "N/A"
	}
	return *v
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}
