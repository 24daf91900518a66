package main

import (
	"context"
	"flag"
	"log"
	"path/filepath"
	"time"

	appscreener "idx-smart-screener/internal/application/screener"
	tabularDomain "idx-smart-screener/internal/domain/tabular"
	"idx-smart-screener/internal/infrastructure/config"
	"idx-smart-screener/internal/infrastructure/export"
	"idx-smart-screener/internal/infrastructure/tabular"

	"github.com/xuri/excelize/v2"
)

func main() {
	cfgPath := flag.String("config", "config.yaml", "path to config file")
	outDir := flag.String("out", "", "output directory (default: config export.output_dir)")
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		log.Fatal("usage: screener [-config config.yaml] [-out dir] file.csv file.xlsx ...")
	}

	cfg, err := config.LoadFromFile(*cfgPath)
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}
	dir := cfg.Export.OutputDir
	if *outDir != "" {
		dir = *outDir
	}

	var tables []tabularDomain.Table
	for _, path := range files {
		table, err := tabular.ReadFile(path)
		if err != nil {
			// 與缺 price 欄同等級：單檔失敗不中止整次執行
			log.Printf("[Screener] skip %s: %v", filepath.Base(path), err)
			continue
		}
		tables = append(tables, table)
	}

	uc := appscreener.NewRunUseCase(appscreener.RankConfig{
		MinRR:           cfg.Screener.MinRR,
		MinSignals:      cfg.Screener.MinSignals,
		TopN:            cfg.Screener.TopN,
		ProtectionBonus: cfg.Screener.ProtectionBonus,
	})

	out, err := uc.Run(context.Background(), appscreener.RunInput{Tables: tables})
	if err != nil {
		log.Fatalf("screener run failed: %v", err)
	}

	for _, w := range out.Warnings {
		log.Printf("[Screener] warning: %s: %s", w.Source, w.Reason)
	}
	log.Printf("[Screener] tables=%d tickers=%d candidates=%d filtered=%d protected=%d",
		out.TableCount, out.TickerCount, out.CandidateCount, len(out.All), out.ProtectedCount)

	for i, c := range out.Top15 {
		log.Printf("[Top15] #%02d %-6s %-9s rr=%-5v score=%.2f prot7d=%v",
			i+1, c.Ticker, c.Category, derefOr(c.Plan.RR), c.Score, c.Prot7D)
	}

	now := time.Now()

	top, err := export.BuildTop15(out.Top15)
	if err != nil {
		log.Fatalf("build Top15 workbook failed: %v", err)
	}
	saveWorkbook(top, filepath.Join(dir, export.Filename("Top15", now)))

	all, err := export.BuildAll(out.All)
	if err != nil {
		log.Fatalf("build All workbook failed: %v", err)
	}
	saveWorkbook(all, filepath.Join(dir, export.Filename("All", now)))
}

func saveWorkbook(f *excelize.File, path string) {
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		log.Fatalf("save %s failed: %v", path, err)
	}
	log.Printf("[Export] wrote %s", path)
}

func derefOr(v *float64) interface{} {
	if v == nil {
		return "N/A"
	}
	return *v
}
