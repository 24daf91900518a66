package main

import (
	"log"
	"net/http"

	"idx-smart-screener/internal/infrastructure/config"
	httpapi "idx-smart-screener/internal/interface/http"
)

func main() {
	cfg, err := config.LoadFromFile("config.yaml")
	if err != nil {
		log.Fatalf("CRITICAL: load config failed: %v", err)
	}
	log.Printf("configuration loaded (HTTP_ADDR=%s)", cfg.HTTP.Addr)
	log.Printf("screener thresholds: min_rr=%.2f min_signals=%d top_n=%d",
		cfg.Screener.MinRR, cfg.Screener.MinSignals, cfg.Screener.TopN)

	apiServer := httpapi.NewServer(cfg)
	addr := cfg.HTTP.Addr
	log.Printf("starting HTTP server on %s", addr)
	if err := http.ListenAndServe(addr, apiServer.Handler()); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
