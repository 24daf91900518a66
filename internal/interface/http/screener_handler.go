package httpapi

import (
	"errors"
	"log"
	"net/http"
	"time"

	appscreener "idx-smart-screener/internal/application/screener"
	domain "idx-smart-screener/internal/domain/screener"
	tabularDomain "idx-smart-screener/internal/domain/tabular"
	"idx-smart-screener/internal/infrastructure/export"
	"idx-smart-screener/internal/infrastructure/tabular"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// handleScreenerRun 接收多檔上傳、跑完整條管線並回傳 JSON 結果。
func (s *Server) handleScreenerRun(c *gin.Context) {
	tables, warnings, ok := s.readUploadedTables(c)
	if !ok {
		return
	}

	out, err := s.runUC.Run(c.Request.Context(), appscreener.RunInput{Tables: tables})
	if err != nil {
		s.respondRunError(c, err)
		return
	}
	for _, w := range out.Warnings {
		warnings = append(warnings, w.Source+": "+w.Reason)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"summary": gin.H{
			"tables":     out.TableCount,
			"tickers":    out.TickerCount,
			"candidates": out.CandidateCount,
			"filtered":   len(out.All),
			"protected":  out.ProtectedCount,
		},
		"warnings": warnings,
		"top15":    candidatesToMaps(out.Top15),
		"all":      candidatesToMaps(out.All),
	})
}

// handleScreenerExport 跑同一條管線，但以 XLSX 附件回應。
// set=top15（預設）輸出 Top15 工作簿，set=all 輸出完整名單。
func (s *Server) handleScreenerExport(c *gin.Context) {
	tables, _, ok := s.readUploadedTables(c)
	if !ok {
		return
	}

	out, err := s.runUC.Run(c.Request.Context(), appscreener.RunInput{Tables: tables})
	if err != nil {
		s.respondRunError(c, err)
		return
	}

	switch set := c.DefaultQuery("set", "top15"); set {
	case "top15":
		f, err := export.BuildTop15(out.Top15)
		if err != nil {
			s.respondExportError(c, err)
			return
		}
		defer f.Close()
		s.writeWorkbook(c, f, export.Filename("Top15", time.Now()))
	case "all":
		f, err := export.BuildAll(out.All)
		if err != nil {
			s.respondExportError(c, err)
			return
		}
		defer f.Close()
		s.writeWorkbook(c, f, export.Filename("All", time.Now()))
	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "set must be top15 or all", "error_code": errCodeBadRequest})
	}
}

// readUploadedTables 解析 multipart 上傳並逐檔轉成表格。
// 單檔讀取失敗視為非致命，與缺 price 欄的表格同等級。
func (s *Server) readUploadedTables(c *gin.Context) ([]tabularDomain.Table, []string, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid multipart form", "error_code": errCodeBadRequest})
		return nil, nil, false
	}
	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "at least one file is required", "error_code": errCodeBadRequest})
		return nil, nil, false
	}

	var tables []tabularDomain.Table
	var warnings []string
	for _, fh := range files {
		src, err := fh.Open()
		if err != nil {
			warnings = append(warnings, fh.Filename+": "+err.Error())
			continue
		}
		table, err := tabular.Read(fh.Filename, src)
		src.Close()
		if err != nil {
			log.Printf("[Screener] skip %s: %v", fh.Filename, err)
			warnings = append(warnings, fh.Filename+": "+err.Error())
			continue
		}
		tables = append(tables, table)
	}
	return tables, warnings, true
}

func (s *Server) respondRunError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, appscreener.ErrNoValidInput):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error(), "error_code": errCodeNoValidInput})
	case errors.Is(err, appscreener.ErrNoCandidates):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error(), "error_code": errCodeNoCandidates})
	default:
		log.Printf("[Screener] run failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "screener run failed", "error_code": errCodeInternal})
	}
}

func (s *Server) respondExportError(c *gin.Context, err error) {
	log.Printf("[Screener] export failed: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "export failed", "error_code": errCodeInternal})
}

func candidatesToMaps(list []domain.RankedCandidate) []gin.H {
	out := make([]gin.H, 0, len(list))
	for _, c := range list {
		out = append(out, candidateToMap(c))
	}
	return out
}

func candidateToMap(c domain.RankedCandidate) gin.H {
	return gin.H{
		"ticker":       c.Ticker,
		"category":     string(c.Category),
		"entry_type":   c.Plan.EntryType,
		"entry_low":    optionalFloat(c.Plan.EntryLow),
		"entry_high":   optionalFloat(c.Plan.EntryHigh),
		"entry_mid":    optionalFloat(c.Plan.EntryMid),
		"stop":         optionalFloat(c.Plan.Stop),
		"target":       optionalFloat(c.Plan.Target),
		"rr":           optionalFloat(c.Plan.RR),
		"ladder":       c.Plan.Ladder,
		"price":        optionalFloat(c.Price),
		"signal_count": c.SignalCount,
		"prot7d":       c.Prot7D,
		"score_raw":    c.ScoreRaw,
		"score":        c.Score,
	}
}
