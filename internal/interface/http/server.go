package httpapi

import (
	"net/http"

	appscreener "idx-smart-screener/internal/application/screener"
	"idx-smart-screener/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

const (
	errCodeBadRequest   = "BAD_REQUEST"
	errCodeNoValidInput = "SCREENER_NO_VALID_INPUT"
	errCodeNoCandidates = "SCREENER_NO_CANDIDATES"
	errCodeInternal     = "INTERNAL_ERROR"
)

// Server 封裝 HTTP 路由與篩選管線依賴。每個請求自成一次執行，
// 不共享任何跨請求狀態。
type Server struct {
	cfg   config.Config
	runUC *appscreener.RunUseCase
}

// NewServer 建立 API 伺服器，過濾門檻取自組態。
func NewServer(cfg config.Config) *Server {
	rank := appscreener.RankConfig{
		MinRR:           cfg.Screener.MinRR,
		MinSignals:      cfg.Screener.MinSignals,
		TopN:            cfg.Screener.TopN,
		ProtectionBonus: cfg.Screener.ProtectionBonus,
	}
	return &Server{
		cfg:   cfg,
		runUC: appscreener.NewRunUseCase(rank),
	}
}

// Handler 組出完整路由。
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.ginLogger(), corsMiddleware())

	if s.cfg.HTTP.MaxUploadMB > 0 {
		r.MaxMultipartMemory = s.cfg.HTTP.MaxUploadMB << 20
	}

	api := r.Group("/api")
	api.GET("/ping", s.handlePing)
	api.GET("/health", s.handleHealth)

	sc := api.Group("/screener")
	sc.POST("/run", s.handleScreenerRun)
	sc.POST("/export", s.handleScreenerExport)

	return r
}
