package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config 儲存 HTTP API、篩選門檻與匯出設定。
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Screener ScreenerConfig `yaml:"screener"`
	Export   ExportConfig   `yaml:"export"`
}

type HTTPConfig struct {
	Addr        string `yaml:"addr"`
	MaxUploadMB int64  `yaml:"max_upload_mb"`
}

// ScreenerConfig 對應原系統標註「可調整」的過濾門檻，預設即出廠值。
type ScreenerConfig struct {
	MinRR           float64 `yaml:"min_rr"`
	MinSignals      int     `yaml:"min_signals"`
	TopN            int     `yaml:"top_n"`
	ProtectionBonus float64 `yaml:"protection_bonus"`
}

type ExportConfig struct {
	OutputDir string `yaml:"output_dir"`
}

// LoadFromFile 從 YAML 組態檔載入設定。
func LoadFromFile(path string) (Config, error) {
	// 嘗試載入 .env 檔案（如果存在）
	_ = godotenv.Load()

	var cfg Config
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config yaml: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	cfg = applyDefaults(cfg)
	cfg = applyEnv(cfg)
	return cfg, nil
}

func applyDefaults(cfg Config) Config {
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = ":8080"
	}
	if cfg.HTTP.MaxUploadMB == 0 {
		cfg.HTTP.MaxUploadMB = 32
	}
	if cfg.Screener.MinRR == 0 {
		cfg.Screener.MinRR = 1.8
	}
	if cfg.Screener.MinSignals == 0 {
		cfg.Screener.MinSignals = 2
	}
	if cfg.Screener.TopN == 0 {
		cfg.Screener.TopN = 15
	}
	if cfg.Screener.ProtectionBonus == 0 {
		cfg.Screener.ProtectionBonus = 0.7
	}
	if cfg.Export.OutputDir == "" {
		cfg.Export.OutputDir = "."
	}
	return cfg
}

func applyEnv(cfg Config) Config {
	if val := os.Getenv("HTTP_ADDR"); val != "" {
		cfg.HTTP.Addr = val
	}
	if val := os.Getenv("PORT"); val != "" {
		cfg.HTTP.Addr = ":" + val
	}
	if val := os.Getenv("MAX_UPLOAD_MB"); val != "" {
		if mb, err := strconv.ParseInt(val, 10, 64); err == nil {
			cfg.HTTP.MaxUploadMB = mb
		}
	}
	if val := os.Getenv("SCREENER_MIN_RR"); val != "" {
		if v, err := strconv.ParseFloat(val, 64); err == nil {
			cfg.Screener.MinRR = v
		}
	}
	if val := os.Getenv("SCREENER_MIN_SIGNALS"); val != "" {
		if v, err := strconv.Atoi(val); err == nil {
			cfg.Screener.MinSignals = v
		}
	}
	if val := os.Getenv("SCREENER_TOP_N"); val != "" {
		if v, err := strconv.Atoi(val); err == nil {
			cfg.Screener.TopN = v
		}
	}
	if val := os.Getenv("SCREENER_PROTECTION_BONUS"); val != "" {
		if v, err := strconv.ParseFloat(val, 64); err == nil {
			cfg.Screener.ProtectionBonus = v
		}
	}
	if val := os.Getenv("EXPORT_OUTPUT_DIR"); val != "" {
		cfg.Export.OutputDir = val
	}
	return cfg
}
