package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	App AppConfig
	AI  AIConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type AIConfig struct {
	// NEREnabled toggles the statistical entity recognizer. Disabled, every
	// extraction falls back to its regex heuristic, which is a supported
	// configuration rather than an error.
	NEREnabled bool
	// PDFBackend selects the text-extraction backend: "auto" (primary with
	// fallback), "fitz" or "plain".
	PDFBackend string
}

const (
	PDFBackendAuto  = "auto"
	PDFBackendFitz  = "fitz"
	PDFBackendPlain = "plain"
)

func Load() (Config, error) {
	cfg := Config{}

	opt := func(key, def string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     opt("APP_NAME", "AI resume service"),
		Environment: opt("APP_ENV", "development"),
		HTTPPort:    opt("HTTP_PORT", "3002"),
	}

	nerEnabled, err := strconv.ParseBool(opt("AI_NER_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid AI_NER_ENABLED: %w", err)
	}

	backend := strings.ToLower(opt("AI_PDF_BACKEND", PDFBackendAuto))
	switch backend {
	case PDFBackendAuto, PDFBackendFitz, PDFBackendPlain:
	default:
		return Config{}, fmt.Errorf("invalid AI_PDF_BACKEND %q", backend)
	}

	cfg.AI = AIConfig{NEREnabled: nerEnabled, PDFBackend: backend}
	return cfg, nil
}
