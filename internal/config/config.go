package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	CORS    CORSConfig
	Fetcher FetcherConfig
	Model   ModelConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// FetcherConfig holds document fetch and rasterization settings.
type FetcherConfig struct {
	PDFTimeoutSecs   int    `mapstructure:"pdf_timeout_secs"`
	ImageTimeoutSecs int    `mapstructure:"image_timeout_secs"`
	MaxPDFSizeMB     int64  `mapstructure:"max_pdf_size_mb"`
	RasterDPI        int    `mapstructure:"raster_dpi"`
	Pdftoppm         string `mapstructure:"pdftoppm"`
}

// ModelConfig holds vision model API settings.
type ModelConfig struct {
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// Load reads configuration from environment variables with the BILLEX_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("BILLEX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Fetcher defaults
	v.SetDefault("fetcher.pdf_timeout_secs", 60)
	v.SetDefault("fetcher.image_timeout_secs", 30)
	v.SetDefault("fetcher.max_pdf_size_mb", 100)
	v.SetDefault("fetcher.raster_dpi", 200)
	v.SetDefault("fetcher.pdftoppm", "pdftoppm")

	// Model defaults
	v.SetDefault("model.api_key", "")
	v.SetDefault("model.default_model", "gpt-4o")
	v.SetDefault("model.timeout_secs", 120)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                "BILLEX_SERVER_PORT",
		"server.read_timeout":        "BILLEX_SERVER_READ_TIMEOUT",
		"server.write_timeout":       "BILLEX_SERVER_WRITE_TIMEOUT",
		"server.environment":         "BILLEX_SERVER_ENVIRONMENT",
		"log.level":                  "BILLEX_LOG_LEVEL",
		"log.format":                 "BILLEX_LOG_FORMAT",
		"cors.allowed_origins":       "BILLEX_CORS_ALLOWED_ORIGINS",
		"fetcher.pdf_timeout_secs":   "BILLEX_FETCHER_PDF_TIMEOUT_SECS",
		"fetcher.image_timeout_secs": "BILLEX_FETCHER_IMAGE_TIMEOUT_SECS",
		"fetcher.max_pdf_size_mb":    "BILLEX_FETCHER_MAX_PDF_SIZE_MB",
		"fetcher.raster_dpi":         "BILLEX_FETCHER_RASTER_DPI",
		"fetcher.pdftoppm":           "BILLEX_FETCHER_PDFTOPPM",
		"model.api_key":              "BILLEX_MODEL_API_KEY",
		"model.default_model":        "BILLEX_MODEL_DEFAULT_MODEL",
		"model.timeout_secs":         "BILLEX_MODEL_TIMEOUT_SECS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if BILLEX_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("BILLEX_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Fetcher = FetcherConfig{
		PDFTimeoutSecs:   v.GetInt("fetcher.pdf_timeout_secs"),
		ImageTimeoutSecs: v.GetInt("fetcher.image_timeout_secs"),
		MaxPDFSizeMB:     v.GetInt64("fetcher.max_pdf_size_mb"),
		RasterDPI:        v.GetInt("fetcher.raster_dpi"),
		Pdftoppm:         v.GetString("fetcher.pdftoppm"),
	}

	// A bare OPENAI_API_KEY also works, matching the provider's own convention.
	modelAPIKey := v.GetString("model.api_key")
	if modelAPIKey == "" {
		modelAPIKey = os.Getenv("OPENAI_API_KEY")
	}

	cfg.Model = ModelConfig{
		APIKey:       modelAPIKey,
		DefaultModel: v.GetString("model.default_model"),
		TimeoutSecs:  v.GetInt("model.timeout_secs"),
	}

	return cfg, nil
}
