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
	S3      S3Config
	Log     LogConfig
	Extract ExtractConfig
	CORS    CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// S3Config holds object storage settings.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
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

// GeminiConfig holds settings for the primary (Gemini) extraction provider.
// Models are tried strictly in order; the first variant that exists wins.
type GeminiConfig struct {
	APIKey      string   `mapstructure:"api_key"`
	Models      []string `mapstructure:"models"`
	TimeoutSecs int      `mapstructure:"timeout_secs"`
}

// OpenAIConfig holds settings for the secondary (GPT) extraction provider.
type OpenAIConfig struct {
	APIKey      string `mapstructure:"api_key"`
	Model       string `mapstructure:"model"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// ExtractConfig holds the multi-provider extraction settings.
type ExtractConfig struct {
	Gemini GeminiConfig `mapstructure:"gemini"`
	OpenAI OpenAIConfig `mapstructure:"openai"`
}

// Load reads configuration from environment variables with the TRADEOS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TRADEOS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.environment", "development")

	// S3 defaults
	v.SetDefault("s3.region", "ap-northeast-2")
	v.SetDefault("s3.bucket", "tradeos-uploads")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Extraction provider defaults
	v.SetDefault("extract.gemini.api_key", "")
	v.SetDefault("extract.gemini.models", "gemini-2.0-flash,gemini-1.5-flash,gemini-1.5-pro")
	v.SetDefault("extract.gemini.timeout_secs", 120)
	v.SetDefault("extract.openai.api_key", "")
	v.SetDefault("extract.openai.model", "gpt-4o")
	v.SetDefault("extract.openai.timeout_secs", 120)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                 "TRADEOS_SERVER_PORT",
		"server.read_timeout":         "TRADEOS_SERVER_READ_TIMEOUT",
		"server.write_timeout":        "TRADEOS_SERVER_WRITE_TIMEOUT",
		"server.environment":          "TRADEOS_SERVER_ENVIRONMENT",
		"s3.region":                   "TRADEOS_S3_REGION",
		"s3.bucket":                   "TRADEOS_S3_BUCKET",
		"s3.endpoint":                 "TRADEOS_S3_ENDPOINT",
		"s3.access_key":               "TRADEOS_S3_ACCESS_KEY",
		"s3.secret_key":               "TRADEOS_S3_SECRET_KEY",
		"s3.presign_expiry":           "TRADEOS_S3_PRESIGN_EXPIRY",
		"log.level":                   "TRADEOS_LOG_LEVEL",
		"log.format":                  "TRADEOS_LOG_FORMAT",
		"cors.allowed_origins":        "TRADEOS_CORS_ALLOWED_ORIGINS",
		"extract.gemini.api_key":      "TRADEOS_EXTRACT_GEMINI_API_KEY",
		"extract.gemini.models":       "TRADEOS_EXTRACT_GEMINI_MODELS",
		"extract.gemini.timeout_secs": "TRADEOS_EXTRACT_GEMINI_TIMEOUT_SECS",
		"extract.openai.api_key":      "TRADEOS_EXTRACT_OPENAI_API_KEY",
		"extract.openai.model":        "TRADEOS_EXTRACT_OPENAI_MODEL",
		"extract.openai.timeout_secs": "TRADEOS_EXTRACT_OPENAI_TIMEOUT_SECS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if TRADEOS_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("TRADEOS_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
	}
	cfg.Extract = ExtractConfig{
		Gemini: GeminiConfig{
			APIKey:      v.GetString("extract.gemini.api_key"),
			Models:      splitList(v.GetString("extract.gemini.models")),
			TimeoutSecs: v.GetInt("extract.gemini.timeout_secs"),
		},
		OpenAI: OpenAIConfig{
			APIKey:      v.GetString("extract.openai.api_key"),
			Model:       v.GetString("extract.openai.model"),
			TimeoutSecs: v.GetInt("extract.openai.timeout_secs"),
		},
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
