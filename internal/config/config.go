package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config содержит настройки приложения.
// Приоритет: переменные окружения, затем флаги, затем значения по умолчанию.
type Config struct {
	ServerAddress NetworkAddress `env:"SERVER_ADDRESS"`
	BaseURL       URLPrefix      `env:"BASE_URL"`
	LogLevel      string         `env:"LOG_LEVEL"`

	MetricsEnabled  bool   `env:"METRICS_ENABLED"`
	TracingEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName     string `env:"SERVICE_NAME"`

	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT"`
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT"`
	ReadTimeout       time.Duration `env:"READ_TIMEOUT"`
	WriteTimeout      time.Duration `env:"WRITE_TIMEOUT"`
	IdleTimeout       time.Duration `env:"IDLE_TIMEOUT"`
}

// NewDefaultConfig возвращает конфигурацию со значениями по умолчанию
func NewDefaultConfig() *Config {
	return &Config{
		ServerAddress: NetworkAddress{Host: "localhost", Port: 8080},
		BaseURL:       URLPrefix("http://localhost:8080/"),
		LogLevel:      "info",

		MetricsEnabled: true,
		ServiceName:    "url-shortener",

		ShutdownTimeout:   10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// Load загружает конфигурацию из .env файла, аргументов командной строки и окружения
func Load() (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	return LoadFromArgs(os.Args[0], os.Args[1:])
}

// LoadFromArgs разбирает флаги из args и затем переменные окружения
func LoadFromArgs(name string, args []string) (*Config, error) {
	cfg := NewDefaultConfig()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Var(&cfg.ServerAddress, "a", "address to run HTTP server")
	fs.Var(&cfg.BaseURL, "b", "base URL for shortened URL")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.BoolVar(&cfg.MetricsEnabled, "m", cfg.MetricsEnabled, "expose prometheus metrics on /-/metrics")
	fs.StringVar(&cfg.TracingEndpoint, "t", cfg.TracingEndpoint, "OTLP gRPC endpoint for traces, empty disables tracing")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return cfg, nil
}
