package main

import (
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/alnah/go-report2docx/internal/config"
)

// envPrefix marks variables read by this program.
const envPrefix = "REPORT2DOCX_"

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // REPORT2DOCX_CONFIG: config file name or path
	OutputDir  string        // REPORT2DOCX_OUTPUT_DIR: default output directory
	Model      string        // REPORT2DOCX_MODEL: generation model
	Timeout    time.Duration // REPORT2DOCX_TIMEOUT: generation timeout
	Workers    int           // REPORT2DOCX_WORKERS: parallel render workers
	LogLevel   string        // REPORT2DOCX_LOG_LEVEL: none, normal, debug
}

// knownEnvVars lists valid REPORT2DOCX_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"REPORT2DOCX_CONFIG":     true,
	"REPORT2DOCX_OUTPUT_DIR": true,
	"REPORT2DOCX_MODEL":      true,
	"REPORT2DOCX_TIMEOUT":    true,
	"REPORT2DOCX_WORKERS":    true,
	"REPORT2DOCX_LOG_LEVEL":  true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed numeric or duration values are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("REPORT2DOCX_CONFIG"),
		OutputDir:  os.Getenv("REPORT2DOCX_OUTPUT_DIR"),
		Model:      os.Getenv("REPORT2DOCX_MODEL"),
		LogLevel:   os.Getenv("REPORT2DOCX_LOG_LEVEL"),
	}

	if timeout := os.Getenv("REPORT2DOCX_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if workers := os.Getenv("REPORT2DOCX_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs a warning for each unrecognized REPORT2DOCX_* variable.
func warnUnknownEnvVars(logger *zap.Logger) {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			logger.Warn("Unknown environment variable (typo?)", zap.String("name", name))
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later by the command).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Model != "" && cfg.Generation.Model == "" {
		cfg.Generation.Model = env.Model
	}
	if env.Timeout > 0 && cfg.Generation.Timeout == "" {
		cfg.Generation.Timeout = env.Timeout.String()
	}
	if env.LogLevel != "" && cfg.Logging.Level == "" {
		cfg.Logging.Level = env.LogLevel
	}
}
