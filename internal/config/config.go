// Package config loads and validates YAML configuration for report rendering
// and generation.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/language"

	"github.com/alnah/go-report2docx/internal/dateutil"
	"github.com/alnah/go-report2docx/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
	ErrConfigTooLarge  = errors.New("config file exceeds maximum size")
)

// Field length limits.
const (
	MaxTitleLength    = 200
	MaxFontLength     = 100
	MaxLanguageLength = 35 // BCP 47 practical upper bound
	MaxPrefixLength   = 100
	MaxModelLength    = 100
	MaxEnvNameLength  = 100
	MaxPathLength     = 4096
)

// Numeric bounds.
const (
	MinFontSize   = 1.0
	MaxFontSize   = 144.0
	MaxTableWidth = 22.0 // inches, A3 landscape
	MaxTimeout    = 10 * time.Minute
)

// MaxFileSize limits config input to prevent memory exhaustion.
const MaxFileSize = 1 << 20

// Logging levels accepted by logging.level.
const (
	LogLevelNone   = "none"
	LogLevelNormal = "normal"
	LogLevelDebug  = "debug"
)

// appDir is the directory name under the user config dir.
const appDir = "go-report2docx"

// Config holds all configuration for rendering and generation.
// Zero values mean "use the library default".
type Config struct {
	Output     OutputConfig     `yaml:"output"`
	Report     ReportConfig     `yaml:"report"`
	Generation GenerationConfig `yaml:"generation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Empty = next to the source file, or cwd for analyze
	Preview    bool   `yaml:"preview"`    // Also write an HTML preview
}

// ReportConfig defines document layout options.
type ReportConfig struct {
	Title          string  `yaml:"title"`
	Font           string  `yaml:"font"`
	FontSize       float64 `yaml:"fontSize"`   // points
	TableWidth     float64 `yaml:"tableWidth"` // inches
	Language       string  `yaml:"language"`   // BCP 47 tag, e.g. "ko-KR"
	FileNamePrefix string  `yaml:"fileNamePrefix"`
	DateFormat     string  `yaml:"dateFormat"` // dateutil pattern or preset
}

// GenerationConfig defines generation-service options.
type GenerationConfig struct {
	Model     string `yaml:"model"`
	Timeout   string `yaml:"timeout"`   // Go duration, e.g. "90s"
	APIKeyEnv string `yaml:"apiKeyEnv"` // Environment variable holding the key
}

// LoggingConfig defines log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"` // none, normal, debug
}

// TimeoutDuration returns the parsed generation timeout, or 0 when unset.
// Call Validate first; an invalid value also yields 0.
func (g GenerationConfig) TimeoutDuration() time.Duration {
	if g.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(g.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// Validate checks field lengths and value ranges.
// Called automatically by LoadConfig, but available for callers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := c.Report.validate(); err != nil {
		return err
	}
	if err := c.Generation.validate(); err != nil {
		return err
	}

	switch strings.ToLower(c.Logging.Level) {
	case "", LogLevelNone, LogLevelNormal, LogLevelDebug:
	default:
		return fmt.Errorf("%w: logging.level %q (must be none, normal, or debug)", ErrInvalidValue, c.Logging.Level)
	}

	return nil
}

func (r *ReportConfig) validate() error {
	if err := validateFieldLength("report.title", r.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("report.font", r.Font, MaxFontLength); err != nil {
		return err
	}
	if err := validateFieldLength("report.language", r.Language, MaxLanguageLength); err != nil {
		return err
	}
	if err := validateFieldLength("report.fileNamePrefix", r.FileNamePrefix, MaxPrefixLength); err != nil {
		return err
	}

	if r.FontSize != 0 && (r.FontSize < MinFontSize || r.FontSize > MaxFontSize) {
		return fmt.Errorf("%w: report.fontSize must be between %.0f and %.0f, got %.2f",
			ErrInvalidValue, MinFontSize, MaxFontSize, r.FontSize)
	}
	if r.TableWidth < 0 || r.TableWidth > MaxTableWidth {
		return fmt.Errorf("%w: report.tableWidth must be between 0 and %.0f, got %.2f",
			ErrInvalidValue, MaxTableWidth, r.TableWidth)
	}
	if r.Language != "" {
		if _, err := language.Parse(r.Language); err != nil {
			return fmt.Errorf("%w: report.language %q: %v", ErrInvalidValue, r.Language, err)
		}
	}
	if r.DateFormat != "" {
		if _, err := dateutil.Layout(r.DateFormat); err != nil {
			return fmt.Errorf("report.dateFormat: %w", err)
		}
	}
	return nil
}

func (g *GenerationConfig) validate() error {
	if err := validateFieldLength("generation.model", g.Model, MaxModelLength); err != nil {
		return err
	}
	if err := validateFieldLength("generation.apiKeyEnv", g.APIKeyEnv, MaxEnvNameLength); err != nil {
		return err
	}
	if strings.ContainsAny(g.APIKeyEnv, " =") {
		return fmt.Errorf("%w: generation.apiKeyEnv %q is not a variable name", ErrInvalidValue, g.APIKeyEnv)
	}
	if g.Timeout != "" {
		d, err := time.ParseDuration(g.Timeout)
		if err != nil {
			return fmt.Errorf("%w: generation.timeout %q: %v", ErrInvalidValue, g.Timeout, err)
		}
		if d <= 0 || d > MaxTimeout {
			return fmt.Errorf("%w: generation.timeout must be in (0, %s], got %s", ErrInvalidValue, MaxTimeout, d)
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration that defers every setting to the
// library defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	return cfg, nil
}

// Parse decodes YAML strictly (unknown keys are rejected) and validates it.
// Empty input yields DefaultConfig.
func Parse(data []byte) (*Config, error) {
	if len(data) > MaxFileSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrConfigTooLarge, len(data), MaxFileSize)
	}

	cfg := DefaultConfig()
	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SearchPaths lists the locations tried for a config name, in order:
// current directory, then the user config directory, each with .yaml and .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDir, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing path from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
