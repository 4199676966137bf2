package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	report2docx "github.com/alnah/go-report2docx"
	"github.com/alnah/go-report2docx/internal/config"
	"github.com/alnah/go-report2docx/internal/hints"
)

// settings is the resolved configuration shared by commands.
type settings struct {
	cfg    *config.Config
	env    *envConfig
	logger *zap.Logger
}

// loadSettings resolves configuration for a command.
// Precedence: CLI flags > env vars > config file > defaults.
// Layout flags are merged afterwards by the caller.
func loadSettings(common commonFlags, stderr io.Writer) (*settings, error) {
	env := loadEnvConfig()

	name := common.config
	if name == "" {
		name = env.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(env, cfg)

	logger := newLogger(resolveLogLevel(common, cfg), stderr)
	warnUnknownEnvVars(logger)

	return &settings{cfg: cfg, env: env, logger: logger}, nil
}

// mergeLayoutFlags merges layout flags into config. CLI values override config values.
func mergeLayoutFlags(f layoutFlags, cfg *config.Config) {
	if f.title != "" {
		cfg.Report.Title = f.title
	}
	if f.font != "" {
		cfg.Report.Font = f.font
	}
	if f.fontSize != 0 {
		cfg.Report.FontSize = f.fontSize
	}
	if f.tableWidth != 0 {
		cfg.Report.TableWidth = f.tableWidth
	}
	if f.language != "" {
		cfg.Report.Language = f.language
	}
	if f.prefix != "" {
		cfg.Report.FileNamePrefix = f.prefix
	}
	if f.dateFormat != "" {
		cfg.Report.DateFormat = f.dateFormat
	}
}

// mergeOutputFlags merges output flags into config.
func mergeOutputFlags(f outputFlags, cfg *config.Config) {
	if f.dir != "" {
		cfg.Output.DefaultDir = f.dir
	}
	if f.preview {
		cfg.Output.Preview = true
	}
}

// rendererOptions translates the report section into renderer options.
// Zero values keep the library defaults.
func rendererOptions(cfg *config.Config, logger *zap.Logger, now func() time.Time) []report2docx.Option {
	opts := []report2docx.Option{
		report2docx.WithLogger(logger),
		report2docx.WithClock(now),
	}

	r := cfg.Report
	if r.Title != "" {
		opts = append(opts, report2docx.WithTitle(r.Title))
	}
	if r.Font != "" {
		opts = append(opts, report2docx.WithFont(r.Font))
	}
	if r.FontSize != 0 {
		opts = append(opts, report2docx.WithFontSize(r.FontSize))
	}
	if r.TableWidth != 0 {
		opts = append(opts, report2docx.WithTableWidth(r.TableWidth))
	}
	if r.Language != "" {
		opts = append(opts, report2docx.WithLanguage(r.Language))
	}
	if r.FileNamePrefix != "" {
		opts = append(opts, report2docx.WithFileNamePrefix(r.FileNamePrefix))
	}
	if r.DateFormat != "" {
		opts = append(opts, report2docx.WithFileDateFormat(r.DateFormat))
	}
	return opts
}
