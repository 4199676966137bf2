package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	report2docx "github.com/alnah/go-report2docx"
	"github.com/alnah/go-report2docx/internal/config"
	"github.com/alnah/go-report2docx/internal/fileutil"
	"github.com/alnah/go-report2docx/internal/generate"
	"github.com/alnah/go-report2docx/internal/hints"
)

// rawReportExt is the extension of the saved generated text.
const rawReportExt = ".md"

// runAnalyze requests a report for the patient and renders it.
func runAnalyze(ctx context.Context, positionalArgs []string, flags *analyzeFlags, env *Environment) error {
	if flags.listConditions {
		for _, c := range generate.Conditions {
			fmt.Fprintln(env.Stdout, c)
		}
		return nil
	}
	if len(positionalArgs) > 0 {
		return fmt.Errorf("%w: analyze takes no arguments, got %q", ErrUsage, positionalArgs[0])
	}

	s, err := loadSettings(flags.common, env.Stderr)
	if err != nil {
		return err
	}
	defer func() { _ = s.logger.Sync() }()

	mergeLayoutFlags(flags.layout, s.cfg)
	mergeOutputFlags(flags.output, s.cfg)
	if err := mergeGenerationFlags(flags.generation, s.cfg); err != nil {
		return err
	}
	if err := s.cfg.Validate(); err != nil {
		return err
	}

	profile, err := buildProfile(flags.patient)
	if err != nil {
		return err
	}

	// Build the renderer before spending a generation request.
	renderer, err := report2docx.NewRenderer(rendererOptions(s.cfg, s.logger, env.Now)...)
	if err != nil {
		return err
	}

	apiKey, err := generate.APIKeyFromEnv(s.cfg.Generation.APIKeyEnv)
	if err != nil {
		return fmt.Errorf("%w%s", err, hints.ForMissingAPIKey(apiKeyEnvName(s.cfg)))
	}

	model := s.cfg.Generation.Model
	if model == "" {
		model = generate.DefaultModel
	}
	gen, err := env.NewGenerator(ctx, apiKey, model)
	if err != nil {
		return err
	}

	s.logger.Info("Generating report", zap.String("model", model))
	analyst := generate.NewAnalyst(gen, s.cfg.Generation.TimeoutDuration(), s.logger)
	text, err := analyst.Analyze(ctx, profile)
	if err != nil {
		if errors.Is(err, generate.ErrTimeout) {
			return fmt.Errorf("%w%s", err, hints.ForTimeout())
		}
		return err
	}

	res, err := renderer.Render(report2docx.Input{Report: text})
	if err != nil {
		return err
	}

	docPath, err := documentPath(s.cfg.Output.DefaultDir, res.FileName)
	if err != nil {
		return err
	}
	written := []string{docPath, fileutil.ReplaceExt(docPath, rawReportExt)}
	if err := writeOutput(written[0], res.DOCX); err != nil {
		return err
	}
	if err := writeOutput(written[1], []byte(text)); err != nil {
		return err
	}
	if s.cfg.Output.Preview {
		path, err := writePreview(ctx, renderer, docPath, text)
		if err != nil {
			return err
		}
		written = append(written, path)
	}

	if !flags.common.quiet {
		for _, p := range written {
			fmt.Fprintf(env.Stdout, "Created %s\n", p)
		}
	}
	return nil
}

// mergeGenerationFlags merges generation flags into config.
func mergeGenerationFlags(f generationFlags, cfg *config.Config) error {
	if f.model != "" {
		cfg.Generation.Model = f.model
	}
	if f.timeout != "" {
		d, err := time.ParseDuration(f.timeout)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: %q (use a positive Go duration such as 90s or 2m)", ErrInvalidTimeout, f.timeout)
		}
		cfg.Generation.Timeout = f.timeout
	}
	return nil
}

// buildProfile validates patient flags into a generate.Profile.
func buildProfile(f patientFlags) (generate.Profile, error) {
	gender, err := generate.ParseGender(f.gender)
	if err != nil {
		return generate.Profile{}, err
	}

	symptoms := f.symptoms
	if f.symptomsFile != "" {
		if symptoms != "" {
			return generate.Profile{}, fmt.Errorf("%w: --symptoms and --symptoms-file are mutually exclusive", ErrUsage)
		}
		data, err := os.ReadFile(f.symptomsFile) // #nosec G304 -- user-provided path
		if err != nil {
			return generate.Profile{}, fmt.Errorf("reading symptoms: %w", err)
		}
		symptoms = string(data)
	}

	var conditions []string
	for _, c := range f.conditions {
		if c = strings.TrimSpace(c); c != "" {
			conditions = append(conditions, c)
		}
	}

	p := generate.Profile{
		Age:        f.age,
		Gender:     gender,
		Conditions: conditions,
		Medication: strings.TrimSpace(f.medication),
		Symptoms:   strings.TrimSpace(symptoms),
	}
	if err := p.Validate(); err != nil {
		if errors.Is(err, generate.ErrUnknownCondition) {
			return generate.Profile{}, fmt.Errorf("%w%s", err, hints.ForCondition(generate.Conditions))
		}
		return generate.Profile{}, err
	}
	return p, nil
}

// documentPath joins a generated file name to the output directory.
// The name must not escape dir.
func documentPath(dir, name string) (string, error) {
	if err := fileutil.ValidateFileName(name); err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrWriteOutput, name, err)
	}
	return filepath.Join(dir, name), nil
}

// apiKeyEnvName returns the variable the API key is read from.
func apiKeyEnvName(cfg *config.Config) string {
	if cfg.Generation.APIKeyEnv != "" {
		return cfg.Generation.APIKeyEnv
	}
	return generate.DefaultAPIKeyEnv
}
