package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	report2docx "github.com/alnah/go-report2docx"
	"github.com/alnah/go-report2docx/internal/docx"
	"github.com/alnah/go-report2docx/internal/fileutil"
	"github.com/alnah/go-report2docx/internal/hints"
)

// Sentinel errors for render and analyze.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrNoReports          = errors.New("no report files found")
	ErrInvalidExtension   = errors.New("unsupported report extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrInvalidTimeout     = errors.New("invalid timeout")
	ErrReadReport         = errors.New("failed to read report file")
	ErrWriteOutput        = errors.New("failed to write output file")
)

// reportExtensions lists input extensions accepted by render.
var reportExtensions = []string{".md", ".markdown", ".txt"}

// previewExt is the extension of HTML previews.
const previewExt = ".html"

// ReportRenderer is the subset of *report2docx.Renderer used by the CLI.
type ReportRenderer interface {
	Render(input report2docx.Input) (*report2docx.RenderResult, error)
	Preview(ctx context.Context, report string) (string, error)
}

// Compile-time interface implementation check.
var _ ReportRenderer = (*report2docx.Renderer)(nil)

// FileToRender pairs a report file with its document path.
type FileToRender struct {
	InputPath  string
	OutputPath string
}

// RenderOutcome holds the outcome of a single render.
type RenderOutcome struct {
	InputPath   string
	OutputPath  string
	PreviewPath string
	Stats       report2docx.Stats
	Err         error
	Duration    time.Duration
}

// runRender renders every report under the positional input.
func runRender(ctx context.Context, positionalArgs []string, flags *renderFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}
	if len(positionalArgs) == 0 {
		return ErrNoInput
	}
	if len(positionalArgs) > 1 {
		return fmt.Errorf("%w: render takes one input, got %d", ErrUsage, len(positionalArgs))
	}

	s, err := loadSettings(flags.common, env.Stderr)
	if err != nil {
		return err
	}
	defer func() { _ = s.logger.Sync() }()

	mergeLayoutFlags(flags.layout, s.cfg)
	mergeOutputFlags(flags.output, s.cfg)
	if err := s.cfg.Validate(); err != nil {
		return err
	}

	renderer, err := report2docx.NewRenderer(rendererOptions(s.cfg, s.logger, env.Now)...)
	if err != nil {
		return err
	}

	inputPath := positionalArgs[0]
	files, err := discoverFiles(inputPath, s.cfg.Output.DefaultDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoReports, inputPath)
	}

	workers := resolvePoolSize(flags.workers, s.env.Workers)
	s.logger.Debug("Rendering reports", zap.Int("files", len(files)), zap.Int("workers", workers))

	results := renderBatch(ctx, renderer, files, workers, s.cfg.Output.Preview, s.logger)
	return printResults(results, flags.common.quiet, flags.common.verbose, env)
}

// discoverFiles finds every report to render.
// An outputDir ending in .docx names the document for a single input file.
func discoverFiles(inputPath, outputDir string) ([]FileToRender, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateReportExtension(inputPath); err != nil {
			return nil, err
		}
		return []FileToRender{{InputPath: inputPath, OutputPath: resolveOutputPath(inputPath, outputDir, "")}}, nil
	}

	if strings.HasSuffix(outputDir, docx.Extension) {
		return nil, fmt.Errorf("%w: output %q is a file but input %q is a directory", ErrUsage, outputDir, inputPath)
	}

	var files []FileToRender
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || validateReportExtension(path) != nil {
			return nil
		}
		files = append(files, FileToRender{InputPath: path, OutputPath: resolveOutputPath(path, outputDir, inputPath)})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the document path for a report file.
// Directory inputs keep their relative layout under outputDir.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	base := fileutil.ReplaceExt(filepath.Base(inputPath), docx.Extension)

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base)
	}
	if strings.HasSuffix(outputDir, docx.Extension) {
		return outputDir
	}
	if baseInputDir != "" {
		if rel, err := filepath.Rel(baseInputDir, inputPath); err == nil {
			return filepath.Join(outputDir, filepath.Dir(rel), base)
		}
	}
	return filepath.Join(outputDir, base)
}

// validateReportExtension checks that path has a report extension.
func validateReportExtension(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range reportExtensions {
		if ext == e {
			return nil
		}
	}
	return fmt.Errorf("%w: got %q (want %s)", ErrInvalidExtension, ext, strings.Join(reportExtensions, ", "))
}

// renderBatch renders files concurrently; every worker shares renderer.
func renderBatch(ctx context.Context, renderer ReportRenderer, files []FileToRender, workers int, preview bool, logger *zap.Logger) []RenderOutcome {
	if len(files) == 0 {
		return nil
	}
	workers = max(1, min(workers, len(files)))

	results := make([]RenderOutcome, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = RenderOutcome{InputPath: files[idx].InputPath, Err: ctx.Err()}
					continue
				}
				results[idx] = renderFile(ctx, renderer, files[idx], preview, logger)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// renderFile renders a single report file.
func renderFile(ctx context.Context, renderer ReportRenderer, f FileToRender, preview bool, logger *zap.Logger) RenderOutcome {
	start := time.Now()
	out := RenderOutcome{InputPath: f.InputPath, OutputPath: f.OutputPath}
	done := func(err error) RenderOutcome {
		out.Err = err
		out.Duration = time.Since(start)
		return out
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return done(fmt.Errorf("%w: %v", ErrReadReport, err))
	}
	report := string(content)
	if strings.TrimSpace(report) == "" {
		logger.Warn("Empty report"+hints.ForEmptyReport(), zap.String("file", f.InputPath))
	}

	res, err := renderer.Render(report2docx.Input{Report: report})
	if err != nil {
		return done(err)
	}
	out.Stats = res.Stats

	if err := writeOutput(f.OutputPath, res.DOCX); err != nil {
		return done(err)
	}

	if preview {
		path, err := writePreview(ctx, renderer, f.OutputPath, report)
		if err != nil {
			return done(err)
		}
		out.PreviewPath = path
	}

	return done(nil)
}

// writeOutput writes data atomically, wrapping failures as ErrWriteOutput.
func writeOutput(path string, data []byte) error {
	if err := fileutil.WriteFileAtomic(path, data); err != nil {
		return fmt.Errorf("%w: %s: %v%s", ErrWriteOutput, path, err, hints.ForOutputDirectory())
	}
	return nil
}

// writePreview writes the HTML preview next to docPath and returns its path.
func writePreview(ctx context.Context, renderer ReportRenderer, docPath, report string) (string, error) {
	html, err := renderer.Preview(ctx, report)
	if err != nil {
		return "", err
	}
	path := fileutil.ReplaceExt(docPath, previewExt)
	if err := writeOutput(path, []byte(html)); err != nil {
		return "", err
	}
	return path, nil
}

// printResults reports each outcome and returns the combined failures.
func printResults(results []RenderOutcome, quiet, verbose bool, env *Environment) error {
	var errs error
	var succeeded, failed int

	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", r.InputPath, r.Err))
			continue
		}

		succeeded++
		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v, %d tables, %d paragraphs)\n",
				r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond), r.Stats.Tables, r.Stats.Paragraphs)
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
		if r.PreviewPath != "" {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.PreviewPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", succeeded, failed)
	}

	if errs != nil {
		return fmt.Errorf("%d render(s) failed: %w", failed, errs)
	}
	return nil
}
