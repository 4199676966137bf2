package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/alnah/go-report2docx/internal/generate"
)

// GeneratorFactory creates the generation-service client for analyze.
type GeneratorFactory func(ctx context.Context, apiKey, model string) (generate.Generator, error)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now          func() time.Time
	Stdout       io.Writer
	Stderr       io.Writer
	NewGenerator GeneratorFactory
}

// DefaultEnv returns the production environment backed by the Gemini API.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		NewGenerator: func(ctx context.Context, apiKey, model string) (generate.Generator, error) {
			return generate.NewGeminiGenerator(ctx, apiKey, model)
		},
	}
}
