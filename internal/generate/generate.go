// Package generate produces report text from a patient profile by calling a
// text-generation service.
package generate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Sentinel errors for generation.
var (
	ErrNoAPIKey      = errors.New("generation API key not set")
	ErrGeneration    = errors.New("generation failed")
	ErrEmptyResponse = errors.New("generation returned no text")
	ErrTimeout       = errors.New("generation timed out")
)

// Defaults for the Gemini backend.
const (
	DefaultModel     = "gemini-3-flash-preview"
	DefaultAPIKeyEnv = "GEMINI_API_KEY"
	DefaultTimeout   = 120 * time.Second
)

// Generator turns a prompt into report text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// contentModel is the subset of *genai.Models used here.
type contentModel interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content,
		config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator calls the Gemini API.
type GeminiGenerator struct {
	models contentModel
	model  string
}

// Compile-time interface check.
var _ Generator = (*GeminiGenerator)(nil)

// NewGeminiGenerator creates a client authenticated with apiKey.
// An empty model selects DefaultModel.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: creating client: %v", ErrGeneration, err)
	}
	return newGeminiGenerator(client.Models, model), nil
}

func newGeminiGenerator(models contentModel, model string) *GeminiGenerator {
	if model == "" {
		model = DefaultModel
	}
	return &GeminiGenerator{models: models, model: model}
}

// Model returns the model name requests are sent to.
func (g *GeminiGenerator) Model() string {
	return g.model
}

// Generate sends prompt as a single user turn and returns the concatenated text.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	if resp == nil {
		return "", ErrEmptyResponse
	}
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// APIKeyFromEnv reads the key from envVar, or DefaultAPIKeyEnv when envVar is empty.
func APIKeyFromEnv(envVar string) (string, error) {
	if envVar == "" {
		envVar = DefaultAPIKeyEnv
	}
	key := strings.TrimSpace(os.Getenv(envVar))
	if key == "" {
		return "", fmt.Errorf("%w: %s", ErrNoAPIKey, envVar)
	}
	return key, nil
}

// Analyst validates profiles and asks a Generator for the report.
type Analyst struct {
	gen     Generator
	timeout time.Duration
	logger  *zap.Logger
}

// NewAnalyst wraps gen. A non-positive timeout selects DefaultTimeout;
// a nil logger disables logging.
func NewAnalyst(gen Generator, timeout time.Duration, logger *zap.Logger) *Analyst {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyst{gen: gen, timeout: timeout, logger: logger}
}

// Analyze returns the report text for p.
func (a *Analyst) Analyze(ctx context.Context, p Profile) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	prompt := BuildPrompt(p)
	a.logger.Debug("Requesting report",
		zap.Int("age", p.Age),
		zap.String("gender", string(p.Gender)),
		zap.Strings("conditions", p.Conditions),
		zap.Duration("timeout", a.timeout),
		zap.Int("prompt_bytes", len(prompt)))

	start := time.Now()
	text, err := a.gen.Generate(ctx, prompt)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !errors.Is(err, ErrTimeout) {
			err = fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		a.logger.Debug("Report request failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return "", err
	}

	a.logger.Debug("Report received",
		zap.Int("bytes", len(text)),
		zap.Duration("elapsed", time.Since(start)))
	return text, nil
}
