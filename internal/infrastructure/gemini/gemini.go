// Package gemini adapts Google's Gemini API to ports.TextGenerator.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

const defaultTimeout = 60 * time.Second

// ErrNotConfigured is returned by a generator built without an API key.
var ErrNotConfigured = errors.New("text generation is not configured")

type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Generator calls GenerateContent with a single text prompt.
type Generator struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// New returns a Generator. Without an API key it returns a generator whose
// every call fails with ErrNotConfigured.
func New(ctx context.Context, cfg Config) (*Generator, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	g := &Generator{model: cfg.Model, timeout: timeout}
	if cfg.APIKey == "" {
		return g, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	g.client = client
	return g, nil
}

func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.client == nil {
		return "", ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.New("gemini generate: empty response")
	}
	return text, nil
}
