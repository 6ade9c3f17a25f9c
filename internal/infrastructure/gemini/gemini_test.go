package gemini

import (
	"context"
	"errors"
	"testing"
)

func TestGenerator_NotConfigured(t *testing.T) {
	g, err := New(context.Background(), Config{Model: "gemini-2.0-flash"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = g.Generate(context.Background(), "prompt")
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
