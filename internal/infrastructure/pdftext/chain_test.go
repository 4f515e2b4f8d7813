package pdftext

import (
	"context"
	"errors"
	"testing"
)

type stubBackend struct {
	text string
	err  error
}

func (s stubBackend) ExtractText(context.Context, []byte) (string, error) { return s.text, s.err }

func TestChain_PrimaryWins(t *testing.T) {
	c := NewChain(nil, stubBackend{text: "primary text"}, stubBackend{text: "fallback text"})

	got, err := c.ExtractText(context.Background(), []byte("%PDF"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "primary text" {
		t.Fatalf("got %q", got)
	}
}

func TestChain_FallsBackOnError(t *testing.T) {
	c := NewChain(nil, stubBackend{err: errors.New("boom")}, stubBackend{text: "fallback text"})

	got, err := c.ExtractText(context.Background(), []byte("%PDF"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "fallback text" {
		t.Fatalf("got %q", got)
	}
}

func TestChain_FallsBackOnWhitespaceOutput(t *testing.T) {
	c := NewChain(nil, stubBackend{text: "  \n\t "}, stubBackend{text: "fallback text"})

	got, err := c.ExtractText(context.Background(), []byte("%PDF"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "fallback text" {
		t.Fatalf("got %q", got)
	}
}

func TestChain_AllBackendsFail(t *testing.T) {
	c := NewChain(nil, stubBackend{err: errors.New("boom")}, stubBackend{text: ""})

	_, err := c.ExtractText(context.Background(), []byte("not a pdf"))
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestChain_TrimsResult(t *testing.T) {
	c := NewChain(nil, stubBackend{text: "\n  hello world \n"})

	got, err := c.ExtractText(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hello world" {
		t.Fatalf("got %q", got)
	}
}

func TestChain_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewChain(nil, stubBackend{text: "primary text"})
	if _, err := c.ExtractText(ctx, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
