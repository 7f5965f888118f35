package models

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// modelClient is the part of the OpenAI client used for listing models
type modelClient interface {
	ListModels(ctx context.Context) (openai.ModelsList, error)
}

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client modelClient
}

// NewLister creates a new model lister
func NewLister(apiKey string) *Lister {
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
	}
}

// SpeechModels returns the sorted IDs of all text-to-speech and audio models
func (l *Lister) SpeechModels(ctx context.Context) ([]string, error) {
	if l.apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure audio.openai_key in .readablepassword.yaml")
	}

	models, err := l.client.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	var ids []string
	for _, model := range models.Models {
		if strings.Contains(model.ID, "tts") || strings.Contains(model.ID, "audio") {
			ids = append(ids, model.ID)
		}
	}
	sort.Strings(ids)

	return ids, nil
}

// ListAvailableModels prints the speech models to w
func (l *Lister) ListAvailableModels(ctx context.Context, w io.Writer) error {
	ids, err := l.SpeechModels(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Available OpenAI speech models:")
	if len(ids) == 0 {
		fmt.Fprintln(w, "  No TTS models found")
		return nil
	}
	for _, id := range ids {
		fmt.Fprintf(w, "  %s\n", id)
	}

	return nil
}
