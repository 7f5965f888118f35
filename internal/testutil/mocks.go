package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// SpeechCall records one request made to a MockSpeaker
type SpeechCall struct {
	Text       string
	OutputFile string
}

// MockSpeaker is an audio provider that records requests. When an output
// file is given it writes the spoken text into it.
type MockSpeaker struct {
	ProviderName string
	Err          error
	FailAfter    int // fail every call after this many successes when > 0
	Calls        []SpeechCall
}

// GenerateAudio records the call and optionally writes outputFile
func (m *MockSpeaker) GenerateAudio(ctx context.Context, text string, outputFile string) error {
	m.Calls = append(m.Calls, SpeechCall{Text: text, OutputFile: outputFile})

	if m.Err != nil && (m.FailAfter == 0 || len(m.Calls) > m.FailAfter) {
		return m.Err
	}

	if outputFile == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(outputFile), 0755); err != nil {
		return err
	}
	return os.WriteFile(outputFile, []byte(text), 0644)
}

// Name returns the configured name, "mock" by default
func (m *MockSpeaker) Name() string {
	if m.ProviderName == "" {
		return "mock"
	}
	return m.ProviderName
}

// IsAvailable reports Err when the mock is set to fail
func (m *MockSpeaker) IsAvailable() error {
	if m.Err != nil {
		return fmt.Errorf("mock unavailable: %w", m.Err)
	}
	return nil
}
