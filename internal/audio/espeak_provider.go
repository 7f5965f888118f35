package audio

import (
	"context"
	"path/filepath"
	"strings"
)

// ESpeakProvider implements Provider interface for espeak-ng
type ESpeakProvider struct {
	espeak *ESpeak
}

// NewESpeakProvider creates a new espeak-ng provider
func NewESpeakProvider(config *ESpeakConfig) (Provider, error) {
	espeak, err := New(config)
	if err != nil {
		return nil, err
	}

	// Pull flag and config file values into the ranges espeak-ng accepts.
	espeak.SetSpeed(espeak.config.Speed)
	espeak.SetPitch(espeak.config.Pitch)
	espeak.SetAmplitude(espeak.config.Amplitude)
	espeak.SetWordGap(espeak.config.WordGap)

	return &ESpeakProvider{espeak: espeak}, nil
}

// GenerateAudio speaks text aloud when outputFile is empty, otherwise it
// writes WAV or MP3 depending on the file extension.
func (p *ESpeakProvider) GenerateAudio(ctx context.Context, text string, outputFile string) error {
	if err := ValidateText(text, 0); err != nil {
		return err
	}

	if outputFile == "" {
		return p.espeak.Speak(ctx, text)
	}

	switch strings.ToLower(filepath.Ext(outputFile)) {
	case ".mp3":
		return p.espeak.GenerateMP3(ctx, text, outputFile)
	default:
		return p.espeak.GenerateWAV(ctx, text, outputFile)
	}
}

// Name returns the provider name
func (p *ESpeakProvider) Name() string {
	return "espeak-ng"
}

// IsAvailable checks if espeak-ng is installed
func (p *ESpeakProvider) IsAvailable() error {
	return checkESpeakInstalled()
}
