package audio

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"google.golang.org/genai"
)

// Gemini TTS returns raw 16-bit little-endian mono PCM at 24 kHz.
const (
	geminiSampleRate    = 24000
	geminiBitsPerSample = 16
	geminiChannels      = 1
)

// contentGenerator is the part of the genai client used for TTS
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiProvider implements Provider interface for Gemini speech generation
type GeminiProvider struct {
	models contentGenerator
	config *Config
}

// NewGeminiProvider creates a new Gemini TTS provider
func NewGeminiProvider(ctx context.Context, config *Config) (Provider, error) {
	if config.GeminiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.GeminiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		models: client.Models,
		config: config,
	}, nil
}

// GenerateAudio asks Gemini for speech and stores it as WAV, or as MP3
// when the output file says so.
func (p *GeminiProvider) GenerateAudio(ctx context.Context, text string, outputFile string) error {
	if err := ValidateText(text, 0); err != nil {
		return err
	}
	if outputFile == "" {
		return fmt.Errorf("Gemini TTS needs an output file, set --audio-dir")
	}

	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{
					VoiceName: p.config.GeminiVoice,
				},
			},
		},
	}

	prompt := "Read the following words slowly and clearly: " + text

	reqCtx, cancel := withTimeout(ctx, p.config.Timeout)
	defer cancel()

	resp, err := p.models.GenerateContent(reqCtx, p.config.GeminiModel, genai.Text(prompt), cfg)
	if err != nil {
		return fmt.Errorf("Gemini TTS API error: %w", err)
	}

	pcm := inlineAudio(resp)
	if len(pcm) == 0 {
		return fmt.Errorf("no audio data received from Gemini")
	}

	if err := ensureDir(outputFile); err != nil {
		return err
	}

	if strings.ToLower(filepath.Ext(outputFile)) != ".mp3" {
		return writeWAV(outputFile, pcm)
	}

	tempWAV := strings.TrimSuffix(outputFile, filepath.Ext(outputFile)) + "_temp.wav"
	if err := writeWAV(tempWAV, pcm); err != nil {
		return err
	}
	defer os.Remove(tempWAV)

	return ConvertWAVToMP3(ctx, tempWAV, outputFile)
}

// inlineAudio collects the audio bytes of the first candidate
func inlineAudio(resp *genai.GenerateContentResponse) []byte {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}

	var pcm []byte
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.InlineData != nil {
			pcm = append(pcm, part.InlineData.Data...)
		}
	}
	return pcm
}

// writeWAV wraps raw PCM in a canonical 44 byte RIFF header
func writeWAV(path string, pcm []byte) error {
	var buf bytes.Buffer
	byteRate := geminiSampleRate * geminiChannels * geminiBitsPerSample / 8
	blockAlign := geminiChannels * geminiBitsPerSample / 8

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+len(pcm)))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(geminiChannels))
	binary.Write(&buf, binary.LittleEndian, uint32(geminiSampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(byteRate))
	binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(geminiBitsPerSample))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(len(pcm)))
	buf.Write(pcm)

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	return nil
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// IsAvailable checks if the Gemini API is configured
func (p *GeminiProvider) IsAvailable() error {
	if p.config.GeminiKey == "" {
		return fmt.Errorf("Gemini API key not configured")
	}
	return nil
}
