package audio

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"
)

// fakeSpeechClient records the request and returns canned audio
type fakeSpeechClient struct {
	data    string
	err     error
	request openai.CreateSpeechRequest
	calls   int
}

func (f *fakeSpeechClient) CreateSpeech(ctx context.Context, request openai.CreateSpeechRequest) (openai.RawResponse, error) {
	f.calls++
	f.request = request
	if f.err != nil {
		return openai.RawResponse{}, f.err
	}
	return openai.RawResponse{ReadCloser: io.NopCloser(strings.NewReader(f.data))}, nil
}

func TestNewOpenAIProvider(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
		errMsg  string
	}{
		{
			name: "missing API key",
			config: &Config{
				OpenAIKey: "",
			},
			wantErr: true,
			errMsg:  "OpenAI API key is required",
		},
		{
			name: "valid config",
			config: &Config{
				OpenAIKey: "test-key",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := NewOpenAIProvider(tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewOpenAIProvider() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != nil && err.Error() != tt.errMsg {
				t.Errorf("NewOpenAIProvider() error = %v, want %v", err.Error(), tt.errMsg)
			}

			if !tt.wantErr && provider != nil {
				if provider.Name() != "openai" {
					t.Errorf("Name() = %v, want %v", provider.Name(), "openai")
				}
			}
		})
	}
}

func TestOpenAIProviderIsAvailable(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name: "with API key",
			config: &Config{
				OpenAIKey: "test-key",
			},
			wantErr: false,
		},
		{
			name: "without API key",
			config: &Config{
				OpenAIKey: "",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &OpenAIProvider{
				config: tt.config,
			}
			err := provider.IsAvailable()
			if (err != nil) != tt.wantErr {
				t.Errorf("IsAvailable() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestOpenAIGenerateAudio(t *testing.T) {
	client := &fakeSpeechClient{data: "mock audio data"}
	config := DefaultProviderConfig()
	config.OpenAIKey = "test-key"
	provider := &OpenAIProvider{client: client, config: config}

	outputFile := filepath.Join(t.TempDir(), "audio", "line_0001.mp3")
	err := provider.GenerateAudio(context.Background(), "capital sierra, alfa", outputFile)
	if err != nil {
		t.Fatalf("GenerateAudio() error = %v", err)
	}

	data, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if string(data) != "mock audio data" {
		t.Errorf("Output = %q", data)
	}

	req := client.request
	if req.Input != "capital sierra, alfa" {
		t.Errorf("Input = %q", req.Input)
	}
	if req.Model != openai.SpeechModel("gpt-4o-mini-tts") {
		t.Errorf("Model = %q", req.Model)
	}
	if req.ResponseFormat != openai.SpeechResponseFormatMp3 {
		t.Errorf("ResponseFormat = %q", req.ResponseFormat)
	}
	if req.Instructions == "" {
		t.Error("Expected instructions for gpt-4o-mini-tts")
	}
}

func TestOpenAIGenerateAudio_NoInstructionsForTTS1(t *testing.T) {
	client := &fakeSpeechClient{data: "x"}
	config := DefaultProviderConfig()
	config.OpenAIModel = "tts-1-hd"
	provider := &OpenAIProvider{client: client, config: config}

	outputFile := filepath.Join(t.TempDir(), "out.wav")
	if err := provider.GenerateAudio(context.Background(), "alfa", outputFile); err != nil {
		t.Fatalf("GenerateAudio() error = %v", err)
	}
	if client.request.Instructions != "" {
		t.Errorf("Did not expect instructions, got %q", client.request.Instructions)
	}
	if client.request.ResponseFormat != openai.SpeechResponseFormatWav {
		t.Errorf("ResponseFormat = %q, want wav", client.request.ResponseFormat)
	}
}

func TestOpenAIGenerateAudio_Errors(t *testing.T) {
	tmp := t.TempDir()

	tests := []struct {
		name       string
		client     *fakeSpeechClient
		text       string
		outputFile string
		errMsg     string
	}{
		{
			name:       "empty text",
			client:     &fakeSpeechClient{},
			text:       "  ",
			outputFile: filepath.Join(tmp, "a.mp3"),
			errMsg:     "text cannot be empty",
		},
		{
			name:       "text too long",
			client:     &fakeSpeechClient{},
			text:       strings.Repeat("a", maxOpenAIInput+1),
			outputFile: filepath.Join(tmp, "b.mp3"),
			errMsg:     "the limit is 4096",
		},
		{
			name:   "no output file",
			client: &fakeSpeechClient{},
			text:   "alfa",
			errMsg: "needs an output file",
		},
		{
			name:       "API error",
			client:     &fakeSpeechClient{err: errors.New("rate limited")},
			text:       "alfa",
			outputFile: filepath.Join(tmp, "c.mp3"),
			errMsg:     "OpenAI TTS API error: rate limited",
		},
		{
			name:       "model access error",
			client:     &fakeSpeechClient{err: errors.New("project does not have access to model")},
			text:       "alfa",
			outputFile: filepath.Join(tmp, "d.mp3"),
			errMsg:     "--openai-model tts-1-hd",
		},
		{
			name:       "empty response",
			client:     &fakeSpeechClient{data: ""},
			text:       "alfa",
			outputFile: filepath.Join(tmp, "e.mp3"),
			errMsg:     "no audio data received from OpenAI",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &OpenAIProvider{client: tt.client, config: DefaultProviderConfig()}
			err := provider.GenerateAudio(context.Background(), tt.text, tt.outputFile)
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("Error = %v, want it to contain %q", err, tt.errMsg)
			}
		})
	}
}

func TestSpeechFormat(t *testing.T) {
	tests := map[string]openai.SpeechResponseFormat{
		"a.mp3":  openai.SpeechResponseFormatMp3,
		"a.WAV":  openai.SpeechResponseFormatWav,
		"a.opus": openai.SpeechResponseFormatOpus,
		"a.aac":  openai.SpeechResponseFormatAac,
		"a.flac": openai.SpeechResponseFormatFlac,
		"a":      openai.SpeechResponseFormatMp3,
	}

	for file, want := range tests {
		if got := speechFormat(file); got != want {
			t.Errorf("speechFormat(%q) = %q, want %q", file, got, want)
		}
	}
}
