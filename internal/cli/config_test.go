package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func TestApplyConfig_Precedence(t *testing.T) {
	saveViper(t)

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `output:
  format: yaml
  color: true
audio:
  provider: gemini
  voice: en-gb
  speed: 160
  openai_speed: 1.2
`
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test config: %v", err)
	}

	cmd := &cobra.Command{}
	flags := NewFlags()
	setupFlags(cmd, flags)

	if err := InitConfig(cfgPath); err != nil {
		t.Fatalf("InitConfig() error = %v", err)
	}

	// Flag beats config file
	if err := cmd.Flags().Set("voice", "en+f3"); err != nil {
		t.Fatal(err)
	}
	// Environment beats config file
	t.Setenv("READABLEPASSWORD_AUDIO_PROVIDER", "openai")

	ApplyConfig(flags)

	tests := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"OutputFormat", flags.OutputFormat, "yaml"},
		{"Color", flags.Color, true},
		{"AudioProvider", flags.AudioProvider, "openai"},
		{"Voice", flags.Voice, "en+f3"},
		{"Speed", flags.Speed, 160},
		{"Pitch", flags.Pitch, 50},
		{"OpenAISpeed", flags.OpenAISpeed, 1.2},
		{"AudioFormat", flags.AudioFormat, "wav"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestAudioConfig(t *testing.T) {
	saveViper(t)
	t.Setenv("OPENAI_API_KEY", "openai-key")
	t.Setenv("GEMINI_API_KEY", "gemini-key")
	viper.Set("audio.timeout", "5s")
	viper.Set("audio.amplitude", 150)

	flags := NewFlags()
	flags.AudioProvider = "openai"
	flags.Voice = "en-gb"
	flags.Speed = 100
	flags.OpenAIVoice = "nova"
	flags.GeminiVoice = "Puck"

	config := AudioConfig(flags)

	if config.Provider != "openai" {
		t.Errorf("Provider = %s, want openai", config.Provider)
	}
	if config.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", config.Timeout)
	}
	if config.ESpeak.Voice != "en-gb" || config.ESpeak.Speed != 100 || config.ESpeak.Amplitude != 150 {
		t.Errorf("ESpeak = %+v", config.ESpeak)
	}
	if config.OpenAIKey != "openai-key" || config.OpenAIVoice != "nova" {
		t.Errorf("OpenAI settings = %s/%s", config.OpenAIKey, config.OpenAIVoice)
	}
	if config.GeminiKey != "gemini-key" || config.GeminiVoice != "Puck" {
		t.Errorf("Gemini settings = %s/%s", config.GeminiKey, config.GeminiVoice)
	}
}
