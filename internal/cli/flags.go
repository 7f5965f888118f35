package cli

import (
	"codeberg.org/snonux/readablepassword/internal/audio"
	"codeberg.org/snonux/readablepassword/internal/logging"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile      string
	OutputFormat string
	Color        bool
	StripNewline bool
	Prompt       bool
	Table        bool
	ListModels   bool
	LogLevel     string

	// Speech flags
	Speak         bool
	AudioProvider string
	AudioFallback string
	AudioDir      string
	AudioFormat   string

	// espeak-ng flags
	Voice   string
	Speed   int
	Pitch   int
	WordGap int

	// OpenAI flags
	OpenAIModel       string
	OpenAIVoice       string
	OpenAISpeed       float64
	OpenAIInstruction string

	// Gemini flags
	GeminiModel string
	GeminiVoice string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	defaults := audio.DefaultProviderConfig()

	return &Flags{
		OutputFormat:      "text",
		LogLevel:          logging.DefaultLevel,
		AudioProvider:     defaults.Provider,
		AudioFormat:       "wav",
		Voice:             defaults.ESpeak.Voice,
		Speed:             defaults.ESpeak.Speed,
		Pitch:             defaults.ESpeak.Pitch,
		WordGap:           defaults.ESpeak.WordGap,
		OpenAIModel:       defaults.OpenAIModel,
		OpenAIVoice:       defaults.OpenAIVoice,
		OpenAISpeed:       defaults.OpenAISpeed,
		OpenAIInstruction: defaults.OpenAIInstruction,
		GeminiModel:       defaults.GeminiModel,
		GeminiVoice:       defaults.GeminiVoice,
	}
}
