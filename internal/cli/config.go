package cli

import (
	"github.com/spf13/viper"

	"codeberg.org/snonux/readablepassword/internal/audio"
)

// ApplyConfig copies the effective settings into flags. Values given on the
// command line win over environment variables, which win over the config
// file, which wins over the flag defaults.
func ApplyConfig(flags *Flags) {
	flags.OutputFormat = viper.GetString("output.format")
	flags.Color = viper.GetBool("output.color")
	flags.StripNewline = viper.GetBool("output.strip_newline")
	flags.LogLevel = viper.GetString("log.level")

	flags.Speak = viper.GetBool("audio.speak")
	flags.AudioProvider = viper.GetString("audio.provider")
	flags.AudioFallback = viper.GetString("audio.fallback")
	flags.AudioDir = viper.GetString("audio.directory")
	flags.AudioFormat = viper.GetString("audio.format")

	flags.Voice = viper.GetString("audio.voice")
	flags.Speed = viper.GetInt("audio.speed")
	flags.Pitch = viper.GetInt("audio.pitch")
	flags.WordGap = viper.GetInt("audio.word_gap")

	flags.OpenAIModel = viper.GetString("audio.openai_model")
	flags.OpenAIVoice = viper.GetString("audio.openai_voice")
	flags.OpenAISpeed = viper.GetFloat64("audio.openai_speed")
	flags.OpenAIInstruction = viper.GetString("audio.openai_instruction")

	flags.GeminiModel = viper.GetString("audio.gemini_model")
	flags.GeminiVoice = viper.GetString("audio.gemini_voice")
}

// AudioConfig builds the speech provider configuration from flags and the
// API keys found in the environment or config file.
func AudioConfig(flags *Flags) *audio.Config {
	config := audio.DefaultProviderConfig()

	config.Provider = flags.AudioProvider
	if timeout := viper.GetDuration("audio.timeout"); timeout > 0 {
		config.Timeout = timeout
	}

	config.ESpeak.Voice = flags.Voice
	config.ESpeak.Speed = flags.Speed
	config.ESpeak.Pitch = flags.Pitch
	config.ESpeak.WordGap = flags.WordGap
	if amplitude := viper.GetInt("audio.amplitude"); amplitude > 0 {
		config.ESpeak.Amplitude = amplitude
	}

	config.OpenAIKey = GetOpenAIKey()
	config.OpenAIModel = flags.OpenAIModel
	config.OpenAIVoice = flags.OpenAIVoice
	config.OpenAISpeed = flags.OpenAISpeed
	config.OpenAIInstruction = flags.OpenAIInstruction

	config.GeminiKey = GetGeminiKey()
	config.GeminiModel = flags.GeminiModel
	config.GeminiVoice = flags.GeminiVoice

	return config
}
