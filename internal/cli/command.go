package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"codeberg.org/snonux/readablepassword/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "readable-password [file ...]",
		Short: "Phonetic transcription of passwords",
		Long: `readable-password spells out every character of its input as a
phonetic word, so passwords can be read aloud or dictated without mistakes.

Each line of the named files, or of standard input when no file (or "-")
is given, is printed as one line of words. Upper-case letters use upper-case
NATO words, control characters are named and anything outside ASCII becomes
UNMATCHED.

Line terminators are transcribed as they are stored: a file with Windows
line endings shows "cr lf" at the end of every line. Use --strip-newline
to leave terminators out.

Examples:
  echo 'Sa2' | readable-password          # SIERRA alfa two lf
  readable-password secrets.txt           # Transcribe a file
  readable-password --prompt --speak      # Type a hidden secret and hear it
  readable-password --table               # Show the phonetic table`,
		Args:    cobra.ArbitraryArgs,
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.readablepassword.yaml)")
	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")

	// Local flags
	cmd.Flags().StringVarP(&flags.OutputFormat, "output-format", "o", flags.OutputFormat, "Output format: text, json or yaml")
	cmd.Flags().BoolVar(&flags.Color, "color", false, "Highlight capitals and unmatched characters in text output")
	cmd.Flags().BoolVarP(&flags.StripNewline, "strip-newline", "n", false, "Do not transcribe line terminators")
	cmd.Flags().BoolVarP(&flags.Prompt, "prompt", "p", false, "Read one secret from the terminal without echo")
	cmd.Flags().BoolVar(&flags.Table, "table", false, "Print the phonetic table and exit")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI speech models for the current API key")

	// Speech flags
	cmd.Flags().BoolVarP(&flags.Speak, "speak", "s", false, "Speak every transcribed line")
	cmd.Flags().StringVar(&flags.AudioProvider, "audio-provider", flags.AudioProvider, "Speech provider: espeak, openai or gemini")
	cmd.Flags().StringVar(&flags.AudioFallback, "audio-fallback", "", "Speech provider to use when the primary one fails")
	cmd.Flags().StringVar(&flags.AudioDir, "audio-dir", "", "Write one audio file per line into this directory instead of playing it")
	cmd.Flags().StringVar(&flags.AudioFormat, "audio-format", flags.AudioFormat, "Audio file format (wav or mp3)")

	// espeak-ng flags
	cmd.Flags().StringVar(&flags.Voice, "voice", flags.Voice, "espeak-ng voice (en-us, en-gb, en+m3, ...)")
	cmd.Flags().IntVar(&flags.Speed, "speed", flags.Speed, "espeak-ng speed in words per minute (80 to 450)")
	cmd.Flags().IntVar(&flags.Pitch, "pitch", flags.Pitch, "espeak-ng pitch (0 to 99)")
	cmd.Flags().IntVar(&flags.WordGap, "word-gap", flags.WordGap, "espeak-ng pause between words in 10ms units")

	// OpenAI flags
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI TTS model: tts-1, tts-1-hd, gpt-4o-mini-tts")
	cmd.Flags().StringVar(&flags.OpenAIVoice, "openai-voice", flags.OpenAIVoice, "OpenAI voice: alloy, ash, ballad, coral, echo, fable, onyx, nova, sage, shimmer, verse")
	cmd.Flags().Float64Var(&flags.OpenAISpeed, "openai-speed", flags.OpenAISpeed, "OpenAI speech speed (0.25 to 4.0, may be ignored by gpt-4o-mini-tts)")
	cmd.Flags().StringVar(&flags.OpenAIInstruction, "openai-instruction", flags.OpenAIInstruction, "Voice instructions for gpt-4o models")

	// Gemini flags
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini speech model")
	cmd.Flags().StringVar(&flags.GeminiVoice, "gemini-voice", flags.GeminiVoice, "Gemini prebuilt voice (Kore, Puck, Charon, ...)")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

// viperKeys maps config keys to flag names
var viperKeys = map[string]string{
	"output.format":            "output-format",
	"output.color":             "color",
	"output.strip_newline":     "strip-newline",
	"log.level":                "log-level",
	"audio.speak":              "speak",
	"audio.provider":           "audio-provider",
	"audio.fallback":           "audio-fallback",
	"audio.directory":          "audio-dir",
	"audio.format":             "audio-format",
	"audio.voice":              "voice",
	"audio.speed":              "speed",
	"audio.pitch":              "pitch",
	"audio.word_gap":           "word-gap",
	"audio.openai_model":       "openai-model",
	"audio.openai_voice":       "openai-voice",
	"audio.openai_speed":       "openai-speed",
	"audio.openai_instruction": "openai-instruction",
	"audio.gemini_model":       "gemini-model",
	"audio.gemini_voice":       "gemini-voice",
}

func lookupFlag(cmd *cobra.Command, name string) *pflag.Flag {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f
	}
	return cmd.PersistentFlags().Lookup(name)
}

func bindFlagsToViper(cmd *cobra.Command) {
	for key, name := range viperKeys {
		if f := lookupFlag(cmd, name); f != nil {
			viper.BindPFlag(key, f)
		}
	}
}

// InitConfig initializes viper configuration. A missing default config
// file is fine, a config file named with --config must be readable.
func InitConfig(cfgFile string) error {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("error getting home directory: %w", err)
		}

		// Search config in home directory with name ".readablepassword" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".readablepassword")
	}

	// Environment variables, READABLEPASSWORD_AUDIO_PROVIDER for audio.provider
	viper.SetEnvPrefix("READABLEPASSWORD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("audio.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("audio.gemini_key")
}
