package processor

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"codeberg.org/snonux/readablepassword/internal/audio"
	"codeberg.org/snonux/readablepassword/internal/batch"
	"codeberg.org/snonux/readablepassword/internal/cli"
	"codeberg.org/snonux/readablepassword/internal/logging"
	"codeberg.org/snonux/readablepassword/internal/phonetic"
)

// PromptName is the source name of a secret typed at the prompt
const PromptName = "<prompt>"

// Stats summarizes a run
type Stats struct {
	Lines      int
	Characters int
	Unmatched  int
}

// Processor handles the main transcription logic
type Processor struct {
	flags      *cli.Flags
	transcoder *phonetic.Transcoder
	stdin      io.Reader
	format     formatter
	speaker    audio.Provider
	stats      Stats
}

// NewProcessor creates a processor writing to out. Standard input sources
// read from stdin.
func NewProcessor(flags *cli.Flags, out io.Writer, stdin io.Reader) (*Processor, error) {
	if flags.Speak && flags.AudioDir == "" && audio.IsRemote(flags.AudioProvider) {
		return nil, fmt.Errorf("the %s speech provider can only write files, set --audio-dir", flags.AudioProvider)
	}

	format, err := newFormatter(flags.OutputFormat, out, flags.Color)
	if err != nil {
		return nil, err
	}

	return &Processor{
		flags:      flags,
		transcoder: phonetic.NewTranscoder(),
		stdin:      stdin,
		format:     format,
	}, nil
}

// SetSpeaker makes the processor speak every non-empty line
func (p *Processor) SetSpeaker(speaker audio.Provider) {
	p.speaker = speaker
}

// Stats returns the counters of all lines processed so far
func (p *Processor) Stats() Stats {
	return p.stats
}

// ProcessSources transcribes every line of the named files in order. No
// names, or "-", read standard input. Processing stops at the first source
// that cannot be read; lines before it have already been written.
func (p *Processor) ProcessSources(ctx context.Context, names []string) error {
	defer p.logStats()

	for _, src := range batch.Sources(names, p.stdin) {
		if err := p.processSource(ctx, src); err != nil {
			return err
		}
	}

	return p.format.Close()
}

// ProcessSecret transcribes a single secret, typically read with the
// hidden prompt.
func (p *Processor) ProcessSecret(ctx context.Context, secret string) error {
	defer p.logStats()

	if err := p.processLine(ctx, PromptName, 1, secret); err != nil {
		return err
	}
	return p.format.Close()
}

func (p *Processor) processSource(ctx context.Context, src batch.Source) error {
	logging.Logger().Debug("Reading source", zap.String("source", src.Name))

	r, err := src.Open()
	if err != nil {
		return err
	}
	defer r.Close()

	n := 0
	var lineErr error
	err = batch.ReadLines(r, func(line string) error {
		n++
		lineErr = p.processLine(ctx, src.Name, n, line)
		return lineErr
	})
	if err != nil && lineErr == nil {
		return &batch.SourceError{Name: src.Name, Err: err}
	}
	return err
}

func (p *Processor) processLine(ctx context.Context, source string, n int, line string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if p.flags.StripNewline {
		line = batch.StripNewline(line)
	}

	words := p.transcoder.Words(line)
	rec := &Record{
		Source:        source,
		Line:          n,
		Transcription: p.transcoder.Transcode(line),
		Words:         words,
		Unmatched:     p.transcoder.Unmatched(line),
	}

	if err := p.format.Write(rec); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	p.stats.Lines++
	p.stats.Characters += len(words)
	p.stats.Unmatched += rec.Unmatched

	if p.speaker == nil || len(words) == 0 {
		return nil
	}
	return p.speak(ctx, words)
}

func (p *Processor) speak(ctx context.Context, words []string) error {
	outputFile := ""
	if p.flags.AudioDir != "" {
		outputFile = filepath.Join(p.flags.AudioDir, AudioFileName(p.stats.Lines, p.flags.AudioFormat))
	}

	logging.Logger().Debug("Speaking line",
		zap.Int("line", p.stats.Lines),
		zap.String("provider", p.speaker.Name()),
		zap.String("file", outputFile))

	if err := p.speaker.GenerateAudio(ctx, audio.SpeechText(words), outputFile); err != nil {
		return fmt.Errorf("speech failed for line %d: %w", p.stats.Lines, err)
	}
	return nil
}

// AudioFileName names the audio file of the n-th output line
func AudioFileName(n int, format string) string {
	return fmt.Sprintf("line_%04d.%s", n, strings.TrimPrefix(format, "."))
}

func (p *Processor) logStats() {
	logging.Logger().Info("Transcription finished",
		zap.Int("lines", p.stats.Lines),
		zap.Int("characters", p.stats.Characters),
		zap.Int("unmatched", p.stats.Unmatched))
}
