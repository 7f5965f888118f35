package processor

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"codeberg.org/snonux/readablepassword/internal/phonetic"
)

// Output formats accepted by --output-format
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the supported output formats
var Formats = []string{FormatText, FormatJSON, FormatYAML}

// Record is the structured form of one transcribed line
type Record struct {
	Source        string   `json:"source" yaml:"source"`
	Line          int      `json:"line" yaml:"line"`
	Transcription string   `json:"transcription" yaml:"transcription"`
	Words         []string `json:"words" yaml:"words"`
	Unmatched     int      `json:"unmatched" yaml:"unmatched"`
}

type formatter interface {
	Write(rec *Record) error
	Close() error
}

func newFormatter(format string, w io.Writer, color bool) (formatter, error) {
	switch format {
	case FormatText:
		f := &textFormatter{w: w}
		if color {
			f.style = newStyler(w)
		}
		return f, nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		return &jsonFormatter{enc: enc}, nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		return &yamlFormatter{enc: enc}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q, valid formats: %s", format, strings.Join(Formats, ", "))
	}
}

// textFormatter prints the transcription followed by a newline
type textFormatter struct {
	w     io.Writer
	style *styler
}

func (f *textFormatter) Write(rec *Record) error {
	line := rec.Transcription
	if f.style != nil {
		line = f.style.render(rec.Words)
	}
	_, err := fmt.Fprintln(f.w, line)
	return err
}

func (f *textFormatter) Close() error { return nil }

// jsonFormatter writes JSON Lines
type jsonFormatter struct {
	enc *json.Encoder
}

func (f *jsonFormatter) Write(rec *Record) error {
	return f.enc.Encode(rec)
}

func (f *jsonFormatter) Close() error { return nil }

// yamlFormatter writes one YAML document per line
type yamlFormatter struct {
	enc *yaml.Encoder
}

func (f *yamlFormatter) Write(rec *Record) error {
	return f.enc.Encode(rec)
}

func (f *yamlFormatter) Close() error {
	return f.enc.Close()
}

// styler highlights capitals and unmatched characters
type styler struct {
	capital   lipgloss.Style
	unmatched lipgloss.Style
}

func newStyler(w io.Writer) *styler {
	r := lipgloss.NewRenderer(w)
	// --color is an explicit request, so do not second guess the terminal.
	r.SetColorProfile(termenv.ANSI)

	return &styler{
		capital:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
		unmatched: r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
	}
}

func (s *styler) render(words []string) string {
	var b strings.Builder
	for _, w := range words {
		switch {
		case w == phonetic.Fallback:
			b.WriteString(s.unmatched.Render(w))
		case phonetic.IsCapital(w):
			b.WriteString(s.capital.Render(w))
		default:
			b.WriteString(w)
		}
		b.WriteByte(' ')
	}
	return b.String()
}
