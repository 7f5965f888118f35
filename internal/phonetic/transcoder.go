package phonetic

import "strings"

// Transcoder turns text into a sequence of phonetic words. The zero value
// is ready to use and it holds no mutable state, so one instance can be
// shared between goroutines.
type Transcoder struct{}

// NewTranscoder creates a new transcoder
func NewTranscoder() *Transcoder {
	return &Transcoder{}
}

// Transcode returns one word per character of input, each followed by a
// single space. Characters without a table entry become Fallback. Invalid
// UTF-8 counts as one character per bad byte.
func (t *Transcoder) Transcode(input string) string {
	var b strings.Builder
	b.Grow(len(input) * 6)
	for _, r := range input {
		b.WriteString(word(r))
		b.WriteByte(' ')
	}
	return b.String()
}

// Words returns the phonetic word for each character of input, in order.
func (t *Transcoder) Words(input string) []string {
	out := make([]string, 0, len(input))
	for _, r := range input {
		out = append(out, word(r))
	}
	return out
}

// Unmatched counts the characters of input that have no table entry.
func (t *Transcoder) Unmatched(input string) int {
	n := 0
	for _, r := range input {
		if _, ok := Lookup(r); !ok {
			n++
		}
	}
	return n
}

func word(r rune) string {
	if w, ok := Lookup(r); ok {
		return w
	}
	return Fallback
}

var defaultTranscoder = NewTranscoder()

// Transcode converts input with the package default transcoder.
func Transcode(input string) string {
	return defaultTranscoder.Transcode(input)
}
