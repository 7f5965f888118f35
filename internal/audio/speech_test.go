package audio

import (
	"strings"
	"testing"

	"codeberg.org/snonux/readablepassword/internal/phonetic"
)

func TestSpeechText(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		want  string
	}{
		{"empty", nil, ""},
		{"lower case", []string{"alfa", "two"}, "alfa, two"},
		{"capitals", []string{"SIERRA", "oscar"}, "capital sierra, oscar"},
		{"hyphenated capital", []string{"X-RAY"}, "capital x-ray"},
		{"fallback", []string{phonetic.Fallback, "lf"}, "unmatched character, lf"},
		{"punctuation words", []string{"forwardslash", "space"}, "forwardslash, space"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SpeechText(tt.words); got != tt.want {
				t.Errorf("SpeechText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSpeechTextFromTranscoder(t *testing.T) {
	got := SpeechText(phonetic.NewTranscoder().Words("Sa2"))
	want := "capital sierra, alfa, two"
	if got != want {
		t.Errorf("SpeechText() = %q, want %q", got, want)
	}
}

func TestValidateText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		maxLen  int
		wantErr string
	}{
		{"valid", "alfa", 10, ""},
		{"no limit", strings.Repeat("a", 10000), 0, ""},
		{"empty", "", 10, "text cannot be empty"},
		{"whitespace", " \t\n", 10, "text cannot be empty"},
		{"too long", "alfa, bravo", 4, "text is 11 bytes long, the limit is 4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateText(tt.text, tt.maxLen)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("ValidateText() error = %v", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Errorf("ValidateText() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}
