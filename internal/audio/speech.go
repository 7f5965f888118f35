package audio

import (
	"fmt"
	"strings"

	"codeberg.org/snonux/readablepassword/internal/phonetic"
)

// maxOpenAIInput is the longest input the OpenAI speech endpoint accepts.
const maxOpenAIInput = 4096

// SpeechText turns phonetic words into text a speech engine reads
// unambiguously. Upper-case words are announced as capitals, the fallback
// word is spelled out and the words are comma separated so that engines
// pause between characters.
func SpeechText(words []string) string {
	spoken := make([]string, 0, len(words))
	for _, w := range words {
		switch {
		case w == phonetic.Fallback:
			spoken = append(spoken, "unmatched character")
		case phonetic.IsCapital(w):
			spoken = append(spoken, "capital "+strings.ToLower(w))
		default:
			spoken = append(spoken, w)
		}
	}
	return strings.Join(spoken, ", ")
}

// ValidateText checks that text can be sent to a speech engine
func ValidateText(text string, maxLen int) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text cannot be empty")
	}
	if maxLen > 0 && len(text) > maxLen {
		return fmt.Errorf("text is %d bytes long, the limit is %d", len(text), maxLen)
	}
	return nil
}
