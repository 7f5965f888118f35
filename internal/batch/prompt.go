package batch

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when a hidden prompt is requested without a
// terminal to read from.
var ErrNotTerminal = errors.New("standard input is not a terminal")

var (
	isTerminal   = term.IsTerminal
	readPassword = term.ReadPassword
)

// IsTerminal reports whether fd refers to a terminal
func IsTerminal(fd int) bool {
	return isTerminal(fd)
}

// ReadSecret prints prompt to w and reads one line from the terminal fd
// without echoing it. The returned secret has no line terminator.
func ReadSecret(fd int, w io.Writer, prompt string) (string, error) {
	if !isTerminal(fd) {
		return "", ErrNotTerminal
	}

	if prompt != "" {
		fmt.Fprint(w, prompt)
	}
	secret, err := readPassword(fd)
	// The terminal swallowed the user's newline.
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("failed to read secret: %w", err)
	}

	return string(secret), nil
}
