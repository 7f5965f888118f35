package batch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// StdinArg selects standard input when given as a file name.
const StdinArg = "-"

// StdinName is the display name of standard input.
const StdinName = "<stdin>"

// SourceError reports an input that could not be opened or read
type SourceError struct {
	Name string
	Err  error
}

func (e *SourceError) Error() string {
	if errors.Is(e.Err, os.ErrNotExist) {
		return fmt.Sprintf("cannot read %s: file does not exist", e.Name)
	}
	return fmt.Sprintf("cannot read %s: %v", e.Name, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Source is one input stream, either a named file or standard input
type Source struct {
	Name    string
	isStdin bool
	stdin   io.Reader
}

// Sources maps command-line arguments to input sources. No arguments means
// standard input, and so does StdinArg.
func Sources(args []string, stdin io.Reader) []Source {
	if len(args) == 0 {
		return []Source{{Name: StdinName, isStdin: true, stdin: stdin}}
	}

	sources := make([]Source, 0, len(args))
	for _, arg := range args {
		if arg == StdinArg {
			sources = append(sources, Source{Name: StdinName, isStdin: true, stdin: stdin})
			continue
		}
		sources = append(sources, Source{Name: arg})
	}
	return sources
}

// IsStdin reports whether the source reads standard input
func (s Source) IsStdin() bool {
	return s.isStdin
}

// Open opens the source for reading. Standard input is never closed.
func (s Source) Open() (io.ReadCloser, error) {
	if s.isStdin {
		if s.stdin == nil {
			return nil, &SourceError{Name: s.Name, Err: os.ErrClosed}
		}
		return io.NopCloser(s.stdin), nil
	}

	f, err := os.Open(s.Name)
	if err != nil {
		return nil, &SourceError{Name: s.Name, Err: err}
	}
	return f, nil
}

// ReadLines calls fn for every line of r, terminator included. The last
// line is passed even without a trailing newline. There is no limit on
// line length.
func ReadLines(r io.Reader, fn func(line string) error) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			if ferr := fn(line); ferr != nil {
				return ferr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// StripNewline removes one trailing "\n" or "\r\n" from line
func StripNewline(line string) string {
	if strings.HasSuffix(line, "\r\n") {
		return line[:len(line)-2]
	}
	return strings.TrimSuffix(line, "\n")
}
