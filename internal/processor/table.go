package processor

import (
	"fmt"
	"io"

	"codeberg.org/snonux/readablepassword/internal/phonetic"
)

// TableEntry is one row of the phonetic table
type TableEntry struct {
	Code      int    `json:"code" yaml:"code"`
	Character string `json:"character" yaml:"character"`
	Word      string `json:"word" yaml:"word"`
}

// TableEntries returns the phonetic table ordered by code point
func TableEntries() []TableEntry {
	table := phonetic.Table()
	entries := make([]TableEntry, 0, len(table))
	for code := 0; code < len(table); code++ {
		entries = append(entries, TableEntry{
			Code:      code,
			Character: fmt.Sprintf("%q", rune(code)),
			Word:      table[rune(code)],
		})
	}
	return entries
}

// WriteTable prints the phonetic table in the given output format
func WriteTable(w io.Writer, format string) error {
	entries := TableEntries()

	if format == FormatText {
		for _, e := range entries {
			if _, err := fmt.Fprintf(w, "%3d  %-8s %s\n", e.Code, e.Character, e.Word); err != nil {
				return err
			}
		}
		return nil
	}

	f, err := newFormatter(format, w, false)
	if err != nil {
		return err
	}
	switch f := f.(type) {
	case *jsonFormatter:
		err = f.enc.Encode(entries)
	case *yamlFormatter:
		err = f.enc.Encode(entries)
	}
	if err != nil {
		return err
	}
	return f.Close()
}
