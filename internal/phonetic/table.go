package phonetic

// Fallback is emitted for every character without a table entry.
const Fallback = "UNMATCHED"

// words holds the phonetic word for every ASCII code point. The array is
// never written after initialization.
var words = [128]string{
	// 0x00-0x0F: control characters
	"nul", "soh", "stx", "etx", "eot", "enq", "ack", "bel",
	"bs", "tab", "lf", "vt", "ff", "cr", "so", "si",
	// 0x10-0x1F: more control characters
	"dle", "dc1", "dc2", "dc3", "dc4", "nak", "syn", "etb",
	"can", "em", "sub", "esc", "fs", "gs", "rs", "us",
	// 0x20-0x2F: space and punctuation
	"space",            // ' '
	"exclamationpoint", // '!'
	"doublequote",      // '"'
	"hash",             // '#'
	"dollarsign",       // '$'
	"percent",          // '%'
	"ampersand",        // '&'
	"singlequote",      // '\''
	"leftparentheses",  // '('
	"rightparentheses", // ')'
	"asterisk",         // '*'
	"plus",             // '+'
	"comma",            // ','
	"minus",            // '-'
	"period",           // '.'
	"forwardslash",     // '/'
	// 0x30-0x39: digits
	"zero", "one", "two", "three", "four",
	"five", "six", "seven", "eight", "niner",
	// 0x3A-0x40
	"colon",        // ':'
	"semicolon",    // ';'
	"lessthan",     // '<'
	"equals",       // '='
	"greaterthan",  // '>'
	"questionmark", // '?'
	"at",           // '@'
	// 0x41-0x5A: uppercase A-Z
	"ALFA", "BRAVO", "CHARLIE", "DELTA", "ECHO", "FOXTROT", "GOLF",
	"HOTEL", "INDIA", "JULIETT", "KILO", "LIMA", "MIKE", "NOVEMBER",
	"OSCAR", "PAPA", "QUEBEC", "ROMEO", "SIERRA", "TANGO", "UNIFORM",
	"VICTOR", "WHISKEY", "X-RAY", "YANKEE", "ZULU",
	// 0x5B-0x60
	"leftsquarebracket",  // '['
	"backslash",          // '\\'
	"rightsquarebracket", // ']'
	"caret",              // '^'
	"underscore",         // '_'
	"backquote",          // '`'
	// 0x61-0x7A: lowercase a-z
	"alfa", "bravo", "charlie", "delta", "echo", "foxtrot", "golf",
	"hotel", "india", "juliett", "kilo", "lima", "mike", "november",
	"oscar", "papa", "quebec", "romeo", "sierra", "tango", "uniform",
	"victor", "whiskey", "x-ray", "yankee", "zulu",
	// 0x7B-0x7F
	"leftcurlybracket",  // '{'
	"verticalpipe",      // '|'
	"rightcurlybracket", // '}'
	"tilde",             // '~'
	"del",               // 0x7F
}

// Lookup returns the phonetic word for r. The boolean is false for code
// points outside 0-127.
func Lookup(r rune) (string, bool) {
	if r < 0 || int(r) >= len(words) {
		return "", false
	}
	return words[r], true
}

// Table returns a copy of the mapping keyed by character.
func Table() map[rune]string {
	t := make(map[rune]string, len(words))
	for i, w := range words {
		t[rune(i)] = w
	}
	return t
}

// IsCapital reports whether w is the word of an upper-case letter.
func IsCapital(w string) bool {
	if len(w) == 0 || w == Fallback {
		return false
	}
	return w[0] >= 'A' && w[0] <= 'Z'
}
