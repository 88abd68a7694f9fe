package extract

import (
	"regexp"
	"strings"
)

// space is the whitespace class used wherever a pattern needs \s. Go's \s
// only covers ASCII, while pasted mail routinely carries NBSP and other
// Unicode separators between words.
const space = `\t\n\v\f\r \x{A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}`

// lineChar matches any character except a line terminator.
const lineChar = `[^\r\n\x{2028}\x{2029}]`

// compile builds a case-insensitive pattern, expanding {s} to the
// whitespace class.
func compile(expr string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + strings.ReplaceAll(expr, `{s}`, space))
}

func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', 0xA0, 0x1680,
		0x2028, 0x2029, 0x202F, 0x205F, 0x3000, 0xFEFF:
		return true
	}
	return r >= 0x2000 && r <= 0x200A
}

// trim strips leading and trailing whitespace using the same class as the
// patterns.
func trim(s string) string {
	return strings.TrimFunc(s, isSpace)
}
