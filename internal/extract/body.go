package extract

import (
	"regexp"
	"unicode/utf8"
)

const (
	maxBodyLength    = 500
	maxSubjectLength = 200
	ellipsis         = "..."
)

var (
	bodyPattern  = regexp.MustCompile(`(?s)\r?\n\r?\n(.*)`)
	lineSplitter = regexp.MustCompile(`\r?\n`)
)

// extractBody returns everything after the first blank line, trimmed. When
// there is no blank line, or nothing follows it, the whole text is the body.
func extractBody(text string) string {
	if m := bodyPattern.FindStringSubmatch(text); m != nil && m[1] != "" {
		return trim(m[1])
	}
	return text
}

// subjectFromBody returns the body's first line if it is short enough to
// pass for a subject.
func subjectFromBody(body string) (string, bool) {
	first := lineSplitter.Split(body, 2)[0]
	if utf8.RuneCountInString(first) >= maxSubjectLength {
		return "", false
	}
	return first, true
}

func truncateBody(body string) string {
	if utf8.RuneCountInString(body) <= maxBodyLength {
		return body
	}
	return string([]rune(body)[:maxBodyLength]) + ellipsis
}
