package extract

import "regexp"

// headerNames lists the headers looked up in the raw text, in result order.
var headerNames = [...]string{"Subject", "From", "To", "Date", "Cc", "Bcc", "Reply-To", "Message-ID"}

var headerPatterns = func() map[string]*regexp.Regexp {
	m := make(map[string]*regexp.Regexp, len(headerNames))
	for _, name := range headerNames {
		// The value must be followed by a line terminator, so a header on
		// the final line of input without one never matches.
		m[name] = compile(regexp.QuoteMeta(name) + `:(` + lineChar + `+?)(?:\r?\n)`)
	}
	return m
}()

// findHeader returns the trimmed value of the first line matching
// "<name>:value" anywhere in text. Matching is not anchored to the start of
// a line, so "To:" also matches inside "Reply-To:".
func findHeader(text, name string) (string, bool) {
	m := headerPatterns[name].FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return trim(m[1]), true
}

func headerOrNotFound(text, name string) string {
	if v, ok := findHeader(text, name); ok {
		return v
	}
	return NotFound
}
