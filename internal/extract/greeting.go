package extract

var greetingPattern = compile(`(dear|hello|hi|hey)[{s}]+([^{s},.]+)`)

// findGreeting returns the first salutation phrase in text and the name
// that follows it.
func findGreeting(text string) (phrase, name string, ok bool) {
	m := greetingPattern.FindStringSubmatch(text)
	if m == nil || m[2] == "" {
		return "", "", false
	}
	return m[0], m[2], true
}
