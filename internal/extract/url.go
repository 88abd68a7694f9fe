package extract

var urlPattern = compile(`https?://[^{s}]+`)

// FindURLs returns every http or https URL in text in order of appearance.
// Duplicates are kept.
func FindURLs(text string) []string {
	return urlPattern.FindAllString(text, -1)
}
