package extract

import "regexp"

var addressPattern = compile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// senderPatterns are tried in order when no From header is present.
var senderPatterns = [...]*regexp.Regexp{
	compile(`from[{s}:]+([\w.-]+@[\w.-]+\.\w+)`),
	compile(`([\w.-]+@[\w.-]+\.\w+)[{s}]+sent`),
	compile(`by[{s}:]+([\w.-]+@[\w.-]+\.\w+)`),
}

// HarvestAddresses returns every address-shaped token in text, without
// duplicates, in order of first appearance.
func HarvestAddresses(text string) []string {
	matches := addressPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	addrs := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		addrs = append(addrs, m)
	}
	return addrs
}

// recoverSender guesses the sender from phrases like "from x@y.z",
// "x@y.z sent" or "by x@y.z", falling back to the first harvested address.
// addrs must not be empty.
func recoverSender(text string, addrs []string) string {
	for _, p := range senderPatterns {
		if m := p.FindStringSubmatch(text); m != nil && m[1] != "" {
			return m[1]
		}
	}
	return addrs[0]
}
