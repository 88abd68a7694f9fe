package extract

import "strings"

var codePattern = compile(`code:?[{s}]*([a-zA-Z0-9]{4,8})`)

// findVerificationCode returns the first 4-8 character alphanumeric code
// following "code". It only looks when the text mentions "code:" or
// "confirmation code".
func findVerificationCode(text string) string {
	lower := strings.ToLower(text)
	if !strings.Contains(lower, "code:") && !strings.Contains(lower, "confirmation code") {
		return ""
	}
	if m := codePattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}
