package extract

import "strings"

// Type is the heuristic category of an email.
type Type string

// Email types, in classification priority order.
const (
	TypeNewsletter   Type = "Newsletter/Promotional"
	TypeTransaction  Type = "Transaction/Receipt"
	TypeVerification Type = "Account Verification"
	TypeSecurity     Type = "Security/Password Reset"
	TypeStandard     Type = "Standard Communication"
)

var classifierRules = []struct {
	typ      Type
	keywords []string
}{
	{TypeNewsletter, []string{"unsubscribe", "newsletter", "subscription"}},
	{TypeTransaction, []string{"invoice", "payment", "receipt"}},
	{TypeVerification, []string{"confirm", "verification", "activate"}},
	{TypeSecurity, []string{"password", "reset", "security"}},
}

// Classify returns the first type whose keywords occur in text,
// case-insensitively. Rules are checked in priority order with no scoring,
// so a receipt that mentions a password is still a receipt.
func Classify(text string) Type {
	lower := strings.ToLower(text)
	for _, rule := range classifierRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.typ
			}
		}
	}
	return TypeStandard
}
