package extract

import "strings"

// Empty input warning shown to users.
const (
	EmptyInputTitle   = "Empty Input"
	EmptyInputMessage = "Please enter or upload an email to parse."
)

// ErrEmptyInput is returned by Parse for blank input.
var ErrEmptyInput = &Error{Code: EINVALID, Message: EmptyInputMessage}

// Parse extracts every field from text. Blank input returns
// ErrEmptyInput; any other input yields a fully populated Result.
func Parse(text string) (*Result, error) {
	if trim(text) == "" {
		return nil, ErrEmptyInput
	}

	r := &Result{
		Subject:   headerOrNotFound(text, "Subject"),
		From:      headerOrNotFound(text, "From"),
		To:        headerOrNotFound(text, "To"),
		Date:      headerOrNotFound(text, "Date"),
		Cc:        headerOrNotFound(text, "Cc"),
		Bcc:       headerOrNotFound(text, "Bcc"),
		ReplyTo:   headerOrNotFound(text, "Reply-To"),
		MessageID: headerOrNotFound(text, "Message-ID"),
	}

	addrs := HarvestAddresses(text)
	if r.From == NotFound && len(addrs) > 0 {
		r.From = recoverSender(text, addrs)
	}

	r.URLs = joinOr(FindURLs(text), NoURLsFound)
	r.EmailAddresses = joinOr(addrs, NoEmailAddressesFound)

	body := extractBody(text)
	if r.Subject == NotFound && body != "" {
		if subject, ok := subjectFromBody(body); ok {
			r.Subject = subject
		}
	}
	r.Body = truncateBody(body)

	r.Type = Classify(text)

	if phrase, name, ok := findGreeting(text); ok {
		r.Greeting = phrase
		if r.To == NotFound {
			r.PossibleRecipient = name
		}
	}

	r.VerificationCode = findVerificationCode(text)

	return r, nil
}

func joinOr(values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	return strings.Join(values, ", ")
}
