package mailheader

import (
	"net/mail"
	"regexp"
	"strings"
)

var (
	// Headers RFC 5322 requires in every message.
	requiredHeaders = []string{"From", "Date", "Message-ID"}

	messageIDRegex = regexp.MustCompile(`^<[^<>@]+@[^<>@]+>$`)
)

// Validate checks a header block for missing or malformed required fields
// and for the mbox "Status: D" deletion marker.
func Validate(block string, msgIndex int) []Finding {
	var findings []Finding

	h := Parse(block)

	for _, name := range requiredHeaders {
		if !h.Has(name) {
			findings = append(findings, Finding{
				MsgIndex: msgIndex,
				Field:    name,
				Status:   StatusMissing,
			})
		}
	}

	if from, exists := h.Get("From"); exists && !isValidFrom(from) {
		findings = append(findings, Finding{
			MsgIndex: msgIndex,
			Field:    "From",
			Status:   StatusInvalid,
			Detail:   "Invalid From address format",
		})
	}

	if date, exists := h.Get("Date"); exists && ParseDate(date).IsZero() {
		findings = append(findings, Finding{
			MsgIndex: msgIndex,
			Field:    "Date",
			Status:   StatusInvalid,
			Detail:   "Invalid Date format",
		})
	}

	if msgID, exists := h.Get("Message-ID"); exists && !isValidMessageID(msgID) {
		findings = append(findings, Finding{
			MsgIndex: msgIndex,
			Field:    "Message-ID",
			Status:   StatusInvalid,
			Detail:   "Invalid Message-ID format",
		})
	}

	if status, exists := h.Get("Status"); exists && status == "D" {
		findings = append(findings, Finding{
			MsgIndex: msgIndex,
			Field:    "Status",
			Status:   StatusDeleted,
		})
	}

	return findings
}

func isValidFrom(from string) bool {
	_, err := mail.ParseAddressList(from)
	return err == nil
}

func isValidMessageID(msgID string) bool {
	msgID = strings.Trim(msgID, "<>")
	return messageIDRegex.MatchString("<" + msgID + ">")
}
