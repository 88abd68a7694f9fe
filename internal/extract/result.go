package extract

// Sentinel values for fields whose pass found nothing.
const (
	NotFound              = "Not found"
	NoURLsFound           = "No URLs found"
	NoEmailAddressesFound = "No email addresses found"
)

// Field names as they appear in rendered rows and JSON.
const (
	FieldSubject           = "subject"
	FieldFrom              = "from"
	FieldTo                = "to"
	FieldDate              = "date"
	FieldCc                = "cc"
	FieldBcc               = "bcc"
	FieldReplyTo           = "replyTo"
	FieldMessageID         = "messageId"
	FieldURLs              = "urls"
	FieldEmailAddresses    = "emailAddresses"
	FieldBody              = "body"
	FieldType              = "type"
	FieldGreeting          = "greeting"
	FieldPossibleRecipient = "possibleRecipient"
	FieldVerificationCode  = "verificationCode"
)

// Result holds the fields extracted from one piece of email text.
//
// Greeting, PossibleRecipient and VerificationCode are optional: they are
// empty when their pass did not match and are then left out of Rows.
type Result struct {
	Subject        string `json:"subject"`
	From           string `json:"from"`
	To             string `json:"to"`
	Date           string `json:"date"`
	Cc             string `json:"cc"`
	Bcc            string `json:"bcc"`
	ReplyTo        string `json:"replyTo"`
	MessageID      string `json:"messageId"`
	URLs           string `json:"urls"`
	EmailAddresses string `json:"emailAddresses"`
	Body           string `json:"body"`
	Type           Type   `json:"type"`

	Greeting          string `json:"greeting,omitempty"`
	PossibleRecipient string `json:"possibleRecipient,omitempty"`
	VerificationCode  string `json:"verificationCode,omitempty"`
}

// Row is a single rendered field.
type Row struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Rows returns the populated fields in display order.
func (r *Result) Rows() []Row {
	rows := []Row{
		{FieldSubject, r.Subject},
		{FieldFrom, r.From},
		{FieldTo, r.To},
		{FieldDate, r.Date},
		{FieldCc, r.Cc},
		{FieldBcc, r.Bcc},
		{FieldReplyTo, r.ReplyTo},
		{FieldMessageID, r.MessageID},
		{FieldURLs, r.URLs},
		{FieldEmailAddresses, r.EmailAddresses},
		{FieldBody, r.Body},
		{FieldType, string(r.Type)},
	}
	if r.Greeting != "" {
		rows = append(rows, Row{FieldGreeting, r.Greeting})
	}
	if r.PossibleRecipient != "" {
		rows = append(rows, Row{FieldPossibleRecipient, r.PossibleRecipient})
	}
	if r.VerificationCode != "" {
		rows = append(rows, Row{FieldVerificationCode, r.VerificationCode})
	}
	return rows
}

// Get returns the value of the named field and whether it is present.
func (r *Result) Get(name string) (string, bool) {
	for _, row := range r.Rows() {
		if row.Name == name {
			return row.Value, true
		}
	}
	return "", false
}
