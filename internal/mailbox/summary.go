package mailbox

import (
	"sort"
	"time"

	"github.com/emurenMRz/emailparser/internal/mailheader"
	"github.com/emurenMRz/emailparser/internal/message"
)

// Summary is one row of a mailbox listing.
type Summary struct {
	ID      int    `json:"id"`
	From    string `json:"from"`
	Date    string `json:"date"`
	Subject string `json:"subject"`
	Status  string `json:"status"`
	// Timestamp is the parsed Date used for sorting.
	Timestamp time.Time `json:"-"`
}

// Summaries lists messages newest first. IDs are positions in messages.
// Messages marked deleted ("Status: D") are left out; messages without a
// Status header are reported as new ("N").
func Summaries(messages []string) []Summary {
	summaries := []Summary{}
	for i, msg := range messages {
		block, _ := mailheader.SplitHeadersFromBody(msg)
		h := mailheader.Parse(block)

		status, _ := h.Get("Status")
		if status == "D" {
			continue
		}
		if status == "" {
			status = "N"
		}

		from, _ := h.Get("From")
		subject, _ := h.Get("Subject")
		date, _ := h.Get("Date")

		summaries = append(summaries, Summary{
			ID:        i,
			From:      message.DecodeAddressList(from),
			Date:      date,
			Subject:   message.DecodeHeader(subject),
			Status:    status,
			Timestamp: mailheader.ParseDate(date),
		})
	}

	// Zero timestamps go last.
	sort.SliceStable(summaries, func(a, b int) bool {
		ta, tb := summaries[a].Timestamp, summaries[b].Timestamp
		if ta.Equal(tb) {
			return summaries[a].ID < summaries[b].ID
		}
		if ta.IsZero() {
			return false
		}
		if tb.IsZero() {
			return true
		}
		return ta.After(tb)
	})

	return summaries
}
