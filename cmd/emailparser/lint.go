package main

import (
	"fmt"
	"io"
	"os"

	"github.com/emurenMRz/emailparser/internal/mailbox"
	"github.com/emurenMRz/emailparser/internal/mailheader"
	"github.com/emurenMRz/emailparser/internal/message"
)

// Run executes the lint command.
func (c *LintCmd) Run(deps *Dependencies) error {
	f, err := os.Open(c.File)
	if err != nil {
		return fmt.Errorf("open %s: %w", c.File, err)
	}
	defer f.Close()

	var messages []string
	if c.Mbox {
		if messages, err = mailbox.ReadMessages(f); err != nil {
			return err
		}
	} else {
		text, err := message.ReadText(f, "")
		if err != nil {
			return err
		}
		messages = []string{text}
	}

	var findings []mailheader.Finding
	for i, msg := range messages {
		headers, _ := mailheader.SplitHeadersFromBody(msg)
		findings = append(findings, mailheader.Validate(headers, i)...)
	}

	writeFindings(deps.Stdout, findings)
	return nil
}

func writeFindings(w io.Writer, findings []mailheader.Finding) {
	if len(findings) == 0 {
		fmt.Fprintln(w, "No validation errors found.")
		return
	}

	for _, f := range findings {
		switch f.Status {
		case mailheader.StatusMissing:
			fmt.Fprintf(w, "Message %d: %s header is missing\n", f.MsgIndex, f.Field)
		case mailheader.StatusInvalid:
			fmt.Fprintf(w, "Message %d: %s header is invalid (%s)\n", f.MsgIndex, f.Field, f.Detail)
		case mailheader.StatusDeleted:
			fmt.Fprintf(w, "Message %d: Status = D (marked deleted)\n", f.MsgIndex)
		}
	}
}
