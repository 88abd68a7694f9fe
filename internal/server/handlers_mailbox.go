package server

import (
	"net/http"
	"strconv"

	"github.com/emurenMRz/emailparser/internal/extract"
	"github.com/emurenMRz/emailparser/internal/mailbox"
)

func (s *Server) mailboxesHandler(w http.ResponseWriter, r *http.Request) {
	names, err := s.mailboxes.List()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, names)
}

func (s *Server) listEmailsHandler(w http.ResponseWriter, r *http.Request, mailboxName string) {
	messages, err := s.mailboxes.Messages(mailboxName)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mailbox.Summaries(messages))
}

func (s *Server) emailFieldsHandler(w http.ResponseWriter, r *http.Request, mailboxName, emailIDStr string) {
	emailID, err := strconv.Atoi(emailIDStr)
	if err != nil {
		s.writeError(w, r, extract.Errorf(extract.EINVALID, "invalid email ID %q", emailIDStr))
		return
	}

	messages, err := s.mailboxes.Messages(mailboxName)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if emailID < 0 || emailID >= len(messages) {
		s.writeError(w, r, extract.Errorf(extract.ENOTFOUND, "email %d not found", emailID))
		return
	}

	text := messages[emailID]
	if r.URL.Query().Get("raw") != "1" {
		if decoded, err := s.decoder.Decode(text); err != nil {
			s.logger.Warn("falling back to raw message", "mailbox", mailboxName, "id", emailID, "error", err)
		} else {
			text = decoded
		}
	}

	result, err := extract.Parse(text)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, parseResponse{Rows: result.Rows(), Result: result})
}
