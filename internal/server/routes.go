package server

import (
	"net/http"
	"strings"
)

func (s *Server) handleMailboxRoutes(w http.ResponseWriter, r *http.Request) {
	if s.mailboxes == nil {
		notFound(w)
		return
	}
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, http.MethodGet)
		return
	}

	parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/api/mailboxes/"), "/")

	switch {
	case len(parts) == 1 && parts[0] == "":
		s.mailboxesHandler(w, r)
	case len(parts) == 2 && parts[1] == "emails":
		s.listEmailsHandler(w, r, parts[0])
	case len(parts) == 4 && parts[1] == "emails" && parts[3] == "fields":
		s.emailFieldsHandler(w, r, parts[0], parts[2])
	default:
		notFound(w)
	}
}

func (s *Server) handleHistoryRoutes(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		notFound(w)
		return
	}

	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/history"), "/")
	if strings.Contains(id, "/") {
		notFound(w)
		return
	}

	switch {
	case id == "" && r.Method == http.MethodGet:
		s.listHistoryHandler(w, r)
	case id == "":
		s.methodNotAllowed(w, http.MethodGet)
	case r.Method == http.MethodGet:
		s.historyEntryHandler(w, r, id)
	case r.Method == http.MethodDelete:
		s.deleteHistoryHandler(w, r, id)
	default:
		s.methodNotAllowed(w, "GET, DELETE")
	}
}
