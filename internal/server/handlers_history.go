package server

import (
	"net/http"
	"strconv"

	"github.com/emurenMRz/emailparser/internal/extract"
)

func (s *Server) listHistoryHandler(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.writeError(w, r, extract.Errorf(extract.EINVALID, "invalid limit %q", v))
			return
		}
		limit = n
	}

	entries, err := s.history.List(r.Context(), limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) historyEntryHandler(w http.ResponseWriter, r *http.Request, id string) {
	entry, err := s.history.Find(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (s *Server) deleteHistoryHandler(w http.ResponseWriter, r *http.Request, id string) {
	if err := s.history.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
