package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/emurenMRz/emailparser/internal/extract"
)

type errorResponse struct {
	Title   string `json:"title,omitempty"`
	Message string `json:"message"`
}

var codeStatus = map[string]int{
	extract.EINVALID:  http.StatusBadRequest,
	extract.ENOTFOUND: http.StatusNotFound,
	extract.EINTERNAL: http.StatusInternalServerError,
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps application error codes to HTTP statuses. Internal
// errors are logged and replaced with a generic message.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Message: "Request body too large."})
		return
	}

	code := extract.ErrorCode(err)
	status, ok := codeStatus[code]
	if !ok {
		status = http.StatusInternalServerError
	}
	if code == extract.EINTERNAL {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}

	resp := errorResponse{Message: extract.ErrorMessage(err)}
	if errors.Is(err, extract.ErrEmptyInput) {
		resp.Title = extract.EmptyInputTitle
	}
	writeJSON(w, status, resp)
}

func (s *Server) methodNotAllowed(w http.ResponseWriter, allow string) {
	w.Header().Set("Allow", allow)
	writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Message: "Method not allowed."})
}

func notFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, errorResponse{Message: "Not found."})
}
