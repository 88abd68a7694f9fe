package server

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/emurenMRz/emailparser/internal/extract"
	"github.com/emurenMRz/emailparser/internal/message"
)

type parseRequest struct {
	Text   string `json:"text"`
	Decode bool   `json:"decode"`
	HTML   bool   `json:"html"`
	Save   bool   `json:"save"`
	Source string `json:"source"`
}

type parseResponse struct {
	Rows      []extract.Row   `json:"rows"`
	Result    *extract.Result `json:"result"`
	HistoryID string          `json:"historyId,omitempty"`
}

// handleParse accepts either raw text, in the charset named by the
// Content-Type, or a JSON parseRequest.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.methodNotAllowed(w, http.MethodPost)
		return
	}

	body := http.MaxBytesReader(w, r.Body, s.maxBodyBytes)
	defer body.Close()

	var req parseRequest
	mediaType, params, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if err := json.NewDecoder(body).Decode(&req); err != nil {
			s.writeError(w, r, decodeError(err))
			return
		}
	} else {
		text, err := message.ReadText(body, params["charset"])
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		req.Text = text
		req.Decode = r.URL.Query().Get("decode") == "1"
		req.Save = r.URL.Query().Get("save") == "1"
	}

	text := req.Text
	if req.Decode {
		d := *s.decoder
		d.PreferHTML = req.HTML
		decoded, err := d.Decode(text)
		if err != nil {
			s.writeError(w, r, extract.Errorf(extract.EINVALID, "cannot decode message: %v", err))
			return
		}
		text = decoded
	}

	result, err := extract.Parse(text)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := parseResponse{Rows: result.Rows(), Result: result}
	if req.Save {
		if s.history == nil {
			s.writeError(w, r, extract.Errorf(extract.EINVALID, "history is not enabled"))
			return
		}
		entry, err := s.history.Save(r.Context(), req.Source, req.Text, result)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		resp.HistoryID = entry.ID
	}

	writeJSON(w, http.StatusOK, resp)
}

func decodeError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return err
	}
	return extract.Errorf(extract.EINVALID, "invalid JSON body")
}
