package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/emurenMRz/emailparser/internal/extract"
)

func writeRows(w io.Writer, r *extract.Result) error {
	for _, row := range r.Rows() {
		if _, err := fmt.Fprintf(w, "%s: %s\n", row.Name, row.Value); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
