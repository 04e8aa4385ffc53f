package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// ResponseJSON encodes v as JSON and writes it to the response with
// the given status code. The Content-Type header is set to
// "application/json". If encoding fails, an HTTP 500 Internal Server
// Error is written instead.
//
// Field naming follows the struct's json tags; handler result types
// use camelCase tags and represent enums as strings so that the wire
// shape is stable across languages.
func ResponseJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(buf.Bytes())
}
