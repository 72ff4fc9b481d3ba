package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error            string            `json:"error"`
	ErrorDescription string            `json:"error_description,omitempty"`
	Fields           map[string]string `json:"fields,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type header and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes an ErrorResponse.
func WriteError(w http.ResponseWriter, code int, errCode, description string) {
	WriteJSON(w, code, ErrorResponse{Error: errCode, ErrorDescription: description})
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// Assignment listings reveal who buys for whom and must not be cached.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// DecodeJSON strictly decodes a single JSON object from the request body into
// dst. Unknown fields and trailing data are rejected.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return errors.New("request body is empty")
		case errors.As(err, &maxErr):
			return fmt.Errorf("request body exceeds %d bytes", maxErr.Limit)
		default:
			return fmt.Errorf("malformed JSON: %w", err)
		}
	}

	if dec.More() {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}
