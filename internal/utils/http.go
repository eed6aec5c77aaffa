package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxRequestBodySize bounds every JSON request body read by [DecodeJSON].
const MaxRequestBodySize = 1 << 20

// WriteJSON writes data as an application/json body with the given status
// and returns the number of body bytes written. A value that cannot be
// encoded produces a plain 500 instead.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("error encoding response body: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}

// DecodeJSON strictly decodes the request body into dst. Unknown fields,
// trailing data and bodies larger than [MaxRequestBodySize] are rejected.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxRequestBodySize))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return fmt.Errorf("error decoding request body: %w", err)
	}

	if decoder.More() {
		return errors.New("request body must contain a single JSON value")
	}

	return nil
}
