// internal/app/system/httpjson/httpjson.go
package httpjson

import (
	"encoding/json"
	"errors"
	"net/http"
)

// ErrBadBody is returned by Decode when the request body is not valid JSON
// or does not fit the destination type.
var ErrBadBody = errors.New("malformed request body")

// maxBodyBytes bounds request bodies so a client cannot stream an
// arbitrarily large payload into the decoder.
const maxBodyBytes = 1 << 20

// Decode reads the request body as JSON into dst.
func Decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return ErrBadBody
	}
	return nil
}

// Write encodes v as JSON with the given status code.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorBody is the envelope for every error response.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Error writes a JSON error envelope. The code is a stable machine-readable
// identifier ("invalid_credentials", "duplicate_name", ...); message is
// optional human-readable context.
func Error(w http.ResponseWriter, status int, code, message string) {
	Write(w, status, errorBody{Error: code, Message: message})
}
