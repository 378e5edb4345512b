package server

import (
	"encoding/json"
	"net/http"

	"github.com/danehlert/courtline/pkg/errors"
)

// ErrorResponse is the standard error shape for all API errors.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// writeJSON marshals a value and writes it with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeRaw writes pre-rendered bytes with an explicit content type.
func writeRaw(w http.ResponseWriter, status int, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError maps an error to a status code and writes the standard error
// shape. Internal errors never leak their cause to the client.
func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)

	resp := ErrorResponse{}
	resp.Error.Code = string(code)
	resp.Error.Message = errors.UserMessage(err)

	writeJSON(w, statusForCode(code), resp)
}

// statusForCode maps error codes to HTTP status codes.
func statusForCode(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidDraw,
		errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidEngine,
		errors.ErrCodeInvalidConfig:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound,
		errors.ErrCodeDrawNotFound,
		errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
