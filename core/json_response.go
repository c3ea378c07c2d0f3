package core

import (
	"encoding/json"
	"errors"
	"maps"
	"net/http"
)

// JSONResponse is the envelope of every API body.
type JSONResponse struct {
	Code  string         `json:"code,omitempty"`
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

// JSON writes data with status.
func JSON(w http.ResponseWriter, status int, data any) {
	write(w, status, JSONResponse{Data: data})
}

// JSONList writes a collection with its meta, such as totals.
func JSONList(w http.ResponseWriter, data any, meta map[string]any) {
	write(w, http.StatusOK, JSONResponse{Data: data, Meta: meta})
}

// JSONError writes err as an error envelope and returns the status used.
func JSONError(w http.ResponseWriter, err error) int {
	var (
		httpErr HTTPError
		status  = http.StatusInternalServerError
		detail  = &ErrorDetail{Code: ErrInternalServerError.Key, Message: http.StatusText(status)}
	)

	if valErr, ok := ValidationErrorFrom(err); ok {
		status = http.StatusUnprocessableEntity
		detail = &ErrorDetail{Code: "validation_error", Message: valErr.Error(), Details: maps.Clone(valErr)}
	} else if errors.As(err, &httpErr) {
		status = httpErr.Code
		detail = &ErrorDetail{Code: httpErr.Key, Message: http.StatusText(httpErr.Code)}
	}

	write(w, status, JSONResponse{Code: detail.Code, Error: detail})
	return status
}

func write(w http.ResponseWriter, status int, body JSONResponse) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
