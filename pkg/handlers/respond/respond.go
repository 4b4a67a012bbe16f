package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/chris/arena-ledger/pkg/api"
	"github.com/chris/arena-ledger/pkg/mapping"
	"github.com/chris/arena-ledger/pkg/settlement"
	"github.com/chris/arena-ledger/pkg/storage"
)

const INTERNAL = "INTERNAL"

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

// Decode reads a JSON request body into v. Unknown fields are rejected.
func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// BadRequest answers 400 with a validation error body.
func BadRequest(w http.ResponseWriter, message string) {
	JSON(w, http.StatusBadRequest, api.Error{Code: string(settlement.VALIDATION), Message: message})
}

// Status maps an error onto the HTTP status it is answered with.
func Status(err error) int {
	var se *settlement.Error
	if errors.As(err, &se) {
		switch se.Code {
		case settlement.NOT_FOUND:
			return http.StatusNotFound
		case settlement.INVALID_STATE:
			return http.StatusConflict
		case settlement.VALIDATION:
			return http.StatusBadRequest
		case settlement.PARTIAL_FAILURE:
			return http.StatusMultiStatus
		}
	}
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrVersionConflict), errors.Is(err, storage.ErrConditionFailed):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// Error answers with the status and code of err. Unclassified errors are
// logged and their detail is not echoed back.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status := Status(err)
	body := api.Error{Code: INTERNAL, Message: "internal error"}

	var se *settlement.Error
	switch {
	case errors.As(err, &se):
		body = api.Error{Code: string(se.Code), Message: se.Message}
	case status == http.StatusNotFound:
		body = api.Error{Code: string(settlement.NOT_FOUND), Message: err.Error()}
	case status == http.StatusConflict:
		body = api.Error{Code: string(settlement.INVALID_STATE), Message: err.Error()}
	}

	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
	JSON(w, status, body)
}

// Report answers a bulk settlement. A partial failure still carries the report
// so the caller sees which participants are outstanding.
func Report(w http.ResponseWriter, r *http.Request, report *settlement.BulkReport, err error) {
	switch {
	case err == nil:
		JSON(w, http.StatusOK, mapping.ToApiBulkReport(report))
	case report != nil && errors.Is(err, settlement.ErrPartialFailure):
		JSON(w, http.StatusMultiStatus, mapping.ToApiBulkReport(report))
	default:
		Error(w, r, err)
	}
}
