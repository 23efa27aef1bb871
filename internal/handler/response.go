package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"go-calc-service/internal/calc"
	"go-calc-service/internal/model"
	"go-calc-service/pkg/apierror"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// writeError translates internal error kinds into the wire taxonomy. Anything
// unclassified is a 500 with no detail leakage.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	body := &model.APIError{
		Code:    "INTERNAL_ERROR",
		Message: "Unexpected server error",
	}

	var apiErr *apierror.APIError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatus
		body.Code = apiErr.Code
		body.Message = apiErr.Message
		body.Details = apiErr.Details
	case errors.Is(err, model.ErrDuplicateUser):
		status = http.StatusConflict
		body.Code = "DUPLICATE_USER"
		body.Message = "Username or email already registered"
	case errors.Is(err, model.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		body.Code = "UNAUTHORIZED"
		body.Message = "Invalid credentials"
	case errors.Is(err, model.ErrUnauthenticated):
		status = http.StatusUnauthorized
		body.Code = "UNAUTHORIZED"
		body.Message = "authentication required"
	case errors.Is(err, model.ErrUserNotFound):
		status = http.StatusNotFound
		body.Code = "NOT_FOUND"
		body.Message = "User not found"
	case errors.Is(err, model.ErrCalculationNotFound):
		status = http.StatusNotFound
		body.Code = "NOT_FOUND"
		body.Message = "Calculation not found"
	case errors.Is(err, calc.ErrDivisionByZero):
		status = http.StatusBadRequest
		body.Code = "DIVISION_BY_ZERO"
		body.Message = "Division by zero"
	case errors.Is(err, calc.ErrUnknownOperation):
		status = http.StatusBadRequest
		body.Code = "VALIDATION_ERROR"
		body.Message = "Unknown operation"
	default:
		slog.Error("unhandled error in writeError", "error", err.Error())
	}

	writeJSON(w, status, model.ErrorResponse{Error: body})
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest)
	}
	return nil
}
