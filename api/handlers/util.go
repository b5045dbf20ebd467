package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sprintertech/sprinter-quoter/protocol/router"
)

// 499 is the de facto client-closed-request status
const statusClientClosedRequest = 499

func JSONError(w http.ResponseWriter, err error, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	type errorResponse struct {
		Code   int    `json:"code"`
		Reason string `json:"reason"`
	}
	resp := errorResponse{
		Reason: err.Error(),
		Code:   code,
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// statusForError translates pipeline errors into HTTP statuses. Validation
// failures are the caller's fault, API errors keep their upstream status,
// and everything else is a bad gateway.
func statusForError(err error) int {
	var nativeErr *router.NativeInputOnlyError
	var netErr *router.IncompatibleNetworksError
	var unsupportedErr *router.UnsupportedNetworkError
	var fundsErr *router.InsufficientFundsError
	var apiErr *router.APIError

	switch {
	case errors.As(err, &nativeErr),
		errors.As(err, &netErr),
		errors.As(err, &unsupportedErr),
		errors.As(err, &fundsErr):
		return http.StatusBadRequest
	case errors.Is(err, router.ErrMinimumSlippageDeadline):
		return http.StatusConflict
	case errors.Is(err, context.Canceled):
		return statusClientClosedRequest
	case errors.As(err, &apiErr):
		switch apiErr.Kind {
		case router.InvalidParams:
			return http.StatusBadRequest
		case router.InvalidRequestBody:
			return http.StatusUnprocessableEntity
		default:
			return http.StatusBadGateway
		}
	default:
		return http.StatusBadGateway
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(v)
}
