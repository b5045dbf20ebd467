package router

import (
	"errors"
	"fmt"
)

// APIErrorPayload is the JSON body the routing API returns on 4xx/5xx
// responses.
type APIErrorPayload struct {
	Detail    string `json:"detail"`
	ErrorCode string `json:"errorCode"`
}

type APIErrorKind uint8

const (
	// InvalidParams - one or more query arguments were rejected (HTTP 400)
	InvalidParams APIErrorKind = iota + 1
	// InvalidRequestBody - the request body failed validation (HTTP 422)
	InvalidRequestBody
	// InternalProviderError - the routing API failed internally (HTTP 500)
	InternalProviderError
	// UnknownError - any other non-2xx status, payload not guaranteed
	UnknownError
)

func (k APIErrorKind) String() string {
	switch k {
	case InvalidParams:
		return "invalid params"
	case InvalidRequestBody:
		return "invalid request body"
	case InternalProviderError:
		return "internal provider error"
	default:
		return "unknown error"
	}
}

// APIError carries the classified HTTP failure along with the
// provider-supplied payload where one was present.
type APIError struct {
	Kind    APIErrorKind
	Status  int
	Payload APIErrorPayload
}

func (e *APIError) Error() string {
	if e.Payload.Detail == "" {
		return fmt.Sprintf("routing API error: %s (status %d)", e.Kind, e.Status)
	}

	return fmt.Sprintf("routing API error: %s (status %d): %s [%s]", e.Kind, e.Status, e.Payload.Detail, e.Payload.ErrorCode)
}

type NativeInputOnlyError struct {
	Symbol string
}

func (e *NativeInputOnlyError) Error() string {
	return fmt.Sprintf("only the native currency is allowed as input, got %s", e.Symbol)
}

type IncompatibleNetworksError struct {
	SymbolIn  string
	SymbolOut string
}

func (e *IncompatibleNetworksError) Error() string {
	return fmt.Sprintf(
		"cannot swap across networks: input token %s is not on the same network as output token %s",
		e.SymbolIn,
		e.SymbolOut,
	)
}

type UnsupportedNetworkError struct {
	ChainID uint64
}

func (e *UnsupportedNetworkError) Error() string {
	return fmt.Sprintf("chain %d is not supported", e.ChainID)
}

type InsufficientFundsError struct {
	Symbol string
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("not enough %s to perform this action", e.Symbol)
}

// ErrMinimumSlippageDeadline signals a 2xx response without method
// parameters: the slippage tolerance or deadline was too tight for the
// routing API to produce a submittable route.
var ErrMinimumSlippageDeadline = errors.New("slippage tolerance or deadline set too low for a submittable route")
