package webseer

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind identifies the category of an API failure.
type Kind int

const (
	// KindAuthentication is a missing API key at construction or a server 401.
	KindAuthentication Kind = iota
	// KindInsufficientCredits is a server 402.
	KindInsufficientCredits
	// KindInactiveAccount is a server 403.
	KindInactiveAccount
	// KindNotFound is a server 404.
	KindNotFound
	// KindTimeout is an elapsed deadline, caller cancellation, or a server 504.
	KindTimeout
	// KindValidation is a server 400.
	KindValidation
	// KindAPI is any other non-2xx status.
	KindAPI
	// KindNetwork is a transport failure with no HTTP response.
	KindNetwork
	// KindInvalidResponse is a 2xx response whose body fails shape validation.
	KindInvalidResponse
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindAuthentication:
		return "authentication"
	case KindInsufficientCredits:
		return "insufficient_credits"
	case KindInactiveAccount:
		return "inactive_account"
	case KindNotFound:
		return "not_found"
	case KindTimeout:
		return "timeout"
	case KindValidation:
		return "validation"
	case KindAPI:
		return "api"
	case KindNetwork:
		return "network"
	case KindInvalidResponse:
		return "invalid_response"
	}
	return "unknown"
}

// APIError is the failure value produced at the error-mapping boundary.
// StatusCode is 0 only for transport failures with no HTTP response. Detail
// carries the server-provided explanation when one was present. Raw holds the
// original error body for diagnostics.
//
// Callers branch on Kind for fine-grained handling, or use errors.As with
// *APIError to handle all API failures uniformly.
type APIError struct {
	Kind       Kind
	StatusCode int
	Detail     string
	Raw        []byte
}

// Error implements the error interface.
func (e *APIError) Error() string {
	switch e.Kind {
	case KindAuthentication:
		return withDetail("Invalid or missing API key (check your WEBSEER_API_KEY)", e.Detail)
	case KindInsufficientCredits:
		return withDetail("Insufficient credits (top up your account at the Webseer dashboard)", e.Detail)
	case KindInactiveAccount:
		return withDetail("Account is inactive", e.Detail)
	case KindNotFound:
		return withDetail("Resource not found", e.Detail)
	case KindTimeout:
		return withDetail("Request timed out", e.Detail)
	case KindValidation:
		return "Invalid request: " + e.Detail
	case KindNetwork:
		return "Network error: " + e.Detail
	case KindInvalidResponse:
		return withDetail("Invalid response from API", e.Detail)
	}
	return fmt.Sprintf("API error (%d): %s", e.StatusCode, e.Detail)
}

func withDetail(message, detail string) string {
	if detail == "" {
		return message
	}
	return message + ": " + detail
}

// Timeout reports whether the failure was caused by cancellation or a 504.
func (e *APIError) Timeout() bool {
	return e.Kind == KindTimeout
}

// IsUnauthorized reports whether the failure indicates a key or account problem.
func (e *APIError) IsUnauthorized() bool {
	return e.Kind == KindAuthentication || e.Kind == KindInactiveAccount
}

// IsNotFound reports whether the failure indicates a missing resource.
func (e *APIError) IsNotFound() bool {
	return e.Kind == KindNotFound
}

// AsAPIError unwraps err into an *APIError if one is in its chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// mapStatus maps a non-2xx HTTP status to its error kind. The mapping is
// total: statuses without a dedicated kind become KindAPI carrying the exact
// status.
func mapStatus(status int, detail string, raw []byte) *APIError {
	kind := KindAPI
	switch status {
	case http.StatusUnauthorized:
		kind = KindAuthentication
	case http.StatusPaymentRequired:
		kind = KindInsufficientCredits
	case http.StatusForbidden:
		kind = KindInactiveAccount
	case http.StatusNotFound:
		kind = KindNotFound
	case http.StatusGatewayTimeout:
		kind = KindTimeout
	case http.StatusBadRequest:
		kind = KindValidation
	}
	return &APIError{Kind: kind, StatusCode: status, Detail: detail, Raw: raw}
}
