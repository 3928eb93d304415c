package supplier

import "fmt"

// FetchErrorType represents the type of supplier fetch error.
type FetchErrorType int

const (
	// FetchTransport indicates the remote could not be reached or answered with an error status.
	FetchTransport FetchErrorType = iota
	// FetchNoResults indicates the remote had no image for the parameters.
	FetchNoResults
	// FetchMalformedResponse indicates the remote answered with something unusable.
	FetchMalformedResponse
)

// String returns the string representation of the error type.
func (t FetchErrorType) String() string {
	switch t {
	case FetchTransport:
		return "Transport"
	case FetchNoResults:
		return "NoResults"
	case FetchMalformedResponse:
		return "MalformedResponse"
	default:
		return "Unknown"
	}
}

// FetchError represents a supplier-specific fetch failure.
type FetchError struct {
	// Type is the error type.
	Type FetchErrorType
	// Supplier is the supplier name.
	Supplier string
	// URL is the request that failed, if any.
	URL string
	// Message is the error message.
	Message string
	// Cause is the underlying error if any.
	Cause error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	msg := fmt.Sprintf("supplier %s: %s: %s", e.Supplier, e.Type, e.Message)
	if e.URL != "" {
		msg += " [" + e.URL + "]"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause error.
func (e *FetchError) Unwrap() error {
	return e.Cause
}

func newFetchError(typ FetchErrorType, supplier, url, message string, cause error) *FetchError {
	return &FetchError{
		Type:     typ,
		Supplier: supplier,
		URL:      url,
		Message:  message,
		Cause:    cause,
	}
}
