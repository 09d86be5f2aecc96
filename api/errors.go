package api

import "fmt"

// Kind classifies a failed API call. Classification happens once,
// here at the HTTP boundary; display text is derived from the kind
// (and detail) later, never re-parsed from rendered messages.
type Kind int

const (
	// KindNetwork is a transport failure: the request never produced
	// an HTTP response.
	KindNetwork Kind = iota + 1
	// KindAuthentication is HTTP 401: the session is invalid or
	// expired and the user has to sign in again.
	KindAuthentication
	// KindAuthorization is HTTP 403: the session is valid but the
	// resource is off limits.
	KindAuthorization
	// KindNotFound is HTTP 404.
	KindNotFound
	// KindValidation is any other 4xx: the backend rejected the
	// request contents.
	KindValidation
	// KindServer is any 5xx.
	KindServer
)

// Error is the typed error raised by the client for any failed call.
type Error struct {
	Kind   Kind
	Status int    // HTTP status, 0 for transport failures
	Detail string // server-provided detail string, may be empty
	cause  error  // transport error for KindNetwork
}

// Error returns the server's detail string when present, otherwise
// "HTTP error: <status>". The error classifier depends on this exact
// fallback wording.
func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Status != 0 {
		return fmt.Sprintf("HTTP error: %d", e.Status)
	}
	if e.cause != nil {
		return e.cause.Error()
	}
	return "request failed"
}

func (e *Error) Unwrap() error {
	return e.cause
}

func kindOfStatus(status int) Kind {
	switch {
	case status == 401:
		return KindAuthentication
	case status == 403:
		return KindAuthorization
	case status == 404:
		return KindNotFound
	case status >= 500:
		return KindServer
	default:
		return KindValidation
	}
}
