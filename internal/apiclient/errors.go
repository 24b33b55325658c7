package apiclient

import (
	"errors"
)

var (
	// ErrTransport wraps failures where no HTTP response could be read.
	ErrTransport = errors.New("transport error")
	// ErrDecode wraps response bodies that are not the JSON the endpoint promises.
	ErrDecode = errors.New("invalid response")
)

// APIError is a failure reported by the remote service, either through
// "success": false or through an error status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}
