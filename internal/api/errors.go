package api

import (
	"errors"
	"fmt"
	"net/http"
)

// TransportError covers network failures, non-2xx responses and bodies
// that are not the expected JSON.
type TransportError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: unexpected status %d %s", e.Op, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// AppError is a well-formed response with success set to false.
type AppError struct {
	Op      string
	Message string
}

func (e *AppError) Error() string {
	if e.Message == "" {
		return e.Op + ": request rejected"
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

func IsApp(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// UserMessage picks the text shown to the user: the server's own message
// for application failures, fallback for everything else.
func UserMessage(err error, fallback string) string {
	var ae *AppError
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return fallback
}
