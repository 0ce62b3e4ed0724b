package api

import "errors"

var (
	// ErrUnavailable means the request never completed: connection refused,
	// DNS failure, timeout, cancelled context.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized means the server rejected the credentials or token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound means the requested resource does not exist.
	ErrNotFound = errors.New("not found")
)
