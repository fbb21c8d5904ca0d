package thunderdome

import "errors"

// Thunderdome-specific errors.
var (
	ErrRequestFailed = errors.New("Thunderdome API request failed")
	ErrUnauthorized  = errors.New("unauthorized access to Thunderdome API")
)
