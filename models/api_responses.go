package models

import "time"

// ErrorBody is the error payload every endpoint returns: {"error": "..."}.
// The React client reads .error directly, so failures are not wrapped in any
// further envelope.
type ErrorBody struct {
	Error string `json:"error"`
}

func ErrorResponse(message string) ErrorBody {
	return ErrorBody{Error: message}
}

// RateLimit describes the caller's current fixed-window budget. It is exposed
// through X-RateLimit-* headers and on 429 bodies.
type RateLimit struct {
	Limit          int       `json:"limit"`
	Remaining      int       `json:"remaining"`
	ResetAt        time.Time `json:"reset_at"`
	ResetInSeconds int       `json:"reset_in_seconds"`
}
