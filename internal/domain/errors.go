package domain

import "github.com/cockroachdb/errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrOrderCreation    = errors.New("order creation failed")
	ErrIDExhausted      = errors.New("id space exhausted")
)

// Invalid builds a client-facing validation error. The message is surfaced
// verbatim in the 400 response, so it must not carry internals.
func Invalid(msg string) error {
	return errors.Mark(errors.New(msg), ErrInvalidInput)
}
