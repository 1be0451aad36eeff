package domain

import "errors"

var (
	ErrRoundNotFound   = errors.New("exam round not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrRoundFull         = errors.New("exam round is full")
	ErrRoundClosed       = errors.New("exam round is not open for booking")
	ErrBookingNotPending = errors.New("booking is not in pending status")
	ErrDuplicateRequest  = errors.New("submission with this idempotency key is in progress")
)

var (
	ErrIdempotencyKeyReused = errors.New("idempotency key was already used for a different submission")
)

var (
	ErrEvidenceUpload     = errors.New("failed to upload evidence, please try again")
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)

var (
	ErrValidation = errors.New("validation error")
)
