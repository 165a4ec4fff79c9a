package services

import "errors"

// Operation errors returned by the store. Controllers translate these
// into HTTP responses and decide which degrade to a default value; the
// store itself never swallows a cause.
var (
	// ErrStoreUnavailable wraps any failure to reach the spreadsheet
	ErrStoreUnavailable = errors.New("appointment store unavailable")

	// ErrNotFound means no appointment row matches the requested ID
	ErrNotFound = errors.New("appointment not found")

	// ErrValidation means a required booking field is missing or malformed
	ErrValidation = errors.New("invalid appointment data")

	// ErrInvalidTransition means the requested status change is not a
	// legal lifecycle edge
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrSlotTaken means the requested time was booked by someone else
	// between availability lookup and creation
	ErrSlotTaken = errors.New("slot no longer available")
)
