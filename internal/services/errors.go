package services

import "errors"

// ValidationError reports input rejected before any store access.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

var (
	// ErrMissingFields — profile id or amount absent from a create request.
	ErrMissingFields = &ValidationError{Reason: "profile id and amount are required"}
	// ErrBelowMinimum — amount under the fixed withdrawal floor.
	ErrBelowMinimum = &ValidationError{Reason: "minimum withdrawal is 100"}

	// ErrNotEligible — the user's bank is missing, unverified or inactive
	// at withdrawal-creation time.
	ErrNotEligible = errors.New("bank must be verified before withdrawal")
	// ErrNotFound — no record matched either identifier.
	ErrNotFound = errors.New("record not found")
)
