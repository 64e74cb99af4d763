package errs

import "errors"

// Sentinel errors shared by the usecase layer
var (
	// Availability errors
	ErrAvailabilityFetchFailed = errors.New("availability fetch failed")

	// Reservation errors
	ErrSubmissionFailed    = errors.New("appointment submission failed")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrActionNotAllowed    = errors.New("action not allowed for appointment status")
	ErrMutationFailed      = errors.New("appointment update failed")
	ErrLoadFailed          = errors.New("appointment list load failed")

	// Provider errors
	ErrProviderUnavailable = errors.New("provider unavailable")
)
