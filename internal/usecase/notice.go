package usecase

import (
	"fmt"

	"vitta-booking/internal/domain/booking"
	"vitta-booking/internal/pkg/errs"
)

// Notice turns an error from a booking or appointment operation into the
// message shown to the user. maxPerMonth is the configured ceiling.
func Notice(err error, maxPerMonth int) string {
	switch {
	case err == nil:
		return ""
	case errs.Is(err, booking.ErrDateAlreadySelected):
		return "You can only select one day at a time."
	case errs.Is(err, booking.ErrMonthlyLimitReached):
		return fmt.Sprintf("You have already reached the maximum of %d appointments this month.", maxPerMonth)
	case errs.Is(err, booking.ErrDateNotBookable):
		return "That day cannot be booked."
	case errs.Is(err, booking.ErrNoDateSelected):
		return "Select a day first."
	case errs.Is(err, booking.ErrAvailabilityPending):
		return "Availability for that day is still loading."
	case errs.Is(err, booking.ErrHourAlreadySelected):
		return "You can only select one time at a time."
	case errs.Is(err, booking.ErrHourNotOffered):
		return "That time is not available on the selected day."
	case errs.Is(err, booking.ErrNoProfessionalProfile):
		return "The provider has no professional profile configured."
	case errs.Is(err, booking.ErrMissingBookingData):
		return "Some details are missing to book the appointment."
	case errs.Is(err, booking.ErrSubmissionInProgress):
		return "Your appointment is being booked."
	case errs.Is(err, errs.ErrAvailabilityFetchFailed):
		return "Could not load availability for this date."
	case errs.Is(err, errs.ErrSubmissionFailed):
		return "Could not book the appointment."
	case errs.Is(err, errs.ErrProviderUnavailable):
		return "Could not load the provider."
	case errs.Is(err, errs.ErrAppointmentNotFound):
		return "Appointment not found."
	case errs.Is(err, errs.ErrActionNotAllowed):
		return "That action is not available for this appointment."
	case errs.Is(err, errs.ErrMutationFailed):
		return "Could not update the appointment."
	case errs.Is(err, errs.ErrLoadFailed):
		return "Could not load appointments."
	default:
		return "Something went wrong. Please try again."
	}
}
