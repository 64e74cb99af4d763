//go:build unit

package usecase_test

import (
	"errors"
	"testing"

	"vitta-booking/internal/domain/booking"
	"vitta-booking/internal/pkg/errs"
	"vitta-booking/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestNotice(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "second date", err: booking.ErrDateAlreadySelected, want: "You can only select one day at a time."},
		{name: "second hour", err: booking.ErrHourAlreadySelected, want: "You can only select one time at a time."},
		{name: "monthly limit uses the ceiling", err: booking.ErrMonthlyLimitReached, want: "You have already reached the maximum of 3 appointments this month."},
		{name: "missing profile", err: booking.ErrNoProfessionalProfile, want: "The provider has no professional profile configured."},
		{name: "wrapped domain error", err: errs.Wrap(booking.ErrDateNotBookable, "select"), want: "That day cannot be booked."},
		{name: "marked fetch failure", err: errs.Mark(errors.New("timeout"), errs.ErrAvailabilityFetchFailed), want: "Could not load availability for this date."},
		{name: "marked submission failure", err: errs.Mark(errors.New("500"), errs.ErrSubmissionFailed), want: "Could not book the appointment."},
		{name: "joined load failures", err: errors.Join(errs.Mark(errors.New("x"), errs.ErrLoadFailed)), want: "Could not load appointments."},
		{name: "unknown", err: errors.New("boom"), want: "Something went wrong. Please try again."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, usecase.Notice(tt.err, 3))
		})
	}
}
