//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"vitta-booking/internal/domain/appointment"
	"vitta-booking/internal/pkg/errs"
	"vitta-booking/internal/usecase"
	"vitta-booking/tests/common/builder"
	usecasemock "vitta-booking/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AppointmentBookTestSuite struct {
	suite.Suite
	ctx              context.Context
	mockCtrl         *gomock.Controller
	mockReservations *usecasemock.MockReservationGateway
}

func (s *AppointmentBookTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockReservations = usecasemock.NewMockReservationGateway(s.mockCtrl)
}

func (s *AppointmentBookTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAppointmentBookSuite(t *testing.T) {
	suite.Run(t, new(AppointmentBookTestSuite))
}

func (s *AppointmentBookTestSuite) loadBook(kind appointment.OwnerKind, items ...appointment.Appointment) *usecase.AppointmentBook {
	book := usecase.NewAppointmentBook(s.mockReservations, appointment.Owner{Kind: kind, ID: "owner-1"}, slog.New(slog.DiscardHandler))
	switch kind {
	case appointment.OwnerUser:
		s.mockReservations.EXPECT().AppointmentsByUser(gomock.Any(), "owner-1").Return(items, nil).Times(1)
	case appointment.OwnerProvider:
		s.mockReservations.EXPECT().AppointmentsByProvider(gomock.Any(), "owner-1").Return(items, nil).Times(1)
	}
	s.Require().NoError(book.Load(s.ctx))
	return book
}

// ================================================================================
// TestLoad
// ================================================================================

func (s *AppointmentBookTestSuite) TestLoad() {
	s.Run("success: user list", func() {
		appt := builder.NewAppointmentBuilder().BuildDomain()

		book := s.loadBook(appointment.OwnerUser, appt)

		s.Equal([]appointment.Appointment{appt}, book.Appointments())
	})

	s.Run("success: provider list", func() {
		appt := builder.NewAppointmentBuilder().BuildDomain()

		book := s.loadBook(appointment.OwnerProvider, appt)

		actions, err := book.Actions(appt.ID)
		s.Require().NoError(err)
		s.Equal([]appointment.Action{appointment.ActionConfirm, appointment.ActionCancel}, actions)
	})

	s.Run("success: empty list", func() {
		book := s.loadBook(appointment.OwnerUser)

		s.Empty(book.Appointments())
	})

	s.Run("error: gateway failure keeps the previous list", func() {
		appt := builder.NewAppointmentBuilder().BuildDomain()
		book := s.loadBook(appointment.OwnerUser, appt)
		s.mockReservations.EXPECT().AppointmentsByUser(gomock.Any(), "owner-1").
			Return(nil, errors.New("boom")).Times(1)

		err := book.Load(s.ctx)

		s.True(errs.Is(err, errs.ErrLoadFailed))
		s.Len(book.Appointments(), 1)
	})

	s.Run("error: unknown owner kind", func() {
		book := usecase.NewAppointmentBook(s.mockReservations, appointment.Owner{Kind: "clinic", ID: "x"}, slog.New(slog.DiscardHandler))

		s.True(errs.Is(book.Load(s.ctx), errs.ErrLoadFailed))
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *AppointmentBookTestSuite) TestCancel() {
	s.Run("success: confirmed appointment becomes cancelled", func() {
		appt := builder.NewAppointmentBuilder().WithStatus("confirmed").BuildDomain()
		book := s.loadBook(appointment.OwnerUser, appt)
		s.mockReservations.EXPECT().CancelAppointment(gomock.Any(), appt.ID).Return(nil, nil).Times(1)

		s.Require().NoError(book.Cancel(s.ctx, appt.ID))

		got, err := book.Get(appt.ID)
		s.Require().NoError(err)
		s.Equal(appointment.StatusCancelled, got.Status)
	})

	s.Run("error: cancelled appointment offers no action and the gateway is not called", func() {
		appt := builder.NewAppointmentBuilder().WithStatus("cancelled").BuildDomain()
		book := s.loadBook(appointment.OwnerUser, appt)

		err := book.Cancel(s.ctx, appt.ID)

		s.ErrorIs(err, usecase.ErrActionNotAllowed)
	})

	s.Run("error: gateway failure leaves the status unchanged", func() {
		appt := builder.NewAppointmentBuilder().BuildDomain()
		book := s.loadBook(appointment.OwnerUser, appt)
		s.mockReservations.EXPECT().CancelAppointment(gomock.Any(), appt.ID).
			Return(nil, errors.New("boom")).Times(1)

		err := book.Cancel(s.ctx, appt.ID)

		s.True(errs.Is(err, errs.ErrMutationFailed))
		got, _ := book.Get(appt.ID)
		s.Equal(appointment.StatusPending, got.Status)
	})

	s.Run("error: unknown id", func() {
		book := s.loadBook(appointment.OwnerUser)

		s.ErrorIs(book.Cancel(s.ctx, "missing"), usecase.ErrAppointmentNotFound)
	})
}

// ================================================================================
// TestConfirm
// ================================================================================

func (s *AppointmentBookTestSuite) TestConfirm() {
	s.Run("success: provider confirms a pending appointment", func() {
		appt := builder.NewAppointmentBuilder().BuildDomain()
		book := s.loadBook(appointment.OwnerProvider, appt)
		s.mockReservations.EXPECT().ConfirmAppointment(gomock.Any(), appt.ID).Return(nil, nil).Times(1)

		s.Require().NoError(book.Confirm(s.ctx, appt.ID))

		got, _ := book.Get(appt.ID)
		s.Equal(appointment.StatusConfirmed, got.Status)
	})

	s.Run("error: users cannot confirm", func() {
		appt := builder.NewAppointmentBuilder().BuildDomain()
		book := s.loadBook(appointment.OwnerUser, appt)

		s.ErrorIs(book.Confirm(s.ctx, appt.ID), usecase.ErrActionNotAllowed)
	})

	s.Run("error: confirmed appointment cannot be confirmed again", func() {
		appt := builder.NewAppointmentBuilder().WithStatus("confirmed").BuildDomain()
		book := s.loadBook(appointment.OwnerProvider, appt)

		s.ErrorIs(book.Confirm(s.ctx, appt.ID), usecase.ErrActionNotAllowed)
	})
}
