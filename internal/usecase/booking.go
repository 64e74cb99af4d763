package usecase

import (
	"context"
	"errors"
	"log/slog"

	"vitta-booking/internal/domain/appointment"
	"vitta-booking/internal/domain/booking"
	"vitta-booking/internal/pkg/errs"
	"vitta-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type BookingService struct {
	rules        *appointment.Rules
	availability AvailabilityGateway
	reservations ReservationGateway
	providers    ProviderDirectory
	logger       *slog.Logger
}

func NewBookingService(
	rules *appointment.Rules,
	availability AvailabilityGateway,
	reservations ReservationGateway,
	providers ProviderDirectory,
	logger *slog.Logger,
) *BookingService {
	return &BookingService{
		rules:        rules,
		availability: availability,
		reservations: reservations,
		providers:    providers,
		logger:       logger,
	}
}

func (s *BookingService) MaxPerMonth() int {
	return s.rules.MaxPerMonth()
}

// NewSession binds a booking form to one provider and one user. Call Load
// before the first intent so the provider profile and monthly ledger are known.
func (s *BookingService) NewSession(providerID, userID string) *BookingSession {
	return &BookingSession{
		service:    s,
		machine:    booking.NewMachine(s.rules),
		providerID: providerID,
		userID:     userID,
		logger:     s.logger.With(slog.String("provider_id", providerID), slog.String("user_id", userID)),
	}
}

// OpenSession creates a session and loads it. The session is returned even
// when loading fails partially, together with the joined error.
func (s *BookingService) OpenSession(ctx context.Context, providerID, userID string) (*BookingSession, error) {
	session := s.NewSession(providerID, userID)
	return session, session.Load(ctx)
}

// SubmitTicket is a prepared submission. Send may run off the event loop.
type SubmitTicket struct {
	Request        appointment.Request
	IdempotencyKey uuid.UUID
}

type BookingSession struct {
	service    *BookingService
	machine    *booking.Machine
	providerID string
	userID     string
	provider   *readmodel.ProviderRM
	logger     *slog.Logger

	// retries of the same slot reuse the same key
	pendingSlot *booking.Slot
	pendingKey  uuid.UUID
}

// Load fetches the provider and the user's active appointments. Failures are
// returned joined but leave the session usable: a missing provider blocks
// submission, a missing ledger counts as no appointments.
func (b *BookingSession) Load(ctx context.Context) error {
	var loadErrs []error
	if err := b.loadProvider(ctx); err != nil {
		loadErrs = append(loadErrs, err)
	}
	if err := b.RefreshLedger(ctx); err != nil {
		loadErrs = append(loadErrs, err)
	}
	return errors.Join(loadErrs...)
}

func (b *BookingSession) loadProvider(ctx context.Context) error {
	if b.providerID == "" {
		return nil
	}
	provider, err := b.service.providers.ProviderByID(ctx, b.providerID)
	if err != nil {
		b.logger.Warn("failed to load provider", "error", err)
		return errs.Mark(errs.Wrap(err, "failed to load provider"), errs.ErrProviderUnavailable)
	}
	b.provider = provider
	return nil
}

func (b *BookingSession) RefreshLedger(ctx context.Context) error {
	if b.userID == "" {
		return nil
	}
	appointments, err := b.FetchLedger(ctx)
	if err != nil {
		return err
	}
	b.ApplyLedger(appointments)
	return nil
}

// FetchLedger only talks to the gateway.
func (b *BookingSession) FetchLedger(ctx context.Context) ([]appointment.Appointment, error) {
	appointments, err := b.service.reservations.AppointmentsByUser(ctx, b.userID)
	if err != nil {
		b.logger.Warn("failed to load user appointments", "error", err)
		return nil, errs.Mark(errs.Wrap(err, "failed to load user appointments"), errs.ErrLoadFailed)
	}
	return appointments, nil
}

func (b *BookingSession) ApplyLedger(appointments []appointment.Appointment) {
	b.machine.SetLedger(appointments)
}

func (b *BookingSession) Provider() *readmodel.ProviderRM {
	return b.provider
}

func (b *BookingSession) Rules() *appointment.Rules {
	return b.service.rules
}

func (b *BookingSession) Days() []appointment.CalendarDay {
	return b.service.rules.BookableDays()
}

func (b *BookingSession) State() booking.State {
	return b.machine.State()
}

func (b *BookingSession) ActiveThisMonth() int {
	return b.service.rules.CountActiveThisMonth(b.machine.Ledger())
}

// StartToggleDate applies the toggle. A non-zero ticket means Fetch must be
// called for it and the outcome handed to FinishFetch.
func (b *BookingSession) StartToggleDate(day appointment.CalendarDay) (booking.Ticket, error) {
	return b.machine.SelectDate(day)
}

// Fetch only talks to the gateway; it never touches session state.
func (b *BookingSession) Fetch(ctx context.Context, t booking.Ticket) ([]appointment.AvailableHour, error) {
	hours, err := b.service.availability.AvailableHours(ctx, b.providerID, t.Key())
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "failed to fetch availability for %s", t.Key()), errs.ErrAvailabilityFetchFailed)
	}
	return hours, nil
}

// FinishFetch commits a fetch outcome. It reports false when the result was
// stale and has been dropped.
func (b *BookingSession) FinishFetch(t booking.Ticket, hours []appointment.AvailableHour, err error) bool {
	var applied bool
	if err != nil {
		applied = b.machine.FailHours(t, err)
	} else {
		applied = b.machine.ResolveHours(t, hours)
	}
	if !applied {
		b.logger.Debug("dropped stale availability result", "date", t.Key().String())
	}
	return applied
}

// ToggleDate runs the whole select-fetch-commit flow inline.
func (b *BookingSession) ToggleDate(ctx context.Context, day appointment.CalendarDay) error {
	t, err := b.StartToggleDate(day)
	if err != nil || t.IsZero() {
		return err
	}
	hours, fetchErr := b.Fetch(ctx, t)
	if b.FinishFetch(t, hours, fetchErr) {
		return fetchErr
	}
	return nil
}

func (b *BookingSession) SelectHour(key appointment.DateKey, hour appointment.AvailableHour) error {
	return b.machine.SelectHour(key, hour)
}

func (b *BookingSession) ClearHour() error {
	return b.machine.ClearHour()
}

func (b *BookingSession) Deselect() error {
	return b.machine.Deselect()
}

func (b *BookingSession) Reset() error {
	return b.machine.Reset()
}

func (b *BookingSession) identity() booking.Identity {
	id := booking.Identity{UserID: b.userID}
	if b.provider != nil {
		id.ProviderID = b.providerID
		id.ProfessionalProfileID = b.provider.ProfessionalProfileID
	}
	return id
}

// PrepareSubmit moves the machine to Submitting and returns what to send.
func (b *BookingSession) PrepareSubmit() (SubmitTicket, error) {
	req, err := b.machine.BeginSubmit(b.identity())
	if err != nil {
		return SubmitTicket{}, err
	}

	slot := *b.machine.State().Slot
	if b.pendingSlot == nil || !b.pendingSlot.Equal(slot) {
		b.pendingSlot = &slot
		b.pendingKey = uuid.New()
	}
	return SubmitTicket{Request: req, IdempotencyKey: b.pendingKey}, nil
}

// Send only talks to the gateway.
func (b *BookingSession) Send(ctx context.Context, t SubmitTicket) (*appointment.Appointment, error) {
	created, err := b.service.reservations.CreateAppointment(ctx, t.Request, t.IdempotencyKey)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to create appointment"), errs.ErrSubmissionFailed)
	}
	return created, nil
}

func (b *BookingSession) FinishSubmit(created *appointment.Appointment, err error) error {
	if err != nil {
		b.logger.Warn("appointment submission failed", "error", err)
		return b.machine.FailSubmit(err)
	}
	var appt appointment.Appointment
	if created != nil {
		appt = *created
	}
	b.pendingSlot = nil
	b.pendingKey = uuid.Nil
	b.logger.Info("appointment created", "appointment_id", appt.ID, "date", appt.Date.String())
	return b.machine.CompleteSubmit(appt)
}

// Submit runs prepare, send and finish inline, then refreshes the ledger.
func (b *BookingSession) Submit(ctx context.Context) (*appointment.Appointment, error) {
	t, err := b.PrepareSubmit()
	if err != nil {
		return nil, err
	}

	created, sendErr := b.Send(ctx, t)
	if err := b.FinishSubmit(created, sendErr); err != nil {
		return nil, err
	}
	if sendErr != nil {
		return nil, sendErr
	}

	if err := b.RefreshLedger(ctx); err != nil {
		b.logger.Warn("ledger refresh after submission failed", "error", err)
	}
	return created, nil
}
