package booking

import (
	"errors"
	"slices"

	"vitta-booking/internal/domain/appointment"
)

var (
	ErrDateAlreadySelected   = errors.New("another date is already selected")
	ErrMonthlyLimitReached   = errors.New("monthly appointment limit reached")
	ErrDateNotBookable       = errors.New("date is not bookable")
	ErrNoDateSelected        = errors.New("no date selected")
	ErrAvailabilityPending   = errors.New("availability is still loading")
	ErrHourAlreadySelected   = errors.New("another hour is already selected")
	ErrHourNotOffered        = errors.New("hour is not offered for the date")
	ErrMissingBookingData    = errors.New("missing data to book the appointment")
	ErrNoProfessionalProfile = errors.New("provider has no professional profile")
	ErrSubmissionInProgress  = errors.New("submission in progress")
	ErrNotSubmitting         = errors.New("no submission in progress")
)

// Identity carries who books and with whom.
type Identity struct {
	UserID                string
	ProviderID            string
	ProfessionalProfileID string
}

// Machine is the slot-selection and submission state machine. It is not safe
// for concurrent use; drive it from one event loop and run gateway calls
// elsewhere, feeding their results back through tickets.
type Machine struct {
	rules   *appointment.Rules
	phase   Phase
	date    *appointment.CalendarDay
	hours   []appointment.AvailableHour
	slot    *Slot
	err     error
	created *appointment.Appointment
	ledger  []appointment.Appointment
	seq     uint64
}

func NewMachine(rules *appointment.Rules) *Machine {
	return &Machine{rules: rules}
}

func (m *Machine) Rules() *appointment.Rules {
	return m.rules
}

// SetLedger replaces the user's existing appointments used for the monthly ceiling.
// Only active ones are kept.
func (m *Machine) SetLedger(appointments []appointment.Appointment) {
	active := make([]appointment.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.Status.IsActive() {
			active = append(active, a)
		}
	}
	m.ledger = active
}

func (m *Machine) Ledger() []appointment.Appointment {
	return slices.Clone(m.ledger)
}

func (m *Machine) State() State {
	s := State{
		Phase: m.phase,
		Hours: slices.Clone(m.hours),
		Err:   m.err,
	}
	if m.date != nil {
		d := *m.date
		s.Date = &d
	}
	if m.slot != nil {
		slot := *m.slot
		s.Slot = &slot
	}
	if m.created != nil {
		created := *m.created
		s.Created = &created
	}
	return s
}

// SelectDate toggles day. It returns a non-zero ticket when availability must
// be fetched for it; a zero ticket with a nil error means the intent was a
// deselect or a repeat while loading.
func (m *Machine) SelectDate(day appointment.CalendarDay) (Ticket, error) {
	if m.phase == PhaseSubmitting {
		return Ticket{}, ErrSubmissionInProgress
	}
	if m.phase == PhaseSubmitted {
		m.clear()
	}

	state := m.State()
	if appointment.IsDuplicateDate(state.SelectedDates(), day) {
		if m.phase == PhaseDateLoading {
			return Ticket{}, nil
		}
		m.clear()
		return Ticket{}, nil
	}

	if !appointment.IsSingleDateSelected(state.SelectedDates()) {
		return Ticket{}, ErrDateAlreadySelected
	}
	if m.rules.HasReachedMonthlyLimit(m.ledger) {
		return Ticket{}, ErrMonthlyLimitReached
	}
	if !m.rules.IsBookable(day) {
		return Ticket{}, ErrDateNotBookable
	}

	m.seq++
	d := day
	m.date = &d
	m.hours = nil
	m.slot = nil
	m.err = nil
	m.created = nil
	m.phase = PhaseDateLoading
	return Ticket{key: day.Key(), seq: m.seq}, nil
}

// ResolveHours commits fetched hours. It reports false and changes nothing
// when the ticket was superseded.
func (m *Machine) ResolveHours(t Ticket, hours []appointment.AvailableHour) bool {
	if !m.isCurrent(t) {
		return false
	}
	m.hours = slices.Clone(hours)
	if m.hours == nil {
		m.hours = []appointment.AvailableHour{}
	}
	m.phase = PhaseDateReady
	return true
}

// FailHours drops the loading date and records err, unless the ticket was superseded.
func (m *Machine) FailHours(t Ticket, err error) bool {
	if !m.isCurrent(t) {
		return false
	}
	m.date = nil
	m.hours = nil
	m.phase = PhaseIdle
	m.err = err
	return true
}

// Deselect clears the date, its hours and any staged slot, including a date
// that is still loading.
func (m *Machine) Deselect() error {
	if m.phase == PhaseSubmitting {
		return ErrSubmissionInProgress
	}
	m.clear()
	return nil
}

func (m *Machine) SelectHour(key appointment.DateKey, hour appointment.AvailableHour) error {
	switch m.phase {
	case PhaseSubmitting:
		return ErrSubmissionInProgress
	case PhaseDateLoading:
		if m.date != nil && m.date.Key() == key {
			return ErrAvailabilityPending
		}
		return ErrNoDateSelected
	case PhaseDateReady, PhaseHourSelected, PhaseSubmitError:
	default:
		return ErrNoDateSelected
	}
	if m.date == nil || m.date.Key() != key {
		return ErrNoDateSelected
	}

	state := m.State()
	if !appointment.IsSingleTimeSelected(state.SelectedHours()) {
		if m.slot.Hour() == hour {
			return nil
		}
		return ErrHourAlreadySelected
	}
	if !state.Offers(hour) {
		return ErrHourNotOffered
	}

	m.slot = &Slot{day: *m.date, hour: hour}
	m.phase = PhaseHourSelected
	return nil
}

// ClearHour unstages the hour so a different one can be picked.
func (m *Machine) ClearHour() error {
	if m.phase == PhaseSubmitting {
		return ErrSubmissionInProgress
	}
	if m.slot == nil {
		return nil
	}
	m.slot = nil
	m.err = nil
	m.phase = PhaseDateReady
	return nil
}

// BeginSubmit validates the staged slot and moves to Submitting. The returned
// request must be sent and its outcome reported with CompleteSubmit or FailSubmit.
func (m *Machine) BeginSubmit(id Identity) (appointment.Request, error) {
	if m.phase == PhaseSubmitting {
		return appointment.Request{}, ErrSubmissionInProgress
	}
	if m.slot == nil || m.date == nil || id.UserID == "" || id.ProviderID == "" {
		return appointment.Request{}, ErrMissingBookingData
	}
	if m.rules.HasReachedMonthlyLimit(m.ledger) {
		return appointment.Request{}, ErrMonthlyLimitReached
	}
	if id.ProfessionalProfileID == "" {
		return appointment.Request{}, ErrNoProfessionalProfile
	}

	req, err := appointment.NewRequest(id.UserID, id.ProfessionalProfileID, m.slot.Key(), m.slot.Hour())
	if err != nil {
		return appointment.Request{}, errors.Join(ErrMissingBookingData, err)
	}

	m.err = nil
	m.phase = PhaseSubmitting
	return req, nil
}

// CompleteSubmit clears the form after the gateway accepted the request.
func (m *Machine) CompleteSubmit(created appointment.Appointment) error {
	if m.phase != PhaseSubmitting {
		return ErrNotSubmitting
	}
	m.seq++
	m.date = nil
	m.hours = nil
	m.slot = nil
	m.err = nil
	m.created = &created
	m.phase = PhaseSubmitted
	return nil
}

// FailSubmit keeps the selection so the user can retry.
func (m *Machine) FailSubmit(err error) error {
	if m.phase != PhaseSubmitting {
		return ErrNotSubmitting
	}
	m.err = err
	m.phase = PhaseSubmitError
	return nil
}

func (m *Machine) Reset() error {
	return m.Deselect()
}

func (m *Machine) isCurrent(t Ticket) bool {
	return !t.IsZero() &&
		m.phase == PhaseDateLoading &&
		m.date != nil &&
		m.date.Key() == t.key &&
		m.seq == t.seq
}

func (m *Machine) clear() {
	m.seq++
	m.date = nil
	m.hours = nil
	m.slot = nil
	m.err = nil
	m.created = nil
	m.phase = PhaseIdle
}
