package booking

import (
	"slices"

	"vitta-booking/internal/domain/appointment"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDateLoading
	PhaseDateReady
	PhaseHourSelected
	PhaseSubmitting
	PhaseSubmitted
	PhaseSubmitError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDateLoading:
		return "date_loading"
	case PhaseDateReady:
		return "date_ready"
	case PhaseHourSelected:
		return "hour_selected"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSubmitted:
		return "submitted"
	case PhaseSubmitError:
		return "submit_error"
	default:
		return "unknown"
	}
}

// Slot is the single staged (date, hour) pair.
type Slot struct {
	day  appointment.CalendarDay
	hour appointment.AvailableHour
}

func (s Slot) Day() appointment.CalendarDay    { return s.day }
func (s Slot) Hour() appointment.AvailableHour { return s.hour }
func (s Slot) Key() appointment.DateKey        { return s.day.Key() }
func (s Slot) Equal(other Slot) bool           { return s.day.Equal(other.day) && s.hour == other.hour }

// Ticket tags an availability fetch with the date it was requested for.
// A result is only committed while its ticket is still current.
type Ticket struct {
	key appointment.DateKey
	seq uint64
}

func (t Ticket) Key() appointment.DateKey { return t.key }
func (t Ticket) IsZero() bool             { return t.seq == 0 }

// State is a snapshot for presentation; mutating it does not affect the machine.
type State struct {
	Phase   Phase
	Date    *appointment.CalendarDay
	Hours   []appointment.AvailableHour
	Slot    *Slot
	Err     error
	Created *appointment.Appointment
}

func (s State) IsLoading(key appointment.DateKey) bool {
	return s.Phase == PhaseDateLoading && s.Date != nil && s.Date.Key() == key
}

func (s State) IsSelected(key appointment.DateKey) bool {
	if s.Date == nil || s.Phase == PhaseDateLoading {
		return false
	}
	return s.Date.Key() == key
}

func (s State) CanSubmit() bool {
	return s.Slot != nil && (s.Phase == PhaseHourSelected || s.Phase == PhaseSubmitError)
}

// SelectedDates is the zero-or-one element view used by the selection rules.
func (s State) SelectedDates() []appointment.CalendarDay {
	if s.Date == nil {
		return nil
	}
	return []appointment.CalendarDay{*s.Date}
}

// SelectedHours is the zero-or-one entry view used by the selection rules.
func (s State) SelectedHours() map[appointment.DateKey]appointment.AvailableHour {
	hours := map[appointment.DateKey]appointment.AvailableHour{}
	if s.Slot != nil {
		hours[s.Slot.Key()] = s.Slot.Hour()
	}
	return hours
}

func (s State) Offers(hour appointment.AvailableHour) bool {
	return slices.Contains(s.Hours, hour)
}
