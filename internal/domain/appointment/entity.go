package appointment

import (
	"errors"
	"slices"
	"strings"
)

var (
	ErrMissingUser    = errors.New("user id is required")
	ErrMissingProfile = errors.New("professional profile id is required")
	ErrMissingSlot    = errors.New("date and time are required")
)

type Participant struct {
	ID   string
	Name string
}

// Appointment is the read model returned by the reservation API.
type Appointment struct {
	ID           string
	Date         DateKey
	Time         AvailableHour
	Status       Status
	User         Participant
	Professional Participant
}

func (a Appointment) Day() (CalendarDay, error) {
	return a.Date.Day()
}

// Actions lists what the owner may do with the appointment in its current status.
func (a Appointment) Actions(kind OwnerKind) []Action {
	var actions []Action
	if kind == OwnerProvider && a.Status == StatusPending {
		actions = append(actions, ActionConfirm)
	}
	if a.Status.IsActive() {
		actions = append(actions, ActionCancel)
	}
	return actions
}

func (a Appointment) Allows(kind OwnerKind, action Action) bool {
	return slices.Contains(a.Actions(kind), action)
}

// Request is a new appointment submitted by a client. It is always created pending.
type Request struct {
	userID                string
	professionalProfileID string
	date                  DateKey
	time                  AvailableHour
	status                Status
}

func NewRequest(userID, professionalProfileID string, date DateKey, hour AvailableHour) (Request, error) {
	userID = strings.TrimSpace(userID)
	professionalProfileID = strings.TrimSpace(professionalProfileID)
	if userID == "" {
		return Request{}, ErrMissingUser
	}
	if professionalProfileID == "" {
		return Request{}, ErrMissingProfile
	}
	if date == "" || hour == "" {
		return Request{}, ErrMissingSlot
	}
	return Request{
		userID:                userID,
		professionalProfileID: professionalProfileID,
		date:                  date,
		time:                  hour,
		status:                StatusPending,
	}, nil
}

func (r Request) UserID() string                { return r.userID }
func (r Request) ProfessionalProfileID() string { return r.professionalProfileID }
func (r Request) Date() DateKey                 { return r.date }
func (r Request) Time() AvailableHour           { return r.time }
func (r Request) Status() Status                { return r.status }
