//go:build unit

package builder

import (
	"vitta-booking/internal/domain/appointment"
	resdto "vitta-booking/internal/infra/dto/response"
	"vitta-booking/internal/pkg/patch"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	ID               string
	Date             string
	Time             string
	Status           string
	UserID           string
	UserName         string
	ProfessionalID   string
	ProfessionalName string
}

func NewAppointmentBuilder() *AppointmentBuilder {
	return &AppointmentBuilder{
		ID:               uuid.NewString(),
		Date:             "2026-10-20",
		Time:             "08:00",
		Status:           "pending",
		UserID:           "user-1",
		UserName:         "Ana Souza",
		ProfessionalID:   "profile-1",
		ProfessionalName: "Dr. Lima",
	}
}

func (b *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(b)
	return b
}

// BuildDomain panics on invalid fields; use BuildResponse to test parsing.
func (b *AppointmentBuilder) BuildDomain() appointment.Appointment {
	date, err := appointment.ParseDateKey(b.Date)
	if err != nil {
		panic(err)
	}
	hour, err := appointment.ParseAvailableHour(b.Time)
	if err != nil {
		panic(err)
	}
	status, err := appointment.NewStatus(b.Status)
	if err != nil {
		panic(err)
	}
	return appointment.Appointment{
		ID:           b.ID,
		Date:         date,
		Time:         hour,
		Status:       status,
		User:         appointment.Participant{ID: b.UserID, Name: b.UserName},
		Professional: appointment.Participant{ID: b.ProfessionalID, Name: b.ProfessionalName},
	}
}

func (b *AppointmentBuilder) BuildResponse() resdto.AppointmentResponse {
	return resdto.AppointmentResponse{
		ID:     b.ID,
		Date:   b.Date,
		Time:   b.Time + ":00",
		Status: b.Status,
		User:   &resdto.UserRefResponse{ID: b.UserID, Name: patch.Ptr(b.UserName)},
		Professional: &resdto.ProfessionalRefResponse{
			ID:   b.ProfessionalID,
			User: &resdto.UserRefResponse{ID: "provider-user", Name: patch.Ptr(b.ProfessionalName)},
		},
	}
}

// Fluent builder methods
func (b *AppointmentBuilder) WithDate(date string) *AppointmentBuilder {
	b.Date = date
	return b
}

func (b *AppointmentBuilder) WithTime(hour string) *AppointmentBuilder {
	b.Time = hour
	return b
}

func (b *AppointmentBuilder) WithStatus(status string) *AppointmentBuilder {
	b.Status = status
	return b
}

func (b *AppointmentBuilder) WithID(id string) *AppointmentBuilder {
	b.ID = id
	return b
}
