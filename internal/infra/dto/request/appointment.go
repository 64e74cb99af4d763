package request

import "vitta-booking/internal/domain/appointment"

type AvailabilityRequest struct {
	ProfessionalID string `json:"professionalId"`
	Date           string `json:"date"`
}

func NewAvailabilityRequest(professionalID string, date appointment.DateKey) AvailabilityRequest {
	return AvailabilityRequest{
		ProfessionalID: professionalID,
		Date:           date.String(),
	}
}

// CreateAppointmentRequest carries the professional-profile id, not the
// provider's user id, in professionalId.
type CreateAppointmentRequest struct {
	UserID         string `json:"userId"`
	ProfessionalID string `json:"professionalId"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Status         string `json:"status"`
}

func FromAppointmentRequest(req appointment.Request) CreateAppointmentRequest {
	return CreateAppointmentRequest{
		UserID:         req.UserID(),
		ProfessionalID: req.ProfessionalProfileID(),
		Date:           req.Date().String(),
		Time:           req.Time().String(),
		Status:         req.Status().String(),
	}
}
