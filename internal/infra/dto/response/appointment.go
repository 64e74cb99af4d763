package response

type AvailableHourResponse struct {
	HourHand string `json:"hourHand"`
}

type UserRefResponse struct {
	ID   string  `json:"id"`
	Name *string `json:"name,omitempty"`
}

type ProfessionalRefResponse struct {
	ID   string           `json:"id"`
	User *UserRefResponse `json:"user,omitempty"`
}

type AppointmentResponse struct {
	ID           string                   `json:"id"`
	Date         string                   `json:"date"`
	Time         string                   `json:"time"`
	Status       string                   `json:"status"`
	User         *UserRefResponse         `json:"user,omitempty"`
	Professional *ProfessionalRefResponse `json:"professional,omitempty"`
}
