package converter

import (
	"fmt"

	"vitta-booking/internal/domain/appointment"
	resdto "vitta-booking/internal/infra/dto/response"
	"vitta-booking/internal/pkg/patch"
	"vitta-booking/internal/usecase/readmodel"

	"github.com/jinzhu/copier"
)

func HoursToDomain(rows []resdto.AvailableHourResponse) ([]appointment.AvailableHour, error) {
	hours := make([]appointment.AvailableHour, 0, len(rows))
	for _, row := range rows {
		hour, err := appointment.ParseAvailableHour(row.HourHand)
		if err != nil {
			return nil, fmt.Errorf("hourHand %q: %w", row.HourHand, err)
		}
		hours = append(hours, hour)
	}
	return hours, nil
}

func AppointmentToDomain(res resdto.AppointmentResponse) (appointment.Appointment, error) {
	// dates may come back as full timestamps; the calendar part is what counts
	rawDate := res.Date
	if len(rawDate) > len(appointment.DateKeyLayout) {
		rawDate = rawDate[:len(appointment.DateKeyLayout)]
	}
	date, err := appointment.ParseDateKey(rawDate)
	if err != nil {
		return appointment.Appointment{}, fmt.Errorf("appointment %s date %q: %w", res.ID, res.Date, err)
	}

	hour, err := appointment.ParseAvailableHour(res.Time)
	if err != nil {
		return appointment.Appointment{}, fmt.Errorf("appointment %s time %q: %w", res.ID, res.Time, err)
	}

	status, err := appointment.NewStatus(res.Status)
	if err != nil {
		return appointment.Appointment{}, fmt.Errorf("appointment %s status %q: %w", res.ID, res.Status, err)
	}

	appt := appointment.Appointment{
		ID:     res.ID,
		Date:   date,
		Time:   hour,
		Status: status,
	}
	if res.User != nil {
		appt.User = appointment.Participant{ID: res.User.ID, Name: patch.Coalesce(res.User.Name, "")}
	}
	if res.Professional != nil {
		appt.Professional.ID = res.Professional.ID
		if res.Professional.User != nil {
			appt.Professional.Name = patch.Coalesce(res.Professional.User.Name, "")
		}
	}
	return appt, nil
}

func AppointmentsToDomain(rows []resdto.AppointmentResponse) ([]appointment.Appointment, error) {
	items := make([]appointment.Appointment, 0, len(rows))
	for _, row := range rows {
		appt, err := AppointmentToDomain(row)
		if err != nil {
			return nil, err
		}
		items = append(items, appt)
	}
	return items, nil
}

func ProviderToReadModel(res resdto.ProviderResponse) (*readmodel.ProviderRM, error) {
	var rm readmodel.ProviderRM
	if err := copier.Copy(&rm, &res); err != nil {
		return nil, fmt.Errorf("copy provider %s: %w", res.ID, err)
	}

	if profile := res.ProfessionalProfile; profile != nil {
		rm.ProfessionalProfileID = profile.ID
		if err := copier.Copy(&rm.Specialties, &profile.Specialty); err != nil {
			return nil, fmt.Errorf("copy provider %s specialties: %w", res.ID, err)
		}
	}
	if res.File != nil {
		rm.ImageURL = res.File.ImgURL
	}
	return &rm, nil
}
