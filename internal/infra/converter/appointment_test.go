//go:build unit

package converter_test

import (
	"testing"

	"vitta-booking/internal/domain/appointment"
	"vitta-booking/internal/infra/converter"
	resdto "vitta-booking/internal/infra/dto/response"
	"vitta-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentToDomain(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		b := builder.NewAppointmentBuilder()

		got, err := converter.AppointmentToDomain(b.BuildResponse())

		require.NoError(t, err)
		assert.Equal(t, b.BuildDomain(), got)
	})

	t.Run("timestamp dates keep the calendar part", func(t *testing.T) {
		res := builder.NewAppointmentBuilder().BuildResponse()
		res.Date = "2026-10-20T03:00:00.000Z"

		got, err := converter.AppointmentToDomain(res)

		require.NoError(t, err)
		assert.Equal(t, appointment.DateKey("2026-10-20"), got.Date)
	})

	t.Run("missing references leave participants empty", func(t *testing.T) {
		res := builder.NewAppointmentBuilder().BuildResponse()
		res.User = nil
		res.Professional.User.Name = nil

		got, err := converter.AppointmentToDomain(res)

		require.NoError(t, err)
		assert.Equal(t, appointment.Participant{}, got.User)
		assert.Equal(t, "profile-1", got.Professional.ID)
		assert.Empty(t, got.Professional.Name)
	})

	t.Run("invalid fields", func(t *testing.T) {
		for name, mutate := range map[string]func(*resdto.AppointmentResponse){
			"date":   func(r *resdto.AppointmentResponse) { r.Date = "20/10/2026" },
			"time":   func(r *resdto.AppointmentResponse) { r.Time = "8am" },
			"status": func(r *resdto.AppointmentResponse) { r.Status = "archived" },
		} {
			t.Run(name, func(t *testing.T) {
				res := builder.NewAppointmentBuilder().BuildResponse()
				mutate(&res)

				_, err := converter.AppointmentToDomain(res)

				assert.Error(t, err)
			})
		}
	})
}

func TestHoursToDomain(t *testing.T) {
	got, err := converter.HoursToDomain([]resdto.AvailableHourResponse{{HourHand: "08:00:00"}, {HourHand: "13:30"}})
	require.NoError(t, err)
	assert.Equal(t, []appointment.AvailableHour{"08:00", "13:30"}, got)

	_, err = converter.HoursToDomain([]resdto.AvailableHourResponse{{HourHand: "x"}})
	assert.ErrorIs(t, err, appointment.ErrInvalidHour)
}

func TestProviderToReadModel(t *testing.T) {
	b := builder.NewProviderBuilder()

	got, err := converter.ProviderToReadModel(b.BuildResponse())

	require.NoError(t, err)
	assert.Equal(t, b.BuildReadModel(), got)
	assert.True(t, got.HasProfessionalProfile())
}
