//go:build unit

package gateway_test

import (
	"context"
	"net/http"
	"testing"

	"vitta-booking/internal/domain/appointment"
	"vitta-booking/internal/infra"
	reqdto "vitta-booking/internal/infra/dto/request"
	resdto "vitta-booking/internal/infra/dto/response"
	"vitta-booking/internal/infra/gateway"
	"vitta-booking/tests/common/builder"
	"vitta-booking/tests/common/httptest"
	"vitta-booking/tests/common/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailabilityGateway_AvailableHours(t *testing.T) {
	t.Run("success: normalizes hours and posts the date", func(t *testing.T) {
		api := httptest.NewFakeAPI(t)
		api.Engine.POST("/appointments/validate", httptest.JSON(http.StatusOK, []resdto.AvailableHourResponse{
			{HourHand: "08:00:00"},
			{HourHand: "09:30"},
		}))
		g := gateway.NewAvailabilityGateway(newClient(t, api, gateway.StaticToken("tok")))

		got, err := g.AvailableHours(context.Background(), "provider-1", "2026-10-20")

		require.NoError(t, err)
		assert.Equal(t, []appointment.AvailableHour{"08:00", "09:30"}, got)
		httptest.AssertJSONBody(t, api.LastRequest(t), testutil.DtoMap(t, reqdto.AvailabilityRequest{
			ProfessionalID: "provider-1",
			Date:           "2026-10-20",
		}))
	})

	t.Run("success: hours follow the posted date", func(t *testing.T) {
		api := httptest.NewFakeAPI(t)
		api.Engine.POST("/appointments/validate", func(c *gin.Context) {
			body := testutil.DecodeMap(t, c.Request.Body)
			if body["date"] == "2026-10-21" {
				c.JSON(http.StatusOK, []resdto.AvailableHourResponse{{HourHand: "14:00"}})
				return
			}
			c.JSON(http.StatusOK, []resdto.AvailableHourResponse{{HourHand: "08:00"}})
		})
		g := gateway.NewAvailabilityGateway(newClient(t, api, gateway.StaticToken("tok")))

		got, err := g.AvailableHours(context.Background(), "provider-1", "2026-10-21")

		require.NoError(t, err)
		assert.Equal(t, []appointment.AvailableHour{"14:00"}, got)
		base := reqdto.NewAvailabilityRequest("provider-1", "2026-10-20")
		httptest.AssertJSONBody(t, api.LastRequest(t), testutil.DtoMap(t, base, testutil.Field("date", "2026-10-21")))
	})

	t.Run("success: empty day", func(t *testing.T) {
		api := httptest.NewFakeAPI(t)
		api.Engine.POST("/appointments/validate", httptest.JSON(http.StatusOK, []resdto.AvailableHourResponse{}))
		g := gateway.NewAvailabilityGateway(newClient(t, api, gateway.StaticToken("tok")))

		got, err := g.AvailableHours(context.Background(), "provider-1", "2026-10-20")

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("error: failure is an error, not an empty day", func(t *testing.T) {
		api := httptest.NewFakeAPI(t)
		api.Engine.POST("/appointments/validate", httptest.Status(http.StatusInternalServerError, "erro interno"))
		g := gateway.NewAvailabilityGateway(newClient(t, api, gateway.StaticToken("tok")))

		got, err := g.AvailableHours(context.Background(), "provider-1", "2026-10-20")

		assert.Nil(t, got)
		assert.True(t, infra.IsKind(err, infra.KindUnavailable))
	})

	t.Run("error: malformed hour", func(t *testing.T) {
		api := httptest.NewFakeAPI(t)
		api.Engine.POST("/appointments/validate", httptest.JSON(http.StatusOK, []resdto.AvailableHourResponse{{HourHand: "8h"}}))
		g := gateway.NewAvailabilityGateway(newClient(t, api, gateway.StaticToken("tok")))

		_, err := g.AvailableHours(context.Background(), "provider-1", "2026-10-20")

		assert.True(t, infra.IsKind(err, infra.KindDecode))
	})
}

func TestProviderDirectory_ProviderByID(t *testing.T) {
	t.Run("success: maps profile and specialties", func(t *testing.T) {
		api := httptest.NewFakeAPI(t)
		provider := builder.NewProviderBuilder()
		api.Engine.GET("/providers/:id", httptest.JSON(http.StatusOK, provider.BuildResponse()))
		d := gateway.NewProviderDirectory(newClient(t, api, gateway.StaticToken("tok")))

		got, err := d.ProviderByID(context.Background(), "provider-1")

		require.NoError(t, err)
		assert.Equal(t, provider.BuildReadModel(), got)
		assert.Equal(t, "/providers/provider-1", api.LastRequest(t).Path)
	})

	t.Run("success: provider without a professional profile", func(t *testing.T) {
		api := httptest.NewFakeAPI(t)
		api.Engine.GET("/providers/:id", httptest.JSON(http.StatusOK, builder.NewProviderBuilder().WithoutProfile().BuildResponse()))
		d := gateway.NewProviderDirectory(newClient(t, api, gateway.StaticToken("tok")))

		got, err := d.ProviderByID(context.Background(), "provider-1")

		require.NoError(t, err)
		assert.False(t, got.HasProfessionalProfile())
	})

	t.Run("error: unknown provider", func(t *testing.T) {
		api := httptest.NewFakeAPI(t)
		api.Engine.GET("/providers/:id", httptest.Status(http.StatusNotFound, "Usuário não encontrado"))
		d := gateway.NewProviderDirectory(newClient(t, api, gateway.StaticToken("tok")))

		_, err := d.ProviderByID(context.Background(), "missing")

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
