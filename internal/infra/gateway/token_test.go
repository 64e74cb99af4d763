//go:build unit

package gateway_test

import (
	"context"
	"log/slog"
	"net/http"
	"testing"
	"time"

	resdto "vitta-booking/internal/infra/dto/response"
	"vitta-booking/internal/infra/gateway"
	"vitta-booking/internal/pkg/clock"
	"vitta-booking/internal/pkg/config"
	"vitta-booking/internal/pkg/jwt"
	"vitta-booking/tests/common/authtest"
	"vitta-booking/tests/common/httptest"

	"github.com/stretchr/testify/assert"
)

var tokenNow = time.Date(2026, time.October, 15, 10, 0, 0, 0, time.UTC)

func newTokenProvider(cfg config.AuthConfig, clk clock.Clock) gateway.TokenProvider {
	return gateway.NewTokenProvider(cfg, http.DefaultClient, jwt.NewInspector(30*time.Second), clk, slog.New(slog.DiscardHandler))
}

func TestTokenProvider(t *testing.T) {
	t.Run("success: valid static token is used as is", func(t *testing.T) {
		static := authtest.Token(t, "user-1", tokenNow.Add(time.Hour))
		p := newTokenProvider(config.AuthConfig{Token: static}, clock.NewMockClock(tokenNow))

		assert.Equal(t, static, p.Token(context.Background()))
	})

	t.Run("success: static token without exp never expires", func(t *testing.T) {
		static := authtest.TokenWithoutExpiry(t, "user-1")
		p := newTokenProvider(config.AuthConfig{Token: static}, clock.NewMockClock(tokenNow))

		assert.Equal(t, static, p.Token(context.Background()))
	})

	t.Run("success: expired static token is replaced from the token endpoint", func(t *testing.T) {
		api := httptest.NewFakeAPI(t)
		fresh := authtest.Token(t, "user-1", tokenNow.Add(time.Hour))
		api.Engine.GET("/auth/token", httptest.JSON(http.StatusOK, resdto.TokenResponse{AccessToken: fresh}))
		p := newTokenProvider(config.AuthConfig{
			Token:    authtest.Token(t, "user-1", tokenNow.Add(-time.Minute)),
			TokenURL: api.URL() + "/auth/token",
		}, clock.NewMockClock(tokenNow))

		assert.Equal(t, fresh, p.Token(context.Background()))
		assert.Equal(t, fresh, p.Token(context.Background()))
		assert.Len(t, api.Requests(), 1, "fetched token is cached")
	})

	t.Run("success: cached token is refetched once it is about to expire", func(t *testing.T) {
		api := httptest.NewFakeAPI(t)
		first := authtest.Token(t, "user-1", tokenNow.Add(time.Minute))
		api.Engine.GET("/auth/token", httptest.JSON(http.StatusOK, resdto.TokenResponse{AccessToken: first}))
		clk := clock.NewMockClock(tokenNow)
		p := newTokenProvider(config.AuthConfig{TokenURL: api.URL() + "/auth/token"}, clk)

		assert.Equal(t, first, p.Token(context.Background()))
		clk.Add(45 * time.Second)
		p.Token(context.Background())

		assert.Len(t, api.Requests(), 2)
	})

	t.Run("error: endpoint failure yields no token", func(t *testing.T) {
		api := httptest.NewFakeAPI(t)
		api.Engine.GET("/auth/token", httptest.Status(http.StatusInternalServerError, "boom"))
		p := newTokenProvider(config.AuthConfig{TokenURL: api.URL() + "/auth/token"}, clock.NewMockClock(tokenNow))

		assert.Empty(t, p.Token(context.Background()))
	})

	t.Run("error: no static token and no endpoint", func(t *testing.T) {
		p := newTokenProvider(config.AuthConfig{Token: "not-a-jwt"}, clock.NewMockClock(tokenNow))

		assert.Empty(t, p.Token(context.Background()))
	})
}
