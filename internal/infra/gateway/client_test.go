//go:build unit

package gateway_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"vitta-booking/internal/infra"
	"vitta-booking/internal/infra/gateway"
	"vitta-booking/internal/pkg/config"
	"vitta-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Transport(t *testing.T) {
	t.Run("success: logging transport tags requests with an id", func(t *testing.T) {
		api := httptest.NewFakeAPI(t)
		api.Engine.GET("/providers/:id", httptest.JSON(http.StatusOK, map[string]string{"id": "provider-1", "name": "Dr. Lima"}))

		var logs bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
		cfg := config.NewTestConfig().API
		cfg.BaseURL = api.URL()
		httpClient := &http.Client{Transport: gateway.NewLoggingTransport(nil, logger, time.UTC)}
		d := gateway.NewProviderDirectory(gateway.NewClient(cfg, httpClient, gateway.StaticToken("tok"), logger))

		_, err := d.ProviderByID(context.Background(), "provider-1")

		require.NoError(t, err)
		last := api.LastRequest(t)
		assert.Regexp(t, `^\d{14}-[0-9a-f]{8}$`, last.Header.Get("X-Request-ID"))
		assert.Equal(t, "application/json", last.Header.Get("Accept"))
		assert.Contains(t, logs.String(), "Request completed")
		assert.Contains(t, logs.String(), "status_code=200")
	})

	t.Run("error: cancelled context is a transport error", func(t *testing.T) {
		api := httptest.NewFakeAPI(t)
		api.Engine.GET("/providers/:id", httptest.JSON(http.StatusOK, map[string]string{}))
		d := gateway.NewProviderDirectory(newClient(t, api, gateway.StaticToken("tok")))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := d.ProviderByID(ctx, "provider-1")

		assert.True(t, infra.IsKind(err, infra.KindTransport))
		assert.Empty(t, api.Requests())
	})

	t.Run("error: long error bodies are truncated", func(t *testing.T) {
		api := httptest.NewFakeAPI(t)
		api.Engine.GET("/providers/:id", httptest.Status(http.StatusBadRequest, strings.Repeat("x", 10<<10)))
		d := gateway.NewProviderDirectory(newClient(t, api, gateway.StaticToken("tok")))

		_, err := d.ProviderByID(context.Background(), "provider-1")

		var gerr infra.GatewayError
		require.ErrorAs(t, err, &gerr)
		assert.Len(t, gerr.Message(), 4<<10)
	})
}

func TestClient_RateLimit(t *testing.T) {
	api := httptest.NewFakeAPI(t)
	api.Engine.GET("/providers/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "name": "Dr. Lima"})
	})
	cfg := config.NewTestConfig().API
	cfg.BaseURL = api.URL()
	cfg.RateLimit = 0.001
	cfg.RateBurst = 1
	d := gateway.NewProviderDirectory(gateway.NewClient(cfg, nil, gateway.StaticToken("tok"), slog.New(slog.DiscardHandler)))

	_, err := d.ProviderByID(context.Background(), "provider-1")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = d.ProviderByID(ctx, "provider-2")

	assert.True(t, infra.IsKind(err, infra.KindTransport), "second call must wait for a token it cannot get")
	assert.Len(t, api.Requests(), 1)
}
