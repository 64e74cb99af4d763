package gateway

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const requestIDHeader = "X-Request-ID"

// LoggingTransport tags each outbound call with a request id and logs its
// start and outcome.
type LoggingTransport struct {
	next     http.RoundTripper
	logger   *slog.Logger
	timezone *time.Location
}

func NewLoggingTransport(next http.RoundTripper, logger *slog.Logger, timezone *time.Location) *LoggingTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	if timezone == nil {
		timezone = time.UTC
	}
	return &LoggingTransport{next: next, logger: logger, timezone: timezone}
}

func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	startTime := time.Now()
	requestID := t.generateRequestID()

	req = req.Clone(req.Context())
	req.Header.Set(requestIDHeader, requestID)

	logAttrs := []slog.Attr{
		slog.String("request_id", requestID),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
	}
	if idempotencyKey := req.Header.Get(idempotencyKeyHeader); idempotencyKey != "" {
		logAttrs = append(logAttrs, slog.String("idempotency_key", idempotencyKey))
	}

	t.logger.LogAttrs(context.Background(), slog.LevelDebug, "Request started", logAttrs...)

	resp, err := t.next.RoundTrip(req)

	responseAttrs := make([]slog.Attr, len(logAttrs), len(logAttrs)+3)
	copy(responseAttrs, logAttrs)
	responseAttrs = append(responseAttrs, slog.Duration("duration", time.Since(startTime)))

	if err != nil {
		responseAttrs = append(responseAttrs, slog.String("error", err.Error()))
		t.logger.LogAttrs(context.Background(), slog.LevelWarn, "Request failed", responseAttrs...)
		return nil, err
	}

	responseAttrs = append(responseAttrs, slog.Int("status_code", resp.StatusCode))

	logLevel := slog.LevelDebug
	if resp.StatusCode >= 500 {
		logLevel = slog.LevelError
	} else if resp.StatusCode >= 400 && resp.StatusCode != http.StatusNotFound {
		logLevel = slog.LevelWarn
	}

	t.logger.LogAttrs(context.Background(), logLevel, "Request completed", responseAttrs...)
	return resp, nil
}

func (t *LoggingTransport) generateRequestID() string {
	timestamp := time.Now().In(t.timezone).Format("20060102150405")

	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		return fmt.Sprintf("%s-fallback-%d", timestamp, time.Now().UnixNano()%100000000)
	}

	return fmt.Sprintf("%s-%s", timestamp, hex.EncodeToString(randomBytes))
}
