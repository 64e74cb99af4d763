package infra

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"vitta-booking/internal/pkg/errs"
)

type GatewayErrorKind string

type GatewayError struct {
	Kind   GatewayErrorKind
	Status int
	msg    string
	err    error // wrapped low-level error
}

func (e GatewayError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e GatewayError) Unwrap() error {
	return e.err
}

// Message is the text the API sent back, or the local failure description.
func (e GatewayError) Message() string {
	return e.msg
}

func WrapGatewayErr(slogger *slog.Logger, kind GatewayErrorKind, status int, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
		slog.Int("status", status),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	// list endpoints answer 404 for "nothing yet"
	level := slog.LevelWarn
	if kind == KindNotFound {
		level = slog.LevelDebug
	}
	slogger.Log(context.Background(), level, "Gateway error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return GatewayError{Kind: kind, Status: status, msg: msg, err: err}
}

func IsKind(err error, kind GatewayErrorKind) bool {
	var e GatewayError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// KindForStatus maps a non-2xx HTTP status to a gateway error kind.
func KindForStatus(status int) GatewayErrorKind {
	switch {
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindUnauthorized
	case status == http.StatusTooManyRequests || status >= 500:
		return KindUnavailable
	default:
		return KindRejected
	}
}

// Gateway-specific error kinds
const (
	KindNotFound     GatewayErrorKind = "NOT_FOUND"
	KindUnauthorized GatewayErrorKind = "UNAUTHORIZED"
	KindRejected     GatewayErrorKind = "REJECTED"
	KindUnavailable  GatewayErrorKind = "UNAVAILABLE"
	KindTransport    GatewayErrorKind = "TRANSPORT"
	KindDecode       GatewayErrorKind = "DECODE"
)
