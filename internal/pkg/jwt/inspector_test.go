//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"vitta-booking/internal/pkg/jwt"
	"vitta-booking/tests/common/authtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspector(t *testing.T) {
	now := time.Date(2026, time.October, 15, 10, 0, 0, 0, time.UTC)
	inspector := jwt.NewInspector(30 * time.Second)

	t.Run("success: reads claims without the signing key", func(t *testing.T) {
		claims, err := inspector.Inspect(authtest.Token(t, "user-1", now.Add(time.Hour)))

		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Equal(t, "user", claims.Role)
	})

	t.Run("usable window", func(t *testing.T) {
		tests := []struct {
			name    string
			token   string
			wantErr error
		}{
			{name: "an hour left", token: authtest.Token(t, "user-1", now.Add(time.Hour))},
			{name: "within leeway", token: authtest.Token(t, "user-1", now.Add(20*time.Second)), wantErr: jwt.ErrExpiredToken},
			{name: "expired", token: authtest.Token(t, "user-1", now.Add(-time.Minute)), wantErr: jwt.ErrExpiredToken},
			{name: "no exp", token: authtest.TokenWithoutExpiry(t, "user-1")},
			{name: "garbage", token: "a.b.c", wantErr: jwt.ErrInvalidToken},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				err := inspector.CheckUsable(tt.token, now)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
					return
				}
				assert.NoError(t, err)
			})
		}
	})
}
