//go:build unit

package authtest

import (
	"testing"
	"time"

	"vitta-booking/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

// Token issues an HS256 token shaped like the marketplace's. The client never
// verifies the signature, so any key works.
func Token(t *testing.T, userID string, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.Claims{
		UserID: userID,
		Role:   "user",
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(expiresAt),
			IssuedAt:  gojwt.NewNumericDate(expiresAt.Add(-time.Hour)),
		},
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

// TokenWithoutExpiry has no exp claim.
func TokenWithoutExpiry(t *testing.T, userID string) string {
	t.Helper()
	claims := jwt.Claims{UserID: userID, Role: "user"}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}
