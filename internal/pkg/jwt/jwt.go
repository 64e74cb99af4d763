package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

type Claims struct {
	UserID string `json:"sub,omitempty"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Inspector reads bearer tokens issued by the marketplace API. The client
// never holds the signing key, so signatures are not verified here; the API
// stays authoritative.
type Inspector struct {
	parser *jwt.Parser
	leeway time.Duration
}

func NewInspector(leeway time.Duration) *Inspector {
	return &Inspector{
		parser: jwt.NewParser(),
		leeway: leeway,
	}
}

func (i *Inspector) Inspect(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := i.parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// CheckUsable reports ErrExpiredToken when exp is within leeway of now.
// Tokens without exp are treated as usable.
func (i *Inspector) CheckUsable(tokenString string, now time.Time) error {
	claims, err := i.Inspect(tokenString)
	if err != nil {
		return err
	}
	if claims.ExpiresAt == nil {
		return nil
	}
	if !now.Add(i.leeway).Before(claims.ExpiresAt.Time) {
		return ErrExpiredToken
	}
	return nil
}
