package gateway

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	resdto "vitta-booking/internal/infra/dto/response"
	"vitta-booking/internal/pkg/clock"
	"vitta-booking/internal/pkg/config"
	"vitta-booking/internal/pkg/errs"
	"vitta-booking/internal/pkg/jwt"
)

// TokenProvider yields the bearer token for outbound calls. An empty string
// means the call goes out unauthenticated.
type TokenProvider interface {
	Token(ctx context.Context) string
}

type tokenProvider struct {
	static    string
	tokenURL  string
	http      *http.Client
	inspector *jwt.Inspector
	clock     clock.Clock
	logger    *slog.Logger

	mu     sync.Mutex
	cached string
}

func NewTokenProvider(
	cfg config.AuthConfig,
	httpClient *http.Client,
	inspector *jwt.Inspector,
	clk clock.Clock,
	logger *slog.Logger,
) TokenProvider {
	return &tokenProvider{
		static:    cfg.Token,
		tokenURL:  cfg.TokenURL,
		http:      httpClient,
		inspector: inspector,
		clock:     clk,
		logger:    logger,
	}
}

func (p *tokenProvider) Token(ctx context.Context) string {
	if p.usable(p.static) {
		return p.static
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.usable(p.cached) {
		return p.cached
	}
	if p.tokenURL == "" {
		return ""
	}

	token, err := p.fetch(ctx)
	if err != nil {
		p.logger.Warn("failed to obtain access token", "error", err)
		p.cached = ""
		return ""
	}
	p.cached = token
	return token
}

func (p *tokenProvider) usable(token string) bool {
	if token == "" {
		return false
	}
	return p.inspector.CheckUsable(token, p.clock.Now()) == nil
}

func (p *tokenProvider) fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.tokenURL, nil)
	if err != nil {
		return "", errs.Wrap(err, "failed to build token request")
	}
	resp, err := p.http.Do(req)
	if err != nil {
		return "", errs.Wrap(err, "token request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errs.Newf("token endpoint returned %d", resp.StatusCode)
	}

	var body resdto.TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", errs.Wrap(err, "failed to decode token response")
	}
	if body.AccessToken == "" {
		return "", errs.New("token endpoint returned no access token")
	}
	return body.AccessToken, nil
}

// StaticToken always yields the same token.
type StaticToken string

func (t StaticToken) Token(context.Context) string {
	return string(t)
}
