package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"vitta-booking/internal/infra"
	"vitta-booking/internal/pkg/config"

	"golang.org/x/time/rate"
)

// maxErrorBody bounds how much of a failed response is kept as the message.
const maxErrorBody = 4 << 10

// Client is the shared transport for every marketplace gateway.
type Client struct {
	cfg     config.APIConfig
	http    *http.Client
	limiter *rate.Limiter
	tokens  TokenProvider
	logger  *slog.Logger
}

func NewClient(cfg config.APIConfig, httpClient *http.Client, tokens TokenProvider, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.RateBurst
	if burst <= 0 {
		burst = 1
	}
	return &Client{
		cfg:     cfg,
		http:    httpClient,
		limiter: rate.NewLimiter(limit, burst),
		tokens:  tokens,
		logger:  logger,
	}
}

type call struct {
	method  string
	path    string
	body    any
	headers map[string]string
}

// do sends the call and decodes a 2xx JSON body into out. out may be nil, and
// an empty body leaves it untouched.
func (c *Client) do(ctx context.Context, in call, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindTransport, 0, "rate limiter wait failed", err)
	}

	req, err := c.newRequest(ctx, in)
	if err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindTransport, 0, "failed to build request", err)
	}

	c.logger.Debug("gateway request", "method", in.method, "path", in.path)

	resp, err := c.http.Do(req)
	if err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindTransport, 0, in.method+" "+in.path+" failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(resp)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindTransport, resp.StatusCode, "failed to read response", err)
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindDecode, resp.StatusCode, "failed to decode "+in.path+" response", err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, in call) (*http.Request, error) {
	var body io.Reader
	if in.body != nil {
		payload, err := json.Marshal(in.body)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, in.method, c.cfg.Endpoint(in.path), body)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token := c.tokens.Token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range in.headers {
		req.Header.Set(k, v)
	}
	return req, nil
}

// statusError keeps the response text as the message, the way the API phrases it.
func (c *Client) statusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	msg := strings.TrimSpace(string(raw))
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return infra.WrapGatewayErr(c.logger, infra.KindForStatus(resp.StatusCode), resp.StatusCode, msg, nil)
}
