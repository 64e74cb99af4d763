//go:build unit

package httptest

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
)

type RecordedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// FakeAPI is a gin engine served over a real listener, standing in for the
// marketplace API. Register routes on Engine before the first call.
type FakeAPI struct {
	Engine *gin.Engine
	Server *httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest
}

func NewFakeAPI(t *testing.T) *FakeAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &FakeAPI{Engine: gin.New()}
	f.Engine.Use(f.record)
	f.Server = httptest.NewServer(f.Engine)
	t.Cleanup(f.Server.Close)
	return f
}

func (f *FakeAPI) URL() string {
	return f.Server.URL
}

func (f *FakeAPI) Requests() []RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]RecordedRequest(nil), f.requests...)
}

func (f *FakeAPI) LastRequest(t *testing.T) RecordedRequest {
	t.Helper()
	requests := f.Requests()
	if len(requests) == 0 {
		t.Fatal("fake API received no requests")
	}
	return requests[len(requests)-1]
}

func (f *FakeAPI) record(c *gin.Context) {
	var body []byte
	if c.Request.Body != nil {
		body, _ = io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
	}

	f.mu.Lock()
	f.requests = append(f.requests, RecordedRequest{
		Method: c.Request.Method,
		Path:   c.Request.URL.Path,
		Header: c.Request.Header.Clone(),
		Body:   body,
	})
	f.mu.Unlock()

	c.Next()
}

// Status answers every call with the given status and plain-text body.
func Status(code int, body string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(code, body)
	}
}

// JSON answers every call with the given status and JSON body.
func JSON(code int, body any) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(code, body)
	}
}
