//go:build unit

package httptest

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func AssertHeaders(t *testing.T, req RecordedRequest, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, req.Header.Get(k), "header %s mismatch", k)
	}
}

func AssertJSONBody(t *testing.T, req RecordedRequest, expected map[string]any) {
	t.Helper()

	var actual map[string]any
	require.NoError(t, json.Unmarshal(req.Body, &actual), "request body is not JSON: %s", string(req.Body))
	assert.Equal(t, expected, actual)
}
