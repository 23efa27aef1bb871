//go:build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArithmeticEndpointsAreOpen(t *testing.T) {
	server := newTestServer(t)

	tests := []struct {
		path string
		a    float64
		b    float64
		want float64
	}{
		{path: "/add", a: 2, b: 3, want: 5},
		{path: "/subtract", a: 2, b: 3, want: -1},
		{path: "/multiply", a: 4, b: 2.5, want: 10},
		{path: "/divide", a: 9, b: 3, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			// No Authorization header: these endpoints are stateless and open.
			resp, body := postJSON(t, server.URL+tt.path, map[string]any{"a": tt.a, "b": tt.b}, "")
			require.Equal(t, http.StatusOK, resp.StatusCode)
			require.Equal(t, tt.want, body["result"])
		})
	}
}

func TestDivideByZeroEndpoint(t *testing.T) {
	server := newTestServer(t)

	resp, body := postJSON(t, server.URL+"/divide", map[string]any{"a": 1, "b": 0}, "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	errBody, ok := body["error"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "DIVISION_BY_ZERO", errBody["code"])
}

func TestHealth(t *testing.T) {
	server := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, server.URL+"/health", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "ok", body["status"])
	require.Equal(t, "up", body["database"])
}
