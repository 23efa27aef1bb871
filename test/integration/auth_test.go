//go:build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterAndLoginSuccess(t *testing.T) {
	server := newTestServer(t)

	resp, body := postJSON(t, server.URL+"/register", map[string]any{
		"username": "user1",
		"email":    "user1@example.com",
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Contains(t, body, "id")
	require.Equal(t, "user1@example.com", body["email"])

	resp, body = postJSON(t, server.URL+"/login", map[string]any{
		"username_or_email": "user1",
		"password":          "password123",
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, body["access_token"])
	require.Equal(t, "bearer", body["token_type"])
}

func TestRegisterDuplicateRejected(t *testing.T) {
	server := newTestServer(t)

	payload := map[string]any{
		"username": "dup",
		"email":    "dup@example.com",
		"password": "password123",
	}

	resp, _ := postJSON(t, server.URL+"/register", payload, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := postJSON(t, server.URL+"/register", payload, "")
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	// The response never names the colliding field.
	errBody, ok := body["error"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "DUPLICATE_USER", errBody["code"])
	require.NotContains(t, errBody["message"], "username already")
	require.NotContains(t, errBody["message"], "email already")
}

func TestRegisterValidationErrors(t *testing.T) {
	server := newTestServer(t)

	tests := []struct {
		name    string
		payload map[string]any
	}{
		{name: "short password", payload: map[string]any{
			"username": "shortuser", "email": "short@example.com", "password": "short",
		}},
		{name: "bad email", payload: map[string]any{
			"username": "bademail", "email": "notanemail", "password": "password123",
		}},
		{name: "confirm mismatch", payload: map[string]any{
			"username": "mismatch", "email": "mismatch@example.com",
			"password": "password123", "confirm_password": "password124",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := postJSON(t, server.URL+"/register", tt.payload, "")
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)

			errBody, ok := body["error"].(map[string]any)
			require.True(t, ok)
			require.Equal(t, "VALIDATION_ERROR", errBody["code"])
		})
	}
}

func TestLoginInvalidPassword(t *testing.T) {
	server := newTestServer(t)

	resp, _ := postJSON(t, server.URL+"/register", map[string]any{
		"username": "user2",
		"email":    "user2@example.com",
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := postJSON(t, server.URL+"/login", map[string]any{
		"username_or_email": "user2",
		"password":          "wrongpass1",
	}, "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Unknown identifier reads identically to a wrong password.
	resp, body2 := postJSON(t, server.URL+"/login", map[string]any{
		"username_or_email": "ghost",
		"password":          "password123",
	}, "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, body["error"], body2["error"])
}

func TestUsersRoutesReturnSession(t *testing.T) {
	server := newTestServer(t)

	resp, body := postJSON(t, server.URL+"/users/register", map[string]any{
		"username": "u1",
		"email":    "u1@example.com",
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotEmpty(t, body["token"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "u1", user["username"])
	require.NotContains(t, user, "password_hash")

	resp, body = postJSON(t, server.URL+"/users/login", map[string]any{
		"username_or_email": "u1@example.com",
		"password":          "password123",
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, body["token"])
}

func TestMeEndpoint(t *testing.T) {
	server := newTestServer(t)
	token := registerAndLogin(t, server.URL)

	resp, body := doJSON(t, http.MethodGet, server.URL+"/users/me", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "u1", body["username"])

	resp, _ = doJSON(t, http.MethodGet, server.URL+"/users/me", nil, "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
