package model

// APIError is the wire shape of every error response body:
// {"error": {"code": ..., "message": ...}}.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type ErrorResponse struct {
	Error *APIError `json:"error"`
}

// RegisterResponse is returned by POST /register.
type RegisterResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// LoginResponse is returned by POST /login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// SessionResponse is returned by the /users/register and /users/login routes.
type SessionResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

// ResultResponse is returned by the stateless arithmetic endpoints.
type ResultResponse struct {
	Result float64 `json:"result"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
