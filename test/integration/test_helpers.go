//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"go-calc-service/internal/config"
	"go-calc-service/internal/handler"
	"go-calc-service/internal/middleware"
	"go-calc-service/internal/model"
	"go-calc-service/internal/router"
	"go-calc-service/internal/service"
)

// newTestServer wires the full router against in-memory stores so the HTTP
// flow under test is the production one, database excluded.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		ServerPort:     "8000",
		RequestTimeout: 30 * time.Second,
		JWTSecret:      "test-secret",
		JWTAlgorithm:   "HS256",
		TokenTTL:       time.Hour,
		CORSOrigins:    []string{"*"},
		AppEnv:         "test",
	}

	hasher := service.NewPasswordHasher(bcrypt.MinCost, 2)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	validator := service.NewCredentialValidator(2)
	authService := service.NewAuthService(newMemUserStore(), hasher, tokens, validator)
	calculationService := service.NewCalculationService(newMemCalculationStore())

	authMiddleware := middleware.NewAuthMiddleware(authService)

	server := httptest.NewServer(router.New(cfg, authMiddleware, router.Handlers{
		Health:      handler.NewHealthHandler(stubPinger{}),
		Auth:        handler.NewAuthHandler(authService),
		User:        handler.NewUserHandler(),
		Arithmetic:  handler.NewArithmeticHandler(),
		Calculation: handler.NewCalculationHandler(calculationService),
	}))
	t.Cleanup(server.Close)

	return server
}

func postJSON(t *testing.T, url string, payload any, token string) (*http.Response, map[string]any) {
	t.Helper()
	return doJSON(t, http.MethodPost, url, payload, token)
}

func doJSON(t *testing.T, method string, url string, payload any, token string) (*http.Response, map[string]any) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}

	return resp, decoded
}

func registerAndLogin(t *testing.T, serverURL string) string {
	t.Helper()

	resp, _ := postJSON(t, serverURL+"/users/register", map[string]any{
		"username": "u1",
		"email":    "u1@example.com",
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := postJSON(t, serverURL+"/users/login", map[string]any{
		"username_or_email": "u1",
		"password":          "password123",
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// stubPinger stands in for the database pool behind /health.
type stubPinger struct {
	err error
}

func (p stubPinger) Health(context.Context) error {
	return p.err
}

// In-memory stores mirroring the database semantics.

type memUserStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]model.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[int64]model.User{}}
}

func (s *memUserStore) Create(_ context.Context, user model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return model.User{}, model.ErrDuplicateUser
		}
	}

	s.nextID++
	user.ID = s.nextID
	s.users[user.ID] = user
	return user, nil
}

func (s *memUserStore) FindByID(_ context.Context, id int64) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return model.User{}, model.ErrUserNotFound
	}
	return user, nil
}

func (s *memUserStore) FindByUsernameOrEmail(_ context.Context, identifier string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == identifier || user.Email == identifier {
			return user, nil
		}
	}
	return model.User{}, model.ErrUserNotFound
}

func (s *memUserStore) ExistsByUsernameOrEmail(_ context.Context, username string, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == username || user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type memCalculationStore struct {
	mu           sync.Mutex
	nextID       int64
	calculations map[int64]model.Calculation
}

func newMemCalculationStore() *memCalculationStore {
	return &memCalculationStore{calculations: map[int64]model.Calculation{}}
}

func (s *memCalculationStore) Create(_ context.Context, c model.Calculation) (model.Calculation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	c.ID = s.nextID
	s.calculations[c.ID] = c
	return c, nil
}

func (s *memCalculationStore) FindByID(_ context.Context, id int64) (model.Calculation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.calculations[id]
	if !ok {
		return model.Calculation{}, model.ErrCalculationNotFound
	}
	return c, nil
}

func (s *memCalculationStore) List(_ context.Context) ([]model.Calculation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Calculation, 0, len(s.calculations))
	for id := int64(1); id <= s.nextID; id++ {
		if c, ok := s.calculations[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *memCalculationStore) Update(_ context.Context, c model.Calculation) (model.Calculation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.calculations[c.ID]; !ok {
		return model.Calculation{}, model.ErrCalculationNotFound
	}
	s.calculations[c.ID] = c
	return c, nil
}

func (s *memCalculationStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.calculations[id]; !ok {
		return model.ErrCalculationNotFound
	}
	delete(s.calculations, id)
	return nil
}
