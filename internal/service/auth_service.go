package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go-calc-service/internal/model"
)

// AuthService implements registration, login and token verification on top of
// an injected UserStore. It holds no state of its own beyond configuration;
// uniqueness and atomic create-or-fail are the store's job.
type AuthService struct {
	users     UserStore
	hasher    *PasswordHasher
	tokens    *TokenService
	validator *CredentialValidator
}

func NewAuthService(users UserStore, hasher *PasswordHasher, tokens *TokenService, validator *CredentialValidator) *AuthService {
	return &AuthService{
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		validator: validator,
	}
}

// Register validates the payload, checks uniqueness, hashes the password and
// creates the user. The uniqueness check runs before hashing so doomed
// requests never pay the bcrypt cost; the create itself still maps a store
// conflict to ErrDuplicateUser, which closes the check-then-insert race.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.User, error) {
	if err := s.validator.ValidateRegistration(req); err != nil {
		return model.User{}, err
	}

	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	exists, err := s.users.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return model.User{}, fmt.Errorf("check user uniqueness: %w", err)
	}
	if exists {
		// Deliberately silent about which field collided.
		return model.User{}, model.ErrDuplicateUser
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return model.User{}, err
	}

	user, err := s.users.Create(ctx, model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return model.User{}, err
	}

	return user, nil
}

// Login verifies the identifier/password pair and returns the user. Unknown
// identifier and wrong password both come back as ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.User, error) {
	if err := s.validator.ValidateLogin(req); err != nil {
		return model.User{}, err
	}

	user, err := s.users.FindByUsernameOrEmail(ctx, strings.TrimSpace(req.UsernameOrEmail))
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return model.User{}, model.ErrInvalidCredentials
		}
		return model.User{}, fmt.Errorf("find user: %w", err)
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		return model.User{}, model.ErrInvalidCredentials
	}

	return user, nil
}

// IssueToken signs a session token for the user with the configured TTL.
func (s *AuthService) IssueToken(user model.User) (string, error) {
	return s.tokens.Issue(user.ID, s.tokens.TTL())
}

// ValidateToken resolves a bearer token to the acting user. Token failures
// and a user deleted after issuance all surface as ErrUnauthenticated; the
// precise kind is logged here, never sent to the client.
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (model.User, error) {
	userID, err := s.tokens.Validate(tokenString)
	if err != nil {
		slog.Debug("token rejected", "reason", err)
		return model.User{}, model.ErrUnauthenticated
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			slog.Debug("token subject no longer exists", "user_id", userID)
			return model.User{}, model.ErrUnauthenticated
		}
		return model.User{}, fmt.Errorf("resolve token subject: %w", err)
	}

	return user, nil
}
