package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"go-calc-service/internal/model"
	"go-calc-service/pkg/apierror"
)

func TestValidateRegistration(t *testing.T) {
	t.Parallel()

	validator := NewCredentialValidator(3)

	valid := model.RegisterRequest{
		Username: "user1",
		Email:    "user1@example.com",
		Password: "password123",
	}
	require.NoError(t, validator.ValidateRegistration(valid))

	tests := []struct {
		name   string
		mutate func(*model.RegisterRequest)
		field  string
	}{
		{name: "username too short", mutate: func(r *model.RegisterRequest) { r.Username = "ab" }, field: "username"},
		{name: "username too long", mutate: func(r *model.RegisterRequest) {
			long := make([]byte, 51)
			for i := range long {
				long[i] = 'a'
			}
			r.Username = string(long)
		}, field: "username"},
		{name: "empty username", mutate: func(r *model.RegisterRequest) { r.Username = "" }, field: "username"},
		{name: "invalid email", mutate: func(r *model.RegisterRequest) { r.Email = "notanemail" }, field: "email"},
		{name: "email with display name", mutate: func(r *model.RegisterRequest) { r.Email = "User <u@example.com>" }, field: "email"},
		{name: "empty email", mutate: func(r *model.RegisterRequest) { r.Email = "" }, field: "email"},
		{name: "short password", mutate: func(r *model.RegisterRequest) { r.Password = "short" }, field: "password"},
		{name: "password over bcrypt limit", mutate: func(r *model.RegisterRequest) { r.Password = strings.Repeat("a", 100) }, field: "password"},
		{name: "confirm mismatch", mutate: func(r *model.RegisterRequest) { r.ConfirmPassword = "password124" }, field: "confirm_password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := valid
			tt.mutate(&req)

			err := validator.ValidateRegistration(req)
			require.Error(t, err)

			var apiErr *apierror.APIError
			require.ErrorAs(t, err, &apiErr)
			require.Equal(t, "VALIDATION_ERROR", apiErr.Code)
			require.Equal(t, tt.field, apiErr.Details)
		})
	}
}

func TestValidateRegistrationConfirmMatch(t *testing.T) {
	t.Parallel()

	validator := NewCredentialValidator(3)

	req := model.RegisterRequest{
		Username:        "user1",
		Email:           "user1@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
	}
	require.NoError(t, validator.ValidateRegistration(req))
}

func TestValidateRegistrationMinLengthConfigurable(t *testing.T) {
	t.Parallel()

	// Older deployments allowed two-character usernames.
	validator := NewCredentialValidator(2)

	req := model.RegisterRequest{
		Username: "u1",
		Email:    "u1@example.com",
		Password: "password123",
	}
	require.NoError(t, validator.ValidateRegistration(req))
}

func TestValidateLogin(t *testing.T) {
	t.Parallel()

	validator := NewCredentialValidator(3)

	require.NoError(t, validator.ValidateLogin(model.LoginRequest{
		UsernameOrEmail: "user1",
		Password:        "password123",
	}))

	err := validator.ValidateLogin(model.LoginRequest{UsernameOrEmail: "  ", Password: "password123"})
	require.Error(t, err)

	err = validator.ValidateLogin(model.LoginRequest{UsernameOrEmail: "user1", Password: "short"})
	require.Error(t, err)

	err = validator.ValidateLogin(model.LoginRequest{UsernameOrEmail: "user1", Password: strings.Repeat("a", 73)})
	require.Error(t, err)
}

func TestValidatePasswordAtBcryptLimit(t *testing.T) {
	t.Parallel()

	validator := NewCredentialValidator(3)

	// Exactly 72 bytes is fine; 73 is not.
	req := model.RegisterRequest{
		Username: "user1",
		Email:    "user1@example.com",
		Password: strings.Repeat("a", 72),
	}
	require.NoError(t, validator.ValidateRegistration(req))

	req.Password = strings.Repeat("a", 73)
	err := validator.ValidateRegistration(req)
	require.Error(t, err)

	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "VALIDATION_ERROR", apiErr.Code)
	require.Equal(t, "password", apiErr.Details)
}
