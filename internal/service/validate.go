package service

import (
	"fmt"
	"net/mail"
	"strings"

	"go-calc-service/internal/model"
	"go-calc-service/pkg/apierror"
)

const (
	defaultUsernameMinLength = 3
	usernameMaxLength        = 50
	passwordMinLength        = 8
	// bcrypt reads at most 72 bytes of input; longer passwords are rejected
	// here rather than failing inside the hasher.
	passwordMaxLength = 72
)

// CredentialValidator checks registration and login payload shape before any
// store lookup or hashing happens. The minimum username length is
// configurable; older deployments used 2.
type CredentialValidator struct {
	usernameMinLength int
}

func NewCredentialValidator(usernameMinLength int) *CredentialValidator {
	if usernameMinLength <= 0 {
		usernameMinLength = defaultUsernameMinLength
	}
	return &CredentialValidator{usernameMinLength: usernameMinLength}
}

func (v *CredentialValidator) ValidateRegistration(req model.RegisterRequest) error {
	username := strings.TrimSpace(req.Username)
	if len(username) < v.usernameMinLength || len(username) > usernameMaxLength {
		return apierror.Validation(
			fmt.Sprintf("username must be between %d and %d characters", v.usernameMinLength, usernameMaxLength),
			"username")
	}

	email := strings.TrimSpace(req.Email)
	if !validEmail(email) {
		return apierror.Validation("email is not a valid address", "email")
	}

	if err := validPasswordLength(req.Password); err != nil {
		return err
	}

	// Confirmation is optional on the wire; when present it must match
	// exactly, and the mismatch is caught before any hashing work.
	if req.ConfirmPassword != "" && req.ConfirmPassword != req.Password {
		return apierror.Validation("passwords do not match", "confirm_password")
	}

	return nil
}

func (v *CredentialValidator) ValidateLogin(req model.LoginRequest) error {
	if strings.TrimSpace(req.UsernameOrEmail) == "" {
		return apierror.Validation("username_or_email is required", "username_or_email")
	}

	if err := validPasswordLength(req.Password); err != nil {
		return err
	}

	return nil
}

func validPasswordLength(password string) error {
	if len(password) < passwordMinLength {
		return apierror.Validation(
			fmt.Sprintf("password must be at least %d characters", passwordMinLength),
			"password")
	}

	if len(password) > passwordMaxLength {
		return apierror.Validation(
			fmt.Sprintf("password must not exceed %d bytes", passwordMaxLength),
			"password")
	}

	return nil
}

// validEmail accepts a bare addr-spec only; display names and groups are
// rejected even though net/mail would parse them.
func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
