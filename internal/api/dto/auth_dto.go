package dto

import (
	"net/mail"
	"strings"
	"unicode"

	apperrors "github.com/spec-kit/user-management/pkg/util"
)

const (
	maxEmailLen    = 254
	minPasswordLen = 8
	// bcrypt rejects input beyond 72 bytes, so the policy cap matches it.
	maxPasswordLen = 72
	minNameLen     = 2
	maxNameLen     = 100

	passwordSpecials = "@$!%*?&#"
)

// SignupRequest payload for new accounts.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

// Validate enforces the signup input rules.
func (r SignupRequest) Validate() error {
	details := map[string]any{}
	if msg := validateEmail(r.Email); msg != "" {
		details["email"] = msg
	}
	if msg := validatePassword(r.Password); msg != "" {
		details["password"] = msg
	}
	if msg := validateFullName(r.FullName); msg != "" {
		details["fullName"] = msg
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid signup payload", details)
	}
	return nil
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks that both credential parts are present. Content rules are
// not enforced here: a malformed password must fail as bad credentials, not
// as a validation error that leaks policy.
func (r LoginRequest) Validate() error {
	details := map[string]any{}
	if strings.TrimSpace(r.Email) == "" {
		details["email"] = "email is required"
	}
	if r.Password == "" {
		details["password"] = "password is required"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("email and password required", details)
	}
	return nil
}

// ChangePasswordRequest payload for self-service password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// Validate enforces the password policy on the new password only.
func (r ChangePasswordRequest) Validate() error {
	details := map[string]any{}
	if r.CurrentPassword == "" {
		details["currentPassword"] = "current password is required"
	}
	if msg := validatePassword(r.NewPassword); msg != "" {
		details["newPassword"] = msg
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid change-password payload", details)
	}
	return nil
}

func validateEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return "email is required"
	}
	if len(email) > maxEmailLen {
		return "email is too long"
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "please provide a valid email address"
	}
	return ""
}

func validatePassword(password string) string {
	if len(password) < minPasswordLen || len(password) > maxPasswordLen {
		return "password must be between 8 and 72 characters"
	}
	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, ch := range password {
		switch {
		case unicode.IsLower(ch):
			hasLower = true
		case unicode.IsUpper(ch):
			hasUpper = true
		case unicode.IsDigit(ch):
			hasDigit = true
		case strings.ContainsRune(passwordSpecials, ch):
			hasSpecial = true
		}
	}
	if !hasLower || !hasUpper || !hasDigit || !hasSpecial {
		return "password must contain at least one uppercase letter, one lowercase letter, one number, and one special character (@$!%*?&#)"
	}
	return ""
}

func validateFullName(name string) string {
	name = strings.TrimSpace(name)
	if len(name) < minNameLen || len(name) > maxNameLen {
		return "full name must be between 2 and 100 characters"
	}
	for _, ch := range name {
		if unicode.IsLetter(ch) || ch == ' ' || ch == '\'' || ch == '-' {
			continue
		}
		return "full name can only contain letters, spaces, hyphens, and apostrophes"
	}
	return ""
}
