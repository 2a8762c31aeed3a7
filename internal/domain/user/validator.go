package user

import (
	"fmt"
	"net/mail"
	"unicode"
	"unicode/utf8"
)

const (
	MaxEmailLen    = 254
	MaxNameLen     = 80
	MinPasswordLen = 8
)

// Validator checks user-supplied registration data.
type Validator interface {
	ValidateRegister(email, name, password string) error
	ValidateEmail(email string) error
	ValidatePassword(password string) error
}

type AccountValidator struct {
	requireDigit bool
	requireUpper bool
	requireLower bool
}

func NewAccountValidator() *AccountValidator {
	return &AccountValidator{
		requireDigit: true,
		requireUpper: true,
		requireLower: true,
	}
}

func (v *AccountValidator) ValidateRegister(email, name, password string) error {
	if err := v.ValidateEmail(email); err != nil {
		return fmt.Errorf("email validation failed: %w", err)
	}

	if name == "" || utf8.RuneCountInString(name) > MaxNameLen {
		return fmt.Errorf("name must be between 1 and %d characters", MaxNameLen)
	}

	if err := v.ValidatePassword(password); err != nil {
		return fmt.Errorf("password validation failed: %w", err)
	}

	return nil
}

func (v *AccountValidator) ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if len(email) > MaxEmailLen {
		return fmt.Errorf("email must be at most %d characters", MaxEmailLen)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

func (v *AccountValidator) ValidatePassword(password string) error {
	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLen)
	}

	hasLower := false
	hasUpper := false
	hasDigit := false

	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}

		if hasLower && hasUpper && hasDigit {
			break
		}
	}

	if v.requireLower && !hasLower {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}

	if v.requireUpper && !hasUpper {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}

	if v.requireDigit && !hasDigit {
		return fmt.Errorf("password must contain at least one digit")
	}

	return nil
}
