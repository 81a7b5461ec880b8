package user

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	MinLoginLen    = 3
	MaxLoginLen    = 32
	MinPasswordLen = 8
	// MaxPasswordLen is bcrypt's input ceiling; bytes beyond it would be
	// silently ignored by the hash, so reject them up front.
	MaxPasswordLen = 72
)

// Validator checks account credentials before they reach hashing. The
// primary password guards every stored secret, so the policy here is
// stricter than a generic web signup would need.
type Validator interface {
	ValidateRegister(login, password string) error
	ValidateLogin(login string) error
	ValidatePassword(password string) error
}

// PasswordValidator requires a password to draw from minClasses of the four
// character classes (lower, upper, digit, special).
type PasswordValidator struct {
	minClasses int
}

func NewPasswordValidator() *PasswordValidator {
	return &PasswordValidator{minClasses: 4}
}

func (v *PasswordValidator) ValidateRegister(login, password string) error {
	if err := v.ValidateLogin(login); err != nil {
		return fmt.Errorf("login validation failed: %w", err)
	}

	if err := v.ValidatePassword(password); err != nil {
		return fmt.Errorf("password validation failed: %w", err)
	}

	return nil
}

func (v *PasswordValidator) ValidateLogin(login string) error {
	if len(login) < MinLoginLen || len(login) > MaxLoginLen {
		return fmt.Errorf("login must be %d to %d characters", MinLoginLen, MaxLoginLen)
	}

	for i, r := range login {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			continue
		}
		if (r == '_' || r == '-' || r == '.') && i > 0 {
			continue
		}
		return fmt.Errorf("login can only contain letters, digits, '_', '-', '.' and must start with a letter or digit")
	}

	return nil
}

func (v *PasswordValidator) ValidatePassword(password string) error {
	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLen)
	}
	if len(password) > MaxPasswordLen {
		return fmt.Errorf("password must be at most %d bytes", MaxPasswordLen)
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	var present int
	var missing []string
	for _, class := range []struct {
		ok   bool
		name string
	}{
		{hasLower, "a lowercase letter"},
		{hasUpper, "an uppercase letter"},
		{hasDigit, "a digit"},
		{hasSpecial, "a special character"},
	} {
		if class.ok {
			present++
		} else {
			missing = append(missing, class.name)
		}
	}

	if present < v.minClasses {
		return fmt.Errorf("password must contain %s", strings.Join(missing, ", "))
	}

	return nil
}
