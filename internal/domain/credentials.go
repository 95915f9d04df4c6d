package domain

import (
	"regexp"
	"strings"
	"unicode"
)

// Credential field bounds.
const (
	EmailMaxLength    = 254
	UserNameMaxLength = 50
	PasswordMinLength = 8
	PasswordMaxLength = 72 // bcrypt ignores anything past 72 bytes
	LoginIDMinLength  = 3
	LoginIDMaxLength  = 30
)

// Credential validation errors
var (
	ErrUserNameRequired = NewValidationError("username", "username_required", "username required")
	ErrUserNameTooLong  = NewValidationError("username", "username_too_long",
		"username must be at most 50 characters")
	ErrInvalidEmail     = NewValidationError("email", "invalid_email", "invalid email format")
	ErrPasswordRequired = NewValidationError("password", "password_required", "password required")
	ErrPasswordNoUpper  = NewValidationError("password", "weak_password",
		"weak password: must contain at least one uppercase letter")
	ErrPasswordNoLower = NewValidationError("password", "weak_password",
		"weak password: must contain at least one lowercase letter")
	ErrPasswordNoDigit = NewValidationError("password", "weak_password",
		"weak password: must contain at least one digit")
	ErrPasswordLength = NewValidationError("password", "weak_password",
		"weak password: must be between 8 and 72 characters")
	ErrLoginIDInvalid = NewValidationError("login_id", "invalid_login_id",
		"login id must be 3 to 30 letters, digits, '_', '.' or '-'")
)

var (
	emailPattern   = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)
	loginIDPattern = regexp.MustCompile(`^[A-Za-z0-9_.\-]{3,30}$`)
)

// Email is a syntactically valid email address.
type Email struct {
	value string
}

// NewEmail validates raw. Surrounding whitespace is ignored.
func NewEmail(raw string) (Email, error) {
	v := strings.TrimSpace(raw)
	if v == "" || len(v) > EmailMaxLength || !emailPattern.MatchString(v) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: v}, nil
}

// Value returns the address.
func (e Email) Value() string { return e.value }

// Equals compares case-insensitively; domains and most mailboxes are not case sensitive.
func (e Email) Equals(other string) bool { return strings.EqualFold(e.value, other) }

func (e Email) String() string { return e.value }

// Password is a plaintext password that passed the complexity rules.
// It only lives until it is hashed.
type Password struct {
	value string
}

// NewPassword checks presence, then character classes, then length.
func NewPassword(raw string) (Password, error) {
	if isBlank(raw) {
		return Password{}, ErrPasswordRequired
	}

	var upper, lower, digit bool
	for _, r := range raw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	switch {
	case !upper:
		return Password{}, ErrPasswordNoUpper
	case !lower:
		return Password{}, ErrPasswordNoLower
	case !digit:
		return Password{}, ErrPasswordNoDigit
	}

	if n := len(raw); n < PasswordMinLength || n > PasswordMaxLength {
		return Password{}, ErrPasswordLength
	}
	return Password{value: raw}, nil
}

// Value returns the plaintext.
func (p Password) Value() string { return p.value }

// String never reveals the plaintext.
func (p Password) String() string { return "********" }

// UserName is the display name of a user.
type UserName struct {
	value string
}

// NewUserName validates raw.
func NewUserName(raw string) (UserName, error) {
	if isBlank(raw) {
		return UserName{}, ErrUserNameRequired
	}
	if length(raw) > UserNameMaxLength {
		return UserName{}, ErrUserNameTooLong
	}
	return UserName{value: raw}, nil
}

// Value returns the name.
func (u UserName) Value() string { return u.value }

func (u UserName) String() string { return u.value }

// LoginID is the public handle a user can sign in with instead of an email.
type LoginID struct {
	value string
}

// NewLoginID validates raw.
func NewLoginID(raw string) (LoginID, error) {
	if !loginIDPattern.MatchString(raw) {
		return LoginID{}, ErrLoginIDInvalid
	}
	return LoginID{value: raw}, nil
}

// Value returns the handle.
func (l LoginID) Value() string { return l.value }

// IsEmpty reports whether no handle is set.
func (l LoginID) IsEmpty() bool { return l.value == "" }

func (l LoginID) String() string { return l.value }
