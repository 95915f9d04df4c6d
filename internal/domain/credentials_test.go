package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var zeroTime time.Time

func TestNewEmail(t *testing.T) {
	t.Parallel()

	valid := []string{
		"user@example.com",
		"user.name@example.com",
		"user+tag@example.com",
		"user@sub.example.co",
		"  padded@example.com ",
	}
	invalid := []string{
		"",
		"userexample.com",
		"user@",
		"@example.com",
		"user@example",
		"user@exa mple.com",
		strings.Repeat("a", 250) + "@example.com",
	}

	for _, raw := range valid {
		email, err := NewEmail(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, strings.TrimSpace(raw), email.Value())
	}
	for _, raw := range invalid {
		_, err := NewEmail(raw)
		assert.ErrorIs(t, err, ErrInvalidEmail, raw)
	}
}

func TestEmailEqualsIgnoresCase(t *testing.T) {
	t.Parallel()

	email, err := NewEmail("Gopher@Example.com")
	require.NoError(t, err)
	assert.True(t, email.Equals("gopher@example.com"))
}

func TestNewPassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want error
	}{
		{raw: "Passw0rd"},
		{raw: "Ünïcode9x"},
		{raw: "", want: ErrPasswordRequired},
		{raw: "        ", want: ErrPasswordRequired},
		{raw: "alllowercase1", want: ErrPasswordNoUpper},
		{raw: "ALLUPPER1", want: ErrPasswordNoLower},
		{raw: "NoDigitsAtAll", want: ErrPasswordNoDigit},
		{raw: "Sh0rt", want: ErrPasswordLength},
		{raw: "L0ng" + strings.Repeat("x", 69), want: ErrPasswordLength},
	}

	for _, tt := range tests {
		pw, err := NewPassword(tt.raw)
		if tt.want != nil {
			assert.ErrorIs(t, err, tt.want, tt.raw)
			continue
		}
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.raw, pw.Value())
		assert.NotContains(t, pw.String(), tt.raw)
	}
}

func TestNewUserName(t *testing.T) {
	t.Parallel()

	_, err := NewUserName("")
	assert.ErrorIs(t, err, ErrUserNameRequired)

	_, err = NewUserName(strings.Repeat("n", 51))
	assert.ErrorIs(t, err, ErrUserNameTooLong)

	name, err := NewUserName("Ada Lovelace")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", name.Value())
}

func TestNewLoginID(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"abc", "gopher_01", "first.last", "with-dash"} {
		id, err := NewLoginID(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, raw, id.Value())
	}
	for _, raw := range []string{"", "ab", "has space", "emoji🙂", strings.Repeat("a", 31)} {
		_, err := NewLoginID(raw)
		assert.ErrorIs(t, err, ErrLoginIDInvalid, raw)
	}
}
