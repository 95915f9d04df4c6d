package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// User represents a registered forum member.
type User struct {
	ID             uuid.UUID
	UserName       UserName
	Email          Email
	Password       Password // plaintext, only set between registration and hashing
	HashedPassword string
	LoginID        LoginID
	IsActive       bool
	IsDeleted      bool
	Roles          []RoleType
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewUser creates an active user with a fresh ID.
// Checks run in order (username, email, password presence, password strength)
// and the first failure is returned.
//
// The caller is responsible for hashing the password before storing the user.
func NewUser(userName, email, password string) (*User, error) {
	name, err := NewUserName(userName)
	if err != nil {
		return nil, err
	}
	addr, err := NewEmail(email)
	if err != nil {
		return nil, err
	}
	pw, err := NewPassword(password)
	if err != nil {
		return nil, err
	}

	return &User{
		ID:       uuid.New(),
		UserName: name,
		Email:    addr,
		Password: pw,
		IsActive: true,
	}, nil
}

// UserOf rebuilds a persisted user without re-running validation.
func UserOf(
	id uuid.UUID,
	userName UserName,
	email Email,
	hashedPassword string,
	loginID LoginID,
	isActive, isDeleted bool,
	roles []RoleType,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		ID:             id,
		UserName:       userName,
		Email:          email,
		HashedPassword: hashedPassword,
		LoginID:        loginID,
		IsActive:       isActive,
		IsDeleted:      isDeleted,
		Roles:          roles,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}

// WithLoginID returns a copy of u carrying loginID.
func (u *User) WithLoginID(loginID LoginID) *User {
	c := u.clone()
	c.LoginID = loginID
	return c
}

// WithHashedPassword returns a copy of u with the hash set and the plaintext dropped.
func (u *User) WithHashedPassword(hash string) *User {
	c := u.clone()
	c.HashedPassword = hash
	c.Password = Password{}
	return c
}

// WithRoles returns a copy of u holding roles.
func (u *User) WithRoles(roles ...RoleType) *User {
	c := u.clone()
	c.Roles = slices.Clone(roles)
	return c
}

// HasRole reports whether the user holds a role of type t.
func (u *User) HasRole(t RoleType) bool {
	return slices.Contains(u.Roles, t)
}

// CanSignIn reports whether the account may authenticate.
func (u *User) CanSignIn() bool {
	return u.IsActive && !u.IsDeleted
}

func (u *User) clone() *User {
	c := *u
	c.Roles = slices.Clone(u.Roles)
	return &c
}
