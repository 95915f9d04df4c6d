package domain

import "time"

// RoleType is the kind of privilege a role grants.
type RoleType string

// Role types
const (
	RoleTypeAdmin RoleType = "ADMIN"
	RoleTypeUser  RoleType = "USER"
)

// RoleNameMaxLength bounds role names, in characters.
const RoleNameMaxLength = 50

// Role validation errors
var (
	ErrRoleNameRequired = NewValidationError("role_name", "role_name_required",
		"role name must not be null or blank")
	ErrRoleNameTooLong = NewValidationError("role_name", "role_name_too_long",
		"role name must be at most 50 characters")
	ErrInvalidRoleType = NewValidationError("role_type", "invalid_role_type",
		"role type must be ADMIN or USER")
)

// ParseRoleType converts a raw string into a RoleType.
func ParseRoleType(raw string) (RoleType, error) {
	switch t := RoleType(raw); t {
	case RoleTypeAdmin, RoleTypeUser:
		return t, nil
	default:
		return "", ErrInvalidRoleType
	}
}

// RoleName is the unique name of a role.
type RoleName struct {
	value string
}

// NewRoleName validates raw.
func NewRoleName(raw string) (RoleName, error) {
	if isBlank(raw) {
		return RoleName{}, ErrRoleNameRequired
	}
	if length(raw) > RoleNameMaxLength {
		return RoleName{}, ErrRoleNameTooLong
	}
	return RoleName{value: raw}, nil
}

// Value returns the name.
func (r RoleName) Value() string { return r.value }

func (r RoleName) String() string { return r.value }

// Role groups users by privilege.
type Role struct {
	ID        int64
	Name      RoleName
	Type      RoleType
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewRole creates an unsaved role.
func NewRole(name string, roleType RoleType) (*Role, error) {
	roleName, err := NewRoleName(name)
	if err != nil {
		return nil, err
	}
	if _, err := ParseRoleType(string(roleType)); err != nil {
		return nil, err
	}
	return &Role{Name: roleName, Type: roleType}, nil
}

// RoleOf rebuilds a persisted role. Only the identity is checked.
func RoleOf(id int64, name RoleName, roleType RoleType, createdAt, updatedAt time.Time) (*Role, error) {
	if id == 0 {
		return nil, ErrEmptyRoleID
	}
	return &Role{
		ID:        id,
		Name:      name,
		Type:      roleType,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}
