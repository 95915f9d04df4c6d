package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	t.Parallel()

	role, err := NewRole("moderators", RoleTypeAdmin)
	require.NoError(t, err)
	assert.Zero(t, role.ID)
	assert.Equal(t, "moderators", role.Name.Value())
	assert.Equal(t, RoleTypeAdmin, role.Type)

	_, err = NewRole("  ", RoleTypeUser)
	assert.ErrorIs(t, err, ErrRoleNameRequired)

	_, err = NewRole(strings.Repeat("r", 51), RoleTypeUser)
	assert.ErrorIs(t, err, ErrRoleNameTooLong)

	_, err = NewRole("guests", RoleType("GUEST"))
	assert.ErrorIs(t, err, ErrInvalidRoleType)
}

func TestRoleOf(t *testing.T) {
	t.Parallel()

	now := time.Now()
	role, err := RoleOf(1, RestoreRoleName("admin"), RoleTypeAdmin, now, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), role.ID)

	_, err = RoleOf(0, RestoreRoleName("admin"), RoleTypeAdmin, now, now)
	assert.ErrorIs(t, err, ErrEmptyRoleID)
}

func TestParseRoleType(t *testing.T) {
	t.Parallel()

	rt, err := ParseRoleType("USER")
	require.NoError(t, err)
	assert.Equal(t, RoleTypeUser, rt)

	_, err = ParseRoleType("user")
	assert.ErrorIs(t, err, ErrInvalidRoleType)
}
