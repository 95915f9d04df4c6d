package service_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/forum-api/internal/domain"
	"github.com/phrazzld/forum-api/internal/service"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func userActor(id uuid.UUID) service.Actor {
	return service.Actor{UserID: id, Roles: []domain.RoleType{domain.RoleTypeUser}}
}

func adminActor() service.Actor {
	return service.Actor{UserID: uuid.New(), Roles: []domain.RoleType{domain.RoleTypeUser, domain.RoleTypeAdmin}}
}

func persistedMaintopic(t *testing.T, id int64, owner uuid.UUID, title, description string) *domain.Maintopic {
	t.Helper()
	tt, err := domain.NewTitle(title)
	require.NoError(t, err)
	d, err := domain.NewDescription(description)
	require.NoError(t, err)
	return domain.MaintopicOf(id, tt, d, owner, testTime, testTime, false, false)
}

func persistedUser(t *testing.T, email, hash string, roles ...domain.RoleType) *domain.User {
	t.Helper()
	addr, err := domain.NewEmail(email)
	require.NoError(t, err)
	name, err := domain.NewUserName("forum user")
	require.NoError(t, err)
	return domain.UserOf(uuid.New(), name, addr, hash, domain.LoginID{}, true, false, roles, testTime, testTime)
}
