package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/janhvi13092005/doc-talk-connect/internal/delivery/dto"
	"github.com/janhvi13092005/doc-talk-connect/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileFixture(t *testing.T, userID uuid.UUID) (ProfileUsecase, *fakeProfileRepo, *fakeAuditService) {
	t.Helper()
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	first := "Jane"
	repo := newFakeProfileRepo(entity.Profile{ID: userID, FirstName: &first})
	audit := &fakeAuditService{}
	return NewProfileUsecase(db, quietLogger(), repo, audit), repo, audit
}

func TestGetProfile_EmailFromSession(t *testing.T) {
	userID := uuid.New()
	uc, _, _ := newProfileFixture(t, userID)

	profile, err := uc.GetProfile(sessionContext(userID))
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", profile.Email)
	assert.Equal(t, "Jane", profile.FirstName)
	assert.Equal(t, "", profile.LastName)

	_, err = uc.GetProfile(sessionContext(uuid.New()))
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestUpdateProfile_IgnoresEmail(t *testing.T) {
	userID := uuid.New()
	uc, repo, audit := newProfileFixture(t, userID)

	// A client trying to smuggle an email change through the body
	var req dto.UpdateProfileRequest
	require.NoError(t, json.Unmarshal([]byte(`{"first_name":" Janet ","last_name":"Doe","email":"evil@example.com"}`), &req))

	profile, err := uc.UpdateProfile(sessionContext(userID), &req)
	require.NoError(t, err)

	assert.Equal(t, "Janet", profile.FirstName)
	assert.Equal(t, "Doe", profile.LastName)
	assert.Equal(t, "jane@example.com", profile.Email)
	assert.Equal(t, []entity.ProfileNames{{FirstName: "Janet", LastName: "Doe"}}, repo.updates)
	assert.Equal(t, []string{entity.AuditActionProfileUpdate}, audit.actions)
}

func TestUpdateProfile_RequiresSession(t *testing.T) {
	uc, repo, _ := newProfileFixture(t, uuid.New())

	_, err := uc.UpdateProfile(context.Background(), &dto.UpdateProfileRequest{FirstName: "X"})
	assert.ErrorIs(t, err, ErrSessionRequired)
	assert.Empty(t, repo.updates)
}

func TestDeleteAccount_NotImplemented(t *testing.T) {
	userID := uuid.New()
	uc, repo, _ := newProfileFixture(t, userID)

	assert.ErrorIs(t, uc.DeleteAccount(sessionContext(userID)), ErrNotImplemented)
	assert.Contains(t, repo.profiles, userID)
}
