package services

import (
	"testing"

	"fittrack_backend/internal/models"
	"fittrack_backend/internal/services/dto"
	"fittrack_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	user := &models.User{
		UserName: "aidana",
		Email:    "aidana@test.com",
		Profile:  models.Profile{Gender: models.GenderFemale, Height: 168},
	}
	require.NoError(t, repo.Create(user))

	profile, err := svc.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "aidana", profile.UserName)
	assert.Equal(t, models.GenderFemale, profile.Profile.Gender)

	_, err = svc.GetProfile("missing-id")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUpdateProfile_EmptyRequest(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	user := &models.User{UserName: "aidana", Email: "aidana@test.com"}
	require.NoError(t, repo.Create(user))

	_, err := svc.UpdateProfile(user.ID, &dto.UpdateProfileRequest{})
	assert.Error(t, err)
}

func TestUpdateProfile_TakenUserName(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	first := &models.User{UserName: "aidana", Email: "aidana@test.com"}
	second := &models.User{UserName: "dias", Email: "dias@test.com"}
	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))

	taken := "aidana"
	_, err := svc.UpdateProfile(second.ID, &dto.UpdateProfileRequest{UserName: &taken})
	assert.ErrorIs(t, err, apperrors.ErrUserNameAlreadyExists)

	// свое же имя конфликтом не считается
	own := "dias"
	_, err = svc.UpdateProfile(second.ID, &dto.UpdateProfileRequest{UserName: &own})
	assert.NoError(t, err)
}

func TestUpdateProfile_TakenEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	first := &models.User{UserName: "aidana", Email: "aidana@test.com"}
	second := &models.User{UserName: "dias", Email: "dias@test.com"}
	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))

	taken := "aidana@test.com"
	_, err := svc.UpdateProfile(second.ID, &dto.UpdateProfileRequest{Email: &taken})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	// регистр не обходит проверку уникальности
	takenUpper := "AIDANA@Test.com"
	_, err = svc.UpdateProfile(second.ID, &dto.UpdateProfileRequest{Email: &takenUpper})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}
