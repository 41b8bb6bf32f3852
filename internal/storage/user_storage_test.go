package storage

import (
	"path/filepath"
	"testing"
	"time"

	"MedChat_PatientAssistant/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "medchat_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func anaUser() models.User {
	return models.User{
		Email:           "a@b.com",
		PasswordHash:    "$2a$10$fakefakefakefakefakefake",
		Fullname:        "Ana",
		Age:             30,
		Gender:          models.GenderFemale,
		Allergies:       []string{"penicillin"},
		Medications:     []string{},
		MedicalHistory:  "asthma",
		SurgicalHistory: []string{"appendectomy"},
		FamilyHistory:   "",
	}
}

func TestCreateAndGetUser(t *testing.T) {
	store := newTestStore(t)

	user := anaUser()
	require.NoError(t, store.CreateUser(&user))
	assert.NotZero(t, user.ID)
	assert.False(t, user.LastCheckup.IsZero(), "last checkup defaults to creation time")

	got, err := store.GetUserByEmail("a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Fullname)
	assert.Equal(t, 30, got.Age)
	assert.Equal(t, []string{"penicillin"}, got.Allergies)
	assert.Equal(t, []string{}, got.Medications)
	assert.Equal(t, []string{"appendectomy"}, got.SurgicalHistory)
	assert.Equal(t, user.PasswordHash, got.PasswordHash)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	store := newTestStore(t)

	first := anaUser()
	require.NoError(t, store.CreateUser(&first))

	second := anaUser()
	second.Fullname = "Impostor"
	err := store.CreateUser(&second)
	assert.ErrorIs(t, err, ErrEmailExists)

	// the original row is untouched
	got, err := store.GetUserByEmail("a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Fullname)
}

func TestGetUserNotFound(t *testing.T) {
	store := newTestStore(t)
	_, err := store.GetUserByEmail("ghost@b.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestEmailExists(t *testing.T) {
	store := newTestStore(t)

	exists, err := store.EmailExists("a@b.com")
	require.NoError(t, err)
	assert.False(t, exists)

	user := anaUser()
	require.NoError(t, store.CreateUser(&user))

	exists, err = store.EmailExists("a@b.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUpdateUserPartialFields(t *testing.T) {
	store := newTestStore(t)
	user := anaUser()
	require.NoError(t, store.CreateUser(&user))

	fullname := "Ana Maria"
	meds := []string{"ibuprofen"}
	checkup := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	updated, err := store.UpdateUser("a@b.com", models.UserUpdate{
		Fullname:    &fullname,
		Medications: &meds,
		LastCheckup: &checkup,
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana Maria", updated.Fullname)
	assert.Equal(t, []string{"ibuprofen"}, updated.Medications)
	assert.True(t, checkup.Equal(updated.LastCheckup))
	// untouched fields survive
	assert.Equal(t, 30, updated.Age)
	assert.Equal(t, []string{"penicillin"}, updated.Allergies)
}

func TestUpdateUserNotFound(t *testing.T) {
	store := newTestStore(t)
	fullname := "Nobody"
	_, err := store.UpdateUser("ghost@b.com", models.UserUpdate{Fullname: &fullname})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	store := newTestStore(t)
	user := anaUser()
	require.NoError(t, store.CreateUser(&user))

	require.NoError(t, store.DeleteUser("a@b.com"))
	_, err := store.GetUserByEmail("a@b.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	assert.ErrorIs(t, store.DeleteUser("a@b.com"), ErrUserNotFound)
}

func TestUpdatePassword(t *testing.T) {
	store := newTestStore(t)
	user := anaUser()
	require.NoError(t, store.CreateUser(&user))

	require.NoError(t, store.UpdatePassword("a@b.com", "newhash"))
	got, err := store.GetUserByEmail("a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "newhash", got.PasswordHash)

	assert.ErrorIs(t, store.UpdatePassword("ghost@b.com", "x"), ErrUserNotFound)
}

func TestFindOrCreateFederatedIsIdempotent(t *testing.T) {
	store := newTestStore(t)

	first, err := store.FindOrCreateFederated("fed@b.com", "Fede Rated")
	require.NoError(t, err)
	assert.Equal(t, "Fede Rated", first.Fullname)

	// repeated logins return the same account and never create a duplicate
	second, err := store.FindOrCreateFederated("fed@b.com", "Different Name")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Fede Rated", second.Fullname)
}

func TestFindOrCreateFederatedKeepsCredentialAccount(t *testing.T) {
	store := newTestStore(t)
	user := anaUser()
	require.NoError(t, store.CreateUser(&user))

	got, err := store.FindOrCreateFederated("a@b.com", "Someone Else")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "Ana", got.Fullname)
	assert.Equal(t, user.PasswordHash, got.PasswordHash)
}
