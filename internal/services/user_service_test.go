package services

import (
	"testing"

	"github.com/joblyhq/jobly/internal/auth"
	"github.com/joblyhq/jobly/internal/dtos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The minimum bcrypt cost keeps hashing fast in tests.
const testBcryptCost = 4

func TestUserRegister(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, testBcryptCost)

	user, err := svc.Register(&dtos.RegisterRequest{
		Username:  "alice",
		Password:  "secret1",
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Doe",
	})
	require.NoError(t, err)
	assert.False(t, user.IsAdmin)
	assert.True(t, auth.CheckPassword(user.PasswordHash, "secret1"))

	_, err = svc.Register(&dtos.RegisterRequest{
		Username:  "alice",
		Password:  "secret1",
		Email:     "other@example.com",
		FirstName: "Alice",
		LastName:  "Doe",
	})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUserCreateAdmin(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, testBcryptCost)

	user := seedUser(t, db, svc, "root", true)
	assert.True(t, user.IsAdmin)
}

func TestUserAuthenticate(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, testBcryptCost)
	seedUser(t, db, svc, "alice", false)

	user, err := svc.Authenticate("alice", "password")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	// Unknown user and wrong password are indistinguishable.
	_, err = svc.Authenticate("alice", "wrong")
	assert.ErrorIs(t, err, ErrBadCredentials)
	_, err = svc.Authenticate("nobody", "password")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestUserUpdatePartial(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, testBcryptCost)
	seedUser(t, db, svc, "alice", false)

	user, err := svc.Update("alice", &dtos.UserUpdateRequest{
		FirstName: strPtr("Alicia"),
		Password:  strPtr("newpass"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", user.FirstName)
	assert.Equal(t, "User", user.LastName)
	assert.True(t, auth.CheckPassword(user.PasswordHash, "newpass"))

	_, err = svc.Update("alice", &dtos.UserUpdateRequest{})
	assert.ErrorIs(t, err, ErrEmptyUpdate)

	_, err = svc.Update("nobody", &dtos.UserUpdateRequest{FirstName: strPtr("x")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, testBcryptCost)
	seedUser(t, db, svc, "alice", false)

	require.NoError(t, svc.Delete("alice"))
	_, err := svc.Get("alice")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete("alice"), ErrNotFound)
}

func TestUserApply(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, testBcryptCost)
	seedUser(t, db, svc, "alice", false)
	acme := seedCompany(t, db, "acme", "Acme Corp", 100)
	job := seedJob(t, db, acme, "Engineer", 120000, 0)

	app, err := svc.Apply("alice", job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, app.JobID)
	assert.Equal(t, "applied", app.Status)

	// Applying twice to the same job is a conflict.
	_, err = svc.Apply("alice", job.ID)
	assert.ErrorIs(t, err, ErrDuplicate)

	_, err = svc.Apply("alice", 9999)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Apply("nobody", job.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Applications show up on the user.
	user, err := svc.Get("alice")
	require.NoError(t, err)
	require.Len(t, user.Applications, 1)
	assert.Equal(t, job.ID, user.Applications[0].JobID)
}
