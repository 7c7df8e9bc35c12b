package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franciscosanchezn/pizza-orders-api/internal/models"
)

func TestCreateUserSuccessful(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	user, err := svc.CreateUser(context.Background(), "test@andela.com", "Test123", "Johnny")
	require.NoError(t, err)

	assert.Equal(t, "test@andela.com", user.Email)
	assert.Equal(t, "Johnny", user.Name)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsStaff)
	assert.True(t, user.CheckPassword("Test123"))
	assert.NotEqual(t, "Test123", user.PasswordHash)
}

func TestCreateUserEmailNormalized(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	user, err := svc.CreateUser(context.Background(), "test@ANDELA.com", "Test1234", "")
	require.NoError(t, err)

	assert.Equal(t, "test@andela.com", user.Email)
}

func TestCreateUserEmailRequired(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	_, err := svc.CreateUser(context.Background(), "", "Test1234", "")
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = svc.CreateUser(context.Background(), "   ", "Test1234", "")
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	_, err := svc.CreateUser(context.Background(), "test@andela.com", "Test123", "")
	require.NoError(t, err)

	// Same address in another case is still a duplicate
	_, err = svc.CreateUser(context.Background(), "TEST@andela.com", "Test123", "")
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestCreateSuperuser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	user, err := svc.CreateSuperuser(context.Background(), "admin@andela.com", "Test123")
	require.NoError(t, err)

	assert.True(t, user.IsStaff)
	assert.True(t, user.IsSuperuser)

	reloaded, err := svc.GetUserByEmail(context.Background(), "admin@andela.com")
	require.NoError(t, err)
	assert.True(t, reloaded.IsStaff)
}

func TestAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	_, err := svc.CreateUser(context.Background(), "test@andela.com", "Test123", "")
	require.NoError(t, err)

	user, err := svc.Authenticate(context.Background(), "Test@Andela.com", "Test123")
	require.NoError(t, err)
	assert.Equal(t, "test@andela.com", user.Email)

	_, err = svc.Authenticate(context.Background(), "test@andela.com", "wrong")
	assert.ErrorIs(t, err, models.ErrUnauthenticated)

	_, err = svc.Authenticate(context.Background(), "nobody@andela.com", "Test123")
	assert.ErrorIs(t, err, models.ErrUnauthenticated)
}

func TestAuthenticateInactiveUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	user, err := svc.CreateUser(context.Background(), "test@andela.com", "Test123", "")
	require.NoError(t, err)

	require.NoError(t, db.Model(user).Update("is_active", false).Error)

	_, err = svc.Authenticate(context.Background(), "test@andela.com", "Test123")
	assert.ErrorIs(t, err, models.ErrUnauthenticated)
}
