package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canteenhq/canteen-backend/internal/models"
	"github.com/canteenhq/canteen-backend/internal/service"
	"github.com/canteenhq/canteen-backend/internal/testhelpers"
)

func TestRegister(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewAuthService(db, "test-secret")

	user, err := svc.Register(context.Background(), "student1", "password123")
	require.NoError(t, err)
	assert.Equal(t, "student1", user.Username)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.NotEqual(t, "password123", user.PasswordHash)

	// Registration also creates the student payload row.
	var profile models.StudentProfile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewAuthService(db, "test-secret")

	_, err := svc.Register(context.Background(), "student1", "password123")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "student1", "otherpassword")
	assert.ErrorIs(t, err, service.ErrUserExists)
}

func TestLogin(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewAuthService(db, "test-secret")

	registered, err := svc.Register(context.Background(), "student1", "password123")
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), "student1", "password123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestLoginInvalidCredentials(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewAuthService(db, "test-secret")

	_, err := svc.Register(context.Background(), "student1", "password123")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "student1", "wrongpassword")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody", "password123")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestTokenRoundTrip(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewAuthService(db, "test-secret")
	cook := testhelpers.CreateUser(t, db, "cook1", models.RoleCook)

	token, err := svc.GenerateToken(cook)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, cook.ID, claims.UserID)
	assert.Equal(t, "cook1", claims.Username)
	assert.Equal(t, string(models.RoleCook), claims.Role)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewAuthService(db, "test-secret")
	student := testhelpers.CreateUser(t, db, "student1", models.RoleStudent)

	token, err := svc.GenerateToken(student)
	require.NoError(t, err)

	other := service.NewAuthService(db, "different-secret")
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}
