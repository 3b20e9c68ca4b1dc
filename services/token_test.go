package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storeratings/errors"
	"storeratings/models"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", 60)

	token, err := svc.Generate(UserInfo{UserId: 42, Role: models.RoleOwner, Email: "owner@example.com"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	info, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), info.UserId)
	assert.Equal(t, models.RoleOwner, info.Role)
	assert.Equal(t, "owner@example.com", info.Email)
}

func TestTokenWrongSecretRejected(t *testing.T) {
	token, err := NewTokenService("secret-a", 60).Generate(UserInfo{UserId: 1, Role: models.RoleUser})
	require.NoError(t, err)

	_, err = NewTokenService("secret-b", 60).Parse(token)
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 401, appErr.Status())
}

func TestTokenExpiredRejected(t *testing.T) {
	svc := NewTokenService("test-secret", -1)

	token, err := svc.Generate(UserInfo{UserId: 1, Role: models.RoleUser})
	require.NoError(t, err)

	_, err = svc.Parse(token)
	require.Error(t, err)
}

func TestTokenGarbageRejected(t *testing.T) {
	_, err := NewTokenService("test-secret", 60).Parse("not.a.token")
	require.Error(t, err)
}

func TestTokenUnknownRoleRejected(t *testing.T) {
	svc := NewTokenService("test-secret", 60)

	token, err := svc.Generate(UserInfo{UserId: 1, Role: "superadmin"})
	require.NoError(t, err)

	_, err = svc.Parse(token)
	require.Error(t, err)
}
