// file: internals/features/users/auth/service/token_service_test.go
package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campushub_backend/internals/configs"
	userModel "campushub_backend/internals/features/users/user/model"
)

func TestIssueAndParseTokens(t *testing.T) {
	configs.JWTSecret = "test-access-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"

	u := &userModel.UserModel{
		UserID:   uuid.New(),
		UserUID:  "google:123",
		UserRole: userModel.RoleCA,
	}

	pair, err := IssueTokens(u)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	// access token carries identity + role and is marked typ=access
	tok, err := jwt.Parse(pair.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	})
	require.NoError(t, err)
	claims := tok.Claims.(jwt.MapClaims)
	assert.Equal(t, u.UserID.String(), claims["sub"])
	assert.Equal(t, "google:123", claims["uid"])
	assert.Equal(t, userModel.RoleCA, claims["role"])
	assert.Equal(t, "access", claims["typ"])

	// refresh token round-trips back to the subject
	sub, err := ParseRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, u.UserID.String(), sub)
}

func TestParseRefreshTokenRejectsAccessToken(t *testing.T) {
	configs.JWTSecret = "test-access-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"

	u := &userModel.UserModel{UserID: uuid.New(), UserUID: "x", UserRole: userModel.RoleStudent}
	pair, err := IssueTokens(u)
	require.NoError(t, err)

	_, err = ParseRefreshToken(pair.AccessToken)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2secret")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2secret", hash)

	assert.True(t, CheckPassword(hash, "hunter2secret"))
	assert.False(t, CheckPassword(hash, "wrong"))
}
