package jwt

import (
	"testing"
	"time"

	"github.com/janhvi13092005/doc-talk-connect/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := newService()
	id := Identity{UserID: uuid.New(), Email: "jane@example.com", RoleID: 2}

	token, tokenID, err := svc.GenerateAccessToken(id)
	require.NoError(t, err)

	claims, err := svc.ValidateTokenOfType(token, AccessToken)
	require.NoError(t, err)
	assert.Equal(t, id.UserID, claims.UserID)
	assert.Equal(t, id.Email, claims.Email)
	assert.Equal(t, 2, claims.RoleID)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestRefreshTokenRejectedAsAccess(t *testing.T) {
	svc := newService()
	token, _, err := svc.GenerateRefreshToken(Identity{UserID: uuid.New()})
	require.NoError(t, err)

	_, err = svc.ValidateTokenOfType(token, AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := newService()
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, _, err := svc.GenerateAccessToken(Identity{UserID: uuid.New()})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenSignedWithOtherSecretRejected(t *testing.T) {
	other := NewJWTService(config.JWTConfig{Secret: "other", AccessExpiry: time.Minute})
	token, _, err := other.GenerateAccessToken(Identity{UserID: uuid.New()})
	require.NoError(t, err)

	_, err = newService().ValidateToken(token)
	assert.Error(t, err)
}
