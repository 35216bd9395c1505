package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/janhvi13092005/doc-talk-connect/config"
	"github.com/janhvi13092005/doc-talk-connect/internal/delivery/dto"
	"github.com/janhvi13092005/doc-talk-connect/internal/delivery/http/middleware"
	"github.com/janhvi13092005/doc-talk-connect/internal/domain/entity"
	"github.com/janhvi13092005/doc-talk-connect/internal/service"
	"github.com/janhvi13092005/doc-talk-connect/pkg/jwt"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authFixture struct {
	usecase    *authUsecase
	mock       sqlmock.Sqlmock
	users      *fakeUserRepo
	profiles   *fakeProfileRepo
	audit      *fakeAuditService
	jwtService *jwt.JWTService
	sessions   service.SessionStore
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	db, mock := newMockDB(t)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	log := quietLogger()
	f := &authFixture{
		mock:       mock,
		users:      newFakeUserRepo(),
		profiles:   newFakeProfileRepo(),
		audit:      &fakeAuditService{},
		jwtService: jwt.NewJWTService(config.JWTConfig{Secret: "secret", AccessExpiry: 15 * time.Minute, RefreshExpiry: time.Hour}),
		sessions:   service.NewSessionStore(client, log),
	}

	uc := NewAuthUsecase(db, log, f.users, f.profiles, f.audit, f.jwtService, f.sessions).(*authUsecase)
	uc.hashCost = bcrypt.MinCost
	f.usecase = uc
	return f
}

func (f *authFixture) signUp(t *testing.T, email, password, name string) *dto.UserResponse {
	t.Helper()
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	user, err := f.usecase.SignUp(context.Background(), &dto.SignUpRequest{Email: email, Password: password, Name: name})
	require.NoError(t, err)
	return user
}

// sessionFor builds the request context the auth middleware would attach.
func (f *authFixture) sessionFor(t *testing.T, accessToken string) context.Context {
	t.Helper()
	claims, err := f.jwtService.ValidateTokenOfType(accessToken, jwt.AccessToken)
	require.NoError(t, err)
	return middleware.ContextWithIdentity(context.Background(), claims.UserID, claims.Email, claims.RoleID, claims.TokenID)
}

func TestSignUp_CreatesPatientWithProfile(t *testing.T) {
	f := newAuthFixture(t)

	user := f.signUp(t, "Jane.Doe@Example.com", "secret1", "Jane van Doe")

	assert.Equal(t, "jane.doe@example.com", user.Email)
	assert.Equal(t, entity.RolePatient, user.Role)

	profile := f.profiles.profiles[user.ID]
	require.NotNil(t, profile.FirstName)
	require.NotNil(t, profile.LastName)
	assert.Equal(t, "Jane", *profile.FirstName)
	assert.Equal(t, "van Doe", *profile.LastName)
	assert.Equal(t, []string{entity.AuditActionUserRegister}, f.audit.actions)
	require.NoError(t, f.mock.ExpectationsWereMet())
}

func TestSignUp_Rejections(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.usecase.SignUp(context.Background(), &dto.SignUpRequest{Email: "a@example.com", Password: "secret1", Name: "   "})
	assert.ErrorIs(t, err, ErrNameRequired)
	assert.Empty(t, f.users.users)

	f.signUp(t, "a@example.com", "secret1", "Ann")

	f.mock.ExpectBegin()
	f.mock.ExpectRollback()
	_, err = f.usecase.SignUp(context.Background(), &dto.SignUpRequest{Email: "A@example.com", Password: "secret2", Name: "Ann Other"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	assert.Len(t, f.users.users, 1)
	require.NoError(t, f.mock.ExpectationsWereMet())
}

func TestSignIn(t *testing.T) {
	f := newAuthFixture(t)
	f.signUp(t, "jane@example.com", "secret1", "Jane")

	tokens, err := f.usecase.SignIn(context.Background(), &dto.SignInRequest{Email: "JANE@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", tokens.TokenType)
	assert.Equal(t, int64(900), tokens.ExpiresIn)

	ctx := f.sessionFor(t, tokens.AccessToken)
	me, err := f.usecase.GetCurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", me.Email)

	_, err = f.usecase.SignIn(context.Background(), &dto.SignInRequest{Email: "jane@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.usecase.SignIn(context.Background(), &dto.SignInRequest{Email: "nobody@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshToken_SingleUse(t *testing.T) {
	f := newAuthFixture(t)
	f.signUp(t, "jane@example.com", "secret1", "Jane")

	tokens, err := f.usecase.SignIn(context.Background(), &dto.SignInRequest{Email: "jane@example.com", Password: "secret1"})
	require.NoError(t, err)

	rotated, err := f.usecase.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, tokens.RefreshToken, rotated.RefreshToken)

	_, err = f.usecase.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	assert.ErrorIs(t, err, ErrTokenRevoked)

	// An access token is not accepted as a refresh token
	_, err = f.usecase.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: rotated.AccessToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSignOut_RevokesBothTokens(t *testing.T) {
	f := newAuthFixture(t)
	f.signUp(t, "jane@example.com", "secret1", "Jane")

	tokens, err := f.usecase.SignIn(context.Background(), &dto.SignInRequest{Email: "jane@example.com", Password: "secret1"})
	require.NoError(t, err)
	ctx := f.sessionFor(t, tokens.AccessToken)

	require.NoError(t, f.usecase.SignOut(ctx, tokens.RefreshToken))

	userID, _ := middleware.GetUserIDFromContext(ctx)
	tokenID, _ := middleware.GetTokenIDFromContext(ctx)
	active, err := f.sessions.IsActive(context.Background(), jwt.AccessToken, userID, tokenID)
	require.NoError(t, err)
	assert.False(t, active)

	_, err = f.usecase.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	assert.ErrorIs(t, err, ErrTokenRevoked)

	assert.ErrorIs(t, f.usecase.SignOut(context.Background(), ""), ErrSessionRequired)
}
