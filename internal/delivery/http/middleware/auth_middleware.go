package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/janhvi13092005/doc-talk-connect/internal/service"
	"github.com/janhvi13092005/doc-talk-connect/pkg/jwt"
	"github.com/janhvi13092005/doc-talk-connect/pkg/response"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	UserEmailKey contextKey = "user_email"
	RoleIDKey    contextKey = "role_id"
	TokenIDKey   contextKey = "token_id"
)

// SignInPath is where visitors without a session are sent.
const SignInPath = "/auth"

var (
	errMissingToken = errors.New("authorization header is required")
	errTokenRevoked = errors.New("token has been revoked")
)

type AuthMiddleware struct {
	jwtService *jwt.JWTService
	sessions   service.SessionStore
	log        *logrus.Logger
}

func NewAuthMiddleware(jwtService *jwt.JWTService, sessions service.SessionStore, log *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		sessions:   sessions,
		log:        log,
	}
}

// Authenticate requires a live session. Without one the request is answered
// with 401 and a redirect hint to the sign-in view.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, err := m.identify(r)
		if err != nil {
			if isSessionError(err) {
				response.SessionRequired(w, SignInPath)
				return
			}
			response.InternalServerError(w, "Failed to validate token")
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Identify attaches the session identity when one is present and valid, and
// otherwise lets the request through anonymously.
func (m *AuthMiddleware) Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, err := m.identify(r)
		if err != nil {
			if !isSessionError(err) {
				m.log.Warnf("Failed to identify request: %+v", err)
			}
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireSession redirects browser routes to the sign-in view when no
// identity was attached by Identify.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserIDFromContext(r.Context()); !ok {
			response.Redirect(w, r, SignInPath)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (m *AuthMiddleware) identify(r *http.Request) (context.Context, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, errMissingToken
	}

	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, jwt.ErrInvalidToken
	}

	claims, err := m.jwtService.ValidateTokenOfType(parts[1], jwt.AccessToken)
	if err != nil {
		return nil, jwt.ErrInvalidToken
	}

	// Check if token exists in Redis (not revoked)
	active, err := m.sessions.IsActive(r.Context(), jwt.AccessToken, claims.UserID, claims.TokenID)
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, errTokenRevoked
	}

	return ContextWithIdentity(r.Context(), claims.UserID, claims.Email, claims.RoleID, claims.TokenID), nil
}

func isSessionError(err error) bool {
	return errors.Is(err, errMissingToken) || errors.Is(err, jwt.ErrInvalidToken) || errors.Is(err, errTokenRevoked)
}

// ContextWithIdentity stores the session identity on ctx.
func ContextWithIdentity(ctx context.Context, userID uuid.UUID, email string, roleID int, tokenID string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID)
	ctx = context.WithValue(ctx, UserEmailKey, email)
	ctx = context.WithValue(ctx, RoleIDKey, roleID)
	ctx = context.WithValue(ctx, TokenIDKey, tokenID)
	return ctx
}

// GetUserIDFromContext extracts user ID from context
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}

// GetUserEmailFromContext extracts user email from context
func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(UserEmailKey).(string)
	return email, ok
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}

// GetRoleIDFromContext extracts role ID from context
func GetRoleIDFromContext(ctx context.Context) (int, bool) {
	roleID, ok := ctx.Value(RoleIDKey).(int)
	return roleID, ok
}
