package middleware

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/janhvi13092005/doc-talk-connect/config"
	"github.com/janhvi13092005/doc-talk-connect/internal/domain/entity"
	"github.com/janhvi13092005/doc-talk-connect/internal/observability/metrics"
	"github.com/janhvi13092005/doc-talk-connect/internal/service"
	"github.com/janhvi13092005/doc-talk-connect/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	mr         *miniredis.Miniredis
	jwtService *jwt.JWTService
	sessions   service.SessionStore
	middleware *AuthMiddleware
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	log := quietLogger()
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "secret", AccessExpiry: time.Minute, RefreshExpiry: time.Hour})
	sessions := service.NewSessionStore(client, log)

	return &authFixture{
		mr:         mr,
		jwtService: jwtService,
		sessions:   sessions,
		middleware: NewAuthMiddleware(jwtService, sessions, log),
	}
}

// signIn issues an access token and records it as live.
func (f *authFixture) signIn(t *testing.T, userID uuid.UUID, roleID int) (string, string) {
	t.Helper()
	id := jwt.Identity{UserID: userID, Email: "jane@example.com", RoleID: roleID}
	access, accessID, err := f.jwtService.GenerateAccessToken(id)
	require.NoError(t, err)
	_, refreshID, err := f.jwtService.GenerateRefreshToken(id)
	require.NoError(t, err)
	require.NoError(t, f.sessions.Open(context.Background(), userID,
		service.TokenGrant{ID: accessID, TTL: time.Minute},
		service.TokenGrant{ID: refreshID, TTL: time.Hour}))
	return access, accessID
}

func echoUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		w.Write([]byte("anonymous"))
		return
	}
	w.Write([]byte(userID.String()))
}

func TestAuthenticate_NoSessionRedirectHint(t *testing.T) {
	f := newAuthFixture(t)
	handler := f.middleware.Authenticate(http.HandlerFunc(echoUser))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/appointments", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]interface{}{"redirect": "/auth"}, body["data"])
}

func TestAuthenticate_ValidSession(t *testing.T) {
	f := newAuthFixture(t)
	userID := uuid.New()
	token, _ := f.signIn(t, userID, entity.RoleIDPatient)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	f.middleware.Authenticate(http.HandlerFunc(echoUser)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID.String(), rec.Body.String())
}

func TestAuthenticate_RevokedToken(t *testing.T) {
	f := newAuthFixture(t)
	userID := uuid.New()
	token, accessID := f.signIn(t, userID, entity.RoleIDPatient)
	require.NoError(t, f.sessions.Close(context.Background(), userID, accessID, ""))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	f.middleware.Authenticate(http.HandlerFunc(echoUser)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_RedisDown(t *testing.T) {
	f := newAuthFixture(t)
	token, _ := f.signIn(t, uuid.New(), entity.RoleIDPatient)
	f.mr.Close()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	f.middleware.Authenticate(http.HandlerFunc(echoUser)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestIdentify_AnonymousPassesThrough(t *testing.T) {
	f := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	f.middleware.Identify(http.HandlerFunc(echoUser)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "anonymous", rec.Body.String())
}

func TestRequireSession_RedirectsToSignIn(t *testing.T) {
	f := newAuthFixture(t)
	handler := f.middleware.Identify(RequireSession(http.HandlerFunc(echoUser)))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/appointments", nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/auth", rec.Header().Get("Location"))

	userID := uuid.New()
	token, _ := f.signIn(t, userID, entity.RoleIDPatient)
	req := httptest.NewRequest(http.MethodGet, "/appointments", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID.String(), rec.Body.String())
}

func TestRequireAdmin(t *testing.T) {
	handler := RequireAdmin(http.HandlerFunc(echoUser))

	tests := []struct {
		name   string
		ctx    context.Context
		status int
	}{
		{"no role", context.Background(), http.StatusUnauthorized},
		{"patient", ContextWithIdentity(context.Background(), uuid.New(), "p@example.com", entity.RoleIDPatient, "t"), http.StatusForbidden},
		{"admin", ContextWithIdentity(context.Background(), uuid.New(), "a@example.com", entity.RoleIDAdmin, "t"), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/audit-logs", nil).WithContext(tt.ctx)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	called := false
	handler := NewCORSMiddleware().Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/v1/profile", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, called)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}

func TestAccessLogRecordsRouteTemplate(t *testing.T) {
	reg := prometheus.NewRegistry()
	accessLog := NewAccessLogMiddleware(quietLogger(), metrics.NewBookingMetrics(reg))

	router := mux.NewRouter()
	router.Use(accessLog.Handle)
	router.HandleFunc("/doctors/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/doctors/123", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	families, err := reg.Gather()
	require.NoError(t, err)
	var labels map[string]string
	for _, family := range families {
		if family.GetName() != "doctalk_http_request_duration_seconds" {
			continue
		}
		labels = map[string]string{}
		for _, pair := range family.GetMetric()[0].GetLabel() {
			labels[pair.GetName()] = pair.GetValue()
		}
	}
	assert.Equal(t, map[string]string{"route": "/doctors/{id}", "method": "GET", "status": "4xx"}, labels)
}
