package service

import (
	"context"
	"fmt"
	"time"

	"github.com/janhvi13092005/doc-talk-connect/pkg/jwt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	accessTokenKeyPrefix  = "access_token"
	refreshTokenKeyPrefix = "refresh_token"
	sessionMarker         = "valid"
)

// TokenGrant is an issued token id and how long it stays valid.
type TokenGrant struct {
	ID  string
	TTL time.Duration
}

// SessionStore tracks which issued tokens are still live. A token whose key
// is gone (expired, signed out, rotated) is rejected even if its signature
// and expiry check out.
type SessionStore interface {
	Open(ctx context.Context, userID uuid.UUID, access, refresh TokenGrant) error
	IsActive(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string) (bool, error)
	Consume(ctx context.Context, userID uuid.UUID, refreshTokenID string) (bool, error)
	Close(ctx context.Context, userID uuid.UUID, accessTokenID, refreshTokenID string) error
}

type redisSessionStore struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewSessionStore(redisClient *redis.Client, log *logrus.Logger) SessionStore {
	return &redisSessionStore{
		redisClient: redisClient,
		log:         log,
	}
}

func tokenKey(tokenType jwt.TokenType, userID uuid.UUID, tokenID string) string {
	prefix := accessTokenKeyPrefix
	if tokenType == jwt.RefreshToken {
		prefix = refreshTokenKeyPrefix
	}
	return fmt.Sprintf("%s:%s:%s", prefix, userID.String(), tokenID)
}

func (s *redisSessionStore) Open(ctx context.Context, userID uuid.UUID, access, refresh TokenGrant) error {
	pipe := s.redisClient.TxPipeline()
	pipe.Set(ctx, tokenKey(jwt.AccessToken, userID, access.ID), sessionMarker, access.TTL)
	pipe.Set(ctx, tokenKey(jwt.RefreshToken, userID, refresh.ID), sessionMarker, refresh.TTL)

	if _, err := pipe.Exec(ctx); err != nil {
		s.log.Warnf("Failed to store session tokens in Redis: %+v", err)
		return err
	}
	return nil
}

func (s *redisSessionStore) IsActive(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string) (bool, error) {
	exists, err := s.redisClient.Exists(ctx, tokenKey(tokenType, userID, tokenID)).Result()
	if err != nil {
		s.log.Warnf("Failed to check token validity: %+v", err)
		return false, err
	}
	return exists > 0, nil
}

// Consume deletes a refresh token and reports whether it was still live.
// DEL is atomic, so of two concurrent rotations only one sees true.
func (s *redisSessionStore) Consume(ctx context.Context, userID uuid.UUID, refreshTokenID string) (bool, error) {
	deleted, err := s.redisClient.Del(ctx, tokenKey(jwt.RefreshToken, userID, refreshTokenID)).Result()
	if err != nil {
		s.log.Warnf("Failed to consume refresh token: %+v", err)
		return false, err
	}
	return deleted > 0, nil
}

// Close revokes the access token and, when known, its refresh token.
func (s *redisSessionStore) Close(ctx context.Context, userID uuid.UUID, accessTokenID, refreshTokenID string) error {
	keys := []string{tokenKey(jwt.AccessToken, userID, accessTokenID)}
	if refreshTokenID != "" {
		keys = append(keys, tokenKey(jwt.RefreshToken, userID, refreshTokenID))
	}

	if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
		s.log.Warnf("Failed to delete session tokens: %+v", err)
		return err
	}
	return nil
}
