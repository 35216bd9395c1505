package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// =============================================================================
// Errors
// =============================================================================

// ErrCancellationInFlight is returned when the same appointment is already
// being cancelled by another request.
var ErrCancellationInFlight = errors.New("cancellation already in progress")

// releaseGuardScript deletes the guard key only if it still holds our token.
// A guard that expired and was taken by another request is left alone.
var releaseGuardScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

// =============================================================================
// Constants
// =============================================================================

const (
	RedisCancelGuardKeyPrefix = "appointment:cancel:"

	// Timeout for the release call, which runs after the request context may be gone
	guardReleaseTimeout = 2 * time.Second
)

// =============================================================================
// Types
// =============================================================================

// CancellationGuard marks a single appointment as having a cancellation in
// flight. Guards on different appointments are independent.
type CancellationGuard interface {
	// Acquire returns a release func on success. Release is safe to call
	// more than once.
	Acquire(ctx context.Context, appointmentID uuid.UUID) (release func(), err error)
}

type redisCancellationGuard struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewCancellationGuard(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) CancellationGuard {
	return &redisCancellationGuard{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

// =============================================================================
// Public Methods
// =============================================================================

func (g *redisCancellationGuard) Acquire(ctx context.Context, appointmentID uuid.UUID) (func(), error) {
	key := fmt.Sprintf("%s%s", RedisCancelGuardKeyPrefix, appointmentID.String())
	token := uuid.New().String()

	// TTL bounds how long a crashed request can block the row
	acquired, err := g.redisClient.SetNX(ctx, key, token, g.ttl).Result()
	if err != nil {
		g.log.Warnf("Failed to acquire cancellation guard for appointment %s: %+v", appointmentID, err)
		return nil, fmt.Errorf("acquire cancel guard for %s: %w", appointmentID, err)
	}
	if !acquired {
		return nil, ErrCancellationInFlight
	}

	released := false
	release := func() {
		if released {
			return
		}
		released = true

		releaseCtx, cancel := context.WithTimeout(context.Background(), guardReleaseTimeout)
		defer cancel()

		if err := releaseGuardScript.Run(releaseCtx, g.redisClient, []string{key}, token).Err(); err != nil {
			g.log.Warnf("Failed to release cancellation guard for appointment %s: %+v", appointmentID, err)
		}
	}

	g.log.Debugf("Acquired cancellation guard for appointment %s", appointmentID)
	return release, nil
}
