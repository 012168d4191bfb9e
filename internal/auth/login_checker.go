package auth

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

func (lc *LoginChecker) IsLogged(ctx context.Context, token string) (bool, error) {
	_, err := lc.User(ctx, token)
	switch {
	case err == nil:
		return true, nil
	case err == ErrSessionExpired || err == redis.Nil:
		return false, nil
	default:
		return false, err
	}
}

// User resolves the session token to the logged-in username.
func (lc *LoginChecker) User(ctx context.Context, token string) (string, error) {
	sessionKey := sessionKeyPrefix + token
	cmd := lc.redisClient.Get(ctx, sessionKey)
	if err := cmd.Err(); err != nil {
		return "", err
	}

	username, createdAtUnix, err := parseSessionValue(cmd.Val())
	if err != nil {
		return "", err
	}

	createdAt := time.Unix(createdAtUnix, 0)
	if time.Since(createdAt) > lc.ttl {
		return "", ErrSessionExpired
	}

	return username, nil
}
