package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "revoked_token:"

func revokedKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return revokedKeyPrefix + hex.EncodeToString(sum[:])
}

// RevokeToken stores the token until its natural expiry so the auth
// middleware rejects it after logout.
func RevokeToken(ctx context.Context, rdb *redis.Client, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return rdb.Set(ctx, revokedKey(token), 1, ttl).Err()
}

// IsTokenRevoked reports whether the token was revoked by a logout.
func IsTokenRevoked(ctx context.Context, rdb *redis.Client, token string) (bool, error) {
	if rdb == nil {
		return false, nil
	}
	err := rdb.Get(ctx, revokedKey(token)).Err()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
