package services

import (
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/ShakeelGadafi/crediflow-sub000/internal/database"
)

const denylistPrefix = "denylist:"

// AddToDenylist revokes a token until its natural expiry.
func AddToDenylist(tokenString string, expiration time.Duration) error {
	key := denylistPrefix + tokenString
	return database.RedisClient.Set(database.Ctx, key, 1, expiration).Err()
}

// IsDenylisted reports whether a token was revoked by logout or by an
// administrator. With no Redis configured every token is treated as
// live; the per-request active check still applies.
func IsDenylisted(tokenString string) (bool, error) {
	if database.RedisClient == nil {
		return false, nil
	}

	key := denylistPrefix + tokenString
	val, err := database.RedisClient.Get(database.Ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	return val != "", nil
}
