package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// Logged-out tokens are kept on a blacklist until they would have expired
// anyway. Backed by Redis when configured so revocation survives restarts;
// otherwise an in-memory map.
var (
	blacklistRedis    *redis.Client
	blacklistedTokens = make(map[string]time.Time)
	blacklistMutex    sync.RWMutex
)

const blacklistKeyPrefix = "token:blacklist:"

func InitBlacklist(rdb *redis.Client) {
	blacklistRedis = rdb
}

func BlacklistToken(token string, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	if blacklistRedis != nil {
		blacklistRedis.Set(context.Background(), blacklistKeyPrefix+token, 1, ttl)
		return
	}
	blacklistMutex.Lock()
	defer blacklistMutex.Unlock()
	blacklistedTokens[token] = time.Now().Add(ttl)
}

func IsTokenBlacklisted(token string) bool {
	if blacklistRedis != nil {
		n, err := blacklistRedis.Exists(context.Background(), blacklistKeyPrefix+token).Result()
		return err == nil && n > 0
	}

	blacklistMutex.Lock()
	defer blacklistMutex.Unlock()
	if expiry, exists := blacklistedTokens[token]; exists {
		if time.Now().Before(expiry) {
			return true
		}
		delete(blacklistedTokens, token)
	}
	return false
}
