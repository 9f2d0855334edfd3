package rediscache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/clients/places"
	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/logger"
	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/utils"
)

// PlaceCache memoizes place-search results per (term, location). Nominatim
// asks heavy users to cache, and students in the same city repeat the same
// lookups; a short TTL keeps entries fresh enough.
type PlaceCache struct {
	log *logger.Logger
	rdb *redis.Client
	ttl time.Duration
}

// NewPlaceCache returns nil when REDIS_ADDR is unset; callers treat a nil
// cache as a miss on every lookup.
func NewPlaceCache(log *logger.Logger) (*PlaceCache, error) {
	addr := strings.TrimSpace(utils.GetEnv("REDIS_ADDR", "", log))
	if addr == "" {
		return nil, nil
	}
	cacheLog := log.With("client", "PlaceCache")
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: utils.GetEnv("REDIS_PASSWORD", "", log),
		DB:       utils.GetEnvAsInt("REDIS_DB", 0, log),
	})
	ttlMinutes := utils.GetEnvAsInt("PLACES_CACHE_TTL_MINUTES", 15, log)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		cacheLog.Warn("Redis unreachable, place cache disabled", "addr", addr, "error", err)
		_ = rdb.Close()
		return nil, nil
	}

	cacheLog.Info("Place cache enabled", "addr", addr, "ttl_minutes", ttlMinutes)
	return &PlaceCache{
		log: cacheLog,
		rdb: rdb,
		ttl: time.Duration(ttlMinutes) * time.Minute,
	}, nil
}

func cacheKey(term string, location string) string {
	return "places:v1:" + strings.ToLower(strings.TrimSpace(term)) + ":" + strings.ToLower(strings.TrimSpace(location))
}

func (pc *PlaceCache) Get(ctx context.Context, term string, location string) ([]places.Place, bool) {
	if pc == nil {
		return nil, false
	}
	raw, err := pc.rdb.Get(ctx, cacheKey(term, location)).Bytes()
	if err != nil {
		if err != redis.Nil {
			pc.log.Warn("Place cache read failed", "error", err)
		}
		return nil, false
	}
	var results []places.Place
	if err := json.Unmarshal(raw, &results); err != nil {
		pc.log.Warn("Place cache entry unreadable, dropping", "error", err)
		_ = pc.rdb.Del(ctx, cacheKey(term, location)).Err()
		return nil, false
	}
	return results, true
}

func (pc *PlaceCache) Set(ctx context.Context, term string, location string, results []places.Place) {
	if pc == nil {
		return
	}
	raw, err := json.Marshal(results)
	if err != nil {
		return
	}
	if err := pc.rdb.Set(ctx, cacheKey(term, location), raw, pc.ttl).Err(); err != nil {
		pc.log.Warn("Place cache write failed", "error", err)
	}
}

func (pc *PlaceCache) Close() {
	if pc == nil || pc.rdb == nil {
		return
	}
	_ = pc.rdb.Close()
}
