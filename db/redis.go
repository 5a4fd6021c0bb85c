package db

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client
var Ctx = context.Background()

const (
	seenKeyPrefix = "newsdesk:seen:"
	seenTTL       = 48 * time.Hour
)

func ConnectRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		fmt.Println("REDIS_URL environment variable is not set")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	Redis = redis.NewClient(opt)

	_, err = Redis.Ping(Ctx).Result()
	return err
}

func CloseRedis() {
	if Redis != nil {
		Redis.Close()
	}
}

// SeenCache remembers source-item links across pipeline runs so the same
// feed item is not published twice. Entries expire after seenTTL.
type SeenCache struct{}

func (SeenCache) Seen(link string) (bool, error) {
	n, err := Redis.Exists(Ctx, seenKeyPrefix+link).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (SeenCache) MarkSeen(link string) error {
	return Redis.Set(Ctx, seenKeyPrefix+link, "1", seenTTL).Err()
}
