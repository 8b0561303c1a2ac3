package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Like counts are derived at read time from the edge table; this cache only
// shortcuts the count query. A toggle invalidates the key instead of
// adjusting it, so the cache can never drift from the edges.
const (
	likeCountKeyTemplate = "like:count:%s:%d"
	likeCountTTL         = 10 * time.Minute
)

func likeCountKey(targetKind string, targetId int64) string {
	return fmt.Sprintf(likeCountKeyTemplate, targetKind, targetId)
}

// GetLikeCount returns the cached count and whether the key was present.
func GetLikeCount(ctx context.Context, targetKind string, targetId int64) (int64, bool, error) {
	n, err := rdb.Get(ctx, likeCountKey(targetKind, targetId)).Int64()
	if err == goredis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}

func SetLikeCount(ctx context.Context, targetKind string, targetId, count int64) error {
	return rdb.Set(ctx, likeCountKey(targetKind, targetId), count, likeCountTTL).Err()
}

func DelLikeCount(ctx context.Context, targetKind string, targetId int64) error {
	return rdb.Del(ctx, likeCountKey(targetKind, targetId)).Err()
}
