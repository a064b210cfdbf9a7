package cachedRepo

import (
	"context"
	"fmt"
	"time"
)

// AllPostsKey holds the serialized global listing, newest first.
const AllPostsKey = "posts:all"

func ProfileKey(userID string) string {
	return fmt.Sprintf("profile:%v", userID)
}

func UserPostsKey(userID string) string {
	return fmt.Sprintf("posts:%v", userID)
}

// Cache is advisory. A failed Get reads as a miss and failed Set/Delete are
// logged and dropped, so callers never see a cache error.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration)
	Delete(ctx context.Context, key string)
}
