package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix   = "user:%d"
	PostKeyPrefix   = "post:%d"
	PromptKeyPrefix = "prompt:%d"
)

const (
	UserTTL   = 5 * time.Minute
	PostTTL   = 30 * time.Minute
	PromptTTL = 30 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func PromptKey(promptID uint) string {
	return fmt.Sprintf(PromptKeyPrefix, promptID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}

func InvalidatePrompt(ctx context.Context, promptID uint) {
	Invalidate(ctx, PromptKey(promptID))
}
