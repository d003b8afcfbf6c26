package content

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/aretw0/tweetflow/pkg/domain"
	"github.com/aretw0/tweetflow/pkg/ports"
)

// Cached serves repeated requests from a ports.ContentCache.
// Cache failures are logged and the request falls through to the wrapped
// generator; a broken cache never fails a generation.
type Cached struct {
	next   Generator
	cache  ports.ContentCache
	logger *slog.Logger
}

// NewCached wraps next with cache. A nil logger discards cache warnings.
func NewCached(next Generator, cache ports.ContentCache, logger *slog.Logger) *Cached {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Cached{next: next, cache: cache, logger: logger}
}

// CacheKey returns the key under which the result of req is stored.
func CacheKey(kind Kind, req any) string {
	data, _ := json.Marshal(req)
	sum := sha256.Sum256(data)
	return string(kind) + ":" + hex.EncodeToString(sum[:])
}

func (c *Cached) do(ctx context.Context, kind Kind, req any, generate func() (string, error)) (string, error) {
	key := CacheKey(kind, req)

	val, err := c.cache.Get(ctx, key)
	switch {
	case err == nil:
		return val, nil
	case !errors.Is(err, domain.ErrCacheMiss):
		c.logger.Warn("content cache read failed", "kind", kind, "err", err)
	}

	val, err = generate()
	if err != nil {
		return "", err
	}
	if err := c.cache.Set(ctx, key, val); err != nil {
		c.logger.Warn("content cache write failed", "kind", kind, "err", err)
	}
	return val, nil
}

// Tweet implements Generator.
func (c *Cached) Tweet(ctx context.Context, req TweetRequest) (string, error) {
	return c.do(ctx, KindTweet, req, func() (string, error) { return c.next.Tweet(ctx, req) })
}

// Image implements Generator.
func (c *Cached) Image(ctx context.Context, req ImageRequest) (string, error) {
	return c.do(ctx, KindImage, req, func() (string, error) { return c.next.Image(ctx, req) })
}

// Comment implements Generator.
func (c *Cached) Comment(ctx context.Context, req CommentRequest) (string, error) {
	return c.do(ctx, KindComment, req, func() (string, error) { return c.next.Comment(ctx, req) })
}

// PersonalizeDM implements Generator.
func (c *Cached) PersonalizeDM(ctx context.Context, req DMRequest) (string, error) {
	return c.do(ctx, KindDM, req, func() (string, error) { return c.next.PersonalizeDM(ctx, req) })
}
