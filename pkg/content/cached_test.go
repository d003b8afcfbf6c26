package content

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aretw0/tweetflow/pkg/adapters/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingGenerator wraps Demo and counts calls per kind.
type countingGenerator struct {
	Demo
	calls map[Kind]int
	err   error
}

func newCounting() *countingGenerator {
	return &countingGenerator{calls: make(map[Kind]int)}
}

func (c *countingGenerator) Tweet(ctx context.Context, req TweetRequest) (string, error) {
	c.calls[KindTweet]++
	if c.err != nil {
		return "", c.err
	}
	return c.Demo.Tweet(ctx, req)
}

func (c *countingGenerator) Image(ctx context.Context, req ImageRequest) (string, error) {
	c.calls[KindImage]++
	return c.Demo.Image(ctx, req)
}

// brokenCache fails every operation.
type brokenCache struct{}

func (brokenCache) Get(ctx context.Context, key string) (string, error) {
	return "", errors.New("connection refused")
}

func (brokenCache) Set(ctx context.Context, key, value string) error {
	return errors.New("connection refused")
}

func (brokenCache) Delete(ctx context.Context, key string) error { return nil }

func TestCached_ServesRepeats(t *testing.T) {
	ctx := context.Background()
	next := newCounting()
	g := NewCached(next, memory.NewCache(), nil)

	req := TweetRequest{Topic: "Go", Niche: "dev", Tone: "casual"}
	first, err := g.Tweet(ctx, req)
	require.NoError(t, err)
	second, err := g.Tweet(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, next.calls[KindTweet])

	_, err = g.Tweet(ctx, TweetRequest{Topic: "Rust", Niche: "dev", Tone: "casual"})
	require.NoError(t, err)
	assert.Equal(t, 2, next.calls[KindTweet], "different requests miss")
}

func TestCached_KeysByKind(t *testing.T) {
	assert.NotEqual(t,
		CacheKey(KindTweet, ImageRequest{Prompt: "x"}),
		CacheKey(KindImage, ImageRequest{Prompt: "x"}))
	assert.Equal(t,
		CacheKey(KindImage, ImageRequest{Prompt: "x"}),
		CacheKey(KindImage, ImageRequest{Prompt: "x"}))
}

func TestCached_ErrorsAreNotCached(t *testing.T) {
	ctx := context.Background()
	next := newCounting()
	next.err = errors.New("rate limited")
	g := NewCached(next, memory.NewCache(), nil)

	_, err := g.Tweet(ctx, TweetRequest{Topic: "Go"})
	require.Error(t, err)

	next.err = nil
	_, err = g.Tweet(ctx, TweetRequest{Topic: "Go"})
	require.NoError(t, err)
	assert.Equal(t, 2, next.calls[KindTweet])
}

func TestCached_BrokenCacheFallsThrough(t *testing.T) {
	next := newCounting()
	g := NewCached(next, brokenCache{}, nil)

	url, err := g.Image(context.Background(), ImageRequest{Prompt: "x"})
	require.NoError(t, err)
	assert.Equal(t, PlaceholderImageURL, url)
	assert.Equal(t, 1, next.calls[KindImage])
}

type observation struct {
	kind string
	err  error
}

type recordingObserver struct {
	seen []observation
}

func (r *recordingObserver) ObserveGeneration(kind string, elapsed time.Duration, err error) {
	r.seen = append(r.seen, observation{kind: kind, err: err})
}

func TestInstrumented(t *testing.T) {
	ctx := context.Background()
	next := newCounting()
	obs := &recordingObserver{}
	g := NewInstrumented(next, obs)

	_, _ = g.Image(ctx, ImageRequest{Prompt: "x"})
	_, _ = g.Comment(ctx, CommentRequest{Tweet: "x"})
	_, _ = g.PersonalizeDM(ctx, DMRequest{Username: "a"})
	next.err = errors.New("boom")
	_, _ = g.Tweet(ctx, TweetRequest{})

	require.Len(t, obs.seen, 4)
	assert.Equal(t, "image", obs.seen[0].kind)
	assert.Equal(t, "comment", obs.seen[1].kind)
	assert.Equal(t, "dm", obs.seen[2].kind)
	assert.Equal(t, "tweet", obs.seen[3].kind)
	assert.EqualError(t, obs.seen[3].err, "boom")
	assert.NoError(t, obs.seen[0].err)
}
