package content

import (
	"context"
	"time"
)

// Observer receives one call per generation.
type Observer interface {
	ObserveGeneration(kind string, elapsed time.Duration, err error)
}

// Instrumented reports every call of the wrapped generator to an Observer.
type Instrumented struct {
	next     Generator
	observer Observer
	now      func() time.Time
}

// NewInstrumented wraps next.
func NewInstrumented(next Generator, observer Observer) *Instrumented {
	return &Instrumented{next: next, observer: observer, now: time.Now}
}

func (i *Instrumented) observe(kind Kind, start time.Time, err error) {
	i.observer.ObserveGeneration(string(kind), i.now().Sub(start), err)
}

// Tweet implements Generator.
func (i *Instrumented) Tweet(ctx context.Context, req TweetRequest) (s string, err error) {
	defer func(start time.Time) { i.observe(KindTweet, start, err) }(i.now())
	return i.next.Tweet(ctx, req)
}

// Image implements Generator.
func (i *Instrumented) Image(ctx context.Context, req ImageRequest) (s string, err error) {
	defer func(start time.Time) { i.observe(KindImage, start, err) }(i.now())
	return i.next.Image(ctx, req)
}

// Comment implements Generator.
func (i *Instrumented) Comment(ctx context.Context, req CommentRequest) (s string, err error) {
	defer func(start time.Time) { i.observe(KindComment, start, err) }(i.now())
	return i.next.Comment(ctx, req)
}

// PersonalizeDM implements Generator.
func (i *Instrumented) PersonalizeDM(ctx context.Context, req DMRequest) (s string, err error) {
	defer func(start time.Time) { i.observe(KindDM, start, err) }(i.now())
	return i.next.PersonalizeDM(ctx, req)
}
