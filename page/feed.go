// Package page holds one aggregator per page of the client. Each
// aggregator requests data from the gateway, reconciles it with the
// fallback catalog, and exposes one displayable result plus
// lifecycle flags.
package page

import (
	"context"
	"log"
	"sync"

	"github.com/pixelgram/pixelgram/fallback"
	"github.com/pixelgram/pixelgram/gateway"
	"github.com/pixelgram/pixelgram/model"
)

// Feed composes the home timeline from the live feed and the
// sample catalog. Live posts always rank first.
// TODO(feed): stop appending the sample tail once the backend
// carries enough real posts.
type Feed struct {
	gw *gateway.Client

	mu      sync.Mutex
	seq     uint64
	loading bool
	failed  bool
	posts   []model.Post
}

// NewFeed creates the feed aggregator
func NewFeed(gw *gateway.Client) *Feed {
	return &Feed{gw: gw}
}

// Load fetches the timeline once. A failed or empty fetch falls
// back to the sample catalog, so the page always settles.
func (f *Feed) Load(ctx context.Context) []model.Post {
	f.mu.Lock()
	f.seq++
	seq := f.seq
	f.loading = true
	f.mu.Unlock()

	posts, err := f.gw.Feed(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()
	if seq != f.seq {
		// a newer fetch was issued meanwhile, keep its result
		return f.posts
	}
	f.loading = false

	if err != nil {
		log.Printf("(feed) fetch failed: %v", err)
		f.failed = true
		f.posts = fallback.Posts()
		return f.posts
	}

	f.failed = false
	if len(posts) == 0 {
		f.posts = fallback.Posts()
		return f.posts
	}

	f.posts = append(posts, fallback.Posts()...)
	return f.posts
}

// Posts returns the last settled timeline
func (f *Feed) Posts() []model.Post {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.posts
}

// Loading reports whether a fetch is in flight
func (f *Feed) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

// Failed reports whether the last settled fetch fell back
func (f *Feed) Failed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.failed
}

// Like toggles the signed-in account's like on a post
func (f *Feed) Like(ctx context.Context, postID string) error {
	return f.gw.LikePost(ctx, postID)
}

// Comment adds a comment on a post of the timeline
func (f *Feed) Comment(ctx context.Context, postID string, text string) error {
	return f.gw.CommentPost(ctx, postID, text)
}
