package page

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/pixelgram/pixelgram/fallback"
	"github.com/pixelgram/pixelgram/gateway"
	"github.com/pixelgram/pixelgram/helpers"
	"github.com/pixelgram/pixelgram/model"
	"github.com/pixelgram/pixelgram/session"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) (*gateway.Client, *session.Session) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	sess := session.New(session.NewMemoryStorage())
	return gateway.New(server.URL, helpers.InitTracer(), sess), sess
}

func TestFeedKeepsLivePostsFirst(t *testing.T) {
	gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"posts":[{"_id":"live1","caption":"a"},{"_id":"live2","caption":"b"}]}`))
	})

	feed := NewFeed(gw)
	posts := feed.Load(context.Background())

	if len(posts) != 2+len(fallback.Posts()) {
		t.Fatalf("len(posts) = %d, want %d", len(posts), 2+len(fallback.Posts()))
	}
	if posts[0].Key() != "live1" || posts[1].Key() != "live2" {
		t.Fatal("live posts do not rank first in their original order")
	}
	for i, item := range fallback.Posts() {
		if posts[2+i].Key() != item.Key() {
			t.Fatalf("fallback tail diverges at %d", i)
		}
	}
	if feed.Loading() {
		t.Fatal("loading flag still set after the fetch settled")
	}
}

func TestFeedDiscardsStaleAnswer(t *testing.T) {
	var calls int32
	started := make(chan struct{})
	release := make(chan struct{})
	gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			close(started)
			<-release
			w.Write([]byte(`{"posts":[{"_id":"old","caption":"stale"}]}`))
			return
		}
		w.Write([]byte(`{"posts":[{"_id":"new","caption":"fresh"}]}`))
	})

	feed := NewFeed(gw)

	first := make(chan []model.Post)
	go func() {
		first <- feed.Load(context.Background())
	}()
	<-started

	second := feed.Load(context.Background())
	close(release)
	stale := <-first

	if second[0].Key() != "new" {
		t.Fatalf("second load returned %q first, want new", second[0].Key())
	}
	if stale[0].Key() != "new" {
		t.Fatal("the superseded load did not hand back the newer timeline")
	}
	if feed.Posts()[0].Key() != "new" {
		t.Fatal("the stale answer overwrote the newer timeline")
	}
	if feed.Loading() {
		t.Fatal("loading flag still set after both loads settled")
	}
}

func TestFeedFallsBackOnFailure(t *testing.T) {
	gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	feed := NewFeed(gw)
	posts := feed.Load(context.Background())

	if len(posts) != 30 {
		t.Fatalf("len(posts) = %d, want the 30 sample posts", len(posts))
	}
	if !feed.Failed() {
		t.Fatal("failed flag not set")
	}
	if feed.Loading() {
		t.Fatal("loading flag still set after the fetch settled")
	}
}

func TestFeedFallsBackOnEmptyAnswer(t *testing.T) {
	gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"posts":[]}`))
	})

	feed := NewFeed(gw)
	posts := feed.Load(context.Background())

	if len(posts) != 30 {
		t.Fatalf("len(posts) = %d, want the 30 sample posts", len(posts))
	}
	if feed.Failed() {
		t.Fatal("an empty answer is not a failure")
	}
}
