package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pixelgram/pixelgram/helpers"
	"github.com/pixelgram/pixelgram/session"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *session.Session, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	sess := session.New(session.NewMemoryStorage())
	return New(server.URL, helpers.InitTracer(), sess), sess, server
}

func TestBearerTokenAttached(t *testing.T) {
	var got string
	client, sess, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{"posts":[]}`))
	})
	sess.SetToken("tok-1")

	if _, err := client.Feed(context.Background()); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if got != "Bearer tok-1" {
		t.Fatalf("Authorization = %q, want %q", got, "Bearer tok-1")
	}
}

func TestNoTokenNoHeader(t *testing.T) {
	var sent bool
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		sent = r.Header.Get("Authorization") != ""
		w.Write([]byte(`{"posts":[]}`))
	})

	if _, err := client.Feed(context.Background()); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if sent {
		t.Fatal("Authorization header sent without a stored token")
	}
}

func TestUnauthorizedExpiresSession(t *testing.T) {
	client, sess, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	sess.SetToken("stale")
	for len(sess.Events()) > 0 {
		<-sess.Events()
	}

	_, err := client.Feed(context.Background())
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
	if sess.Token() != "" {
		t.Fatal("401 left the token stored")
	}

	select {
	case event := <-sess.Events():
		if event != session.Expired {
			t.Fatalf("event = %v, want Expired", event)
		}
	default:
		t.Fatal("no session event after a 401")
	}
}

func TestNotFoundClassified(t *testing.T) {
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.Profile(context.Background(), "ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestProfileFalseFlagIsNotFound(t *testing.T) {
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false}`))
	})

	_, err := client.Profile(context.Background(), "ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestTransportFailureClassified(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	sess := session.New(session.NewMemoryStorage())
	client := New(server.URL, helpers.InitTracer(), sess)
	server.Close() // nothing listens anymore

	_, err := client.Feed(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func TestRejectionCarriesBackendMessage(t *testing.T) {
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"success":false,"message":"username already taken"}`))
	})

	_, err := client.Register(context.Background(), RegisterBody{Username: "alice"})
	if !errors.Is(err, ErrRequest) {
		t.Fatalf("err = %v, want ErrRequest", err)
	}
	if err.Error() != "request rejected: username already taken" {
		t.Fatalf("err = %q, want backend message wrapped", err.Error())
	}
}

func TestSearchQueryEscaped(t *testing.T) {
	var got string
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query().Get("query")
		w.Write([]byte(`{"users":[]}`))
	})

	if _, err := client.SearchUsers(context.Background(), "a b&c"); err != nil {
		t.Fatalf("SearchUsers: %v", err)
	}
	if got != "a b&c" {
		t.Fatalf("query = %q, want %q", got, "a b&c")
	}
}

func TestDemoEndpointsDecodeBareArrays(t *testing.T) {
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/demo/users":
			w.Write([]byte(`[{"_id":"u1","username":"alice"}]`))
		case "/demo/posts":
			w.Write([]byte(`[{"_id":"p1"},{"id":"p2"}]`))
		}
	})

	users, err := client.DemoUsers(context.Background())
	if err != nil || len(users) != 1 || users[0].Username != "alice" {
		t.Fatalf("DemoUsers = %v, %v", users, err)
	}

	posts, err := client.DemoPosts(context.Background())
	if err != nil || len(posts) != 2 {
		t.Fatalf("DemoPosts = %v, %v", posts, err)
	}
}

func TestResourceOf(t *testing.T) {
	cases := map[string]string{
		"/posts/feed":            "posts",
		"/users/search?query=al": "users",
		"/demo/posts":            "demo",
		"/posts":                 "posts",
	}
	for path, want := range cases {
		if got := resourceOf(path); got != want {
			t.Errorf("resourceOf(%q) = %q, want %q", path, got, want)
		}
	}
}
