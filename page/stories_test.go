package page

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/pixelgram/pixelgram/model"
)

func sampleUsers(n int) []byte {
	users := make([]model.User, n)
	for i := range users {
		users[i] = model.User{ID: fmt.Sprintf("u%d", i+1), Username: fmt.Sprintf("sample%d", i+1)}
	}
	payload, _ := json.Marshal(users)
	return payload
}

func TestStripBoundedAndLabeled(t *testing.T) {
	gw, sess := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(sampleUsers(10))
	})
	sess.SetUser(&model.User{ID: "me", Username: "alice"})

	stories := NewStories(gw, sess)
	strip := stories.Load(context.Background())

	if len(strip) != StripLength {
		t.Fatalf("len(strip) = %d, want %d", len(strip), StripLength)
	}
	if strip[0].Label != "Your story" {
		t.Fatalf("strip[0].Label = %q, want %q", strip[0].Label, "Your story")
	}
	if strip[0].User.Username != "alice" {
		t.Fatalf("strip[0] backed by %q, want the signed-in account", strip[0].User.Username)
	}
	if strip[1].Label != "sample1" {
		t.Fatalf("strip[1].Label = %q, want the sample username", strip[1].Label)
	}
}

func TestStripWithoutSignedInAccount(t *testing.T) {
	gw, sess := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(sampleUsers(3))
	})

	stories := NewStories(gw, sess)
	strip := stories.Load(context.Background())

	if len(strip) != 3 {
		t.Fatalf("len(strip) = %d, want 3", len(strip))
	}
	// the first bubble keeps the label even on a sample account
	if strip[0].Label != "Your story" {
		t.Fatalf("strip[0].Label = %q, want %q", strip[0].Label, "Your story")
	}
	if strip[0].User.Username != "sample1" {
		t.Fatalf("strip[0] backed by %q, want sample1", strip[0].User.Username)
	}
}

func TestStripFallsBackToSelfOnFailure(t *testing.T) {
	gw, sess := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	sess.SetUser(&model.User{ID: "me", Username: "alice"})

	stories := NewStories(gw, sess)
	strip := stories.Load(context.Background())

	if len(strip) != 1 || strip[0].User.Username != "alice" {
		t.Fatalf("strip = %+v, want only the signed-in account", strip)
	}
	if stories.Loading() {
		t.Fatal("loading flag still set after settling")
	}
}
