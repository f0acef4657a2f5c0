package page

import (
	"context"
	"log"
	"sync"

	"github.com/pixelgram/pixelgram/gateway"
	"github.com/pixelgram/pixelgram/model"
	"github.com/pixelgram/pixelgram/session"
)

// StripLength caps how many bubbles the story carousel shows
const StripLength = 8

// Story is one bubble of the carousel
type Story struct {
	Label string
	User  model.User
}

// Stories builds the story carousel: the signed-in account first,
// then a sample of other accounts
type Stories struct {
	gw      *gateway.Client
	session *session.Session

	mu      sync.Mutex
	seq     uint64
	loading bool
	strip   []Story
}

// NewStories creates the story strip builder
func NewStories(gw *gateway.Client, sess *session.Session) *Stories {
	return &Stories{gw: gw, session: sess}
}

// Load fetches the sample accounts and assembles the strip. On any
// failure the sample is empty and only the signed-in account shows.
func (s *Stories) Load(ctx context.Context) []Story {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.loading = true
	s.mu.Unlock()

	sample, err := s.gw.DemoUsers(ctx)
	if err != nil {
		log.Printf("(stories) fetch failed: %v", err)
		sample = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		return s.strip
	}
	s.loading = false

	all := make([]model.User, 0, len(sample)+1)
	if self := s.session.User(); self != nil {
		all = append(all, *self)
	}
	all = append(all, sample...)
	if len(all) > StripLength {
		all = all[:StripLength]
	}

	strip := make([]Story, len(all))
	for i, user := range all {
		label := user.Username
		if i == 0 {
			// the first bubble is always yours, even when it is
			// backed by a sample account
			label = "Your story"
		}
		strip[i] = Story{Label: label, User: user}
	}

	s.strip = strip
	return s.strip
}

// Strip returns the last settled carousel
func (s *Stories) Strip() []Story {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.strip
}

// Loading reports whether a fetch is in flight
func (s *Stories) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}
