package page

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/pixelgram/pixelgram/gateway"
	"github.com/pixelgram/pixelgram/model"
	"github.com/pixelgram/pixelgram/session"
)

// DefaultQuiescence is how long typing must pause before a search
// request is issued
const DefaultQuiescence = 300 * time.Millisecond

// Search turns keystrokes into at most one backend query per
// pause. Superseded intermediate queries are never sent.
type Search struct {
	gw      *gateway.Client
	session *session.Session
	window  time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	seq     uint64
	loading bool
	query   string
	results []model.User
}

// NewSearch creates the search aggregator
func NewSearch(gw *gateway.Client, sess *session.Session) *Search {
	return &Search{gw: gw, session: sess, window: DefaultQuiescence}
}

// SetWindow changes the quiescence window
func (s *Search) SetWindow(window time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.window = window
}

// SetQuery registers the latest input state. The pending timer
// restarts on every change; only the value still standing after
// the quiescence window is sent. A blank query short-circuits to
// empty results without any request.
func (s *Search) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = query
	s.seq++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	if strings.TrimSpace(query) == "" {
		// a superseded in-flight run returns without touching the
		// flag, so the short-circuit has to settle it itself
		s.loading = false
		s.results = nil
		return
	}

	seq := s.seq
	s.timer = time.AfterFunc(s.window, func() {
		s.run(query, seq)
	})
}

func (s *Search) run(query string, seq uint64) {
	s.mu.Lock()
	if seq != s.seq {
		s.mu.Unlock()
		return
	}
	s.loading = true
	s.mu.Unlock()

	users, err := s.gw.SearchUsers(context.Background(), query)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		return
	}
	s.loading = false

	if err != nil {
		log.Printf("(search) %q failed: %v", query, err)
		s.results = nil
		return
	}

	s.results = excludeSelf(users, s.session.User())
}

// Query returns the latest registered input
func (s *Search) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// Results returns the results of the last settled query
func (s *Search) Results() []model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results
}

// Loading reports whether a request is in flight
func (s *Search) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Follow follows one of the found accounts
func (s *Search) Follow(ctx context.Context, userID string) error {
	return s.gw.FollowUser(ctx, userID)
}

// excludeSelf drops the signed-in account from search results
func excludeSelf(users []model.User, self *model.User) []model.User {
	if self == nil {
		return users
	}

	kept := make([]model.User, 0, len(users))
	for _, user := range users {
		if user.Same(self) {
			continue
		}
		kept = append(kept, user)
	}
	return kept
}
