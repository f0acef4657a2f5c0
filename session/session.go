package session

import (
	"log"
	"sync"

	"github.com/pixelgram/pixelgram/helpers"
	"github.com/pixelgram/pixelgram/model"
)

// TokenKey is the fixed storage key the token is persisted under
const TokenKey = "token"

// Event is a session state transition. The data layer emits them,
// a single top-level controller consumes them.
type Event int

const (
	SignedIn Event = iota
	SignedOut
	Expired
)

// Session holds the signed-in state shared by every gateway call
type Session struct {
	mu      sync.Mutex
	storage Storage
	token   string
	user    *model.User
	events  chan Event
}

// New creates a session, restoring a previously stored token
func New(storage Storage) *Session {
	session := &Session{
		storage: storage,
		events:  make(chan Event, 8),
	}

	token, err := storage.Get(TokenKey)
	if err == nil {
		session.token = token
	} else if err != ErrNoValue {
		log.Printf("(session) unable to restore token: %v", err)
	}

	return session
}

// Events returns the channel session transitions are emitted on
func (s *Session) Events() <-chan Event {
	return s.events
}

// Token returns the stored bearer token, empty when signed out
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// SetToken stores the token and persists it under TokenKey
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	if err := s.storage.Set(TokenKey, token); err != nil {
		log.Printf("(session) unable to persist token: %v", err)
	}
	s.emit(SignedIn)
}

// User returns the signed-in account, nil when unknown
func (s *Session) User() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// SetUser remembers the signed-in account
func (s *Session) SetUser(user *model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

// Username returns the signed-in username. When only a token was
// restored, it is read from the subject claim.
func (s *Session) Username() string {
	s.mu.Lock()
	user := s.user
	token := s.token
	s.mu.Unlock()

	if user != nil && user.Username != "" {
		return user.Username
	}
	if token != "" {
		subject, err := helpers.TokenSubject(token)
		if err == nil {
			return subject
		}
	}
	return ""
}

// Clear wipes all local session state. Used on logout and after
// account deletion.
func (s *Session) Clear() {
	s.drop()
	s.emit(SignedOut)
}

// Expire wipes the session after the backend rejected the token
func (s *Session) Expire() {
	s.drop()
	s.emit(Expired)
}

func (s *Session) drop() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if err := s.storage.Delete(TokenKey); err != nil {
		log.Printf("(session) unable to clear token: %v", err)
	}
}

// emit never blocks a request on a slow or absent consumer
func (s *Session) emit(event Event) {
	select {
	case s.events <- event:
	default:
		log.Printf("(session) event %d dropped, the consumer is not draining", event)
	}
}
