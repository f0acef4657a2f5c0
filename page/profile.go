package page

import (
	"context"
	"log"
	"sync"

	"github.com/pixelgram/pixelgram/gateway"
	"github.com/pixelgram/pixelgram/model"
	"github.com/pixelgram/pixelgram/session"
)

// Prompter asks the person at the keyboard before destructive
// calls and shows blocking messages
type Prompter interface {
	Confirm(message string) bool
	Input(message string) string
	Alert(message string)
}

// Profile loads one account page and mediates deletions on it
type Profile struct {
	gw      *gateway.Client
	session *session.Session

	mu       sync.Mutex
	seq      uint64
	loading  bool
	user     *model.User
	posts    []model.Post
	selected *model.Post
}

// NewProfile creates the profile aggregator
func NewProfile(gw *gateway.Client, sess *session.Session) *Profile {
	return &Profile{gw: gw, session: sess}
}

// Load resolves which profile to show: the route username when
// given, the signed-in account otherwise. Without either, or when
// the backend cannot produce the user, the page settles on the
// "user not found" state.
func (p *Profile) Load(ctx context.Context, username string) *model.User {
	target := username
	if target == "" {
		target = p.session.Username()
	}

	p.mu.Lock()
	p.seq++
	seq := p.seq
	p.loading = true
	p.mu.Unlock()

	var user *model.User
	if target != "" {
		fetched, err := p.gw.Profile(ctx, target)
		if err != nil {
			log.Printf("(profile) fetch %q failed: %v", target, err)
		} else {
			user = fetched
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if seq != p.seq {
		return p.user
	}
	p.loading = false
	p.user = user
	p.selected = nil
	p.posts = nil
	if user != nil {
		p.posts = user.Posts.Items
	}
	return p.user
}

// Loading reports whether a fetch is in flight
func (p *Profile) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

// User returns the shown account, nil on the not-found state
func (p *Profile) User() *model.User {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.user
}

// Posts returns the posts owned by the shown account
func (p *Profile) Posts() []model.Post {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.posts
}

// Select opens the detail view of one of the shown posts
func (p *Profile) Select(postID string) *model.Post {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.selected = nil
	for i := range p.posts {
		if p.posts[i].Is(postID) {
			p.selected = &p.posts[i]
			break
		}
	}
	return p.selected
}

// Selected returns the post currently open in the detail view
func (p *Profile) Selected() *model.Post {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.selected
}

// IsOwn reports whether the shown profile belongs to the signed-in
// account. Identifier fields are not consistent across endpoints,
// so every one of them is tried.
func (p *Profile) IsOwn() bool {
	p.mu.Lock()
	user := p.user
	p.mu.Unlock()

	if user == nil {
		return false
	}
	if user.Same(p.session.User()) {
		return true
	}
	name := p.session.Username()
	return name != "" && name == user.Username
}

// DeletePost removes one of the profile's posts after a single
// confirmation. Local state only changes on confirmed success.
func (p *Profile) DeletePost(ctx context.Context, postID string, prompt Prompter) bool {
	if !prompt.Confirm("Are you sure you want to delete this post?") {
		return false
	}

	if err := p.gw.DeletePost(ctx, postID); err != nil {
		log.Printf("(profile) delete post %q failed: %v", postID, err)
		prompt.Alert("Failed to delete post. You can only delete your own posts.")
		return false
	}

	p.mu.Lock()
	kept := make([]model.Post, 0, len(p.posts))
	for _, item := range p.posts {
		if !item.Is(postID) {
			kept = append(kept, item)
		}
	}
	p.posts = kept
	if p.selected != nil && p.selected.Is(postID) {
		p.selected = nil
	}
	p.mu.Unlock()

	prompt.Alert("Post deleted successfully!")
	return true
}

// DeleteAccount wipes the signed-in account. Irreversible, so the
// confirmation is asked twice, the second time as literal text.
func (p *Profile) DeleteAccount(ctx context.Context, prompt Prompter) bool {
	if !prompt.Confirm("Are you sure you want to delete your account? This action cannot be undone.") {
		return false
	}
	if prompt.Input(`Type "DELETE" to confirm account deletion:`) != "DELETE" {
		prompt.Alert("Account deletion cancelled.")
		return false
	}

	if err := p.gw.DeleteAccount(ctx); err != nil {
		log.Printf("(profile) delete account failed: %v", err)
		prompt.Alert("Failed to delete account. Please try again.")
		return false
	}

	prompt.Alert("Account deleted successfully.")
	// the SignedOut event sends the controller back to the login
	p.session.Clear()
	return true
}
