package page

import (
	"context"
	"errors"

	"github.com/pixelgram/pixelgram/gateway"
	"github.com/pixelgram/pixelgram/model"
	"github.com/pixelgram/pixelgram/session"
)

// Auth drives the registration and sign-in forms
type Auth struct {
	gw      *gateway.Client
	session *session.Session
}

// NewAuth creates the auth flow
func NewAuth(gw *gateway.Client, sess *session.Session) *Auth {
	return &Auth{gw: gw, session: sess}
}

// Register creates the account and signs the session in. All
// fields are required; a default avatar derived from the username
// is sent when none is given.
func (a *Auth) Register(ctx context.Context, form gateway.RegisterBody) error {
	if form.Username == "" || form.Email == "" || form.Password == "" || form.FullName == "" {
		return errors.New("all fields are required")
	}
	if form.ProfilePicture == "" {
		form.ProfilePicture = model.DefaultAvatar + "?u=" + form.Username
	}

	answer, err := a.gw.Register(ctx, form)
	if err != nil {
		return err
	}
	if !answer.Success || answer.Token == "" {
		if answer.Message != "" {
			return errors.New(answer.Message)
		}
		return errors.New("registration failed")
	}

	a.session.SetUser(answer.User)
	a.session.SetToken(answer.Token)
	return nil
}

// SignIn exchanges credentials for a session token
func (a *Auth) SignIn(ctx context.Context, credentials gateway.Credentials) error {
	if credentials.Email == "" || credentials.Password == "" {
		return errors.New("all fields are required")
	}

	answer, err := a.gw.SignIn(ctx, credentials)
	if err != nil {
		return err
	}
	if !answer.Success || answer.Token == "" {
		if answer.Message != "" {
			return errors.New(answer.Message)
		}
		return errors.New("invalid credentials")
	}

	a.session.SetUser(answer.User)
	a.session.SetToken(answer.Token)
	return nil
}

// Restore refreshes the signed-in account from a stored token.
// Without a token it does nothing.
func (a *Auth) Restore(ctx context.Context) error {
	if a.session.Token() == "" {
		return nil
	}

	user, err := a.gw.CurrentUser(ctx)
	if err != nil {
		return err
	}
	a.session.SetUser(user)
	return nil
}

// SignOut drops the local session
func (a *Auth) SignOut() {
	a.session.Clear()
}
