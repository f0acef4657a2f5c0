package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pixelgram/pixelgram/model"
)

// RegisterBody defines how body when creating an account must be
type RegisterBody struct {
	Username       string `json:"username"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	FullName       string `json:"fullName"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// Credentials defines how body when signing in must be
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account
func (c *Client) Register(ctx context.Context, body RegisterBody) (*model.AuthResponse, error) {
	var out model.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/user-auth/register", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SignIn exchanges credentials for a bearer token
func (c *Client) SignIn(ctx context.Context, credentials Credentials) (*model.AuthResponse, error) {
	var out model.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/user-auth/signin", credentials, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CurrentUser returns the account the stored token belongs to
func (c *Client) CurrentUser(ctx context.Context) (*model.User, error) {
	var out model.ProfileResponse
	if err := c.do(ctx, http.MethodGet, "/user-auth/me", nil, &out); err != nil {
		return nil, err
	}
	if !out.Success || out.User == nil {
		if out.Message != "" {
			return nil, fmt.Errorf("%w: %s", ErrRequest, out.Message)
		}
		return nil, ErrRequest
	}
	return out.User, nil
}
