package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pixelgram/pixelgram/model"
)

// ProfileUpdateBody defines how body when updating a profile must be.
// Pointers distinguish absent fields from cleared ones.
type ProfileUpdateBody struct {
	FullName       *string `json:"fullName,omitempty"`
	Bio            *string `json:"bio,omitempty"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
}

// FollowUser follows or unfollows a user
func (c *Client) FollowUser(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodPost, "/users/follow/"+userID, nil, nil)
}

// Profile returns a user and its owned posts by username. An
// answer with a false success flag means the user does not exist.
func (c *Client) Profile(ctx context.Context, username string) (*model.User, error) {
	var out model.ProfileResponse
	if err := c.do(ctx, http.MethodGet, "/users/profile/"+url.PathEscape(username), nil, &out); err != nil {
		return nil, err
	}
	if !out.Success || out.User == nil {
		return nil, ErrNotFound
	}
	return out.User, nil
}

// SuggestedUsers returns accounts the signed-in user may follow
func (c *Client) SuggestedUsers(ctx context.Context) ([]model.User, error) {
	var out model.UsersResponse
	if err := c.do(ctx, http.MethodGet, "/users/suggested", nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// SearchUsers returns the accounts matching a query
func (c *Client) SearchUsers(ctx context.Context, query string) ([]model.User, error) {
	var out model.UsersResponse
	if err := c.do(ctx, http.MethodGet, "/users/search?query="+url.QueryEscape(query), nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// DeleteAccount removes the signed-in account
func (c *Client) DeleteAccount(ctx context.Context) error {
	var out model.APIStatus
	if err := c.do(ctx, http.MethodDelete, "/users/account", nil, &out); err != nil {
		return err
	}
	if !out.Success {
		return ErrRequest
	}
	return nil
}

// UpdateProfile changes profile fields of the signed-in account
func (c *Client) UpdateProfile(ctx context.Context, body ProfileUpdateBody) (*model.User, error) {
	var out model.ProfileResponse
	if err := c.do(ctx, http.MethodPut, "/users/profile", body, &out); err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, ErrRequest
	}
	return out.User, nil
}
