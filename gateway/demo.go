package gateway

import (
	"context"
	"net/http"

	"github.com/pixelgram/pixelgram/model"
)

// DemoPosts returns the public sample feed. The demo endpoints
// answer with bare arrays, not the usual envelope.
func (c *Client) DemoPosts(ctx context.Context) ([]model.Post, error) {
	var out []model.Post
	if err := c.do(ctx, http.MethodGet, "/demo/posts", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DemoUsers returns a sample of accounts for the story strip
func (c *Client) DemoUsers(ctx context.Context) ([]model.User, error) {
	var out []model.User
	if err := c.do(ctx, http.MethodGet, "/demo/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
