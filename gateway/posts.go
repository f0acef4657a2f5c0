package gateway

import (
	"context"
	"net/http"

	"github.com/pixelgram/pixelgram/model"
)

// PostBody defines how body when publishing a new post must be
type PostBody struct {
	ImageURL string `json:"imageUrl"`
	Caption  string `json:"caption,omitempty"`
	Location string `json:"location,omitempty"`
}

// CommentBody carries the text of a new comment
type CommentBody struct {
	Text string `json:"text"`
}

// CreatePost publishes a new post
func (c *Client) CreatePost(ctx context.Context, body PostBody) error {
	var out model.APIStatus
	if err := c.do(ctx, http.MethodPost, "/posts", body, &out); err != nil {
		return err
	}
	if !out.Success {
		return ErrRequest
	}
	return nil
}

// Feed returns the home timeline of the signed-in account
func (c *Client) Feed(ctx context.Context) ([]model.Post, error) {
	var out model.PostsResponse
	if err := c.do(ctx, http.MethodGet, "/posts/feed", nil, &out); err != nil {
		return nil, err
	}
	return out.Posts, nil
}

// Explore returns the public discovery timeline
func (c *Client) Explore(ctx context.Context) ([]model.Post, error) {
	var out model.PostsResponse
	if err := c.do(ctx, http.MethodGet, "/posts/explore", nil, &out); err != nil {
		return nil, err
	}
	return out.Posts, nil
}

// LikePost toggles the like of the signed-in account on a post
func (c *Client) LikePost(ctx context.Context, postID string) error {
	return c.do(ctx, http.MethodPost, "/posts/"+postID+"/like", nil, nil)
}

// DeletePost removes a post owned by the signed-in account
func (c *Client) DeletePost(ctx context.Context, postID string) error {
	var out model.APIStatus
	if err := c.do(ctx, http.MethodDelete, "/posts/"+postID, nil, &out); err != nil {
		return err
	}
	if !out.Success {
		return ErrRequest
	}
	return nil
}

// CommentPost adds a comment on a post
func (c *Client) CommentPost(ctx context.Context, postID string, text string) error {
	return c.do(ctx, http.MethodPost, "/posts/"+postID+"/comment", CommentBody{Text: text}, nil)
}
