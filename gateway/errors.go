package gateway

import "errors"

// Every possible failure class. Read paths collapse most of them
// to the same empty state, destructive flows tell them apart.
var (
	ErrUnavailable  = errors.New("backend unreachable")
	ErrBlocked      = errors.New("request blocked by client policy")
	ErrUnauthorized = errors.New("invalid or expired token")
	ErrNotFound     = errors.New("resource not found")
	ErrRequest      = errors.New("request rejected")
)
