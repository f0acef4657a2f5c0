package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	zipkinhttp "github.com/openzipkin/zipkin-go/middleware/http"

	"github.com/pixelgram/pixelgram/helpers"
	"github.com/pixelgram/pixelgram/model"
	"github.com/pixelgram/pixelgram/session"
)

// every request gets the same budget, there are no retries
const requestTimeout = 10 * time.Second

// Client is the only component talking to the backend,
// every page goes through it
type Client struct {
	baseURL string
	http    *zipkinhttp.Client
	session *session.Session
	timeout time.Duration
}

// New creates the gateway client on top of a traced HTTP client
func New(baseURL string, httpClient *zipkinhttp.Client, sess *session.Session) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    httpClient,
		session: sess,
		timeout: requestTimeout,
	}
}

// do sends one request, attaching the bearer token when present,
// and classifies failures for the caller
func (c *Client) do(ctx context.Context, method string, path string, reqBody any, out any) error {
	resource := resourceOf(path)
	helpers.IncrementRequests(resource)

	start := time.Now()
	defer func() {
		helpers.ObserveRequestDuration(time.Since(start).Seconds())
	}()

	var reader io.Reader
	if reqBody != nil {
		encoded, err := json.Marshal(reqBody)
		if err != nil {
			return errors.New("unable to encode body")
		}
		reader = bytes.NewBuffer(encoded)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.New("unable to create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := c.http.Do(req)
	if err != nil {
		helpers.IncrementFailures(resource)
		log.Printf("(gateway) %s %s failed: %v", method, path, err)
		if blockedByPolicy(err) {
			return ErrBlocked
		}
		return ErrUnavailable
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		helpers.IncrementFailures(resource)
		return ErrUnavailable
	}

	switch {
	case response.StatusCode == http.StatusUnauthorized:
		helpers.IncrementFailures(resource)
		// The stored token is no longer honoured. Drop it and let
		// the session controller send the user back to the login.
		c.session.Expire()
		return ErrUnauthorized
	case response.StatusCode == http.StatusNotFound:
		helpers.IncrementFailures(resource)
		return ErrNotFound
	case response.StatusCode >= 400:
		helpers.IncrementFailures(resource)
		var status model.APIStatus
		json.Unmarshal(body, &status)
		if status.Message != "" {
			return fmt.Errorf("%w: %s", ErrRequest, status.Message)
		}
		return ErrRequest
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return errors.New("unable to read response")
		}
	}

	return nil
}

// blockedByPolicy spots requests refused before leaving the machine,
// usually a proxy or firewall rule rather than the backend being down
func blockedByPolicy(err error) bool {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return false
	}

	message := urlErr.Err.Error()
	return strings.Contains(message, "proxyconnect") || strings.Contains(message, "blocked")
}

// resourceOf returns the first path segment, used as metric label
func resourceOf(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(trimmed, '/'); i > 0 {
		return trimmed[:i]
	}
	return trimmed
}
