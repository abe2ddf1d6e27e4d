// Package github is a minimal client for the GitHub REST users endpoint.
//
// Only GET /users/{username} is implemented. Requests are sent once: there is
// no retry, caching, or rate-limit handling beyond reporting the response.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultBaseURL is the public GitHub API root.
var DefaultBaseURL = "https://api.github.com"

const (
	// AcceptHeader requests the GitHub JSON media type.
	AcceptHeader = "application/vnd.github+json"

	// DefaultUserAgent identifies this tool to the API.
	DefaultUserAgent = "coauthor-line-script"
)

// Client fetches user records from the GitHub API.
type Client struct {
	BaseURL    string
	Token      string
	UserAgent  string
	HTTPClient *http.Client
	Logger     *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API root, such as a GitHub
// Enterprise Server instance or a test server.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.BaseURL = u
		}
	}
}

// WithToken sets the bearer token. An empty token sends unauthenticated requests.
func WithToken(token string) Option {
	return func(c *Client) { c.Token = token }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.UserAgent = ua
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.HTTPClient = hc
		}
	}
}

// WithLogger sets the debug logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.Logger = l }
}

// NewClient returns a Client with defaults applied before opts.
// The default HTTP client has no timeout of its own.
func NewClient(opts ...Option) *Client {
	c := &Client{
		BaseURL:    DefaultBaseURL,
		UserAgent:  DefaultUserAgent,
		HTTPClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.Logger == nil {
		c.Logger = log.New(io.Discard)
	}
	return c
}

// UserURL returns the profile endpoint for username.
func (c *Client) UserURL(username string) string {
	return strings.TrimRight(c.BaseURL, "/") + "/users/" + url.PathEscape(username)
}

// FetchUser retrieves the public profile for username and decodes it into a
// generic map. Numbers are kept as json.Number.
//
// A non-2xx status returns *APIError. A body that is not a JSON object
// returns *DecodeError.
func (c *Client) FetchUser(ctx context.Context, username string) (map[string]any, error) {
	endpoint := c.UserURL(username)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", AcceptHeader)
	req.Header.Set("User-Agent", c.UserAgent)
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	c.Logger.Debug("fetching user", "url", endpoint, "authenticated", c.Token != "")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request GitHub user '%s': %w", username, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response for '%s': %w", username, err)
	}

	c.Logger.Debug("response received", "status", resp.StatusCode, "bytes", len(body))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Reason:     reasonPhrase(resp),
			Username:   username,
			Body:       strings.ToValidUTF8(string(body), "\uFFFD"),
		}
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var data map[string]any
	if err := dec.Decode(&data); err != nil {
		return nil, &DecodeError{Username: username, Err: err}
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, &DecodeError{Username: username, Err: err}
	}

	return data, nil
}

// reasonPhrase extracts the reason from the status line, falling back to the
// standard text for the code.
func reasonPhrase(resp *http.Response) string {
	code := fmt.Sprintf("%d", resp.StatusCode)
	if reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, code)); reason != "" {
		return reason
	}
	return http.StatusText(resp.StatusCode)
}
