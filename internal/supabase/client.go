// Package supabase is a small client for the hosted Supabase auth API.
// It covers the three auth calls the admin dashboard needs and nothing more:
// no retries, no token refresh, no caching.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	gotrue "github.com/supabase-community/auth-go"
)

var (
	ErrMissingURL     = errors.New("supabase: project url is required")
	ErrMissingAnonKey = errors.New("supabase: anon key is required")
)

// Client is safe for concurrent use. Apart from the session holder it is
// never mutated after New returns.
type Client struct {
	url     string
	anonKey string
	http    *http.Client
	persist bool

	mu      sync.RWMutex
	session *Session
}

type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithPersistSession controls whether a successful sign-in is kept on the
// client. Servers handling many admins turn it off and pass sessions through
// the request context instead.
func WithPersistSession(persist bool) Option {
	return func(c *Client) { c.persist = persist }
}

func New(projectURL, anonKey string, opts ...Option) (*Client, error) {
	projectURL = strings.TrimRight(strings.TrimSpace(projectURL), "/")
	if projectURL == "" {
		return nil, ErrMissingURL
	}
	if strings.TrimSpace(anonKey) == "" {
		return nil, ErrMissingAnonKey
	}
	c := &Client{
		url:     projectURL,
		anonKey: anonKey,
		http:    http.DefaultClient,
		persist: true,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

func (c *Client) URL() string { return c.url }

// api returns an auth-go client for a single call. The exchange binds ctx to
// every request it sends and keeps the backend's error object.
func (c *Client) api(ctx context.Context) (gotrue.Client, *exchange) {
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	x := &exchange{ctx: ctx, anonKey: c.anonKey, base: base}
	hc := *c.http
	hc.Transport = x
	return gotrue.New("", c.anonKey).WithCustomAuthURL(c.url + "/auth/v1").WithClient(hc), x
}

// exchange is the transport under auth-go. The library reports failures as
// text, so the decoded error body is kept here for the caller.
type exchange struct {
	ctx     context.Context
	anonKey string
	base    http.RoundTripper
	failure *AuthError
}

func (x *exchange) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(x.ctx)
	req.Header.Set("apikey", x.anonKey)
	if req.Header.Get("Authorization") == "" {
		req.Header.Set("Authorization", "Bearer "+x.anonKey)
	}
	resp, err := x.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		resp.Body.Close()
		x.failure = decodeError(resp.StatusCode, raw)
		resp.Body = io.NopCloser(bytes.NewReader(raw))
	}
	return resp, nil
}

// wrap prefers the backend's error object over the library's message.
func (x *exchange) wrap(op string, err error) error {
	if x.failure != nil {
		return x.failure
	}
	if ctxErr := x.ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%s: %w", op, ctxErr)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// convert re-decodes an auth-go result into our types; both follow the
// backend's JSON field names.
func convert(src, dst any) error {
	b, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("encode auth response: %w", err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("decode auth response: %w", err)
	}
	return nil
}
