// Package client is a thin HTTP client for the ball-machine user API.
//
// A Client plays the part of a per-test request context: it owns an
// http.Client and a cookie jar, and nothing else. It does not hold the auth
// token; callers pass the token they got from Login into Logout and
// Dashboard. Every HTTP status comes back as a *Response so tests can
// assert on failures; only transport problems are returned as errors.
//
//	c, err := client.New(client.Config{BaseURL: "https://ball-machine.waltair.io"})
//	if err != nil {
//	    return err
//	}
//	resp, err := c.Login(ctx, types.Credentials{Username: u, Passcode: p})
//	if err != nil {
//	    return err
//	}
//	dash, err := c.Dashboard(ctx, resp.Token())
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/Bharathisthe/Testing/internal/api/types"
	"golang.org/x/net/publicsuffix"
)

const defaultTimeout = 30 * time.Second

type Config struct {
	// BaseURL is the service root, e.g. "https://ball-machine.waltair.io".
	BaseURL string

	// Timeout bounds each request (default 30s).
	Timeout time.Duration

	// HTTPClient overrides the transport. Its Jar is replaced with a fresh
	// one unless already set.
	HTTPClient *http.Client

	Logger *slog.Logger
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("client: BaseURL is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("client: invalid BaseURL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("client: BaseURL must be http or https, got %q", c.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("client: BaseURL has no host: %q", c.BaseURL)
	}
	return nil
}

type Client struct {
	base       *url.URL
	httpClient *http.Client
	log        *slog.Logger
}

func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	base, _ := url.Parse(cfg.BaseURL)

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("client: cookie jar: %w", err)
	}

	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	} else {
		cp := *hc
		hc = &cp
	}
	if hc.Jar == nil {
		hc.Jar = jar
	}

	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	return &Client{base: base, httpClient: hc, log: log}, nil
}

// Login posts the credentials as JSON. On success the token is in
// resp.Token().
func (c *Client) Login(ctx context.Context, creds types.Credentials) (*Response, error) {
	body, err := json.Marshal(creds)
	if err != nil {
		return nil, fmt.Errorf("client: marshal credentials: %w", err)
	}
	return c.do(ctx, http.MethodPost, types.LoginPath, "", body)
}

// Logout ends the session for token. An empty token sends no auth header.
func (c *Client) Logout(ctx context.Context, token string) (*Response, error) {
	return c.do(ctx, http.MethodPost, types.LogoutPath, token, nil)
}

// Dashboard fetches the protected dashboard. An empty token sends no auth
// header.
func (c *Client) Dashboard(ctx context.Context, token string) (*Response, error) {
	return c.do(ctx, http.MethodGet, types.DashboardPath, token, nil)
}

// Cookies returns what the service has stored in this client's jar.
func (c *Client) Cookies() []*http.Cookie {
	return c.httpClient.Jar.Cookies(c.base)
}

func (c *Client) do(ctx context.Context, method, path, token string, body []byte) (*Response, error) {
	u := c.base.JoinPath(path)

	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), r)
	if err != nil {
		return nil, fmt.Errorf("client: build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(types.TokenHeader, token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("client: read %s %s: %w", method, path, err)
	}

	c.log.Debug("api call",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"withToken", token != "",
		"ms", time.Since(start).Milliseconds(),
	)

	return &Response{Status: resp.StatusCode, Header: resp.Header, Body: data}, nil
}
