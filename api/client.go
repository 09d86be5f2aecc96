// Package api is the HTTP client for the Praxis backend. It attaches
// the session's bearer token to every request, speaks the backend's
// plain-JSON wire format and maps failures to typed errors.
package api

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
	"time"

	"github.com/praxis-dev/client/logger"
	"github.com/praxis-dev/client/session"
)

type Client struct {
	baseURL string
	httpc   *http.Client
	sess    session.Session
}

// New builds a client against baseURL. The session provides bearer
// tokens; requests go out unauthenticated while signed out.
func New(baseURL string, sess session.Session) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
		sess:    sess,
	}
}

// SetHTTPClient swaps the underlying http.Client, mainly for tests.
func (c *Client) SetHTTPClient(httpc *http.Client) {
	c.httpc = httpc
}

// do runs one request. body is JSON-encoded when non-nil; a 2xx
// response is decoded into out when out is non-nil. Every failure
// comes back as *Error.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if err := c.authorize(ctx, req); err != nil {
		return err
	}

	return c.send(ctx, req, out)
}

// authorize attaches the bearer token. An expired session is reported
// without a round trip; being signed out just means no header.
func (c *Client) authorize(ctx context.Context, req *http.Request) error {
	token, err := c.sess.Token(ctx)
	switch {
	case err == nil:
		req.Header.Set("Authorization", "Bearer "+token)
		return nil
	case errors.Is(err, session.ErrNoSession):
		return nil
	case errors.Is(err, session.ErrSessionExpired):
		_ = c.sess.SignOut()
		return &Error{Kind: KindAuthentication, Detail: "Token expirado. Faça login novamente."}
	default:
		return err
	}
}

func (c *Client) send(ctx context.Context, req *http.Request, out any) error {
	log := logger.FromContext(ctx)
	start := time.Now()

	resp, err := c.httpc.Do(req)
	if err != nil {
		log.Debug("api request failed",
			"method", req.Method, "url", req.URL.String(), "error", err)
		return &Error{Kind: KindNetwork, cause: err}
	}
	defer resp.Body.Close()

	log.Debug("api request",
		"method", req.Method, "url", req.URL.String(),
		"status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFromResponse(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// errorFromResponse turns a non-2xx response into *Error. A 401 means
// the backend no longer accepts our token, so the local session is
// invalidated before the error is returned.
func (c *Client) errorFromResponse(resp *http.Response) error {
	detail := readDetail(resp.Body)
	if resp.StatusCode == http.StatusUnauthorized {
		_ = c.sess.SignOut()
	}
	return &Error{
		Kind:   kindOfStatus(resp.StatusCode),
		Status: resp.StatusCode,
		Detail: detail,
	}
}

// readDetail extracts the backend's {"detail": "..."} message, falling
// back to the raw body when it is short plain text.
func readDetail(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 8<<10))
	if err != nil {
		return ""
	}
	var d struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(data, &d); err == nil && d.Detail != "" {
		return d.Detail
	}
	text := strings.TrimSpace(string(data))
	if text != "" && !strings.HasPrefix(text, "{") && len(text) < 200 {
		return text
	}
	return ""
}
