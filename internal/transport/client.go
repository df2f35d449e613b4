// Package transport is the single point of outbound request construction for
// the marketplace backend: it attaches the bearer credential, maps failures
// into the domain error taxonomy, and applies the global unauthorized policy.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bpohire/portal/internal/credstore"
	"github.com/bpohire/portal/internal/domain"
)

// Client wraps the HTTP transport to the backend. It holds no token of its
// own: the credential store is re-read on every send, so a logout between
// request construction and dispatch is always honored.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	creds          credstore.Store
	onUnauthorized func()
}

func New(baseURL string, timeout time.Duration, creds credstore.Store) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		creds:      creds,
	}
}

// OnUnauthorized registers the callback invoked whenever any response comes
// back 401. The adapter clears the stored credential itself but leaves the
// session transition and navigation to the subscriber.
func (c *Client) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

type errorPayload struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Do sends one request and decodes the JSON response into out (skipped when
// out is nil). A bearer header is attached only if the store currently holds
// a token. No retry, no backoff; failures map to the domain taxonomy.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	token, err := c.creds.Token()
	if err != nil {
		return fmt.Errorf("read credential: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// Global policy: any 401, from any call, invalidates the credential
		// and forces the operator back to login.
		if err := c.creds.Clear(); err != nil {
			slog.Error("failed to clear rejected credential", "error", err)
		}
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return domain.ErrUnauthorized
	}

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrNotFound
	}

	if resp.StatusCode >= 400 {
		payload := errorPayload{}
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		msg := payload.Error
		if msg == "" {
			msg = payload.Message
		}
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &domain.APIError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
