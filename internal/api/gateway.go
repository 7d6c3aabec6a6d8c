package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/pawhaven/pawdeck/internal/creds"
)

const defaultUserAgent = "pawdeck/0.1"

// Gateway is the single shared HTTP transport for all domain calls.
//
// Every request carries the bearer token from the credential store when one
// is present. A 401 on any response clears the persisted credentials and
// fires the registered unauthorized hook; callers must assume any call can
// end the session. Requests are fire-once: no retry, no caching, and no
// client-side timeout beyond the caller's context.
type Gateway struct {
	baseURL        *url.URL
	http           *http.Client
	creds          *creds.Store
	userAgent      string
	onUnauthorized func()
}

// NewGateway builds a Gateway for the given backend origin.
func NewGateway(rawURL string, store *creds.Store) (*Gateway, error) {
	base, err := parseBaseURL(rawURL)
	if err != nil {
		return nil, err
	}
	return &Gateway{
		baseURL:   base,
		http:      &http.Client{},
		creds:     store,
		userAgent: defaultUserAgent,
	}, nil
}

// OnUnauthorized registers the hook invoked after a 401 has cleared the
// persisted credentials. Used by the UI to return to the login view.
func (g *Gateway) OnUnauthorized(fn func()) {
	g.onUnauthorized = fn
}

// Send issues one request and returns the raw JSON response body.
// body, when non-nil, is marshalled as the JSON request body.
func (g *Gateway) Send(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	if g == nil {
		return nil, fmt.Errorf("gateway is nil")
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	reqURL := g.baseURL.ResolveReference(&url.URL{Path: path})
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if g.creds != nil {
		if token := g.creds.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, g.handleErrorStatus(method, path, resp.StatusCode, raw)
	}
	return json.RawMessage(raw), nil
}

// handleErrorStatus maps an error response to *Error, applying the global
// side effects for authentication and authorization failures.
func (g *Gateway) handleErrorStatus(method, path string, status int, raw json.RawMessage) error {
	message := UnwrapValue[string](raw, "message", "error")
	if strings.TrimSpace(message) == "" {
		message = http.StatusText(status)
	}
	apiErr := &Error{Status: status, Message: message}

	switch status {
	case http.StatusUnauthorized:
		// Session is over no matter which call tripped it.
		if g.creds != nil {
			if err := g.creds.Clear(); err != nil {
				log.Printf("clear credentials after 401: %v", err)
			}
		}
		if g.onUnauthorized != nil {
			g.onUnauthorized()
		}
	case http.StatusForbidden:
		log.Printf("api %s %s denied: %s", method, path, message)
	}

	return apiErr
}

func parseBaseURL(rawURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return nil, fmt.Errorf("api url is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", rawURL, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
