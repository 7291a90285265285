// Package profile reads the current user's profile from the backend.
package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nfrund/compliance-shell/internal/domain"
)

// maxBodyBytes caps how much of a profile response is read.
const maxBodyBytes = 1 << 20

// StatusError reports a non-2xx answer from the profile endpoint.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("profile endpoint returned %d %s", e.Code, http.StatusText(e.Code))
}

// Unwrap lets callers match the failure with errors.Is.
func (e *StatusError) Unwrap() error {
	return domain.ErrProfileUnavailable
}

// Client performs the authenticated profile read.
type Client struct {
	url  string
	http *http.Client
}

// NewClient creates a Client for the endpoint at url. timeout bounds each
// request; zero disables the bound.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:  url,
		http: &http.Client{Timeout: timeout},
	}
}

// FetchProfile issues a GET against the profile endpoint, presenting token as
// a bearer credential, and decodes the JSON object it returns.
func (c *Client) FetchProfile(ctx context.Context, token string) (domain.Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build profile request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, &StatusError{Code: resp.StatusCode}
	}

	var profile domain.Profile
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&profile); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedProfile, err)
	}
	if profile == nil {
		return nil, fmt.Errorf("%w: empty body", domain.ErrMalformedProfile)
	}
	return profile, nil
}

// IsUnavailable reports whether err came from the backend refusing the read.
func IsUnavailable(err error) bool {
	return errors.Is(err, domain.ErrProfileUnavailable)
}
