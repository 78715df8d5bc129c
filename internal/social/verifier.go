// Package social verifies opaque identity-provider tokens against the
// provider's tokeninfo endpoint and extracts the profile the identity
// service needs.
package social

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrUnknownProvider is returned for providers without a configured endpoint.
var ErrUnknownProvider = errors.New("unknown identity provider")

// Profile is the verified identity returned by a provider.
type Profile struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
}

// Verifier resolves an opaque provider token to a verified profile.
type Verifier interface {
	Verify(ctx context.Context, provider, token string) (*Profile, error)
}

// HTTPVerifier calls provider tokeninfo endpoints over HTTP.
type HTTPVerifier struct {
	endpoints  map[string]string
	httpClient *http.Client
}

// NewHTTPVerifier creates a verifier with the given Google tokeninfo
// endpoint. An empty URL leaves Google unconfigured.
func NewHTTPVerifier(googleTokenInfoURL string) *HTTPVerifier {
	endpoints := make(map[string]string)
	if googleTokenInfoURL != "" {
		endpoints["google"] = googleTokenInfoURL
	}
	return &HTTPVerifier{
		endpoints: endpoints,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Verify asks the provider's tokeninfo endpoint to validate the token and
// returns the profile it reports.
func (v *HTTPVerifier) Verify(ctx context.Context, provider, token string) (*Profile, error) {
	endpoint, ok := v.endpoints[provider]
	if !ok {
		return nil, ErrUnknownProvider
	}

	reqURL := fmt.Sprintf("%s?id_token=%s", endpoint, url.QueryEscape(token))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("verify %s token: %w", provider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s token rejected: status %d", provider, resp.StatusCode)
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode %s tokeninfo response: %w", provider, err)
	}
	if profile.Email == "" {
		return nil, fmt.Errorf("%s tokeninfo response carried no email", provider)
	}
	return &profile, nil
}
