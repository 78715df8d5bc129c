package social_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bazar/internal/social"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPVerifier_Verify(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id_token") != "good-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{
			"email":   "asha@example.com",
			"name":    "Asha",
			"picture": "https://example.com/asha.png",
		})
	}))
	defer srv.Close()

	verifier := social.NewHTTPVerifier(srv.URL)

	profile, err := verifier.Verify(context.Background(), "google", "good-token")
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", profile.Email)
	assert.Equal(t, "Asha", profile.Name)

	_, err = verifier.Verify(context.Background(), "google", "bad-token")
	assert.Error(t, err)
}

func TestHTTPVerifier_UnknownProvider(t *testing.T) {
	verifier := social.NewHTTPVerifier("https://example.com/tokeninfo")

	_, err := verifier.Verify(context.Background(), "facebook", "token")
	assert.ErrorIs(t, err, social.ErrUnknownProvider)
}

func TestHTTPVerifier_EmptyEmailRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"name": "No Email"})
	}))
	defer srv.Close()

	verifier := social.NewHTTPVerifier(srv.URL)
	_, err := verifier.Verify(context.Background(), "google", "token")
	assert.Error(t, err)
}
