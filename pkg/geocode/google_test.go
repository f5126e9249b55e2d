package geocode

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoogleProvider_Match(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"status": "OK",
			"results": [{
				"geometry": {"location": {"lat": 41.8781, "lng": -87.6298}},
				"formatted_address": "123 Main St, Chicago, IL 60601, USA"
			}]
		}`)
	}))
	defer srv.Close()

	p := &googleProvider{
		client: newRewriteClient(srv.URL, googleGeocodeURL),
		key:    "test-key",
	}

	h, err := p.resolve(context.Background(), "123 Main St, Chicago, IL")
	require.NoError(t, err)
	require.NotNil(t, h)
	assert.InDelta(t, 41.8781, h.latitude, 0.0001)
	assert.InDelta(t, -87.6298, h.longitude, 0.0001)
	assert.Equal(t, "123 Main St, Chicago, IL 60601, USA", h.formattedAddress)
}

func TestGoogleProvider_ZeroResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"status": "ZERO_RESULTS", "results": []}`)
	}))
	defer srv.Close()

	p := &googleProvider{
		client: newRewriteClient(srv.URL, googleGeocodeURL),
		key:    "test-key",
	}

	h, err := p.resolve(context.Background(), "000 Nonexistent, Nowhere")
	require.NoError(t, err)
	assert.Nil(t, h)
}

func TestGoogleProvider_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	p := &googleProvider{
		client: newRewriteClient(srv.URL, googleGeocodeURL),
		key:    "bad-key",
	}

	_, err := p.resolve(context.Background(), "123 Main St")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}

func TestGoogleProvider_EmptyFormattedAddressFallsBackToInput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"status": "OK",
			"results": [{"geometry": {"location": {"lat": 40.0, "lng": -74.0}}}]
		}`)
	}))
	defer srv.Close()

	p := &googleProvider{
		client: newRewriteClient(srv.URL, googleGeocodeURL),
		key:    "test-key",
	}

	h, err := p.resolve(context.Background(), "somewhere in NJ")
	require.NoError(t, err)
	require.NotNil(t, h)
	assert.Equal(t, "somewhere in NJ", h.formattedAddress)
}
