package maps

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"
)

type staticKey struct {
	key string
	err error
}

func (s *staticKey) MapAPIKey(context.Context) (string, error) { return s.key, s.err }

func newGeocodeServer(t *testing.T, body string) (*httptest.Server, *atomic.Value) {
	var lastKey atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastKey.Store(r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &lastKey
}

func TestReverseGeocode_ReturnsFirstAddress(t *testing.T) {
	srv, lastKey := newGeocodeServer(t, `{"status":"OK","results":[{"formatted_address":"221B Baker St, London"},{"formatted_address":"Baker St"}]}`)
	g := NewGoogleGeocoder(&staticKey{key: "key-1"}, maps.WithBaseURL(srv.URL))

	addr, err := g.ReverseGeocode(context.Background(), 51.52, -0.15)

	require.NoError(t, err)
	assert.Equal(t, "221B Baker St, London", addr)
	assert.Equal(t, "key-1", lastKey.Load())
}

func TestReverseGeocode_NoResults(t *testing.T) {
	srv, _ := newGeocodeServer(t, `{"status":"ZERO_RESULTS","results":[]}`)
	g := NewGoogleGeocoder(&staticKey{key: "key-1"}, maps.WithBaseURL(srv.URL))

	_, err := g.ReverseGeocode(context.Background(), 0, 0)

	assert.Error(t, err)
}

func TestReverseGeocode_WithoutKey(t *testing.T) {
	g := NewGoogleGeocoder(&staticKey{})

	_, err := g.ReverseGeocode(context.Background(), 1, 1)

	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestReverseGeocode_KeySourceError(t *testing.T) {
	g := NewGoogleGeocoder(&staticKey{err: errors.New("redis down")})

	_, err := g.ReverseGeocode(context.Background(), 1, 1)

	assert.ErrorContains(t, err, "failed to read maps api key")
}

func TestReverseGeocode_RebuildsClientWhenKeyChanges(t *testing.T) {
	srv, lastKey := newGeocodeServer(t, `{"status":"OK","results":[{"formatted_address":"Somewhere"}]}`)
	keys := &staticKey{key: "old"}
	g := NewGoogleGeocoder(keys, maps.WithBaseURL(srv.URL))
	ctx := context.Background()

	_, err := g.ReverseGeocode(ctx, 1, 1)
	require.NoError(t, err)
	first := g.client

	_, err = g.ReverseGeocode(ctx, 1, 1)
	require.NoError(t, err)
	assert.Same(t, first, g.client)

	keys.key = "new"
	_, err = g.ReverseGeocode(ctx, 1, 1)
	require.NoError(t, err)
	assert.NotSame(t, first, g.client)
	assert.Equal(t, "new", lastKey.Load())
}
