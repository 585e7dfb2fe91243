// Package maps - обратное геокодирование координат кейса через Google Maps
package maps

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"googlemaps.github.io/maps"
)

var (
	ErrNoAPIKey  = errors.New("maps: api key is not configured")
	ErrNoResults = errors.New("maps: no results")
)

// KeySource отдает текущий ключ карт. Ключ может меняться во время работы
type KeySource interface {
	MapAPIKey(ctx context.Context) (string, error)
}

// GoogleGeocoder создает клиента под текущий ключ и переиспользует его, пока ключ не сменится
type GoogleGeocoder struct {
	keys    KeySource
	options []maps.ClientOption

	mu     sync.Mutex
	key    string
	client *maps.Client
}

func NewGoogleGeocoder(keys KeySource, options ...maps.ClientOption) *GoogleGeocoder {
	return &GoogleGeocoder{
		keys:    keys,
		options: options,
	}
}

// ReverseGeocode возвращает адрес первой найденной точки
func (g *GoogleGeocoder) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	client, err := g.clientFor(ctx)
	if err != nil {
		return "", err
	}

	resp, err := client.ReverseGeocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: lat, Lng: lng},
	})
	if err != nil {
		return "", fmt.Errorf("reverse geocoding failed: %w", err)
	}
	for _, result := range resp {
		if result.FormattedAddress != "" {
			return result.FormattedAddress, nil
		}
	}
	return "", ErrNoResults
}

func (g *GoogleGeocoder) clientFor(ctx context.Context) (*maps.Client, error) {
	key, err := g.keys.MapAPIKey(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read maps api key: %w", err)
	}
	if key == "" {
		return nil, ErrNoAPIKey
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client != nil && g.key == key {
		return g.client, nil
	}

	opts := append([]maps.ClientOption{maps.WithAPIKey(key)}, g.options...)
	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
	}
	g.key = key
	g.client = client
	return client, nil
}
