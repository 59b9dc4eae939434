package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"feastly/config"

	"github.com/go-redis/redis/v8"
)

// Location is the settled result of geocoding a free-text address.
type Location struct {
	City  string  `json:"city"`
	State string  `json:"state"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
}

// Geocoder resolves an address string to coordinates. Callers must tolerate
// errors as "no distance known yet": pricing treats an unresolved address as
// a valid state, never a failure.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*Location, error)
}

// Geocode results are stable for a given address; cache them for a day.
const geocodeCacheTTL = 24 * time.Hour

// GoogleGeocoder resolves addresses through the Google Geocoding API,
// caching results in redis per address string.
type GoogleGeocoder struct {
	apiKey string
	client *http.Client
	cache  *redis.Client
}

// NewGoogleGeocoder builds a geocoder using the configured API key and the
// given cache client (nil disables caching).
func NewGoogleGeocoder(cache *redis.Client) *GoogleGeocoder {
	return &GoogleGeocoder{
		apiKey: config.AppConfig.GoogleAPIKey,
		client: &http.Client{Timeout: 5 * time.Second},
		cache:  cache,
	}
}

type geocodeAPIResponse struct {
	Status  string `json:"status"`
	Results []struct {
		AddressComponents []struct {
			LongName  string   `json:"long_name"`
			ShortName string   `json:"short_name"`
			Types     []string `json:"types"`
		} `json:"address_components"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

func geocodeCacheKey(address string) string {
	return "geocode:" + address
}

// Geocode resolves the address, returning the cached result when available.
func (g *GoogleGeocoder) Geocode(ctx context.Context, address string) (*Location, error) {
	if g.cache != nil {
		if data, err := g.cache.Get(ctx, geocodeCacheKey(address)).Result(); err == nil {
			var loc Location
			if err := json.Unmarshal([]byte(data), &loc); err == nil {
				return &loc, nil
			}
		}
	}

	endpoint := fmt.Sprintf("https://maps.googleapis.com/maps/api/geocode/json?address=%s&key=%s",
		url.QueryEscape(address), g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	var apiResp geocodeAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decoding geocode response failed: %w", err)
	}
	if apiResp.Status != "OK" || len(apiResp.Results) == 0 {
		return nil, fmt.Errorf("geocode returned status %q", apiResp.Status)
	}

	result := apiResp.Results[0]
	loc := &Location{
		Lat: result.Geometry.Location.Lat,
		Lng: result.Geometry.Location.Lng,
	}
	for _, comp := range result.AddressComponents {
		for _, t := range comp.Types {
			switch t {
			case "locality":
				loc.City = comp.LongName
			case "administrative_area_level_1":
				loc.State = comp.ShortName
			}
		}
	}

	if g.cache != nil {
		if data, err := json.Marshal(loc); err == nil {
			g.cache.Set(ctx, geocodeCacheKey(address), data, geocodeCacheTTL)
		}
	}
	return loc, nil
}
