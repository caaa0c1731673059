package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"travelcompanion/internal/infra"
	"travelcompanion/pkg/memcache"
)

type GeocodingClient interface {
	// ReverseGeocode returns a human-readable label for the coordinates.
	// It never fails the caller: on any error it falls back to a
	// "{lat}, {lon}" literal.
	ReverseGeocode(ctx context.Context, lat, lon float64) string
}

const geocodeLabelTTL = 24 * time.Hour

type NominatimClient struct {
	httpClient *http.Client
	baseURL    string
	labels     memcache.LabelStore
}

func NewNominatimClient(cfg *infra.Config, labels memcache.LabelStore) *NominatimClient {
	return &NominatimClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    cfg.NominatimURL,
		labels:     labels,
	}
}

var _ GeocodingClient = (*NominatimClient)(nil)

func (c *NominatimClient) ReverseGeocode(ctx context.Context, lat, lon float64) string {
	fallback := fmt.Sprintf("%v, %v", lat, lon)

	if label, ok := c.labels.Get(lat, lon); ok {
		return label
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("lat", fmt.Sprintf("%v", lat))
	params.Set("lon", fmt.Sprintf("%v", lon))
	params.Set("zoom", "10") // city-level detail
	params.Set("addressdetails", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/reverse?"+params.Encode(), nil)
	if err != nil {
		return fallback
	}
	req.Header.Set("User-Agent", "TravelCompanion/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("Reverse geocoding failed: %v", err)
		return fallback
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("Reverse geocoding returned status %d", resp.StatusCode)
		return fallback
	}

	var payload struct {
		DisplayName string `json:"display_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || payload.DisplayName == "" {
		return fallback
	}

	c.labels.Set(lat, lon, payload.DisplayName, geocodeLabelTTL)
	return payload.DisplayName
}
