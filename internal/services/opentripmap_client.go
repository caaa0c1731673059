package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"travelcompanion/internal/infra"
	"travelcompanion/internal/models/response_models"
	"travelcompanion/pkg/utils"
)

type HotelSearchClient interface {
	// SearchRaw returns the provider payload verbatim so callers can cache
	// it before parsing.
	SearchRaw(ctx context.Context, params map[string]string) ([]byte, error)
	ParseHotels(data []byte) []response_models.Hotel
}

type OpenTripMapClient struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

func NewOpenTripMapClient(cfg *infra.Config) *OpenTripMapClient {
	return &OpenTripMapClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiKey:     cfg.OpenTripMapAPIKey,
		baseURL:    cfg.OpenTripMapURL,
	}
}

var _ HotelSearchClient = (*OpenTripMapClient)(nil)

func (c *OpenTripMapClient) SearchRaw(ctx context.Context, params map[string]string) ([]byte, error) {
	if c.apiKey == "" || c.baseURL == "" {
		log.Println("OpenTripMap API key or URL is not configured")
		return nil, utils.ErrServiceConfig
	}

	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}
	values.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/en/places/autosuggest?"+values.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstreamUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("OpenTripMap request error: %v", err)
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("OpenTripMap API returned status %d", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", utils.ErrUpstreamProtocol, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// ParseHotels converts the raw provider payload into hotel responses,
// skipping malformed entries instead of failing the batch.
func (c *OpenTripMapClient) ParseHotels(data []byte) []response_models.Hotel {
	var items []struct {
		Name  string  `json:"name"`
		Dist  float64 `json:"dist"`
		Rate  int     `json:"rate"`
		Point *struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"point"`
	}
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("Error parsing hotel payload: %v", err)
		return nil
	}

	hotels := make([]response_models.Hotel, 0, len(items))
	for _, item := range items {
		if item.Point == nil {
			log.Printf("Skipping hotel entry without coordinates: %q", item.Name)
			continue
		}
		hotels = append(hotels, response_models.Hotel{
			Name:      item.Name,
			Distance:  item.Dist,
			Rate:      item.Rate,
			Latitude:  item.Point.Lat,
			Longitude: item.Point.Lon,
		})
	}
	if len(hotels) == 0 {
		log.Println("No hotels found for the given query")
	}
	return hotels
}
