package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"travelcompanion/internal/infra"
	"travelcompanion/internal/models/db_models"
	"travelcompanion/pkg/utils"
)

// ParsedPlace is one normalized result from the external place provider.
type ParsedPlace struct {
	ExternalID string
	Name       string
	Latitude   float64
	Longitude  float64
	Address    string
	Rating     *float64
}

type PlaceSearchQuery struct {
	Latitude   float64
	Longitude  float64
	Radius     int
	CategoryID string
	Limit      int
	Sort       string
	MinRating  *float64
}

type PlaceSearchClient interface {
	CategoryID(category string) (string, bool)
	Search(ctx context.Context, query PlaceSearchQuery) ([]ParsedPlace, error)
}

// Domain category -> Foursquare category code. Unknown categories have no
// code; the orchestrator rejects them before any network call.
var foursquareCategoryCodes = map[string]string{
	db_models.CategoryFood:          "13065",
	db_models.CategoryEntertainment: "10032",
	db_models.CategoryShopping:      "17000",
	db_models.CategoryAttraction:    "16000",
}

const (
	fsqConnectTimeout = 3 * time.Second
	fsqReadTimeout    = 10 * time.Second
	fsqSearchTimeout  = 8 * time.Second // inner budget for the search call
	fsqRetries        = 2
	fsqBodyExcerptLen = 200
)

type FoursquareClient struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

func NewFoursquareClient(cfg *infra.Config) *FoursquareClient {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: fsqConnectTimeout,
		}).DialContext,
		TLSHandshakeTimeout:   fsqConnectTimeout,
		ResponseHeaderTimeout: fsqReadTimeout,
		// net/http has no pool-wait knob; MaxConnsPerHost blocks callers
		// once the pool is exhausted.
		MaxConnsPerHost:     100,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
		IdleConnTimeout:     90 * time.Second,
	}

	return &FoursquareClient{
		httpClient: &http.Client{Transport: transport},
		apiKey:     cfg.FoursquareAPIKey,
		baseURL:    cfg.FoursquareURL,
	}
}

var _ PlaceSearchClient = (*FoursquareClient)(nil)

func (c *FoursquareClient) CategoryID(category string) (string, bool) {
	code, ok := foursquareCategoryCodes[category]
	return code, ok
}

func (c *FoursquareClient) Search(ctx context.Context, query PlaceSearchQuery) ([]ParsedPlace, error) {
	if c.apiKey == "" || c.baseURL == "" {
		log.Println("Foursquare API key or URL is not configured")
		return nil, utils.ErrServiceConfig
	}

	ctx, cancel := context.WithTimeout(ctx, fsqSearchTimeout)
	defer cancel()

	params := url.Values{}
	params.Set("ll", fmt.Sprintf("%v,%v", query.Latitude, query.Longitude))
	params.Set("radius", strconv.Itoa(query.Radius))
	params.Set("categories", query.CategoryID)
	params.Set("limit", strconv.Itoa(query.Limit))
	if query.Sort != "" {
		params.Set("sort", query.Sort)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Accept", "application/json")

	// The GET is idempotent, so transport failures get a bounded retry.
	var resp *http.Response
	for attempt := 1; ; attempt++ {
		resp, err = c.httpClient.Do(req)
		if err == nil {
			break
		}
		if attempt >= fsqRetries || ctx.Err() != nil {
			return nil, classifyTransportError(err)
		}
		log.Printf("Foursquare request failed (attempt %d): %v", attempt, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, fsqBodyExcerptLen))
		log.Printf("Foursquare API returned status %d", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d: %s", utils.ErrUpstreamProtocol, resp.StatusCode, string(body))
	}

	var payload struct {
		Results []foursquareItem `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", utils.ErrUpstreamProtocol, err)
	}

	places := make([]ParsedPlace, 0, len(payload.Results))
	for _, item := range payload.Results {
		if parsed := parseFoursquareItem(item, query.MinRating); parsed != nil {
			places = append(places, *parsed)
		}
	}
	return places, nil
}

type foursquareItem struct {
	FsqID    string `json:"fsq_id"`
	Name     string `json:"name"`
	Geocodes struct {
		Main *struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"main"`
	} `json:"geocodes"`
	Location struct {
		FormattedAddress string `json:"formatted_address"`
	} `json:"location"`
	Rating *float64 `json:"rating"`
}

// parseFoursquareItem normalizes one raw result. Results missing an
// external id, a name or geocoordinates are dropped silently, as are
// results below the requested rating floor (no rating counts as below).
func parseFoursquareItem(item foursquareItem, minRating *float64) *ParsedPlace {
	if item.FsqID == "" || item.Name == "" || item.Geocodes.Main == nil {
		return nil
	}
	if minRating != nil && (item.Rating == nil || *item.Rating < *minRating) {
		return nil
	}
	return &ParsedPlace{
		ExternalID: item.FsqID,
		Name:       item.Name,
		Latitude:   item.Geocodes.Main.Latitude,
		Longitude:  item.Geocodes.Main.Longitude,
		Address:    item.Location.FormattedAddress,
		Rating:     item.Rating,
	}
}

// classifyTransportError distinguishes connect timeouts from read timeouts
// so each can surface with its own gateway-timeout message; everything else
// is generic unavailability.
func classifyTransportError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		var opErr *net.OpError
		if errors.As(err, &opErr) && opErr.Op == "dial" && opErr.Timeout() {
			log.Printf("Foursquare connect timeout: %v", err)
			return utils.ErrUpstreamConnectTimeout
		}
		if urlErr.Timeout() || errors.Is(err, context.DeadlineExceeded) {
			log.Printf("Foursquare read timeout: %v", err)
			return utils.ErrUpstreamReadTimeout
		}
	}
	log.Printf("Foursquare request error: %v", err)
	return fmt.Errorf("%w: %v", utils.ErrUpstreamUnavailable, err)
}
