package services

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"time"

	"travelcompanion/internal/models/request_models"
	"travelcompanion/internal/models/response_models"
)

const hotelCacheTTL = 300 * time.Second

type HotelServiceInterface interface {
	SearchHotels(ctx context.Context, req request_models.HotelSearchRequest) ([]response_models.Hotel, error)
}

type HotelService struct {
	cache  CacheStore
	client HotelSearchClient
}

func NewHotelService(cache CacheStore, client HotelSearchClient) HotelServiceInterface {
	return &HotelService{
		cache:  cache,
		client: client,
	}
}

// buildCacheKey derives a deterministic key from the full normalized
// parameter set: json.Marshal on a map serializes keys in sorted order, so
// equal queries always hash the same.
func buildCacheKey(params map[string]string) string {
	raw, _ := json.Marshal(params)
	return fmt.Sprintf("hotel:%x", md5.Sum(raw))
}

// SearchHotels is cache-aside over the hotel provider. Cache failures are
// logged and swallowed: an unavailable cache degrades to a direct provider
// call, never a failed request.
func (s *HotelService) SearchHotels(ctx context.Context, req request_models.HotelSearchRequest) ([]response_models.Hotel, error) {
	params := map[string]string{
		"name":   req.Name,
		"radius": strconv.Itoa(req.Radius),
		"lat":    fmt.Sprintf("%v", req.Latitude),
		"lon":    fmt.Sprintf("%v", req.Longitude),
		"rate":   req.Rate,
		"kinds":  "accomodations",
		"format": "json",
	}
	if req.SortBy != "" {
		params["sort_by"] = req.SortBy
	}

	cacheKey := buildCacheKey(params)
	var data []byte

	cached, err := s.cache.Get(ctx, cacheKey)
	switch {
	case err == nil:
		log.Printf("Hotel cache hit for key %s", cacheKey)
		data = []byte(cached)
	case errors.Is(err, ErrCacheMiss):
	default:
		log.Printf("Warning: hotel cache unavailable on get: %v", err)
	}

	if data == nil {
		data, err = s.client.SearchRaw(ctx, params)
		if err != nil {
			return nil, err
		}

		if err := s.cache.Set(ctx, cacheKey, string(data), hotelCacheTTL); err != nil {
			log.Printf("Warning: hotel cache unavailable on set: %v", err)
		}
	}

	hotels := s.client.ParseHotels(data)

	switch req.SortBy {
	case "distance":
		sort.SliceStable(hotels, func(i, j int) bool { return hotels[i].Distance < hotels[j].Distance })
	case "rating":
		sort.SliceStable(hotels, func(i, j int) bool { return hotels[i].Rate > hotels[j].Rate })
	}

	return hotels, nil
}
