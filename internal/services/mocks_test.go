package services_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"travelcompanion/internal/models/db_models"
	"travelcompanion/internal/models/response_models"
	"travelcompanion/internal/repositories"
	"travelcompanion/internal/services"
	"travelcompanion/pkg/utils"
)

type mockPlaceRepo struct {
	findWithinBoxFn      func(ctx context.Context, box utils.BoundingBox, category string, minRating *float64) ([]db_models.Place, error)
	findByExternalIDsFn  func(ctx context.Context, externalIDs []string) (map[string]db_models.Place, error)
	saveExternalPlacesFn func(ctx context.Context, places []*db_models.Place, ratingValues []*float64) ([]db_models.Place, error)
}

var _ repositories.PlaceRepository = (*mockPlaceRepo)(nil)

func (m *mockPlaceRepo) FindWithinBox(ctx context.Context, box utils.BoundingBox, category string, minRating *float64) ([]db_models.Place, error) {
	return m.findWithinBoxFn(ctx, box, category, minRating)
}

func (m *mockPlaceRepo) FindByExternalIDs(ctx context.Context, externalIDs []string) (map[string]db_models.Place, error) {
	return m.findByExternalIDsFn(ctx, externalIDs)
}

func (m *mockPlaceRepo) SaveExternalPlaces(ctx context.Context, places []*db_models.Place, ratingValues []*float64) ([]db_models.Place, error) {
	return m.saveExternalPlacesFn(ctx, places, ratingValues)
}

type mockTripRepo struct {
	saveTripFn      func(ctx context.Context, trip *db_models.Trip) error
	listUserTripsFn func(ctx context.Context, userID uuid.UUID) ([]db_models.Trip, error)
}

var _ repositories.TripRepository = (*mockTripRepo)(nil)

func (m *mockTripRepo) SaveTrip(ctx context.Context, trip *db_models.Trip) error {
	return m.saveTripFn(ctx, trip)
}

func (m *mockTripRepo) ListUserTrips(ctx context.Context, userID uuid.UUID) ([]db_models.Trip, error) {
	return m.listUserTripsFn(ctx, userID)
}

type mockVisitRepo struct {
	insertFn         func(ctx context.Context, visit *db_models.Visit) error
	listUserVisitsFn func(ctx context.Context, userID uuid.UUID) ([]db_models.Visit, error)
}

var _ repositories.VisitRepository = (*mockVisitRepo)(nil)

func (m *mockVisitRepo) Insert(ctx context.Context, visit *db_models.Visit) error {
	return m.insertFn(ctx, visit)
}

func (m *mockVisitRepo) ListUserVisits(ctx context.Context, userID uuid.UUID) ([]db_models.Visit, error) {
	return m.listUserVisitsFn(ctx, userID)
}

type mockHistoryRepo struct {
	getUserHistoryFn func(ctx context.Context, userID uuid.UUID) ([]db_models.UserPlaceHistory, error)
}

var _ repositories.HistoryRepository = (*mockHistoryRepo)(nil)

func (m *mockHistoryRepo) GetUserHistory(ctx context.Context, userID uuid.UUID) ([]db_models.UserPlaceHistory, error) {
	return m.getUserHistoryFn(ctx, userID)
}

type mockReviewRepo struct {
	insertFn      func(ctx context.Context, review *db_models.Review) error
	listFn        func(ctx context.Context, page, pageSize int) ([]db_models.Review, error)
	countFn       func(ctx context.Context) (int64, error)
	updateOwnedFn func(ctx context.Context, reviewID, userID uuid.UUID, content string, rating int) error
	deleteOwnedFn func(ctx context.Context, reviewID, userID uuid.UUID) error
}

var _ repositories.ReviewRepository = (*mockReviewRepo)(nil)

func (m *mockReviewRepo) Insert(ctx context.Context, review *db_models.Review) error {
	return m.insertFn(ctx, review)
}

func (m *mockReviewRepo) List(ctx context.Context, page, pageSize int) ([]db_models.Review, error) {
	return m.listFn(ctx, page, pageSize)
}

func (m *mockReviewRepo) Count(ctx context.Context) (int64, error) {
	return m.countFn(ctx)
}

func (m *mockReviewRepo) UpdateOwned(ctx context.Context, reviewID, userID uuid.UUID, content string, rating int) error {
	return m.updateOwnedFn(ctx, reviewID, userID, content, rating)
}

func (m *mockReviewRepo) DeleteOwned(ctx context.Context, reviewID, userID uuid.UUID) error {
	return m.deleteOwnedFn(ctx, reviewID, userID)
}

type mockUserRepo struct {
	insertFn         func(ctx context.Context, user *db_models.User) error
	findByIDFn       func(ctx context.Context, id string) (*db_models.User, error)
	findByUsernameFn func(ctx context.Context, username string) (*db_models.User, error)
	findByEmailFn    func(ctx context.Context, email string) (*db_models.User, error)
}

var _ repositories.UserRepository = (*mockUserRepo)(nil)

func (m *mockUserRepo) Insert(ctx context.Context, user *db_models.User) error {
	return m.insertFn(ctx, user)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*db_models.User, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*db_models.User, error) {
	return m.findByUsernameFn(ctx, username)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	return m.findByEmailFn(ctx, email)
}

type mockGateway struct {
	categoryIDFn func(category string) (string, bool)
	searchFn     func(ctx context.Context, query services.PlaceSearchQuery) ([]services.ParsedPlace, error)
}

var _ services.PlaceSearchClient = (*mockGateway)(nil)

func (m *mockGateway) CategoryID(category string) (string, bool) {
	return m.categoryIDFn(category)
}

func (m *mockGateway) Search(ctx context.Context, query services.PlaceSearchQuery) ([]services.ParsedPlace, error) {
	return m.searchFn(ctx, query)
}

type mockGeocoder struct {
	reverseGeocodeFn func(ctx context.Context, lat, lon float64) string
}

var _ services.GeocodingClient = (*mockGeocoder)(nil)

func (m *mockGeocoder) ReverseGeocode(ctx context.Context, lat, lon float64) string {
	return m.reverseGeocodeFn(ctx, lat, lon)
}

type mockCache struct {
	getFn func(ctx context.Context, key string) (string, error)
	setFn func(ctx context.Context, key, value string, ttl time.Duration) error
}

var _ services.CacheStore = (*mockCache)(nil)

func (m *mockCache) Get(ctx context.Context, key string) (string, error) {
	return m.getFn(ctx, key)
}

func (m *mockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return m.setFn(ctx, key, value, ttl)
}

type mockHotelClient struct {
	searchRawFn   func(ctx context.Context, params map[string]string) ([]byte, error)
	parseHotelsFn func(data []byte) []response_models.Hotel
}

var _ services.HotelSearchClient = (*mockHotelClient)(nil)

func (m *mockHotelClient) SearchRaw(ctx context.Context, params map[string]string) ([]byte, error) {
	return m.searchRawFn(ctx, params)
}

func (m *mockHotelClient) ParseHotels(data []byte) []response_models.Hotel {
	return m.parseHotelsFn(data)
}
