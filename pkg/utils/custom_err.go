package utils

import "errors"

var (
	ErrInvalidCategory    = errors.New("invalid place category")
	ErrInvalidRatingRange = errors.New("rating out of range for source")

	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrReviewNotFound     = errors.New("review not found")

	ErrDatabaseError = errors.New("database error")
	ErrServiceConfig = errors.New("service configuration error")

	ErrUpstreamConnectTimeout = errors.New("upstream connect timeout")
	ErrUpstreamReadTimeout    = errors.New("upstream read timeout")
	ErrUpstreamProtocol       = errors.New("upstream provider error")
	ErrUpstreamUnavailable    = errors.New("upstream provider unavailable")

	ErrMarkVisitFailed = errors.New("could not mark place as visited")
)
