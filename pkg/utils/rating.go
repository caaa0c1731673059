package utils

import "fmt"

// Known rating sources and their inclusive value ranges. Foursquare scores
// on 0-10, 2GIS on 1-5.
var ratingRanges = map[string][2]float64{
	"Foursquare": {0, 10},
	"2GIS":       {1, 5},
}

// ValidateRatingRange checks that value lies within the declared range for
// source. Unknown sources are rejected, not defaulted.
func ValidateRatingRange(source string, value float64) error {
	r, ok := ratingRanges[source]
	if !ok {
		return fmt.Errorf("%w: unknown source %q", ErrInvalidRatingRange, source)
	}
	if value < r[0] || value > r[1] {
		return fmt.Errorf("%w: %s rating must be between %g and %g", ErrInvalidRatingRange, source, r[0], r[1])
	}
	return nil
}
