// pkg/memcache/labels.go
package memcache

import (
	"fmt"
	"sync"
	"time"
)

// LabelStore caches reverse-geocoded destination labels keyed by rounded
// coordinates, so repeated searches around the same spot skip the geocoder.
type LabelStore interface {
	Get(lat, lon float64) (string, bool)
	Set(lat, lon float64, label string, ttl time.Duration)
}

type entry struct {
	label     string
	expiresAt time.Time
}

type Labels struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewLabels() *Labels {
	return &Labels{
		data: make(map[string]entry),
	}
}

// Four decimals is roughly 11 meters at the equator, well below any
// sensible search radius.
func key(lat, lon float64) string {
	return fmt.Sprintf("%.4f:%.4f", lat, lon)
}

func (s *Labels) Get(lat, lon float64) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[key(lat, lon)]
	if !ok || time.Now().After(e.expiresAt) {
		return "", false
	}
	return e.label, true
}

func (s *Labels) Set(lat, lon float64, label string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key(lat, lon)] = entry{
		label:     label,
		expiresAt: time.Now().Add(ttl),
	}
}
