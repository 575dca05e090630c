// pkg/mem/request_counters.go
package mem

import (
	"sync"
	"time"
)

type RequestCounterStore interface {
	// Increment bumps the counter for key within the current fixed window and
	// returns the new count. A fresh window starts when the previous one has
	// elapsed.
	Increment(key string, window time.Duration) int
}

type counterEntry struct {
	count     int
	windowEnd time.Time
}

type RequestCounters struct {
	mu   sync.Mutex
	data map[string]counterEntry
}

func NewRequestCounters() *RequestCounters {
	return &RequestCounters{
		data: make(map[string]counterEntry),
	}
}

func (s *RequestCounters) Increment(key string, window time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	e, ok := s.data[key]
	if !ok || now.After(e.windowEnd) {
		e = counterEntry{count: 0, windowEnd: now.Add(window)}
	}
	e.count++
	s.data[key] = e

	// Opportunistic cleanup so the map does not grow unbounded.
	if len(s.data) > 10000 {
		for k, v := range s.data {
			if now.After(v.windowEnd) {
				delete(s.data, k)
			}
		}
	}

	return e.count
}
