package repository

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-billpay/app/entity"
	"github.com/vibast-solutions/ms-go-billpay/app/factory"
)

type storedResult struct {
	result    *entity.PaymentResult
	expiresAt time.Time
}

// ResultStore holds at most one payment result per correlation reference.
// Writes overwrite unconditionally, reads never consume. Entries expire
// after the configured TTL; a TTL of zero disables expiry.
type ResultStore struct {
	mu      sync.RWMutex
	entries map[string]storedResult
	ttl     time.Duration
	logger  logrus.FieldLogger
}

func NewResultStore(ttl time.Duration) *ResultStore {
	return &ResultStore{
		entries: make(map[string]storedResult),
		ttl:     ttl,
		logger:  factory.NewModuleLogger("result-store"),
	}
}

func (s *ResultStore) Put(reference string, result *entity.PaymentResult) {
	entry := storedResult{result: result}
	if s.ttl > 0 {
		entry.expiresAt = time.Now().Add(s.ttl)
	}

	s.mu.Lock()
	s.entries[reference] = entry
	s.mu.Unlock()
}

func (s *ResultStore) Get(reference string) (*entity.PaymentResult, bool) {
	s.mu.RLock()
	entry, ok := s.entries[reference]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.result, true
}

func (s *ResultStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Sweep deletes entries expired as of now and returns how many it removed.
func (s *ResultStore) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for reference, entry := range s.entries {
		if !entry.expiresAt.IsZero() && now.After(entry.expiresAt) {
			delete(s.entries, reference)
			removed++
		}
	}
	return removed
}

// StartSweeper runs periodic sweeps until ctx is cancelled. Meant to be
// launched as a goroutine next to the HTTP server.
func (s *ResultStore) StartSweeper(ctx context.Context, interval time.Duration) {
	if s.ttl <= 0 || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Result store sweeper stopped")
			return
		case <-ticker.C:
			if removed := s.Sweep(time.Now()); removed > 0 {
				s.logger.WithField("removed", removed).Info("Swept expired payment results")
			}
		}
	}
}
