// Package store caches the latest scored report per site so the HTTP layer
// can serve pulls without replaying the sink topic. History is out of scope;
// each save replaces the previous report for the site.
package store

import (
	"errors"
	"sync"

	"github.com/lacvoile/foil-report/internal/domain"
)

// ErrNotFound is returned when no report has been stored for a site yet.
var ErrNotFound = errors.New("no report for site")

// MemoryStore is a concurrency-safe latest-report-per-site cache.
type MemoryStore struct {
	mu      sync.RWMutex
	reports map[int]domain.SiteReport
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{reports: make(map[int]domain.SiteReport)}
}

// Save replaces the stored report for the report's site.
func (s *MemoryStore) Save(report domain.SiteReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[report.SiteID] = report
}

// Latest returns the most recent report for a site, or ErrNotFound.
func (s *MemoryStore) Latest(siteID int) (domain.SiteReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	report, ok := s.reports[siteID]
	if !ok {
		return domain.SiteReport{}, ErrNotFound
	}
	return report, nil
}

// SiteIDs returns the ids of all sites with a stored report.
func (s *MemoryStore) SiteIDs() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]int, 0, len(s.reports))
	for id := range s.reports {
		ids = append(ids, id)
	}
	return ids
}
