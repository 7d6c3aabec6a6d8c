package state

import (
	"context"

	"github.com/pawhaven/pawdeck/internal/api"
)

// DashboardSlice caches the counters for the caller's role dashboard.
type DashboardSlice struct {
	Status   Status
	Stats    api.DashboardStats
	HasStats bool
}

// FetchDashboardStats refreshes the dashboard counters.
func (s *Store) FetchDashboardStats(ctx context.Context) error {
	s.begin(SliceDashboard)
	stats, err := s.api.FetchDashboardStats(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.dashboard.Status.fail("fetch dashboard: " + api.ErrorMessage(err))
		return err
	}
	s.dashboard.Stats = stats
	s.dashboard.HasStats = true
	s.dashboard.Status.succeed("")
	return nil
}
