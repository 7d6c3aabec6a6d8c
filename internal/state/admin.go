package state

import (
	"context"

	"github.com/pawhaven/pawdeck/internal/api"
)

// AdminSlice caches the account list and marketplace counters for the admin
// and co-admin views.
type AdminSlice struct {
	Status   Status
	Users    []api.User
	Stats    api.DashboardStats
	HasStats bool
}

func (a AdminSlice) clone() AdminSlice {
	a.Users = cloneList(a.Users)
	return a
}

// FetchUsers refreshes the account list.
func (s *Store) FetchUsers(ctx context.Context) error {
	s.begin(SliceAdmin)
	users, err := s.api.FetchUsers(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.admin.Status.fail("fetch users: " + api.ErrorMessage(err))
		return err
	}
	s.admin.Users = users
	s.admin.Status.succeed("")
	return nil
}

// UpdateUserStatus approves or suspends an account, applied in place.
func (s *Store) UpdateUserStatus(ctx context.Context, id, status string) error {
	s.begin(SliceAdmin)
	user, err := s.api.UpdateUserStatus(ctx, id, status)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.admin.Status.fail(api.ErrorMessage(err))
		return err
	}
	for i := range s.admin.Users {
		if s.admin.Users[i].ID == user.ID {
			s.admin.Users[i] = user
			break
		}
	}
	s.admin.Status.succeed("user " + status)
	return nil
}

// DeleteUser removes an account from the server and the cached list.
func (s *Store) DeleteUser(ctx context.Context, id string) error {
	s.begin(SliceAdmin)
	err := s.api.DeleteUser(ctx, id)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.admin.Status.fail(api.ErrorMessage(err))
		return err
	}
	users := s.admin.Users[:0]
	for _, user := range s.admin.Users {
		if user.ID != id {
			users = append(users, user)
		}
	}
	s.admin.Users = users
	s.admin.Status.succeed("user removed")
	return nil
}

// FetchAdminStats refreshes the marketplace-wide counters.
func (s *Store) FetchAdminStats(ctx context.Context) error {
	s.begin(SliceAdmin)
	stats, err := s.api.FetchAdminStats(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.admin.Status.fail("fetch stats: " + api.ErrorMessage(err))
		return err
	}
	s.admin.Stats = stats
	s.admin.HasStats = true
	s.admin.Status.succeed("")
	return nil
}
