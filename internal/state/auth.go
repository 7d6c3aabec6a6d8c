package state

import (
	"context"

	"github.com/pawhaven/pawdeck/internal/api"
)

// AuthSlice caches the signed-in user and session state.
type AuthSlice struct {
	Status         Status
	User           api.User
	LoggedIn       bool
	SessionExpired bool
}

// Login authenticates and, on success, replaces the cached user.
func (s *Store) Login(ctx context.Context, email, password string) error {
	s.begin(SliceAuth)
	session, err := s.api.Login(ctx, email, password)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.auth.Status.fail(api.ErrorMessage(err))
		return err
	}
	s.auth.User = api.User{
		ID:    session.User.ID,
		Name:  session.User.Name,
		Email: session.User.Email,
		Role:  session.User.Role,
	}
	s.auth.LoggedIn = true
	s.auth.SessionExpired = false
	s.auth.Status.succeed("welcome back, " + session.User.Name)
	return nil
}

// Register creates an account and signs in.
func (s *Store) Register(ctx context.Context, input api.RegisterInput) error {
	s.begin(SliceAuth)
	session, err := s.api.Register(ctx, input)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.auth.Status.fail(api.ErrorMessage(err))
		return err
	}
	s.auth.User = api.User{
		ID:    session.User.ID,
		Name:  session.User.Name,
		Email: session.User.Email,
		Role:  session.User.Role,
	}
	s.auth.LoggedIn = true
	s.auth.SessionExpired = false
	s.auth.Status.succeed("account created")
	return nil
}

// FetchProfile refreshes the cached user from the backend.
func (s *Store) FetchProfile(ctx context.Context) error {
	s.begin(SliceAuth)
	user, err := s.api.Me(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.auth.Status.fail("fetch profile: " + api.ErrorMessage(err))
		return err
	}
	s.auth.User = user
	s.auth.Status.succeed("")
	return nil
}

// UpdateProfile edits the profile and replaces the cached user.
func (s *Store) UpdateProfile(ctx context.Context, input api.ProfileInput) error {
	s.begin(SliceAuth)
	user, err := s.api.UpdateProfile(ctx, input)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.auth.Status.fail(api.ErrorMessage(err))
		return err
	}
	s.auth.User = user
	s.auth.Status.succeed("profile updated")
	return nil
}

// Logout clears the persisted session and the cached user. Local only.
func (s *Store) Logout() error {
	err := s.api.Logout()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth = AuthSlice{}
	return err
}

// ExpireSession is invoked by the gateway's unauthorized hook: the session is
// gone regardless of which call tripped the 401, so the cached user is
// dropped and the UI is pointed back at login through SessionExpired.
func (s *Store) ExpireSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth.User = api.User{}
	s.auth.LoggedIn = false
	s.auth.SessionExpired = true
	s.auth.Status.fail("session expired, please sign in again")
}
