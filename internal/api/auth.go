package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pawhaven/pawdeck/internal/creds"
)

// RegisterInput carries the fields for account creation.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// ProfileInput carries the editable profile fields.
type ProfileInput struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

// Login authenticates and persists {token, user} into the credential store.
func (c *Client) Login(ctx context.Context, email, password string) (creds.Session, error) {
	raw, err := c.gw.Send(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return creds.Session{}, err
	}
	return c.persistSession(raw)
}

// Register creates an account and persists the returned session.
func (c *Client) Register(ctx context.Context, input RegisterInput) (creds.Session, error) {
	raw, err := c.gw.Send(ctx, http.MethodPost, "/api/auth/register", input)
	if err != nil {
		return creds.Session{}, err
	}
	return c.persistSession(raw)
}

// Me fetches the profile for the current session.
func (c *Client) Me(ctx context.Context) (User, error) {
	raw, err := c.gw.Send(ctx, http.MethodGet, "/api/auth/me", nil)
	if err != nil {
		return User{}, err
	}
	return UnwrapValue[User](raw, "user"), nil
}

// UpdateProfile updates the profile and refreshes the persisted user.
func (c *Client) UpdateProfile(ctx context.Context, input ProfileInput) (User, error) {
	raw, err := c.gw.Send(ctx, http.MethodPut, "/api/auth/profile", input)
	if err != nil {
		return User{}, err
	}
	user := UnwrapValue[User](raw, "user")
	if c.creds != nil {
		session := c.creds.Session()
		session.User = toStoredUser(user)
		if err := c.creds.Set(session); err != nil {
			return user, fmt.Errorf("persist profile: %w", err)
		}
	}
	return user, nil
}

// Logout clears the persisted session. Purely local; the token simply stops
// being presented.
func (c *Client) Logout() error {
	if c.creds == nil {
		return nil
	}
	return c.creds.Clear()
}

func (c *Client) persistSession(raw []byte) (creds.Session, error) {
	token := UnwrapValue[string](raw, "token")
	user := UnwrapValue[User](raw, "user")
	if token == "" {
		return creds.Session{}, fmt.Errorf("login response carried no token")
	}
	session := creds.Session{Token: token, User: toStoredUser(user)}
	if c.creds != nil {
		if err := c.creds.Set(session); err != nil {
			return creds.Session{}, fmt.Errorf("persist session: %w", err)
		}
	}
	return session, nil
}

func toStoredUser(u User) creds.User {
	return creds.User{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
