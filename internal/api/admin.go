package api

import (
	"context"
	"net/http"
)

// FetchUsers lists all accounts (admin/co-admin only).
func (c *Client) FetchUsers(ctx context.Context) ([]User, error) {
	raw, err := c.gw.Send(ctx, http.MethodGet, "/api/admin/users", nil)
	if err != nil {
		return nil, err
	}
	return UnwrapList[User](raw, "users"), nil
}

// UpdateUserStatus approves, suspends, or reactivates an account.
func (c *Client) UpdateUserStatus(ctx context.Context, id, status string) (User, error) {
	raw, err := c.gw.Send(ctx, http.MethodPatch, "/api/admin/users/"+id+"/status", map[string]string{
		"status": status,
	})
	if err != nil {
		return User{}, err
	}
	return UnwrapValue[User](raw, "user"), nil
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	_, err := c.gw.Send(ctx, http.MethodDelete, "/api/admin/users/"+id, nil)
	return err
}

// FetchAdminStats retrieves the marketplace-wide counters.
func (c *Client) FetchAdminStats(ctx context.Context) (DashboardStats, error) {
	raw, err := c.gw.Send(ctx, http.MethodGet, "/api/admin/stats", nil)
	if err != nil {
		return DashboardStats{}, err
	}
	return UnwrapValue[DashboardStats](raw, "stats"), nil
}
