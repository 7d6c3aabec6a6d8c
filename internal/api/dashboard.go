package api

import (
	"context"
	"net/http"
)

// FetchDashboardStats retrieves the counters for the caller's role dashboard.
func (c *Client) FetchDashboardStats(ctx context.Context) (DashboardStats, error) {
	raw, err := c.gw.Send(ctx, http.MethodGet, "/api/dashboard/stats", nil)
	if err != nil {
		return DashboardStats{}, err
	}
	return UnwrapValue[DashboardStats](raw, "stats"), nil
}
