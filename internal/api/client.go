package api

import (
	"fmt"

	"github.com/pawhaven/pawdeck/internal/creds"
)

// Client exposes one method per backend endpoint. Each method is a pure
// address-and-shape adapter over the gateway; the auth methods additionally
// persist the session (the only module with a side effect beyond the call).
type Client struct {
	gw    *Gateway
	creds *creds.Store
}

// NewClient builds a Client over the shared gateway.
func NewClient(gw *Gateway, store *creds.Store) (*Client, error) {
	if gw == nil {
		return nil, fmt.Errorf("gateway is required")
	}
	return &Client{gw: gw, creds: store}, nil
}
