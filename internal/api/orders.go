package api

import (
	"context"
	"net/http"
)

// OrderInput carries the checkout fields.
type OrderInput struct {
	ShippingAddress string `json:"shippingAddress"`
	PaymentMethod   string `json:"paymentMethod"`
}

// CreateOrder places an order from the current cart.
func (c *Client) CreateOrder(ctx context.Context, input OrderInput) (Order, error) {
	raw, err := c.gw.Send(ctx, http.MethodPost, "/api/orders", input)
	if err != nil {
		return Order{}, err
	}
	return UnwrapValue[Order](raw, "order"), nil
}

// FetchMyOrders lists the caller's orders.
func (c *Client) FetchMyOrders(ctx context.Context) ([]Order, error) {
	raw, err := c.gw.Send(ctx, http.MethodGet, "/api/orders/my-orders", nil)
	if err != nil {
		return nil, err
	}
	return UnwrapList[Order](raw, "orders"), nil
}

// FetchOrder retrieves a single order.
func (c *Client) FetchOrder(ctx context.Context, id string) (Order, error) {
	raw, err := c.gw.Send(ctx, http.MethodGet, "/api/orders/"+id, nil)
	if err != nil {
		return Order{}, err
	}
	return UnwrapValue[Order](raw, "order"), nil
}

// CancelOrder cancels an order the caller owns.
func (c *Client) CancelOrder(ctx context.Context, id string) (Order, error) {
	raw, err := c.gw.Send(ctx, http.MethodPatch, "/api/orders/"+id+"/cancel", nil)
	if err != nil {
		return Order{}, err
	}
	return UnwrapValue[Order](raw, "order"), nil
}

// UpdateOrderStatus transitions an order's status (seller/admin only).
func (c *Client) UpdateOrderStatus(ctx context.Context, id, status string) (Order, error) {
	raw, err := c.gw.Send(ctx, http.MethodPatch, "/api/orders/"+id+"/status", map[string]string{
		"status": status,
	})
	if err != nil {
		return Order{}, err
	}
	return UnwrapValue[Order](raw, "order"), nil
}
