package api

import (
	"context"
	"net/http"
)

// FetchCart retrieves the current cart.
func (c *Client) FetchCart(ctx context.Context) (Cart, error) {
	raw, err := c.gw.Send(ctx, http.MethodGet, "/api/cart", nil)
	if err != nil {
		return Cart{}, err
	}
	return UnwrapValue[Cart](raw, "cart"), nil
}

// AddToCart adds a product and returns the server's view of the cart.
func (c *Client) AddToCart(ctx context.Context, productID string, quantity int) (Cart, error) {
	raw, err := c.gw.Send(ctx, http.MethodPost, "/api/cart/add", map[string]any{
		"productId": productID,
		"quantity":  quantity,
	})
	if err != nil {
		return Cart{}, err
	}
	return UnwrapValue[Cart](raw, "cart"), nil
}

// UpdateCartItem sets a line's quantity.
func (c *Client) UpdateCartItem(ctx context.Context, itemID string, quantity int) (Cart, error) {
	raw, err := c.gw.Send(ctx, http.MethodPut, "/api/cart/update/"+itemID, map[string]any{
		"quantity": quantity,
	})
	if err != nil {
		return Cart{}, err
	}
	return UnwrapValue[Cart](raw, "cart"), nil
}

// RemoveCartItem deletes a line.
func (c *Client) RemoveCartItem(ctx context.Context, itemID string) (Cart, error) {
	raw, err := c.gw.Send(ctx, http.MethodDelete, "/api/cart/remove/"+itemID, nil)
	if err != nil {
		return Cart{}, err
	}
	return UnwrapValue[Cart](raw, "cart"), nil
}

// ClearCart empties the cart.
func (c *Client) ClearCart(ctx context.Context) error {
	_, err := c.gw.Send(ctx, http.MethodDelete, "/api/cart/clear", nil)
	return err
}
