package api

import (
	"context"
	"net/http"
)

// ProductInput carries the fields for creating or editing a product.
type ProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

// FetchProducts lists the shop catalogue.
func (c *Client) FetchProducts(ctx context.Context) ([]Product, error) {
	raw, err := c.gw.Send(ctx, http.MethodGet, "/api/products", nil)
	if err != nil {
		return nil, err
	}
	return UnwrapList[Product](raw, "products"), nil
}

// FetchProduct retrieves one product with its reviews.
func (c *Client) FetchProduct(ctx context.Context, id string) (Product, error) {
	raw, err := c.gw.Send(ctx, http.MethodGet, "/api/products/"+id, nil)
	if err != nil {
		return Product{}, err
	}
	return UnwrapValue[Product](raw, "product"), nil
}

// SubmitReview posts a review and returns the updated product.
func (c *Client) SubmitReview(ctx context.Context, id string, rating int, comment string) (Product, error) {
	raw, err := c.gw.Send(ctx, http.MethodPost, "/api/products/"+id+"/reviews", map[string]any{
		"rating":  rating,
		"comment": comment,
	})
	if err != nil {
		return Product{}, err
	}
	return UnwrapValue[Product](raw, "product"), nil
}

// CreateProduct lists a new product (seller only).
func (c *Client) CreateProduct(ctx context.Context, input ProductInput) (Product, error) {
	raw, err := c.gw.Send(ctx, http.MethodPost, "/api/products", input)
	if err != nil {
		return Product{}, err
	}
	return UnwrapValue[Product](raw, "product"), nil
}

// UpdateProduct edits an existing product.
func (c *Client) UpdateProduct(ctx context.Context, id string, input ProductInput) (Product, error) {
	raw, err := c.gw.Send(ctx, http.MethodPut, "/api/products/"+id, input)
	if err != nil {
		return Product{}, err
	}
	return UnwrapValue[Product](raw, "product"), nil
}

// DeleteProduct removes a product listing.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	_, err := c.gw.Send(ctx, http.MethodDelete, "/api/products/"+id, nil)
	return err
}
