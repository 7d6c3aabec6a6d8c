package api

import (
	"context"
	"net/http"
)

// PetInput carries the fields for listing or editing a pet (seller only).
type PetInput struct {
	Name        string  `json:"name"`
	Species     string  `json:"species"`
	Breed       string  `json:"breed"`
	Age         int     `json:"age"`
	Gender      string  `json:"gender"`
	Description string  `json:"description"`
	AdoptionFee float64 `json:"adoptionFee"`
}

// FetchPets lists pets available for adoption.
func (c *Client) FetchPets(ctx context.Context) ([]Pet, error) {
	raw, err := c.gw.Send(ctx, http.MethodGet, "/api/pets", nil)
	if err != nil {
		return nil, err
	}
	return UnwrapList[Pet](raw, "pets"), nil
}

// FetchPet retrieves one pet listing.
func (c *Client) FetchPet(ctx context.Context, id string) (Pet, error) {
	raw, err := c.gw.Send(ctx, http.MethodGet, "/api/pets/"+id, nil)
	if err != nil {
		return Pet{}, err
	}
	return UnwrapValue[Pet](raw, "pet"), nil
}

// ApplyForAdoption submits an adoption application for a pet and returns the
// server's confirmation message.
func (c *Client) ApplyForAdoption(ctx context.Context, id, message string) (string, error) {
	raw, err := c.gw.Send(ctx, http.MethodPost, "/api/pets/"+id+"/apply", map[string]string{
		"message": message,
	})
	if err != nil {
		return "", err
	}
	return UnwrapValue[string](raw, "message"), nil
}

// CreatePet lists a new pet.
func (c *Client) CreatePet(ctx context.Context, input PetInput) (Pet, error) {
	raw, err := c.gw.Send(ctx, http.MethodPost, "/api/pets", input)
	if err != nil {
		return Pet{}, err
	}
	return UnwrapValue[Pet](raw, "pet"), nil
}

// UpdatePet edits an existing pet listing.
func (c *Client) UpdatePet(ctx context.Context, id string, input PetInput) (Pet, error) {
	raw, err := c.gw.Send(ctx, http.MethodPut, "/api/pets/"+id, input)
	if err != nil {
		return Pet{}, err
	}
	return UnwrapValue[Pet](raw, "pet"), nil
}

// DeletePet removes a pet listing.
func (c *Client) DeletePet(ctx context.Context, id string) error {
	_, err := c.gw.Send(ctx, http.MethodDelete, "/api/pets/"+id, nil)
	return err
}
