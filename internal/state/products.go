package state

import (
	"context"

	"github.com/pawhaven/pawdeck/internal/api"
)

// ProductsSlice caches the shop catalogue and the currently viewed product.
type ProductsSlice struct {
	Status   Status
	Products []api.Product
	Current  *api.Product
}

func (p ProductsSlice) clone() ProductsSlice {
	p.Products = cloneList(p.Products)
	if p.Current != nil {
		current := *p.Current
		current.Reviews = cloneList(current.Reviews)
		p.Current = &current
	}
	return p
}

func (p *ProductsSlice) applyProduct(updated api.Product) {
	for i := range p.Products {
		if p.Products[i].ID == updated.ID {
			p.Products[i] = updated
			break
		}
	}
	if p.Current != nil && p.Current.ID == updated.ID {
		p.Current = &updated
	}
}

// FetchProducts refreshes the catalogue.
func (s *Store) FetchProducts(ctx context.Context) error {
	s.begin(SliceProducts)
	products, err := s.api.FetchProducts(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.products.Status.fail("fetch products: " + api.ErrorMessage(err))
		return err
	}
	s.products.Products = products
	s.products.Status.succeed("")
	return nil
}

// FetchProduct loads one product, with reviews, into Current.
func (s *Store) FetchProduct(ctx context.Context, id string) error {
	s.begin(SliceProducts)
	product, err := s.api.FetchProduct(ctx, id)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.products.Status.fail("fetch product: " + api.ErrorMessage(err))
		return err
	}
	s.products.Current = &product
	s.products.applyProduct(product)
	s.products.Status.succeed("")
	return nil
}

// SubmitReview posts a review and applies the updated product in place.
func (s *Store) SubmitReview(ctx context.Context, id string, rating int, comment string) error {
	s.begin(SliceProducts)
	product, err := s.api.SubmitReview(ctx, id, rating, comment)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.products.Status.fail(api.ErrorMessage(err))
		return err
	}
	s.products.applyProduct(product)
	s.products.Status.succeed("review submitted")
	return nil
}

// CreateProduct lists a new product (seller only).
func (s *Store) CreateProduct(ctx context.Context, input api.ProductInput) error {
	s.begin(SliceProducts)
	product, err := s.api.CreateProduct(ctx, input)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.products.Status.fail(api.ErrorMessage(err))
		return err
	}
	s.products.Products = append(s.products.Products, product)
	s.products.Status.succeed("product listed")
	return nil
}

// UpdateProduct edits a product in place.
func (s *Store) UpdateProduct(ctx context.Context, id string, input api.ProductInput) error {
	s.begin(SliceProducts)
	product, err := s.api.UpdateProduct(ctx, id, input)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.products.Status.fail(api.ErrorMessage(err))
		return err
	}
	s.products.applyProduct(product)
	s.products.Status.succeed("product updated")
	return nil
}

// DeleteProduct removes a product from the server and the cached list.
func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	s.begin(SliceProducts)
	err := s.api.DeleteProduct(ctx, id)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.products.Status.fail(api.ErrorMessage(err))
		return err
	}
	products := s.products.Products[:0]
	for _, product := range s.products.Products {
		if product.ID != id {
			products = append(products, product)
		}
	}
	s.products.Products = products
	if s.products.Current != nil && s.products.Current.ID == id {
		s.products.Current = nil
	}
	s.products.Status.succeed("product removed")
	return nil
}
