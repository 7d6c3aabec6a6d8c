package state

import (
	"context"
	"fmt"

	"github.com/pawhaven/pawdeck/internal/api"
)

// CartSlice caches the current cart. Total and ItemCount are always derived
// from the lines on the client; the server's figures are never trusted for
// the running session.
type CartSlice struct {
	Status    Status
	Items     []api.CartLine
	Total     float64
	ItemCount int
}

func (c CartSlice) clone() CartSlice {
	c.Items = cloneList(c.Items)
	return c
}

// recompute re-derives Total and ItemCount. Must run after every mutation of
// the line list, optimistic or server-confirmed.
func (c *CartSlice) recompute() {
	c.Total = 0
	c.ItemCount = 0
	for _, line := range c.Items {
		c.Total += line.Price * float64(line.Quantity)
		c.ItemCount += line.Quantity
	}
}

// replace swaps in the server's view of the cart as the new source of truth.
func (c *CartSlice) replace(cart api.Cart) {
	c.Items = cart.Items
	c.recompute()
}

// FetchCart refreshes the cart from the backend.
func (s *Store) FetchCart(ctx context.Context) error {
	s.begin(SliceCart)
	cart, err := s.api.FetchCart(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.cart.Status.fail("fetch cart: " + api.ErrorMessage(err))
		return err
	}
	s.cart.replace(cart)
	s.cart.Status.succeed("")
	return nil
}

// AddToCart adds a product line.
func (s *Store) AddToCart(ctx context.Context, productID string, quantity int) error {
	s.begin(SliceCart)
	cart, err := s.api.AddToCart(ctx, productID, quantity)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.cart.Status.fail(api.ErrorMessage(err))
		return err
	}
	s.cart.replace(cart)
	s.cart.Status.succeed("added to cart")
	return nil
}

// OptimisticSetQuantity synchronously sets the quantity of the line matching
// productID and recomputes the totals, before any network response. The UI
// calls this in its update loop so the change is visible with zero latency,
// then issues ConfirmSetQuantity.
func (s *Store) OptimisticSetQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart.Items {
		if s.cart.Items[i].ProductID == productID {
			s.cart.Items[i].Quantity = quantity
			break
		}
	}
	s.cart.recompute()
}

// OptimisticRemove synchronously drops the line matching productID and
// recomputes the totals.
func (s *Store) OptimisticRemove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.cart.Items[:0]
	for _, line := range s.cart.Items {
		if line.ProductID != productID {
			items = append(items, line)
		}
	}
	s.cart.Items = items
	s.cart.recompute()
}

// ConfirmSetQuantity issues the network call behind OptimisticSetQuantity.
// A success response becomes the new source of truth, correcting any drift.
// A failure only surfaces an error status: the optimistic lines stay as they
// are and the next successful fetch reconciles.
func (s *Store) ConfirmSetQuantity(ctx context.Context, productID string, quantity int) error {
	itemID, ok := s.cartItemID(productID)
	if !ok {
		return fmt.Errorf("product %s not in cart", productID)
	}
	s.begin(SliceCart)
	cart, err := s.api.UpdateCartItem(ctx, itemID, quantity)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.cart.Status.fail(api.ErrorMessage(err))
		return err
	}
	s.cart.replace(cart)
	s.cart.Status.succeed("cart updated")
	return nil
}

// ConfirmRemove issues the network call behind OptimisticRemove. The line is
// already gone locally, so the item id must be captured before the
// optimistic step; callers pass it through.
func (s *Store) ConfirmRemove(ctx context.Context, itemID string) error {
	s.begin(SliceCart)
	cart, err := s.api.RemoveCartItem(ctx, itemID)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.cart.Status.fail(api.ErrorMessage(err))
		return err
	}
	s.cart.replace(cart)
	s.cart.Status.succeed("removed from cart")
	return nil
}

// ClearCart empties the cart on the server and locally.
func (s *Store) ClearCart(ctx context.Context) error {
	s.begin(SliceCart)
	err := s.api.ClearCart(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.cart.Status.fail(api.ErrorMessage(err))
		return err
	}
	s.cart.Items = nil
	s.cart.recompute()
	s.cart.Status.succeed("cart cleared")
	return nil
}

// CartItemID resolves the cart line id for a product, for callers that need
// it before an optimistic removal.
func (s *Store) CartItemID(productID string) (string, bool) {
	return s.cartItemID(productID)
}

func (s *Store) cartItemID(productID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, line := range s.cart.Items {
		if line.ProductID == productID {
			return line.ID, true
		}
	}
	return "", false
}
