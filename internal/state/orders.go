package state

import (
	"context"

	"github.com/pawhaven/pawdeck/internal/api"
)

// OrdersSlice caches the caller's order history and the currently viewed
// order.
type OrdersSlice struct {
	Status  Status
	Orders  []api.Order
	Current *api.Order
}

func (o OrdersSlice) clone() OrdersSlice {
	o.Orders = cloneList(o.Orders)
	if o.Current != nil {
		current := *o.Current
		current.Items = cloneList(current.Items)
		o.Current = &current
	}
	return o
}

// applyOrder replaces the order by id in every container that may hold it,
// so a status transition never requires a full re-fetch.
func (o *OrdersSlice) applyOrder(updated api.Order) {
	for i := range o.Orders {
		if o.Orders[i].ID == updated.ID {
			o.Orders[i] = updated
			break
		}
	}
	if o.Current != nil && o.Current.ID == updated.ID {
		o.Current = &updated
	}
}

// CreateOrder places an order from the current cart. The fulfilled order is
// prepended to the history and the cart is emptied locally, mirroring the
// server's checkout side effect.
func (s *Store) CreateOrder(ctx context.Context, input api.OrderInput) error {
	s.begin(SliceOrders)
	order, err := s.api.CreateOrder(ctx, input)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.orders.Status.fail(api.ErrorMessage(err))
		return err
	}
	s.orders.Orders = append([]api.Order{order}, s.orders.Orders...)
	s.orders.Current = &order
	s.cart.Items = nil
	s.cart.recompute()
	s.orders.Status.succeed("order placed")
	return nil
}

// FetchMyOrders refreshes the order history.
func (s *Store) FetchMyOrders(ctx context.Context) error {
	s.begin(SliceOrders)
	orders, err := s.api.FetchMyOrders(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.orders.Status.fail("fetch orders: " + api.ErrorMessage(err))
		return err
	}
	s.orders.Orders = orders
	s.orders.Status.succeed("")
	return nil
}

// FetchOrder loads one order into Current.
func (s *Store) FetchOrder(ctx context.Context, id string) error {
	s.begin(SliceOrders)
	order, err := s.api.FetchOrder(ctx, id)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.orders.Status.fail("fetch order: " + api.ErrorMessage(err))
		return err
	}
	s.orders.Current = &order
	s.orders.applyOrder(order)
	s.orders.Status.succeed("")
	return nil
}

// CancelOrder cancels an order and applies the new status in place.
func (s *Store) CancelOrder(ctx context.Context, id string) error {
	s.begin(SliceOrders)
	order, err := s.api.CancelOrder(ctx, id)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.orders.Status.fail(api.ErrorMessage(err))
		return err
	}
	s.orders.applyOrder(order)
	s.orders.Status.succeed("order cancelled")
	return nil
}

// UpdateOrderStatus transitions an order (seller/admin) in place.
func (s *Store) UpdateOrderStatus(ctx context.Context, id, status string) error {
	s.begin(SliceOrders)
	order, err := s.api.UpdateOrderStatus(ctx, id, status)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.orders.Status.fail(api.ErrorMessage(err))
		return err
	}
	s.orders.applyOrder(order)
	s.orders.Status.succeed("order status updated")
	return nil
}
